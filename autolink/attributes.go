package autolink

// Attribute 一个 HTML 属性
type Attribute struct {
	Key   string
	Value string
}

// Attributes 有序属性表，按首次插入顺序输出
type Attributes struct {
	list []Attribute
}

// Set 设置属性。已存在的键保持原位置。
func (a *Attributes) Set(key, value string) {
	for i := range a.list {
		if a.list[i].Key == key {
			a.list[i].Value = value
			return
		}
	}
	a.list = append(a.list, Attribute{Key: key, Value: value})
}

// Get 返回属性值
func (a *Attributes) Get(key string) (string, bool) {
	for _, attr := range a.list {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Delete 删除属性
func (a *Attributes) Delete(key string) {
	for i, attr := range a.list {
		if attr.Key == key {
			a.list = append(a.list[:i], a.list[i+1:]...)
			return
		}
	}
}

// Len 返回属性个数
func (a *Attributes) Len() int {
	return len(a.list)
}

// All 按顺序返回全部属性
func (a *Attributes) All() []Attribute {
	return a.list
}
