package types

import (
	"fmt"
	"strings"
)

// EntityType 实体类型
type EntityType int

const (
	// URL is a link, with or without protocol.
	URL EntityType = iota
	// Mention is an @username or @username/list reference.
	Mention
	// Hashtag is a #hashtag reference.
	Hashtag
	// Cashtag is a $cashtag reference.
	Cashtag
)

// String returns the string representation of EntityType.
func (t EntityType) String() string {
	switch t {
	case URL:
		return "url"
	case Mention:
		return "mention"
	case Hashtag:
		return "hashtag"
	case Cashtag:
		return "cashtag"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t EntityType) MarshalText() ([]byte, error) {
	if t < URL || t > Cashtag {
		return nil, fmt.Errorf("unknown entity type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EntityType) UnmarshalText(b []byte) error {
	parsed, err := ParseEntityType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseEntityType 解析实体类型名称（大小写不敏感）
func ParseEntityType(s string) (EntityType, error) {
	switch strings.ToLower(s) {
	case "url":
		return URL, nil
	case "mention":
		return Mention, nil
	case "hashtag":
		return Hashtag, nil
	case "cashtag":
		return Cashtag, nil
	}
	return 0, fmt.Errorf("unknown entity type %q", s)
}

// Entity 表示从文本中提取的一个引用
//
// Start/End 为半开区间，默认以 UTF-16 code units 计数。
// Value 不包含前导符号（@ # $），但 Mention/Hashtag/Cashtag 的区间包含符号。
type Entity struct {
	Start       int        `json:"start"`
	End         int        `json:"end"`
	Value       string     `json:"value"`
	Type        EntityType `json:"type"`
	ListSlug    string     `json:"list_slug,omitempty"`
	DisplayURL  string     `json:"display_url,omitempty"`
	ExpandedURL string     `json:"expanded_url,omitempty"`
}

// Len returns End - Start.
func (e Entity) Len() int {
	return e.End - e.Start
}

// IsList reports whether e is an @username/list mention.
func (e Entity) IsList() bool {
	return e.Type == Mention && e.ListSlug != ""
}

// Equal compares type, span and value. Enrichment fields are ignored.
func (e Entity) Equal(o Entity) bool {
	return e.Type == o.Type && e.Start == o.Start && e.End == o.End && e.Value == o.Value
}

// WithURLExpansion 返回附带 display/expanded URL 的副本，原实体不变
func (e Entity) WithURLExpansion(displayURL, expandedURL string) Entity {
	e.DisplayURL = displayURL
	e.ExpandedURL = expandedURL
	return e
}

// HasURLExpansion reports whether both enrichment fields are set.
func (e Entity) HasURLExpansion() bool {
	return e.DisplayURL != "" && e.ExpandedURL != ""
}

// String formats the entity as "value(type) [start, end]".
func (e Entity) String() string {
	return fmt.Sprintf("%s%s(%s) [%d, %d]", e.Value, e.ListSlug, e.Type, e.Start, e.End)
}

// ToDict 将 Entity 转换为 map
func (e Entity) ToDict() map[string]interface{} {
	result := map[string]interface{}{
		"type":  e.Type.String(),
		"start": e.Start,
		"end":   e.End,
		"value": e.Value,
	}
	if e.ListSlug != "" {
		result["list_slug"] = e.ListSlug
	}
	if e.DisplayURL != "" {
		result["display_url"] = e.DisplayURL
	}
	if e.ExpandedURL != "" {
		result["expanded_url"] = e.ExpandedURL
	}
	return result
}
