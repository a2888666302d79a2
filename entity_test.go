package twittertext

import (
	"encoding/json"
	"testing"
)

// TestUTF16Len_Empty 测试空字符串
func TestUTF16Len_Empty(t *testing.T) {
	if got := UTF16Len(""); got != 0 {
		t.Errorf("UTF16Len(\"\") = %d, want 0", got)
	}
}

// TestUTF16Len_ASCII 测试 ASCII 字符
func TestUTF16Len_ASCII(t *testing.T) {
	if got := UTF16Len("hello"); got != 5 {
		t.Errorf("UTF16Len(\"hello\") = %d, want 5", got)
	}
}

// TestUTF16Len_CJK 测试中日韩字符（BMP 内，每个 1 个 UTF-16 code unit）
func TestUTF16Len_CJK(t *testing.T) {
	if got := UTF16Len("你好"); got != 2 {
		t.Errorf("UTF16Len(\"你好\") = %d, want 2", got)
	}
}

// TestUTF16Len_Supplementary 测试补充平面字符
func TestUTF16Len_Supplementary(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"📌", 2},
		{"A📌B", 4},
		{"🇺🇸", 4},
		{"\U00010400", 2},
		{"☑️", 2},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.in); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSliceUTF16(t *testing.T) {
	tests := []struct {
		text       string
		start, end int
		want       string
	}{
		{"hello world", 6, 11, "world"},
		{"📌 #tag", 3, 7, "#tag"},
		{"a📌b", 1, 3, "📌"},
		// 落在代理对中间的偏移向下取整
		{"a📌b", 2, 4, "📌b"},
		{"abc", 0, 0, ""},
	}
	for _, tt := range tests {
		if got := SliceUTF16(tt.text, tt.start, tt.end); got != tt.want {
			t.Errorf("SliceUTF16(%q, %d, %d) = %q, want %q", tt.text, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestRemoveOverlapping(t *testing.T) {
	entities := []Entity{
		{Start: 10, End: 15, Value: "c", Type: Hashtag},
		{Start: 0, End: 20, Value: "a", Type: URL},
		{Start: 20, End: 25, Value: "d", Type: Mention},
		{Start: 22, End: 24, Value: "e", Type: Cashtag},
		{Start: 30, End: 32, Value: "f", Type: Hashtag},
	}
	got := RemoveOverlapping(entities)
	want := []string{"a", "d", "f"}
	if len(got) != len(want) {
		t.Fatalf("RemoveOverlapping() returned %d entities, want %d: %v", len(got), len(want), got)
	}
	for i, e := range got {
		if e.Value != want[i] {
			t.Errorf("RemoveOverlapping()[%d] = %v, want value %q", i, e, want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Start < got[i-1].End {
			t.Errorf("entities %v and %v overlap", got[i-1], got[i])
		}
	}
}

// TestRemoveOverlapping_Stable 相同 Start 时保留先出现的
func TestRemoveOverlapping_Stable(t *testing.T) {
	entities := []Entity{
		{Start: 0, End: 5, Value: "url", Type: URL},
		{Start: 0, End: 3, Value: "tag", Type: Hashtag},
	}
	got := RemoveOverlapping(entities)
	if len(got) != 1 || got[0].Type != URL {
		t.Errorf("RemoveOverlapping() = %v, want only the URL", got)
	}
}

func TestRemoveOverlapping_Short(t *testing.T) {
	if got := RemoveOverlapping(nil); got != nil {
		t.Errorf("RemoveOverlapping(nil) = %v, want nil", got)
	}
	one := []Entity{{Start: 1, End: 2}}
	if got := RemoveOverlapping(one); len(got) != 1 {
		t.Errorf("RemoveOverlapping(one) = %v, want 1 entity", got)
	}
}

func TestEntity_ToDict(t *testing.T) {
	e := Entity{Start: 0, End: 5, Value: "jack", Type: Mention}
	d := e.ToDict()
	if d["type"] != "mention" || d["start"] != 0 || d["end"] != 5 || d["value"] != "jack" {
		t.Errorf("ToDict() = %v, want type=mention start=0 end=5 value=jack", d)
	}
	if _, exists := d["list_slug"]; exists {
		t.Error("ToDict() should not include empty list_slug")
	}

	list := Entity{Start: 0, End: 10, Value: "jack", Type: Mention, ListSlug: "/team"}
	if got := list.ToDict()["list_slug"]; got != "/team" {
		t.Errorf("ToDict() list_slug = %v, want /team", got)
	}
}

func TestEntity_WithURLExpansion(t *testing.T) {
	e := Entity{Start: 0, End: 19, Value: "http://t.co/0JG5Mcq", Type: URL}
	if e.HasURLExpansion() {
		t.Fatal("HasURLExpansion() = true before expansion")
	}
	x := e.WithURLExpansion("example.com/…", "http://example.com/long")
	if !x.HasURLExpansion() {
		t.Error("HasURLExpansion() = false after expansion")
	}
	if e.DisplayURL != "" {
		t.Error("WithURLExpansion() modified the receiver")
	}
	if !x.Equal(e) {
		t.Error("Equal() should ignore display/expanded URLs")
	}
}

func TestEntity_String(t *testing.T) {
	e := Entity{Start: 3, End: 17, Value: "twitter", Type: Mention, ListSlug: "/team"}
	if got, want := e.String(), "twitter/team(mention) [3, 17]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEntity_JSON(t *testing.T) {
	e := Entity{Start: 1, End: 5, Value: "tag", Type: Hashtag}
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	want := `{"start":1,"end":5,"value":"tag","type":"hashtag"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back Entity
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if !back.Equal(e) {
		t.Errorf("json.Unmarshal() = %v, want %v", back, e)
	}
}

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		in      string
		want    EntityType
		wantErr bool
	}{
		{"url", URL, false},
		{"Mention", Mention, false},
		{"HASHTAG", Hashtag, false},
		{"cashtag", Cashtag, false},
		{"bold", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseEntityType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseEntityType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseEntityType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
