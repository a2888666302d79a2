package highlight

import (
	"reflect"
	"testing"
)

func TestHighlight(t *testing.T) {
	h := New()
	tests := []struct {
		name string
		text string
		hits []Hit
		want string
	}{
		{"plain", "this is a test", []Hit{{0, 4}}, "<em>this</em> is a test"},
		{"two hits", "this is a test", []Hit{{0, 4}, {10, 14}}, "<em>this</em> is a <em>test</em>"},
		{"unsorted hits", "this is a test", []Hit{{10, 14}, {0, 4}}, "<em>this</em> is a <em>test</em>"},
		{"adjacent hits merge", "abcdef", []Hit{{0, 2}, {2, 4}}, "<em>abcd</em>ef"},
		{"overlap merges", "abcdef", []Hit{{1, 4}, {2, 5}}, "a<em>bcde</em>f"},
		{"no hits", "abc", nil, "abc"},
		{"empty hit dropped", "abc", []Hit{{1, 1}}, "abc"},
		{
			"with links",
			`@<a class="tweet-url username" href="https://twitter.com/test">test</a> hello`,
			[]Hit{{1, 5}},
			`@<a class="tweet-url username" href="https://twitter.com/test"><em>test</em></a> hello`,
		},
		{"hit past the end is closed", "abc", []Hit{{1, 10}}, "a<em>bc</em>"},
		{"surrogate pair counts two units", "😀ab", []Hit{{2, 3}}, "😀<em>a</em>b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Highlight(tt.text, tt.hits); got != tt.want {
				t.Errorf("Highlight(%q, %v) = %q, want %q", tt.text, tt.hits, got, tt.want)
			}
		})
	}
}

func TestWithTag(t *testing.T) {
	h := New(WithTag("strong"))
	if h.Tag() != "strong" {
		t.Errorf("Tag() = %q, want strong", h.Tag())
	}
	if got, want := h.Highlight("abc", []Hit{{0, 1}}), "<strong>a</strong>bc"; got != want {
		t.Errorf("Highlight() = %q, want %q", got, want)
	}
	if New(WithTag("")).Tag() != DefaultTag {
		t.Error("WithTag(\"\") should keep the default tag")
	}
}

func TestNormalize(t *testing.T) {
	got := normalize([]Hit{{5, 7}, {-2, 1}, {3, 3}, {0, 2}, {6, 9}})
	want := []Hit{{0, 2}, {5, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalize() = %v, want %v", got, want)
	}
}
