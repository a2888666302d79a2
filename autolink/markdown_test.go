package autolink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yuin/goldmark/ast"

	mdparser "github.com/riverfjs/twittertext-go/internal/parser"
)

func renderMarkdown(t *testing.T, a *Autolink, md string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := a.AutoLinkMarkdown([]byte(md), &buf); err != nil {
		t.Fatalf("AutoLinkMarkdown(%q): %v", md, err)
	}
	return buf.String()
}

func TestAutoLinkMarkdown(t *testing.T) {
	a := New(WithNoFollow(false))
	tests := []struct {
		name string
		md   string
		want []string
	}{
		{
			"mention",
			"hello @jack",
			[]string{`href="https://twitter.com/jack"`, `class="tweet-url username"`, `>@jack</a>`},
		},
		{
			"hashtag",
			"about #golang today",
			[]string{`title="#golang"`, `class="tweet-url hashtag"`, `>#golang</a> today`},
		},
		{
			"list",
			"see @jack/team",
			[]string{`href="https://twitter.com/jack/team"`, `class="tweet-url list-slug"`},
		},
		{
			"inside emphasis",
			"**#bold** text",
			[]string{`<strong><a href=`, `>#bold</a></strong>`},
		},
		{
			"underscores split by the parser",
			"hi @a_b_c",
			[]string{`href="https://twitter.com/a_b_c"`, `>@a_b_c</a>`},
		},
		{
			"url with protocol",
			"go to http://example.com now",
			[]string{`<a href="http://example.com">http://example.com</a>`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderMarkdown(t, a, tt.md)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("AutoLinkMarkdown(%q) = %q, missing %q", tt.md, got, w)
				}
			}
		})
	}
}

func TestAutoLinkMarkdown_Untouched(t *testing.T) {
	a := New()
	tests := []struct {
		name  string
		md    string
		links int
	}{
		{"code span", "run `@jack #tag`", 0},
		{"code block", "```\n@jack #tag\n```", 0},
		{"existing link", "[@jack](http://example.com)", 1},
		{"escaped hash", `\#tag`, 0},
		{"plain", "nothing to see", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderMarkdown(t, a, tt.md)
			if n := strings.Count(got, "<a "); n != tt.links {
				t.Errorf("AutoLinkMarkdown(%q) = %q, %d links, want %d", tt.md, got, n, tt.links)
			}
		})
	}
}

// TestAutoLinkMarkdown_LineBreaks 换行与链接后的文本保持不变
func TestAutoLinkMarkdown_LineBreaks(t *testing.T) {
	got := renderMarkdown(t, New(WithNoFollow(false)), "first @jack\nsecond #tag")
	if !strings.Contains(got, "</a>\nsecond ") {
		t.Errorf("AutoLinkMarkdown() = %q, soft line break lost", got)
	}
	if strings.Count(got, "<a ") != 2 {
		t.Errorf("AutoLinkMarkdown() = %q, want 2 links", got)
	}
}

func TestAutoLinkMarkdown_NoFollow(t *testing.T) {
	got := renderMarkdown(t, New(), "#tag")
	if !strings.Contains(got, `rel="nofollow"`) {
		t.Errorf("AutoLinkMarkdown() = %q, missing rel", got)
	}
}

func TestExtension_AST(t *testing.T) {
	doc, _ := mdparser.ParseAST("a @jack b", NewExtension(nil))
	var links []*ast.Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if l, ok := n.(*ast.Link); ok && entering {
			links = append(links, l)
		}
		return ast.WalkContinue, nil
	})
	if len(links) != 1 {
		t.Fatalf("links = %d, want 1", len(links))
	}
	l := links[0]
	if string(l.Destination) != "https://twitter.com/jack" {
		t.Errorf("Destination = %q", l.Destination)
	}
	if v, ok := l.AttributeString("class"); !ok || string(v.([]byte)) != DefaultUsernameClass {
		t.Errorf("class attribute = %v, %v", v, ok)
	}
	if v, ok := l.AttributeString("rel"); !ok || string(v.([]byte)) != "nofollow" {
		t.Errorf("rel attribute = %v, %v", v, ok)
	}
}
