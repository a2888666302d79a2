package twittertext

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractURLsWithIndices(t *testing.T) {
	x := NewExtractor()
	tests := []struct {
		name string
		text string
		want []span
	}{
		{"protocol", "http://example.com", []span{{0, 18, "http://example.com"}}},
		{"https upper case", "HTTPS://EXAMPLE.COM", []span{{0, 19, "HTTPS://EXAMPLE.COM"}}},
		{"no protocol", "www.twitter.com", []span{{0, 15, "www.twitter.com"}}},
		{"generic tld", "visit example.com today", []span{{6, 17, "example.com"}}},
		{"port path query", "http://example.com:8080/path?q=1", []span{{0, 32, "http://example.com:8080/path?q=1"}}},
		{"trailing period", "see http://example.com/foo.", []span{{4, 26, "http://example.com/foo"}}},
		{"parens around", "(http://example.com)", []span{{1, 19, "http://example.com"}}},
		{"balanced parens in path", "http://en.wikipedia.org/wiki/Go_(game) x", []span{{0, 38, "http://en.wikipedia.org/wiki/Go_(game)"}}},
		{"country tld with protocol", "http://test.co", []span{{0, 14, "http://test.co"}}},
		{"country tld without slash", "test.co", nil},
		{"country tld with slash", "t.co/abc", []span{{0, 8, "t.co/abc"}}},
		{"unknown tld", "foo.bar", nil},
		{"short domain", "it.so", nil},
		{"no tld", "www.xxxxxxx.baz", nil},
		{"email", "mail foo@example.com", nil},
		{"after surrogate pair", "\U00010400 http://twitter.com", []span{{3, 21, "http://twitter.com"}}},
		{"unicode domain", "http://例え.jp", []span{{0, 12, "http://例え.jp"}}},
		{"preceded by dash", "-www.twitter.com", nil},
		{"preceded by dollar", "$example.com", nil},
		{"two", "http://t.co url https://www.twitter.com ", []span{{0, 11, "http://t.co"}, {16, 39, "https://www.twitter.com"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spans(x.ExtractURLsWithIndices(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractURLsWithIndices(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractURLs_List(t *testing.T) {
	x := NewExtractor()
	text := "www.twitter.com, www.yahoo.co.jp, t.co/blahblah, www.poloshirts.uk.com"
	got := x.ExtractURLs(text)
	want := []string{"www.twitter.com", "www.yahoo.co.jp", "t.co/blahblah", "www.poloshirts.uk.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractURLs(%q) = %v, want %v", text, got, want)
	}
}

func TestExtractURLs_WithoutProtocolDisabled(t *testing.T) {
	x := NewExtractor(WithURLWithoutProtocol(false))
	if x.URLWithoutProtocol() {
		t.Fatal("URLWithoutProtocol() = true, want false")
	}
	text := "Url: www.twitter.com http://www.twitter.com"
	got := x.ExtractURLs(text)
	want := []string{"http://www.twitter.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractURLs(%q) = %v, want %v", text, got, want)
	}
	if got := x.ExtractURLs("example.com"); got != nil {
		t.Errorf("ExtractURLs(example.com) = %v, want nil", got)
	}
}

// TestTCoTruncation t.co 链接只保留到 ID
func TestTCoTruncation(t *testing.T) {
	x := NewExtractor()
	tests := []struct {
		text string
		want span
	}{
		{"http://t.co/abcde/extra", span{0, 17, "http://t.co/abcde"}},
		{"https://t.co/AbC123?x=1", span{0, 19, "https://t.co/AbC123"}},
		{"http://t.co/abc", span{0, 15, "http://t.co/abc"}},
	}
	for _, tt := range tests {
		got := spans(x.ExtractURLsWithIndices(tt.text))
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("ExtractURLsWithIndices(%q) = %v, want [%v]", tt.text, got, tt.want)
		}
	}
}

// TestURLScannerLinear 大量候选位置不应退化
func TestURLScannerLinear(t *testing.T) {
	text := strings.Repeat("a.", 5000) + "com"
	got := NewExtractor().ExtractURLs(text)
	if len(got) != 1 || got[0] != text {
		n := len(got)
		t.Errorf("ExtractURLs(long chain) returned %d urls, want the whole chain", n)
	}

	noisy := strings.Repeat("- . ", 5000)
	if got := NewExtractor().ExtractURLs(noisy); got != nil {
		t.Errorf("ExtractURLs(noise) = %v, want nil", got)
	}

	// 长串结尾标点不属于 URL
	bang := "http://example.com/" + strings.Repeat("!", 100000)
	if got := NewExtractor().ExtractURLs(bang); len(got) != 1 || got[0] != "http://example.com/" {
		t.Errorf("ExtractURLs(trailing punctuation) = %d urls, want http://example.com/", len(got))
	}

	path := "http://example.com/" + strings.Repeat("a", 100000)
	if got := NewExtractor().ExtractURLs(path); len(got) != 1 || got[0] != path {
		t.Errorf("ExtractURLs(long path) = %d urls, want the whole path", len(got))
	}

	segments := "see example.com" + strings.Repeat("/aaaa", 20000) + "!"
	if got := NewExtractor().ExtractURLs(segments); len(got) != 1 || got[0] != segments[4:len(segments)-1] {
		t.Errorf("ExtractURLs(long segments) = %d urls, want the path without '!'", len(got))
	}
}

func TestURLScanner_Runs(t *testing.T) {
	s := newURLScanner("www.example.com/x")
	if len(s.runs) != 4 {
		t.Fatalf("runs = %d, want 4", len(s.runs))
	}
	if !s.runs[0].dotAfter || !s.runs[1].dotAfter || s.runs[2].dotAfter {
		t.Errorf("dotAfter flags = %v %v %v", s.runs[0].dotAfter, s.runs[1].dotAfter, s.runs[2].dotAfter)
	}
	if s.runs[0].best != 1 {
		t.Errorf("runs[0].best = %d, want 1", s.runs[0].best)
	}
	if end := s.domainAt(0); end != len("www.example.com") {
		t.Errorf("domainAt(0) = %d, want %d", end, len("www.example.com"))
	}
	if i := s.runAt(5); i != 1 {
		t.Errorf("runAt(5) = %d, want 1", i)
	}
	if i := s.runAt(3); i != -1 {
		t.Errorf("runAt(3) = %d, want -1", i)
	}
}

func TestProtocolLen(t *testing.T) {
	tests := map[string]int{
		"http://x":  7,
		"HTTPS://x": 8,
		"ftp://x":   0,
		"http:/":    0,
	}
	for in, want := range tests {
		if got := protocolLen(in); got != want {
			t.Errorf("protocolLen(%q) = %d, want %d", in, got, want)
		}
	}
}
