package util

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

type span struct{ lo, hi rune }

// table builds a RangeTable from possibly unsorted spans.
func table(spans ...span) *unicode.RangeTable {
	tabs := make([]*unicode.RangeTable, 0, len(spans))
	for _, s := range spans {
		t := &unicode.RangeTable{}
		if s.hi <= 0xFFFF {
			t.R16 = []unicode.Range16{{Lo: uint16(s.lo), Hi: uint16(s.hi), Stride: 1}}
		} else {
			t.R32 = []unicode.Range32{{Lo: uint32(s.lo), Hi: uint32(s.hi), Stride: 1}}
		}
		tabs = append(tabs, t)
	}
	return rangetable.Merge(tabs...)
}

func one(r rune) span { return span{r, r} }

// UnicodeSpaces White_Space 码位加上旧式控制区间的空白
var UnicodeSpaces = table(
	span{0x0009, 0x000D},
	one(0x0020),
	one(0x0085),
	one(0x00A0),
	one(0x1680),
	one(0x180E),
	span{0x2000, 0x200A},
	one(0x2028),
	one(0x2029),
	one(0x202F),
	one(0x205F),
	one(0x3000),
)

var latinAccentSpans = []span{
	span{0x00C0, 0x00D6}, span{0x00D8, 0x00F6}, span{0x00F8, 0x00FF}, // Latin-1
	span{0x0100, 0x024F}, // Latin Extended A and B
	one(0x0253), one(0x0254), one(0x0256), one(0x0257), one(0x0259), one(0x025B),
	one(0x0263), one(0x0268), one(0x026F), one(0x0272), one(0x0289), one(0x028B), // IPA
	one(0x02BB),          // Hawaiian
	span{0x0300, 0x036F}, // combining diacritics
	span{0x1E00, 0x1EFF}, // Latin Extended Additional
}

// LatinAccents accented Latin letters and combining marks.
var LatinAccents = table(latinAccentSpans...)

var hashtagAlphaSpans = append([]span{
	span{'a', 'z'}, span{'A', 'Z'},
	// Cyrillic
	span{0x0400, 0x04FF}, span{0x0500, 0x0527}, span{0x2DE0, 0x2DFF}, span{0xA640, 0xA69F},
	// Hebrew
	span{0x0591, 0x05BF}, span{0x05C1, 0x05C2}, span{0x05C4, 0x05C5}, one(0x05C7),
	span{0x05D0, 0x05EA}, span{0x05F0, 0x05F4},
	span{0xFB1D, 0xFB28}, span{0xFB2A, 0xFB36}, span{0xFB38, 0xFB3C}, one(0xFB3E),
	span{0xFB40, 0xFB41}, span{0xFB43, 0xFB44}, span{0xFB46, 0xFB4F},
	// Arabic
	span{0x0610, 0x061A}, span{0x0620, 0x065F}, span{0x066E, 0x06D3}, span{0x06D5, 0x06DC},
	span{0x06DE, 0x06E8}, span{0x06EA, 0x06EF}, span{0x06FA, 0x06FC}, one(0x06FF),
	span{0x0750, 0x077F}, one(0x08A0), span{0x08A2, 0x08AC}, span{0x08E4, 0x08FE},
	span{0xFB50, 0xFBB1}, span{0xFBD3, 0xFD3D}, span{0xFD50, 0xFD8F}, span{0xFD92, 0xFDC7},
	span{0xFDF0, 0xFDFB}, span{0xFE70, 0xFE74}, span{0xFE76, 0xFEFC},
	one(0x200C), // ZWNJ
	// Thai
	span{0x0E01, 0x0E3A}, span{0x0E40, 0x0E4E},
	// Hangul
	span{0x1100, 0x11FF}, span{0x3130, 0x3185}, span{0xA960, 0xA97F}, span{0xAC00, 0xD7AF}, span{0xD7B0, 0xD7FF},
	// Japanese and Chinese
	span{0x3040, 0x309F}, span{0x30A0, 0x30FF}, span{0x4E00, 0x9FFF},
	one(0x3003), one(0x3005), one(0x303B),
	// full-width Latin, half-width Katakana and Hangul
	span{0xFF21, 0xFF3A}, span{0xFF41, 0xFF5A}, span{0xFF66, 0xFF9F}, span{0xFFA1, 0xFFDC},
}, latinAccentSpans...)

// HashtagAlpha 话题标签中的字母类字符，正文至少需要一个
var HashtagAlpha = table(hashtagAlphaSpans...)

// HashtagAlnum HashtagAlpha 加上数字（含全角）和下划线
var HashtagAlnum = table(append([]span{
	span{'0', '9'}, span{0xFF10, 0xFF19}, one('_'),
}, hashtagAlphaSpans...)...)

// IsUnicodeSpace reports whether r is in UnicodeSpaces.
func IsUnicodeSpace(r rune) bool {
	return unicode.Is(UnicodeSpaces, r)
}

// IsLatinAccent reports whether r is in LatinAccents.
func IsLatinAccent(r rune) bool {
	return unicode.Is(LatinAccents, r)
}

// IsHashtagAlpha reports whether r is in HashtagAlpha.
func IsHashtagAlpha(r rune) bool {
	return unicode.Is(HashtagAlpha, r)
}

// IsHashtagAlnum reports whether r is in HashtagAlnum.
func IsHashtagAlnum(r rune) bool {
	return unicode.Is(HashtagAlnum, r)
}

// IsASCIIAlnum reports whether r is [a-zA-Z0-9].
func IsASCIIAlnum(r rune) bool {
	return r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// IsASCIILetter reports whether r is [a-zA-Z].
func IsASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// IsPunctOrSymbol reports whether r is in \p{P} or \p{S}.
func IsPunctOrSymbol(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// IsWhitespace matches \s: Unicode spaces plus category Z.
func IsWhitespace(r rune) bool {
	return IsUnicodeSpace(r) || unicode.IsSpace(r) || unicode.In(r, unicode.Z)
}

// IsURLChar reports whether r may appear in a domain label: ASCII alnum or a Latin accent.
func IsURLChar(r rune) bool {
	return IsASCIIAlnum(r) || IsLatinAccent(r)
}

// IsURLLabelChar is IsURLChar plus the inner separators '-' and '_'.
func IsURLLabelChar(r rune) bool {
	return r == '-' || r == '_' || IsURLChar(r)
}

// IsURLUnicodeChar reports whether r may appear in an internationalized domain
// body: '.' or anything that is not punctuation, symbol, separator or General Punctuation.
func IsURLUnicodeChar(r rune) bool {
	if r == '.' {
		return true
	}
	if r >= 0x2000 && r <= 0x206F {
		return false
	}
	return !IsPunctOrSymbol(r) && !IsWhitespace(r)
}

// IsURLPrecedingChar reports whether r may sit immediately before a URL.
func IsURLPrecedingChar(r rune) bool {
	switch {
	case IsASCIIAlnum(r):
		return false
	case r == '@', r == '＠', r == '$', r == '#', r == '＃':
		return false
	case r >= 0x202A && r <= 0x202E:
		return false
	}
	return true
}

// IsInvalidTweetChar reports whether r is a disallowed control or bidi-override code point.
func IsInvalidTweetChar(r rune) bool {
	return r == 0xFFFE || r == 0xFEFF || r == 0xFFFF || (r >= 0x202A && r <= 0x202E)
}

// ClassString renders t as the inside of a regexp character class, e.g. `\x{61}-\x{7a}`.
func ClassString(t *unicode.RangeTable) string {
	var b []byte
	appendRange := func(lo, hi, stride uint32) {
		if stride != 1 {
			for r := lo; r <= hi; r += stride {
				b = appendHex(b, r)
			}
			return
		}
		b = appendHex(b, lo)
		if hi != lo {
			b = append(b, '-')
			b = appendHex(b, hi)
		}
	}
	for _, r := range t.R16 {
		appendRange(uint32(r.Lo), uint32(r.Hi), uint32(r.Stride))
	}
	for _, r := range t.R32 {
		appendRange(r.Lo, r.Hi, r.Stride)
	}
	return string(b)
}

const hexDigits = "0123456789abcdef"

func appendHex(b []byte, r uint32) []byte {
	b = append(b, '\\', 'x', '{')
	started := false
	for shift := 20; shift >= 0; shift -= 4 {
		d := (r >> uint(shift)) & 0xF
		if d != 0 || started || shift == 0 {
			b = append(b, hexDigits[d])
			started = true
		}
	}
	return append(b, '}')
}
