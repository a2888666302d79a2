package twittertext

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/twittertext-go/internal/pattern"
	"github.com/riverfjs/twittertext-go/internal/util"
)

// urlMatch is one raw URL candidate. Offsets are bytes.
type urlMatch struct {
	before      int // byte offset of the preceding char, -1 when anchored at text start
	start, end  int
	hasProtocol bool
}

// labelRun is a maximal run of domain label characters ([alnum accents - _]).
type labelRun struct {
	start, end     int
	dotAfter       bool
	firstIsChar    bool
	lastIsChar     bool
	lastUnderscore int
	tldKind        pattern.TLDKind
	tldEnd         int
	// best is the index of the farthest run that can close a subdomain chain
	// starting here, or -1.
	best int
}

// urlScanner finds URLs in one text. Label runs are computed once so each
// candidate position is resolved without rescanning the domain.
type urlScanner struct {
	text string
	runs []labelRun
}

func newURLScanner(text string) *urlScanner {
	s := &urlScanner{text: text}
	s.buildRuns()
	return s
}

func (s *urlScanner) buildRuns() {
	text := s.text
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !util.IsURLLabelChar(r) {
			i += size
			continue
		}
		run := labelRun{start: i, lastUnderscore: -1, firstIsChar: util.IsURLChar(r), best: -1}
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !util.IsURLLabelChar(r) {
				break
			}
			if r == '_' {
				run.lastUnderscore = i
			}
			run.lastIsChar = util.IsURLChar(r)
			i += size
		}
		run.end = i
		if i < len(text) && text[i] == '.' {
			run.dotAfter = true
			kind, n := pattern.MatchTLD(text[i+1:])
			run.tldKind = kind
			run.tldEnd = i + 1 + n
		}
		s.runs = append(s.runs, run)
	}

	for j := len(s.runs) - 1; j >= 0; j-- {
		run := &s.runs[j]
		if s.validSub(j) && s.adjacent(j) && s.runs[j+1].best >= 0 {
			run.best = s.runs[j+1].best
		} else if s.validDomain(j) && run.tldKind != pattern.NoTLD {
			run.best = j
		}
	}
}

func (s *urlScanner) validSub(j int) bool {
	run := s.runs[j]
	return run.dotAfter && run.firstIsChar && run.lastIsChar
}

func (s *urlScanner) validDomain(j int) bool {
	return s.validSub(j) && s.runs[j].lastUnderscore < s.runs[j].start
}

// adjacent reports whether run j+1 starts right after run j's dot.
func (s *urlScanner) adjacent(j int) bool {
	return j+1 < len(s.runs) && s.runs[j].dotAfter && s.runs[j+1].start == s.runs[j].end+1
}

// runAt returns the index of the run containing byte offset d, or -1.
func (s *urlScanner) runAt(d int) int {
	i := sort.Search(len(s.runs), func(i int) bool { return s.runs[i].end > d })
	if i < len(s.runs) && s.runs[i].start <= d {
		return i
	}
	return -1
}

// afterProtocol reports whether text[:d] ends with http:// or https://.
func (s *urlScanner) afterProtocol(d int) bool {
	head := s.text[:d]
	for _, p := range []string{"https://", "http://"} {
		if len(head) >= len(p) && strings.EqualFold(head[len(head)-len(p):], p) {
			return true
		}
	}
	return false
}

// protocolLen returns the length of a leading http:// or https://, or 0.
func protocolLen(s string) int {
	for _, p := range []string{"https://", "http://"} {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			return len(p)
		}
	}
	return 0
}

// domainAt returns the end of the domain starting at d, or -1. The four
// alternatives are tried in order:
//
//  1. subdomains + domain + any TLD (www.twitter.com, foo.co.jp)
//  2. domain + generic or punycode TLD (twitter.com)
//  3. after http(s):// only: domain + country TLD, or an internationalized
//     domain + generic or country TLD
//  4. domain + country TLD followed by '/' (t.co/)
func (s *urlScanner) domainAt(d int) int {
	var l0Sub, l0Dom bool
	var first labelRun
	r := s.runAt(d)
	if r >= 0 {
		first = s.runs[r]
		lead, _ := utf8.DecodeRuneInString(s.text[d:])
		l0Sub = first.dotAfter && util.IsURLChar(lead) && first.lastIsChar
		l0Dom = l0Sub && first.lastUnderscore < d
	}

	if l0Sub && s.adjacent(r) {
		if m := s.runs[r+1].best; m >= 0 {
			return s.runs[m].tldEnd
		}
	}
	if l0Dom && (first.tldKind == pattern.GenericTLD || first.tldKind == pattern.PunycodeTLD) {
		return first.tldEnd
	}
	if s.afterProtocol(d) {
		if l0Dom && first.tldKind == pattern.CountryTLD {
			return first.tldEnd
		}
		if end := s.unicodeDomainAt(d); end >= 0 {
			return end
		}
	}
	if l0Dom && first.tldKind == pattern.CountryTLD && first.tldEnd < len(s.text) && s.text[first.tldEnd] == '/' {
		return first.tldEnd
	}
	return -1
}

// unicodeDomainAt matches an internationalized domain body followed by the
// last '.' + generic or country TLD inside it.
func (s *urlScanner) unicodeDomainAt(d int) int {
	text := s.text
	end := -1
	for i := d; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !util.IsURLUnicodeChar(r) {
			break
		}
		if r == '.' && i > d {
			kind, n := pattern.MatchTLD(text[i+1:])
			if kind == pattern.GenericTLD || kind == pattern.CountryTLD {
				end = i + 1 + n
			}
		}
		i += size
	}
	return end
}

// urlAt matches a URL starting exactly at st.
func (s *urlScanner) urlAt(st int) (urlMatch, bool) {
	if p := protocolLen(s.text[st:]); p > 0 {
		if end := s.domainAt(st + p); end >= 0 {
			return s.finish(st, end, true), true
		}
	}
	if end := s.domainAt(st); end >= 0 {
		return s.finish(st, end, false), true
	}
	return urlMatch{}, false
}

// finish extends a domain with its port, path and query.
func (s *urlScanner) finish(start, domainEnd int, hasProtocol bool) urlMatch {
	end := domainEnd
	if loc := pattern.URLSuffix.FindStringIndex(s.text[domainEnd:]); loc != nil {
		end += loc[1]
	}
	return urlMatch{start: start, end: end, hasProtocol: hasProtocol}
}

// next returns the first URL whose match begins at or after from.
func (s *urlScanner) next(from int) (urlMatch, bool) {
	text := s.text
	for i := from; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if util.IsURLPrecedingChar(r) {
			if m, ok := s.urlAt(i + size); ok {
				m.before = i
				return m, true
			}
		}
		if i == 0 {
			if m, ok := s.urlAt(0); ok {
				m.before = -1
				return m, true
			}
		}
		i += size
	}
	return urlMatch{}, false
}
