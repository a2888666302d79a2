package twittertext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/twittertext-go/internal/pattern"
	"github.com/riverfjs/twittertext-go/internal/textindex"
	"github.com/riverfjs/twittertext-go/internal/util"
)

// Extractor extracts URLs, mentions, lists, hashtags and cashtags from text.
//
// All methods are pure functions of their input and safe for concurrent use.
// Returned offsets are UTF-16 code units; use ToCodePoints to convert.
type Extractor struct {
	opts *ExtractOptions
}

// NewExtractor creates an Extractor. By default URLs without protocol are extracted.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{opts: applyOptions(opts...)}
}

// URLWithoutProtocol reports whether protocol-less URLs are extracted.
func (x *Extractor) URLWithoutProtocol() bool {
	return x.opts.URLWithoutProtocol
}

func (x *Extractor) debugf(format string, args ...interface{}) {
	if x.opts.Debug {
		Logger.Printf(format, args...)
	}
}

func isBlank(text string) bool {
	return strings.TrimFunc(text, unicode.IsSpace) == ""
}

// ExtractEntitiesWithIndices extracts URLs, hashtags, mentions/lists and
// cashtags, sorted by Start with overlaps removed.
func (x *Extractor) ExtractEntitiesWithIndices(text string) []Entity {
	if isBlank(text) {
		return nil
	}
	var entities []Entity
	entities = append(entities, x.ExtractURLsWithIndices(text)...)
	entities = append(entities, x.extractHashtags(text, false)...)
	entities = append(entities, x.ExtractMentionsOrListsWithIndices(text)...)
	entities = append(entities, x.ExtractCashtagsWithIndices(text)...)
	return RemoveOverlapping(entities)
}

// ExtractURLsWithIndices extracts URL entities.
//
// t.co links are cut back to https?://t.co/<id>.
func (x *Extractor) ExtractURLsWithIndices(text string) []Entity {
	sep := ":"
	if x.opts.URLWithoutProtocol {
		sep = "."
	}
	if isBlank(text) || !strings.Contains(text, sep) {
		return nil
	}

	scanner := newURLScanner(text)
	cursor := textindex.New(text)
	var urls []Entity
	for from := 0; ; {
		m, ok := scanner.next(from)
		if !ok {
			break
		}
		from = m.end
		if !m.hasProtocol {
			if !x.opts.URLWithoutProtocol {
				continue
			}
			if m.before >= 0 && strings.IndexByte("-_./", text[m.before]) >= 0 {
				x.debugf("skip url %q: preceded by %q", text[m.start:m.end], text[m.before])
				continue
			}
		}
		url := text[m.start:m.end]
		if loc := pattern.TCoURL.FindStringIndex(url); loc != nil {
			url = url[:loc[1]]
		}
		start := cursor.SeekByte(m.start).Unit
		end := cursor.SeekByte(m.start + len(url)).Unit
		urls = append(urls, Entity{Start: start, End: end, Value: url, Type: URL})
	}
	return urls
}

// ExtractHashtagsWithIndices extracts hashtags, dropping any that fall
// inside a URL (e.g. example.com/#section).
func (x *Extractor) ExtractHashtagsWithIndices(text string) []Entity {
	return x.extractHashtags(text, true)
}

// ExtractHashtagsWithIndicesChecked extracts hashtags; checkURLOverlap
// controls whether hashtags inside URLs are dropped.
func (x *Extractor) ExtractHashtagsWithIndicesChecked(text string, checkURLOverlap bool) []Entity {
	return x.extractHashtags(text, checkURLOverlap)
}

func (x *Extractor) extractHashtags(text string, checkURLOverlap bool) []Entity {
	if isBlank(text) || !strings.ContainsAny(text, "#＃") {
		return nil
	}

	cursor := textindex.New(text)
	var tags []Entity
	for _, loc := range pattern.Hashtag.FindAllStringSubmatchIndex(text, -1) {
		end := loc[1]
		if pattern.HasInvalidHashtagEnd(text[end:]) {
			x.debugf("skip hashtag %q: invalid end", text[loc[0]:end])
			continue
		}
		hashStart := loc[2*pattern.HashtagGroupHash]
		tagStart, tagEnd := loc[2*pattern.HashtagGroupTag], loc[2*pattern.HashtagGroupTag+1]
		tags = append(tags, Entity{
			Start: cursor.SeekByte(hashStart).Unit,
			End:   cursor.SeekByte(tagEnd).Unit,
			Value: text[tagStart:tagEnd],
			Type:  Hashtag,
		})
	}

	if checkURLOverlap && len(tags) > 0 {
		urls := x.ExtractURLsWithIndices(text)
		if len(urls) > 0 {
			merged := append(append([]Entity{}, tags...), urls...)
			tags = filterType(RemoveOverlapping(merged), Hashtag)
		}
	}
	return tags
}

// ExtractMentionsOrListsWithIndices extracts @username and @username/list
// references. A list mention spans from the at sign to the end of the slug.
func (x *Extractor) ExtractMentionsOrListsWithIndices(text string) []Entity {
	if isBlank(text) || !strings.ContainsAny(text, "@＠") {
		return nil
	}

	cursor := textindex.New(text)
	var mentions []Entity
	for _, loc := range pattern.MentionOrList.FindAllStringSubmatchIndex(text, -1) {
		end := loc[1]
		if pattern.HasInvalidMentionEnd(text[end:]) {
			x.debugf("skip mention %q: invalid end", text[loc[0]:end])
			continue
		}
		atStart := loc[2*pattern.MentionGroupAt]
		userStart, userEnd := loc[2*pattern.MentionGroupUsername], loc[2*pattern.MentionGroupUsername+1]
		e := Entity{
			Start: cursor.SeekByte(atStart).Unit,
			Value: text[userStart:userEnd],
			Type:  Mention,
		}
		if listStart := loc[2*pattern.MentionGroupList]; listStart >= 0 {
			listEnd := loc[2*pattern.MentionGroupList+1]
			e.ListSlug = text[listStart:listEnd]
			e.End = cursor.SeekByte(listEnd).Unit
		} else {
			e.End = cursor.SeekByte(userEnd).Unit
		}
		mentions = append(mentions, e)
	}
	return mentions
}

// ExtractMentionedScreennamesWithIndices extracts @username references,
// skipping @username/list.
func (x *Extractor) ExtractMentionedScreennamesWithIndices(text string) []Entity {
	var out []Entity
	for _, e := range x.ExtractMentionsOrListsWithIndices(text) {
		if e.ListSlug == "" {
			out = append(out, e)
		}
	}
	return out
}

// ExtractReplyScreenname returns the username a text replies to: an
// @username at the very start, after optional whitespace.
func (x *Extractor) ExtractReplyScreenname(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	loc := pattern.Reply.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", false
	}
	if pattern.HasInvalidMentionEnd(text[loc[1]:]) {
		return "", false
	}
	return text[loc[2*pattern.ReplyGroupUsername]:loc[2*pattern.ReplyGroupUsername+1]], true
}

// ExtractCashtagsWithIndices extracts $cashtag references.
func (x *Extractor) ExtractCashtagsWithIndices(text string) []Entity {
	if isBlank(text) || strings.IndexByte(text, '$') < 0 {
		return nil
	}

	cursor := textindex.New(text)
	var tags []Entity
	lastEnd := 0
	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], '$')
		if j < 0 {
			break
		}
		p := i + j
		if end, ok := matchCashtagAt(text, p, lastEnd); ok {
			tags = append(tags, Entity{
				Start: cursor.SeekByte(p).Unit,
				End:   cursor.SeekByte(end).Unit,
				Value: text[p+1 : end],
				Type:  Cashtag,
			})
			lastEnd = end
			i = end
			continue
		}
		i = p + 1
	}
	return tags
}

// matchCashtagAt matches "$" + 1-6 letters + optional [._] + 1-2 letters at p.
// The dollar sign must open the text or follow a space that no earlier match
// consumed, and the tag must be followed by end, space, punctuation or symbol.
func matchCashtagAt(text string, p, lastEnd int) (int, bool) {
	if p > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:p])
		if p-size < lastEnd || !util.IsUnicodeSpace(r) {
			return 0, false
		}
	}
	letters := countLetters(text[p+1:], 6)
	for n1 := letters; n1 >= 1; n1-- {
		q := p + 1 + n1
		if q < len(text) && (text[q] == '.' || text[q] == '_') {
			for n2 := countLetters(text[q+1:], 2); n2 >= 1; n2-- {
				if cashtagBoundary(text, q+1+n2) {
					return q + 1 + n2, true
				}
			}
		}
		if cashtagBoundary(text, q) {
			return q, true
		}
	}
	return 0, false
}

func countLetters(s string, limit int) int {
	n := 0
	for n < len(s) && n < limit && util.IsASCIILetter(rune(s[n])) {
		n++
	}
	return n
}

func cashtagBoundary(text string, e int) bool {
	if e >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[e:])
	return util.IsWhitespace(r) || util.IsPunctOrSymbol(r)
}

// ExtractURLs returns the URL values.
func (x *Extractor) ExtractURLs(text string) []string {
	return values(x.ExtractURLsWithIndices(text))
}

// ExtractHashtags returns hashtag values without the leading #.
func (x *Extractor) ExtractHashtags(text string) []string {
	return values(x.ExtractHashtagsWithIndices(text))
}

// ExtractMentionedScreennames returns usernames without the leading @.
func (x *Extractor) ExtractMentionedScreennames(text string) []string {
	return values(x.ExtractMentionedScreennamesWithIndices(text))
}

// ExtractCashtags returns cashtag values without the leading $.
func (x *Extractor) ExtractCashtags(text string) []string {
	return values(x.ExtractCashtagsWithIndices(text))
}
