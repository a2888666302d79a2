package twittertext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/twittertext-go/internal/pattern"
	"github.com/riverfjs/twittertext-go/internal/util"
)

const (
	// MaxTweetLength is the default weighted length budget.
	MaxTweetLength = 140
	// ShortURLLength is the default cost of a non-https URL.
	ShortURLLength = 20
	// ShortURLLengthHTTPS is the default cost of an https URL.
	ShortURLLengthHTTPS = 21
)

var (
	// ErrEmptyTweet 文本为空
	ErrEmptyTweet = errors.New("tweet is empty")
	// ErrInvalidCharacters 文本含有禁止的控制字符或方向覆盖字符
	ErrInvalidCharacters = errors.New("tweet contains invalid characters")
	// ErrTweetTooLong 加权长度超出预算
	ErrTweetTooLong = errors.New("tweet is too long")
)

// Validator checks tweet length and the shape of usernames, lists,
// hashtags and URLs.
type Validator struct {
	opts *ValidatorOptions
}

// NewValidator creates a Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	return &Validator{opts: applyValidatorOptions(opts...)}
}

// MaxLength returns the configured length budget.
func (v *Validator) MaxLength() int {
	return v.opts.MaxTweetLength
}

// countGraphemes 计算扩展字素簇数量
func countGraphemes(s string) int {
	n := 0
	it := graphemes.FromString(s)
	for it.Next() {
		n++
	}
	return n
}

// TweetLength 计算文本的加权长度
//
// 文本先做 NFC 规范化，再按扩展字素簇计数。每个 URL 按固定的短链接长度
// 计费：https:// 开头的使用 ShortURLLengthHTTPS，其余使用 ShortURLLength。
func (v *Validator) TweetLength(text string) int {
	text = norm.NFC.String(text)
	length := countGraphemes(text)
	for _, url := range v.opts.Extractor.ExtractURLsWithIndices(text) {
		length -= countGraphemes(url.Value)
		if len(url.Value) >= 8 && strings.EqualFold(url.Value[:8], "https://") {
			length += v.opts.ShortURLLengthHTTPS
		} else {
			length += v.opts.ShortURLLength
		}
	}
	return length
}

// ValidateTweet returns nil when text is a valid tweet.
func (v *Validator) ValidateTweet(text string) error {
	if text == "" {
		return ErrEmptyTweet
	}
	for i, r := range text {
		if util.IsInvalidTweetChar(r) {
			return fmt.Errorf("%w: U+%04X at byte %d", ErrInvalidCharacters, r, i)
		}
	}
	if n := v.TweetLength(text); n > v.opts.MaxTweetLength {
		return fmt.Errorf("%w: %d > %d", ErrTweetTooLong, n, v.opts.MaxTweetLength)
	}
	return nil
}

// IsValidTweet reports whether text is non-empty, free of invalid
// characters and within the length budget.
func (v *Validator) IsValidTweet(text string) bool {
	return v.ValidateTweet(text) == nil
}

// IsValidUsername reports whether text is exactly "@username".
func (v *Validator) IsValidUsername(text string) bool {
	if isBlank(text) {
		return false
	}
	if !strings.HasPrefix(text, "@") && !strings.HasPrefix(text, "＠") {
		return false
	}
	loc := pattern.Reply.FindStringIndex(text)
	return loc != nil && loc[1] == len(text)
}

// IsValidList reports whether text is exactly "@username/list".
func (v *Validator) IsValidList(text string) bool {
	if isBlank(text) {
		return false
	}
	loc := pattern.MentionOrList.FindStringSubmatchIndex(text)
	if loc == nil || loc[1] != len(text) {
		return false
	}
	before := loc[2*pattern.MentionGroupBefore : 2*pattern.MentionGroupBefore+2]
	return before[0] == before[1] && loc[2*pattern.MentionGroupList] >= 0
}

// IsValidHashtag reports whether text is exactly one hashtag.
func (v *Validator) IsValidHashtag(text string) bool {
	if isBlank(text) {
		return false
	}
	loc := pattern.Hashtag.FindStringIndex(text)
	return loc != nil && loc[0] == 0 && loc[1] == len(text)
}

// IsValidURL reports whether text is exactly one URL.
func (v *Validator) IsValidURL(text string) bool {
	if isBlank(text) {
		return false
	}
	m, ok := newURLScanner(text).next(0)
	return ok && m.start == 0 && m.end == len(text)
}
