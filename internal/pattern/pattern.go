// Package pattern holds the compiled lexical patterns shared by every
// extraction call. All values are built once at init and never mutated.
package pattern

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/twittertext-go/internal/util"
)

var (
	spaces       = util.ClassString(util.UnicodeSpaces)
	latinAccents = util.ClassString(util.LatinAccents)
	hashtagAlpha = util.ClassString(util.HashtagAlpha)
	hashtagAlnum = util.ClassString(util.HashtagAlnum)
)

const atSigns = `@\x{ff20}`

// Hashtag 匹配 #hashtag
//
// 分组：1 前导字符，2 井号，3 标签正文。前导字符不能是另一个井号。
var Hashtag = regexp.MustCompile(
	`(^|[^&#\x{ff03}` + hashtagAlnum + `])` +
		`([#\x{ff03}])` +
		`([` + hashtagAlnum + `]*[` + hashtagAlpha + `][` + hashtagAlnum + `]*)`)

const (
	HashtagGroupBefore = 1
	HashtagGroupHash   = 2
	HashtagGroupTag    = 3
)

// MentionOrList 匹配 @username 和 @username/list
var MentionOrList = regexp.MustCompile(
	`([^a-zA-Z0-9_!#$%&*` + atSigns + `]|^|(?i:rt):?)` +
		`([` + atSigns + `])` +
		`([a-zA-Z0-9_]{1,20})` +
		`(/[a-zA-Z][a-zA-Z0-9_\-]{0,24})?`)

const (
	MentionGroupBefore   = 1
	MentionGroupAt       = 2
	MentionGroupUsername = 3
	MentionGroupList     = 4
)

// Reply 匹配文本开头的 @username（允许前导空白）
var Reply = regexp.MustCompile(`^[` + spaces + `]*[` + atSigns + `]([a-zA-Z0-9_]{1,20})`)

const ReplyGroupUsername = 1

// TCoURL 匹配规范的 t.co 短链接
var TCoURL = regexp.MustCompile(`(?i)^https?://t\.co/[a-z0-9]+`)

var (
	generalPathChars = `[a-z0-9!\*';:=\+,.\$/%#\[\]\-_~\|&` + latinAccents + `]`
	balancedParens   = `\(` + generalPathChars + `+\)`
	pathEndingChars  = `(?:[a-z0-9=_#/\-\+` + latinAccents + `]|` + balancedParens + `)`
	urlPath          = `(?:` + generalPathChars + `*(?:` + balancedParens + generalPathChars + `*)*` + pathEndingChars + `|@` + generalPathChars + `+/)`
)

const (
	queryChars       = `[a-z0-9!?\*'\(\);:&=\+\$/%#\[\]\-_\.,~\|]`
	queryEndingChars = `[a-z0-9_&=#/]`
)

// URLSuffix 匹配域名之后的端口、路径和查询串，锚定在域名结尾
//
// 分组：1 端口，2 路径，3 查询串。
var URLSuffix = regexp.MustCompile(`(?i)^(?::([0-9]+))?(/` + urlPath + `*)?(\?` + queryChars + `*` + queryEndingChars + `)?`)

// HasInvalidHashtagEnd reports whether the text following a hashtag forbids it.
func HasInvalidHashtagEnd(after string) bool {
	return strings.HasPrefix(after, "#") || strings.HasPrefix(after, "＃") || strings.HasPrefix(after, "://")
}

// HasInvalidMentionEnd reports whether the text following a mention forbids it.
func HasInvalidMentionEnd(after string) bool {
	if strings.HasPrefix(after, "://") {
		return true
	}
	r, size := utf8.DecodeRuneInString(after)
	if size == 0 {
		return false
	}
	return r == '@' || r == '＠' || util.IsLatinAccent(r)
}

// IsAtSign reports whether s is "@" or "＠".
func IsAtSign(s string) bool {
	return s == "@" || s == "＠"
}
