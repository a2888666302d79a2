// Package autolink 将推文中的 URL、@提及、#话题 和 $股票代码 渲染为 HTML 链接
//
// 输出与 twitter-text 的参考 autolinker 逐字节一致：属性按插入顺序输出，
// rel="nofollow" 默认追加在最后，t.co 链接带 display/expanded URL 时生成
// tco-ellipsis 标记。
package autolink

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/util"

	twittertext "github.com/riverfjs/twittertext-go"
	"github.com/riverfjs/twittertext-go/internal/buffer"
	"github.com/riverfjs/twittertext-go/internal/pattern"
)

// 默认配置
const (
	DefaultListClass         = "tweet-url list-slug"
	DefaultUsernameClass     = "tweet-url username"
	DefaultHashtagClass      = "tweet-url hashtag"
	DefaultCashtagClass      = "tweet-url cashtag"
	DefaultUsernameURLBase   = "https://twitter.com/"
	DefaultListURLBase       = "https://twitter.com/"
	DefaultHashtagURLBase    = "https://twitter.com/#!/search?q=%23"
	DefaultCashtagURLBase    = "https://twitter.com/#!/search?q=%24"
	DefaultInvisibleTagAttrs = "style='position:absolute;left:-9999px;'"
)

// LinkAttributeModifier 在链接输出前修改属性
type LinkAttributeModifier func(e twittertext.Entity, attrs *Attributes)

// LinkTextModifier 在链接输出前修改链接文本（已转义的 HTML）
type LinkTextModifier func(e twittertext.Entity, text string) string

// Options autolink 配置
type Options struct {
	NoFollow              bool
	URLClass              string
	ListClass             string
	UsernameClass         string
	HashtagClass          string
	CashtagClass          string
	UsernameURLBase       string
	ListURLBase           string
	HashtagURLBase        string
	CashtagURLBase        string
	InvisibleTagAttrs     string
	UsernameIncludeSymbol bool
	SymbolTag             string
	TextWithSymbolTag     string
	URLTarget             string
	AttributeModifier     LinkAttributeModifier
	TextModifier          LinkTextModifier
}

// Option 配置选项函数
type Option func(*Options)

// WithNoFollow 设置是否追加 rel="nofollow"（默认 true）
func WithNoFollow(noFollow bool) Option {
	return func(o *Options) { o.NoFollow = noFollow }
}

// WithURLClass 设置 URL 链接的 CSS class（默认无）
func WithURLClass(class string) Option {
	return func(o *Options) { o.URLClass = class }
}

// WithListClass 设置列表链接的 CSS class
func WithListClass(class string) Option {
	return func(o *Options) { o.ListClass = class }
}

// WithUsernameClass 设置用户名链接的 CSS class
func WithUsernameClass(class string) Option {
	return func(o *Options) { o.UsernameClass = class }
}

// WithHashtagClass 设置话题链接的 CSS class
func WithHashtagClass(class string) Option {
	return func(o *Options) { o.HashtagClass = class }
}

// WithCashtagClass 设置股票代码链接的 CSS class
func WithCashtagClass(class string) Option {
	return func(o *Options) { o.CashtagClass = class }
}

// WithUsernameURLBase 设置用户名链接的 href 前缀
func WithUsernameURLBase(base string) Option {
	return func(o *Options) { o.UsernameURLBase = base }
}

// WithListURLBase 设置列表链接的 href 前缀
func WithListURLBase(base string) Option {
	return func(o *Options) { o.ListURLBase = base }
}

// WithHashtagURLBase 设置话题链接的 href 前缀
func WithHashtagURLBase(base string) Option {
	return func(o *Options) { o.HashtagURLBase = base }
}

// WithCashtagURLBase 设置股票代码链接的 href 前缀
func WithCashtagURLBase(base string) Option {
	return func(o *Options) { o.CashtagURLBase = base }
}

// WithInvisibleTagAttrs 设置 t.co 隐藏 span 的属性
func WithInvisibleTagAttrs(attrs string) Option {
	return func(o *Options) { o.InvisibleTagAttrs = attrs }
}

// WithUsernameIncludeSymbol 设置 @ 是否放进链接内（默认 false）
func WithUsernameIncludeSymbol(include bool) Option {
	return func(o *Options) { o.UsernameIncludeSymbol = include }
}

// WithSymbolTag 设置包裹 #/@/$ 符号的标签，如 "s"
func WithSymbolTag(tag string) Option {
	return func(o *Options) { o.SymbolTag = tag }
}

// WithTextWithSymbolTag 设置包裹符号后文本的标签，如 "b"
func WithTextWithSymbolTag(tag string) Option {
	return func(o *Options) { o.TextWithSymbolTag = tag }
}

// WithURLTarget 设置 URL 链接的 target 属性，如 "_blank"
func WithURLTarget(target string) Option {
	return func(o *Options) { o.URLTarget = target }
}

// WithLinkAttributeModifier 设置属性修改器
func WithLinkAttributeModifier(m LinkAttributeModifier) Option {
	return func(o *Options) { o.AttributeModifier = m }
}

// WithLinkTextModifier 设置链接文本修改器
func WithLinkTextModifier(m LinkTextModifier) Option {
	return func(o *Options) { o.TextModifier = m }
}

func defaultOptions() *Options {
	return &Options{
		NoFollow:          true,
		ListClass:         DefaultListClass,
		UsernameClass:     DefaultUsernameClass,
		HashtagClass:      DefaultHashtagClass,
		CashtagClass:      DefaultCashtagClass,
		UsernameURLBase:   DefaultUsernameURLBase,
		ListURLBase:       DefaultListURLBase,
		HashtagURLBase:    DefaultHashtagURLBase,
		CashtagURLBase:    DefaultCashtagURLBase,
		InvisibleTagAttrs: DefaultInvisibleTagAttrs,
	}
}

// Autolink 链接渲染器。创建后只读，可并发使用。
type Autolink struct {
	opts      *Options
	extractor *twittertext.Extractor
}

// New 创建 Autolink。内部抽取器不抽取无协议的 URL。
func New(opts ...Option) *Autolink {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Autolink{
		opts:      o,
		extractor: twittertext.NewExtractor(twittertext.WithURLWithoutProtocol(false)),
	}
}

// Options 返回当前配置的副本
func (a *Autolink) Options() Options {
	return *a.opts
}

// AutoLink 转义尖括号后链接所有实体
func (a *Autolink) AutoLink(text string) string {
	text = EscapeBrackets(text)
	return a.AutoLinkEntities(text, a.extractor.ExtractEntitiesWithIndices(text))
}

// AutoLinkUsernamesAndLists 只链接 @username 与 @username/list
func (a *Autolink) AutoLinkUsernamesAndLists(text string) string {
	return a.AutoLinkEntities(text, a.extractor.ExtractMentionsOrListsWithIndices(text))
}

// AutoLinkHashtags 只链接 #话题
func (a *Autolink) AutoLinkHashtags(text string) string {
	return a.AutoLinkEntities(text, a.extractor.ExtractHashtagsWithIndices(text))
}

// AutoLinkURLs 只链接带协议的 URL
func (a *Autolink) AutoLinkURLs(text string) string {
	return a.AutoLinkEntities(text, a.extractor.ExtractURLsWithIndices(text))
}

// AutoLinkCashtags 只链接 $股票代码
func (a *Autolink) AutoLinkCashtags(text string) string {
	return a.AutoLinkEntities(text, a.extractor.ExtractCashtagsWithIndices(text))
}

// AutoLinkEntities 按给定实体（UTF-16 偏移，按 Start 升序）链接 text。
// 实体之间的文本原样输出；与已输出部分重叠的实体被跳过。
func (a *Autolink) AutoLinkEntities(text string, entities []twittertext.Entity) string {
	tb := buffer.New(text)
	var sb strings.Builder
	for _, e := range entities {
		if e.Start < tb.UTF16Offset() || e.End < e.Start {
			continue
		}
		tb.CopyTo(e.Start)
		raw := tb.Skip(e.End)

		sb.Reset()
		switch e.Type {
		case twittertext.URL:
			a.linkToURL(e, &sb)
		case twittertext.Hashtag:
			a.linkToHashtag(e, raw, &sb)
		case twittertext.Mention:
			a.linkToMentionAndList(e, raw, &sb)
		case twittertext.Cashtag:
			a.linkToCashtag(e, &sb)
		default:
			sb.WriteString(raw)
		}
		tb.Write(sb.String())
	}
	tb.CopyRest()
	return tb.String()
}

// EscapeBrackets 转义 < 和 >
func EscapeBrackets(text string) string {
	if !strings.ContainsAny(text, "<>") {
		return text
	}
	return bracketReplacer.Replace(text)
}

var bracketReplacer = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// escapeHTML 转义 & < > " '
func escapeHTML(s string) string {
	escaped := string(util.EscapeHTML([]byte(s)))
	return strings.ReplaceAll(escaped, "'", "&#39;")
}

// symbolOf 返回实体原文的首字符（可能是全角 # 或 @）
func symbolOf(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	_, size := utf8.DecodeRuneInString(raw)
	return raw[:size]
}

// linkAttributes 返回实体的基础属性，不含 rel 与修改器的改动
func (a *Autolink) linkAttributes(e twittertext.Entity) *Attributes {
	attrs := &Attributes{}
	switch e.Type {
	case twittertext.URL:
		attrs.Set("href", e.Value)
		if e.HasURLExpansion() {
			attrs.Set("title", e.ExpandedURL)
		}
		if a.opts.URLClass != "" {
			attrs.Set("class", a.opts.URLClass)
		}
		if a.opts.URLTarget != "" {
			attrs.Set("target", a.opts.URLTarget)
		}
	case twittertext.Hashtag:
		attrs.Set("href", a.opts.HashtagURLBase+e.Value)
		attrs.Set("title", "#"+e.Value)
		attrs.Set("class", a.opts.HashtagClass)
	case twittertext.Cashtag:
		attrs.Set("href", a.opts.CashtagURLBase+e.Value)
		attrs.Set("title", "$"+e.Value)
		attrs.Set("class", a.opts.CashtagClass)
	case twittertext.Mention:
		if e.IsList() {
			attrs.Set("class", a.opts.ListClass)
			attrs.Set("href", a.opts.ListURLBase+e.Value+e.ListSlug)
		} else {
			attrs.Set("class", a.opts.UsernameClass)
			attrs.Set("href", a.opts.UsernameURLBase+e.Value)
		}
	}
	return attrs
}

// finishAttributes 追加 rel 并调用属性修改器
func (a *Autolink) finishAttributes(e twittertext.Entity, attrs *Attributes) {
	if a.opts.NoFollow {
		attrs.Set("rel", "nofollow")
	}
	if a.opts.AttributeModifier != nil {
		a.opts.AttributeModifier(e, attrs)
	}
}

func (a *Autolink) linkToText(e twittertext.Entity, text string, attrs *Attributes, sb *strings.Builder) {
	a.finishAttributes(e, attrs)
	if a.opts.TextModifier != nil {
		text = a.opts.TextModifier(e, text)
	}
	sb.WriteString("<a")
	for _, attr := range attrs.All() {
		sb.WriteString(" ")
		sb.WriteString(escapeHTML(attr.Key))
		sb.WriteString(`="`)
		sb.WriteString(escapeHTML(attr.Value))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	sb.WriteString(text)
	sb.WriteString("</a>")
}

func wrapTag(tag, s string) string {
	if tag == "" {
		return s
	}
	return "<" + tag + ">" + s + "</" + tag + ">"
}

func (a *Autolink) linkToTextWithSymbol(e twittertext.Entity, symbol, text string, sb *strings.Builder) {
	taggedSymbol := wrapTag(a.opts.SymbolTag, symbol)
	taggedText := wrapTag(a.opts.TextWithSymbolTag, escapeHTML(text))
	attrs := a.linkAttributes(e)

	if a.opts.UsernameIncludeSymbol || !pattern.IsAtSign(symbol) {
		a.linkToText(e, taggedSymbol+taggedText, attrs, sb)
		return
	}
	sb.WriteString(taggedSymbol)
	a.linkToText(e, taggedText, attrs, sb)
}

func (a *Autolink) linkToHashtag(e twittertext.Entity, raw string, sb *strings.Builder) {
	a.linkToTextWithSymbol(e, symbolOf(raw, "#"), e.Value, sb)
}

func (a *Autolink) linkToCashtag(e twittertext.Entity, sb *strings.Builder) {
	a.linkToTextWithSymbol(e, "$", e.Value, sb)
}

func (a *Autolink) linkToMentionAndList(e twittertext.Entity, raw string, sb *strings.Builder) {
	a.linkToTextWithSymbol(e, symbolOf(raw, "@"), e.Value+e.ListSlug, sb)
}

func (a *Autolink) linkToURL(e twittertext.Entity, sb *strings.Builder) {
	linkText := escapeHTML(e.Value)
	if e.HasURLExpansion() {
		linkText = a.tcoLinkText(e)
	}
	a.linkToText(e, linkText, a.linkAttributes(e), sb)
}

// tcoLinkText 生成 t.co 链接文本：复制时得到 expanded URL，显示时只看到
// display URL 与省略号。display URL 不在 expanded URL 中时直接显示它。
func (a *Autolink) tcoLinkText(e twittertext.Entity) string {
	display := strings.ReplaceAll(e.DisplayURL, "…", "")
	idx := strings.Index(e.ExpandedURL, display)
	if idx < 0 {
		return escapeHTML(e.DisplayURL)
	}
	before := e.ExpandedURL[:idx]
	after := e.ExpandedURL[idx+len(display):]
	var preceding, following string
	if strings.HasPrefix(e.DisplayURL, "…") {
		preceding = "…"
	}
	if strings.HasSuffix(e.DisplayURL, "…") {
		following = "…"
	}
	invisible := "<span " + a.opts.InvisibleTagAttrs + ">"

	var sb strings.Builder
	sb.WriteString("<span class='tco-ellipsis'>")
	sb.WriteString(preceding)
	sb.WriteString(invisible + "&nbsp;</span></span>")
	sb.WriteString(invisible + escapeHTML(before) + "</span>")
	sb.WriteString("<span class='js-display-url'>" + escapeHTML(display) + "</span>")
	sb.WriteString(invisible + escapeHTML(after) + "</span>")
	sb.WriteString("<span class='tco-ellipsis'>" + invisible + "&nbsp;</span>")
	sb.WriteString(following)
	sb.WriteString("</span>")
	return sb.String()
}
