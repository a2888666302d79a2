// Package highlight 用 HTML 标签包裹搜索命中区间
//
// 命中偏移按可见文本的 UTF-16 码元计数，"<...>" 内的字符不计数，
// 因此可以对已经 autolink 过的 HTML 再做高亮。
package highlight

import (
	"sort"
	"strings"

	"github.com/riverfjs/twittertext-go/internal/textindex"
)

// DefaultTag 默认高亮标签
const DefaultTag = "em"

// Hit 一个命中区间 [Start, End)
type Hit struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Option 配置选项函数
type Option func(*Highlighter)

// WithTag 设置高亮标签（不含尖括号），如 "strong"
func WithTag(tag string) Option {
	return func(h *Highlighter) {
		if tag != "" {
			h.tag = tag
		}
	}
}

// Highlighter 命中高亮器
type Highlighter struct {
	tag string
}

// New 创建 Highlighter
func New(opts ...Option) *Highlighter {
	h := &Highlighter{tag: DefaultTag}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Tag 返回当前标签
func (h *Highlighter) Tag() string {
	return h.tag
}

// Highlight 在 text 中包裹 hits。开标签紧贴命中的第一个可见字符，
// 闭标签紧跟最后一个可见字符；到文本末尾仍未关闭的标签会被补上。
func (h *Highlighter) Highlight(text string, hits []Hit) string {
	hits = normalize(hits)
	if len(hits) == 0 {
		return text
	}
	openTag, closeTag := "<"+h.tag+">", "</"+h.tag+">"

	var sb strings.Builder
	sb.Grow(len(text) + len(hits)*(len(openTag)+len(closeTag)))

	idx := 0  // 可见文本的 UTF-16 偏移
	next := 0 // 下一个待处理的 hit
	opened := false
	inTag := false
	for _, r := range text {
		if inTag {
			sb.WriteRune(r)
			if r == '>' {
				inTag = false
			}
			continue
		}
		if r == '<' {
			inTag = true
			sb.WriteRune(r)
			continue
		}

		if !opened && next < len(hits) && hits[next].Start <= idx {
			sb.WriteString(openTag)
			opened = true
		}
		sb.WriteRune(r)
		idx += textindex.UnitLen(r)
		if opened && hits[next].End <= idx {
			sb.WriteString(closeTag)
			opened = false
			next++
		}
	}
	if opened {
		sb.WriteString(closeTag)
	}
	return sb.String()
}

// normalize 丢弃空区间，按 Start 排序并合并重叠区间
func normalize(hits []Hit) []Hit {
	out := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if h.Start < 0 {
			h.Start = 0
		}
		if h.End > h.Start {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	merged := out[:0]
	for _, h := range out {
		if n := len(merged); n > 0 && h.Start <= merged[n-1].End {
			if h.End > merged[n-1].End {
				merged[n-1].End = h.End
			}
			continue
		}
		merged = append(merged, h)
	}
	return merged
}
