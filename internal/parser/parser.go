package parser

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists, linkify)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// New 使用标准配置创建 goldmark 实例，extra 追加在标准扩展之后
func New(extra ...goldmark.Extender) goldmark.Markdown {
	opts := append([]goldmark.Option{}, StandardOptions...)
	if len(extra) > 0 {
		opts = append(opts, goldmark.WithExtensions(extra...))
	}
	return goldmark.New(opts...)
}

// Render 解析并渲染 Markdown 为 HTML
func Render(source []byte, w io.Writer, extra ...goldmark.Extender) error {
	return New(extra...).Convert(source, w)
}

// ParseAST 仅解析为 AST（包括 extra 扩展注册的 AST 变换），不渲染
func ParseAST(markdown string, extra ...goldmark.Extender) (ast.Node, []byte) {
	md := New(extra...)
	source := []byte(markdown)
	reader := text.NewReader(source)
	return md.Parser().Parse(reader), source
}
