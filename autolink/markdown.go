package autolink

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	twittertext "github.com/riverfjs/twittertext-go"
	"github.com/riverfjs/twittertext-go/internal/textindex"
	mdparser "github.com/riverfjs/twittertext-go/internal/parser"
)

// transformerPriority 低于 goldmark 内置变换，在 linkify 之后执行
const transformerPriority = 999

// Extension goldmark 扩展：把 Markdown 文本节点中的实体替换为链接节点。
// 已在链接、图片、代码和原始 HTML 中的文本不处理。
type Extension struct {
	linker *Autolink
}

// NewExtension 创建扩展。linker 为 nil 时使用默认配置。
func NewExtension(linker *Autolink) *Extension {
	if linker == nil {
		linker = New()
	}
	return &Extension{linker: linker}
}

// Extend 实现 goldmark.Extender
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&entityTransformer{linker: e.linker}, transformerPriority),
	))
}

var _ goldmark.Extender = (*Extension)(nil)

// AutoLinkMarkdown 渲染 Markdown 为 HTML，同时链接文本中的实体
func (a *Autolink) AutoLinkMarkdown(source []byte, w io.Writer) error {
	if err := mdparser.Render(source, w, NewExtension(a)); err != nil {
		return fmt.Errorf("autolink: render markdown: %w", err)
	}
	return nil
}

type entityTransformer struct {
	linker *Autolink
}

// Transform 实现 parser.ASTTransformer
func (t *entityTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	for _, run := range collectTextRuns(doc) {
		t.linkRun(run, source)
	}
}

// collectTextRuns 收集相邻且源码连续的文本节点。goldmark 会把 "_" 等
// 未配对的分隔符拆成独立节点，合并后实体才能完整匹配。
func collectTextRuns(doc ast.Node) [][]*ast.Text {
	var runs [][]*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Link, *ast.AutoLink, *ast.Image, *ast.CodeSpan, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		var run []*ast.Text
		flush := func() {
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			tn, ok := c.(*ast.Text)
			if !ok || tn.IsRaw() {
				flush()
				continue
			}
			if len(run) > 0 {
				last := run[len(run)-1]
				if last.SoftLineBreak() || last.HardLineBreak() || last.Segment.Stop != tn.Segment.Start {
					flush()
				}
			}
			run = append(run, tn)
		}
		flush()
		return ast.WalkContinue, nil
	})
	return runs
}

// linkRun 用文本节点与链接节点替换 run
func (t *entityTransformer) linkRun(run []*ast.Text, source []byte) {
	first, last := run[0], run[len(run)-1]
	segStart, segEnd := first.Segment.Start, last.Segment.Stop
	s := string(source[segStart:segEnd])

	entities := t.linker.extractor.ExtractEntitiesWithIndices(s)
	if len(entities) == 0 {
		return
	}

	parent := first.Parent()
	cursor := textindex.New(s)
	pos := 0
	var nodes []ast.Node
	for _, e := range entities {
		start := cursor.SeekUnit(e.Start).Byte
		end := cursor.SeekUnit(e.End).Byte
		if start < pos || (start > 0 && s[start-1] == '\\') {
			continue
		}
		if start > pos {
			nodes = append(nodes, ast.NewTextSegment(text.NewSegment(segStart+pos, segStart+start)))
		}
		nodes = append(nodes, t.linkNode(e, text.NewSegment(segStart+start, segStart+end)))
		pos = end
	}
	if len(nodes) == 0 {
		return
	}

	tail := ast.NewTextSegment(text.NewSegment(segStart+pos, segEnd))
	tail.SetSoftLineBreak(last.SoftLineBreak())
	tail.SetHardLineBreak(last.HardLineBreak())
	if pos < len(s) || tail.SoftLineBreak() || tail.HardLineBreak() {
		nodes = append(nodes, tail)
	}

	for _, n := range nodes {
		parent.InsertBefore(parent, first, n)
	}
	for _, tn := range run {
		parent.RemoveChild(parent, tn)
	}
}

// linkNode 构造链接节点。href 与 title 写入节点字段，其余属性按顺序写入节点属性。
func (t *entityTransformer) linkNode(e twittertext.Entity, seg text.Segment) ast.Node {
	attrs := t.linker.linkAttributes(e)
	t.linker.finishAttributes(e, attrs)

	link := ast.NewLink()
	for _, attr := range attrs.All() {
		switch attr.Key {
		case "href":
			link.Destination = []byte(attr.Value)
		case "title":
			link.Title = []byte(attr.Value)
		default:
			link.SetAttributeString(attr.Key, []byte(attr.Value))
		}
	}
	link.AppendChild(link, ast.NewTextSegment(seg))
	return link
}
