package content

import (
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/lixenwraith/wikijump/document"
)

// MarkdownParser handles Markdown files using goldmark
// A leading level-one heading becomes the title
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	root := goldmark.New().Parser().Parse(text.NewReader(src))
	doc := &document.Document{Title: stem(filename)}
	mw := &markdownWalker{src: src}

	first := root.FirstChild()
	if h, ok := first.(*ast.Heading); ok && h.Level == 1 {
		mw.inlines(h, document.Run{})
		doc.Title = joinRuns(mw.runs.take())
		first = first.NextSibling()
	}
	for n := first; n != nil; n = n.NextSibling() {
		mw.block(n)
	}
	doc.Blocks = mw.blocks
	return doc, nil
}

type markdownWalker struct {
	src    []byte
	blocks []document.Block
	runs   runBuilder
}

func (w *markdownWalker) emit(b document.Block) {
	b.Runs = w.runs.take()
	if !b.Empty() {
		w.blocks = append(w.blocks, b)
	}
}

func (w *markdownWalker) block(n ast.Node) {
	switch node := n.(type) {
	case *ast.Heading:
		w.inlines(node, document.Run{})
		w.emit(document.Heading(node.Level))
	case *ast.Paragraph, *ast.TextBlock:
		w.inlines(node, document.Run{})
		w.emit(document.Paragraph())
	case *ast.List:
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			w.listItem(item)
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		w.runs.add(document.Text(w.lines(node)))
		w.emit(document.Paragraph())
	case *ast.Blockquote:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			w.block(c)
		}
	}
}

// listItem flattens one item: its own text becomes a ListItem, nested lists follow it
func (w *markdownWalker) listItem(item ast.Node) {
	var nested []ast.Node
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case ast.KindParagraph, ast.KindTextBlock:
			if w.runs.runs != nil {
				w.runs.add(document.Text(" "))
			}
			w.inlines(c, document.Run{})
		default:
			nested = append(nested, c)
		}
	}
	w.emit(document.ListItem())
	for _, c := range nested {
		w.block(c)
	}
}

// inlines collects the inline children of n with inherited style st
func (w *markdownWalker) inlines(n ast.Node, st document.Run) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			st.Text = string(node.Segment.Value(w.src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				st.Text += " "
			}
			w.runs.add(st)
		case *ast.String:
			st.Text = string(node.Value)
			w.runs.add(st)
		case *ast.Emphasis:
			inner := st
			if node.Level >= 2 {
				inner.Style.Bold = true
			}
			if node.Level != 2 {
				inner.Style.Italic = true
			}
			w.inlines(node, inner)
		case *ast.Link:
			inner := st
			inner.Link = string(node.Destination)
			w.inlines(node, inner)
		case *ast.AutoLink:
			st.Text = string(node.Label(w.src))
			st.Link = string(node.URL(w.src))
			w.runs.add(st)
		case *ast.Image, *ast.RawHTML:
		default:
			w.inlines(node, st)
		}
	}
}

func (w *markdownWalker) lines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(w.src))
	}
	return sb.String()
}

func joinRuns(runs []document.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return strings.TrimSpace(sb.String())
}
