package content

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/lixenwraith/wikijump/document"
)

// DOCXParser handles .docx files; Heading styles become headings and
// list paragraph styles become list items
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}
	parsed, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := &document.Document{Title: stem(filename)}
	for _, item := range parsed.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		blk := docxBlock(para)
		blk.Runs = docxRuns(para)
		if blk.Empty() {
			continue
		}
		if blk.Kind == document.KindHeading && blk.Level == 0 {
			doc.Title = strings.TrimSpace(blk.Text())
			continue
		}
		doc.Blocks = append(doc.Blocks, blk)
	}
	return doc, nil
}

// docxBlock picks the block kind from the paragraph style; the Title style yields level 0
func docxBlock(para *docx.Paragraph) document.Block {
	if para.Properties == nil || para.Properties.Style == nil {
		return document.Paragraph()
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	switch {
	case style == "title":
		return document.Block{Kind: document.KindHeading}
	case strings.HasPrefix(style, "heading"):
		level := 1
		if n := strings.TrimPrefix(style, "heading"); len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
			level = int(n[0] - '0')
		}
		return document.Heading(level)
	case strings.HasPrefix(style, "listparagraph"), strings.HasPrefix(style, "listbullet"), strings.HasPrefix(style, "listnumber"):
		return document.ListItem()
	}
	return document.Paragraph()
}

func docxRuns(para *docx.Paragraph) []document.Run {
	var rb runBuilder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		var st document.Style
		if rp := run.RunProperties; rp != nil {
			st.Bold = rp.Bold != nil
			st.Italic = rp.Italic != nil
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				rb.add(document.Run{Text: t.Text, Style: st})
			}
		}
	}
	return rb.take()
}
