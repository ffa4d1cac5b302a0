package content

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/document"
)

// PDFParser extracts plain text per page, each page under a "Page N" heading
type PDFParser struct{}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	doc := &document.Document{Title: stem(filename)}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			diag.Logger().Warn("pdf page unreadable", "file", filename, "page", i, "error", err)
			continue
		}
		paras := paragraphs(text)
		if len(paras) == 0 {
			continue
		}
		doc.Blocks = append(doc.Blocks, document.Heading(2, document.Text(fmt.Sprintf("Page %d", i))))
		for _, para := range paras {
			doc.Blocks = append(doc.Blocks, document.Paragraph(document.Text(strings.TrimSpace(para))))
		}
	}
	return doc, nil
}
