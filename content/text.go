package content

import (
	"bufio"
	"io"
	"strings"

	"github.com/lixenwraith/wikijump/document"
)

// TextParser handles plain text files, one paragraph per blank-line separated block
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &document.Document{Title: stem(filename)}
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			doc.Blocks = append(doc.Blocks, document.Paragraph(document.Text(current.String())))
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return doc, nil
}

// paragraphs splits text on blank lines
func paragraphs(s string) []string {
	var out []string
	var current []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				out = append(out, strings.Join(current, "\n"))
				current = current[:0]
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		out = append(out, strings.Join(current, "\n"))
	}
	return out
}
