// Package content fetches and parses pages into documents for layout
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/wikijump/document"
)

// Sentinel errors
var (
	ErrNotFound    = errors.New("page not found")
	ErrUnsupported = errors.New("unsupported document type")
)

// Resolver turns a page identifier into a document
type Resolver interface {
	Resolve(ctx context.Context, id string) (*document.Document, error)
}

// Parser converts raw document bytes into a Document
type Parser interface {
	Parse(r io.Reader, filename string) (*document.Document, error)
}

// SupportedExtensions lists file extensions with a parser
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the parser for a filename
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLConverter{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension has a parser
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// stem is the filename without directory and extension
func stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// runBuilder accumulates runs, merging neighbors that share style and link
type runBuilder struct {
	runs []document.Run
}

func (b *runBuilder) add(r document.Run) {
	if r.Text == "" {
		return
	}
	if n := len(b.runs); n > 0 {
		last := &b.runs[n-1]
		if last.Style == r.Style && last.Size == r.Size && last.Link == r.Link {
			last.Text += r.Text
			return
		}
	}
	b.runs = append(b.runs, r)
}

// take returns the collected runs and resets the builder
func (b *runBuilder) take() []document.Run {
	runs := b.runs
	b.runs = nil
	return runs
}
