// Package document holds the structured text that layout turns into platforms
package document

import (
	"fmt"
	"strings"
)

// Size is the typographic size class of a run
type Size uint8

const (
	Small Size = iota
	Medium
	Large
)

// Index is the zero-based rank used to scale word spacing
func (s Size) Index() int { return int(s) }

func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	}
	return fmt.Sprintf("size(%d)", s)
}

// Style carries emphasis flags
type Style struct {
	Bold   bool
	Italic bool
}

// Run is a contiguous span of text sharing one style and link
type Run struct {
	Text  string
	Style Style
	Size  Size
	Link  string
}

// Kind tags a block
type Kind uint8

const (
	KindParagraph Kind = iota
	KindHeading
	KindListItem
)

func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Block is one paragraph, heading or list item
type Block struct {
	Kind  Kind
	Level int // heading level, 1 is the largest
	Runs  []Run
}

// Text returns the concatenated text of all runs
func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Words returns the whitespace-delimited tokens of each run in order
// Tokens never span runs, matching how layout places them
func (b Block) Words() []string {
	var out []string
	for _, r := range b.Runs {
		out = append(out, strings.Fields(r.Text)...)
	}
	return out
}

// Empty reports whether the block has no visible text
func (b Block) Empty() bool {
	return len(b.Words()) == 0
}

// Document is an article ready for layout
type Document struct {
	Title    string
	Subtitle string
	Source   string
	Blocks   []Block
}

// Links returns the distinct link targets in reading order
func (d *Document) Links() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, b := range d.Blocks {
		for _, r := range b.Runs {
			if r.Link == "" {
				continue
			}
			if _, ok := seen[r.Link]; ok {
				continue
			}
			seen[r.Link] = struct{}{}
			out = append(out, r.Link)
		}
	}
	return out
}
