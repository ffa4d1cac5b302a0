package document

import "fmt"

func Text(s string) Run           { return Run{Text: s} }
func Bold(s string) Run           { return Run{Text: s, Style: Style{Bold: true}} }
func Italic(s string) Run         { return Run{Text: s, Style: Style{Italic: true}} }
func Link(s, target string) Run   { return Run{Text: s, Link: target} }
func Paragraph(runs ...Run) Block { return Block{Kind: KindParagraph, Runs: runs} }
func ListItem(runs ...Run) Block  { return Block{Kind: KindListItem, Runs: runs} }
func Heading(level int, runs ...Run) Block {
	if level < 1 {
		level = 1
	}
	return Block{Kind: KindHeading, Level: level, Runs: runs}
}

// FailureTitle titles the stand-in page shown when a target cannot be loaded
const FailureTitle = "Page not found"

// Failure builds a minimal linkless document describing why id could not be loaded
func Failure(id string, err error) *Document {
	msg := fmt.Sprintf("Could not load %q.", id)
	if err != nil {
		msg = fmt.Sprintf("Could not load %q: %v", id, err)
	}
	return &Document{
		Title:  FailureTitle,
		Source: id,
		Blocks: []Block{Paragraph(Text(msg))},
	}
}
