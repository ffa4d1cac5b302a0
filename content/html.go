package content

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lixenwraith/wikijump/document"
)

// HTMLConverter turns article HTML into a Document
// MediaWiki markup is recognized: the firstHeading title, the siteSub tagline
// and the mw-content-text body, with edit links and references dropped
type HTMLConverter struct {
	// Subtitle is used when the page carries no siteSub tagline
	Subtitle string
}

// Parse implements Parser, titling the page after filename when it has no title
func (c *HTMLConverter) Parse(r io.Reader, filename string) (*document.Document, error) {
	return c.Convert(r, stem(filename))
}

// Convert parses r; fallbackTitle is used when neither a heading nor <title> names the page
func (c *HTMLConverter) Convert(r io.Reader, fallbackTitle string) (*document.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &document.Document{Title: fallbackTitle, Subtitle: c.Subtitle}
	if h := findByID(root, "firstHeading"); h != nil {
		doc.Title = textContent(h)
	} else if t := findElement(root, atom.Title); t != nil {
		doc.Title = strings.TrimSuffix(textContent(t), " - Wikipedia")
	}
	if s := findByID(root, "siteSub"); s != nil {
		doc.Subtitle = textContent(s)
	}

	body := findByID(root, "mw-content-text")
	if body == nil {
		body = findElement(root, atom.Body)
	}
	if body == nil {
		body = root
	}

	w := &htmlWalker{}
	w.walk(body, document.Run{})
	w.flush()
	doc.Blocks = w.blocks
	return doc, nil
}

// skippedTags never contribute text
var skippedTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Table:    true,
	atom.Sup:      true,
	atom.Nav:      true,
	atom.Footer:   true,
	atom.Header:   true,
	atom.Noscript: true,
	atom.Figure:   true,
	atom.Title:    true,
	atom.Head:     true,
}

// skippedClasses mark MediaWiki chrome inside the content area
var skippedClasses = []string{
	"mw-editsection",
	"reference",
	"navbox",
	"toc",
	"thumb",
	"infobox",
	"mw-references-wrap",
	"hatnote",
}

// containerTags start a fresh block without producing one themselves
var containerTags = map[atom.Atom]bool{
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Main:       true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Dl:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Dd:         true,
	atom.Dt:         true,
}

type htmlWalker struct {
	blocks []document.Block
	cur    *document.Block
	runs   runBuilder
}

func (w *htmlWalker) open(b document.Block) {
	w.flush()
	w.cur = &b
}

func (w *htmlWalker) flush() {
	if w.cur == nil {
		w.runs.take()
		return
	}
	w.cur.Runs = w.runs.take()
	if !w.cur.Empty() {
		w.blocks = append(w.blocks, *w.cur)
	}
	w.cur = nil
}

// walk visits n carrying the inline style inherited from its ancestors
func (w *htmlWalker) walk(n *html.Node, st document.Run) {
	switch n.Type {
	case html.TextNode:
		if w.cur == nil {
			if strings.TrimSpace(n.Data) == "" {
				return
			}
			w.open(document.Paragraph())
		}
		st.Text = n.Data
		w.runs.add(st)
		return
	case html.ElementNode:
	default:
		w.children(n, st)
		return
	}

	if skippedTags[n.DataAtom] || hasClass(n, skippedClasses...) {
		return
	}

	if level := headingLevel(n.DataAtom); level > 0 {
		w.open(document.Heading(level))
		w.children(n, st)
		w.flush()
		return
	}

	switch n.DataAtom {
	case atom.P:
		w.open(document.Paragraph())
		w.children(n, st)
		w.flush()
	case atom.Li:
		w.open(document.ListItem())
		w.children(n, st)
		w.flush()
	case atom.Br:
		st.Text = " "
		w.runs.add(st)
	case atom.B, atom.Strong:
		st.Style.Bold = true
		w.children(n, st)
	case atom.I, atom.Em:
		st.Style.Italic = true
		w.children(n, st)
	case atom.A:
		if target := linkTarget(attr(n, "href")); target != "" {
			st.Link = target
		}
		w.children(n, st)
	default:
		if containerTags[n.DataAtom] {
			w.flush()
			w.children(n, st)
			w.flush()
			return
		}
		w.children(n, st)
	}
}

func (w *htmlWalker) children(n *html.Node, st document.Run) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, st)
	}
}

// linkTarget maps an href to a page identifier
// Article paths become the article name; fragments alone are not links
func linkTarget(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	for _, prefix := range []string{"/wiki/", "./"} {
		name, ok := strings.CutPrefix(href, prefix)
		if !ok {
			continue
		}
		name, _, _ = strings.Cut(name, "#")
		if name == "" || strings.Contains(name, ":") {
			break
		}
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		return strings.ReplaceAll(name, "_", " ")
	}
	return href
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, classes ...string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		for _, want := range classes {
			if c == want {
				return true
			}
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
