package layout

import "github.com/lixenwraith/wikijump/vmath"

// Word is one platform; immutable once placed
type Word struct {
	Text     string
	Rect     vmath.Rect
	Style    Style
	Friction float64
	Link     string
}

func (w *Word) IsLink() bool { return w.Link != "" }

// Line is a horizontal divider drawn under a title or heading
type Line struct {
	Y         float64
	Left      float64
	Right     float64
	Thickness float64
}

// Span is a half-open word index range [Lo, Hi)
type Span struct {
	Lo, Hi int
}

func (s Span) Empty() bool { return s.Hi <= s.Lo }
func (s Span) Union(o Span) Span {
	if s.Empty() {
		return o
	}
	if o.Empty() {
		return s
	}
	return Span{Lo: min(s.Lo, o.Lo), Hi: max(s.Hi, o.Hi)}
}

// Page is the laid-out form of one document
// Boundaries start at 0, end at len(Words) and split the words into
// sections roughly one viewport tall for culling
type Page struct {
	Title      string
	Source     string
	Width      float64
	Words      []Word
	Boundaries []int
	Lines      []Line

	// extents caches the bounding box of each section
	extents []vmath.Rect
}

// SectionCount returns the number of sections
func (p *Page) SectionCount() int {
	if len(p.Boundaries) < 2 {
		return 0
	}
	return len(p.Boundaries) - 1
}

// Section returns the word range of section i
func (p *Page) Section(i int) Span {
	return Span{Lo: p.Boundaries[i], Hi: p.Boundaries[i+1]}
}

// SectionExtent returns the bounding box of section i
func (p *Page) SectionExtent(i int) vmath.Rect {
	if i < len(p.extents) {
		return p.extents[i]
	}
	return p.extentOf(p.Section(i))
}

func (p *Page) extentOf(s Span) vmath.Rect {
	var r vmath.Rect
	for _, w := range p.Words[s.Lo:s.Hi] {
		r = r.Union(w.Rect)
	}
	return r
}

// Bounds returns the box enclosing all words and dividers
func (p *Page) Bounds() vmath.Rect {
	r := p.extentOf(Span{0, len(p.Words)})
	for _, l := range p.Lines {
		r = r.Union(vmath.Rect{Left: l.Left, Bottom: l.Y - l.Thickness, Right: l.Right, Top: l.Y})
	}
	return r
}

// Visible returns the words of every section intersecting the band
// [centerY-radius, centerY+radius]; sections run top to bottom so the result is contiguous
func (p *Page) Visible(centerY, radius float64) Span {
	lo, hi := centerY-radius, centerY+radius
	var out Span
	for i := range p.SectionCount() {
		ext := p.SectionExtent(i)
		if ext.Top < lo || ext.Bottom > hi {
			continue
		}
		out = out.Union(p.Section(i))
	}
	return out
}
