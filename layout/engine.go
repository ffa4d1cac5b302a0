package layout

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/wikijump/document"
	"github.com/lixenwraith/wikijump/vmath"
)

// Engine turns documents into pages of word platforms
// Layout is deterministic for a given config and measurer
type Engine struct {
	cfg     Config
	measure Measurer
	lexicon *Lexicon
}

// NewEngine builds an engine; a nil measurer selects MonoMeasurer
func NewEngine(cfg Config, m Measurer) *Engine {
	if m == nil {
		m = MonoMeasurer{}
	}
	return &Engine{
		cfg:     cfg,
		measure: m,
		lexicon: NewLexicon(cfg.StickyWords, cfg.SlipperyWords),
	}
}

func (e *Engine) Config() Config { return e.cfg }

// Layout places every token of doc, stopping at the first terminal heading
func (e *Engine) Layout(doc *document.Document) *Page {
	b := &builder{
		Engine: e,
		page: &Page{
			Title:      doc.Title,
			Source:     doc.Source,
			Width:      e.cfg.PageWidth,
			Boundaries: []int{0},
		},
		floor: math.Inf(1),
	}

	b.title(doc)

	for i, blk := range doc.Blocks {
		if blk.Kind == document.KindHeading && e.isTerminal(blk) {
			break
		}
		b.block(blk)

		var next *document.Block
		if i+1 < len(doc.Blocks) {
			next = &doc.Blocks[i+1]
		}
		b.gap(blk, next)
	}

	return b.finish()
}

func (e *Engine) isTerminal(blk document.Block) bool {
	text := strings.Join(blk.Words(), " ")
	for _, h := range e.cfg.TerminalHeadings {
		if strings.EqualFold(text, strings.Join(strings.Fields(h), " ")) {
			return true
		}
	}
	return false
}

// builder holds the cursor state of one Layout call
type builder struct {
	*Engine
	page *Page

	x, y       float64
	lineStart  float64
	lineEmpty  bool
	sectionTop float64

	// lineFirst indexes the first word of the current line; no word of the
	// line may rise above ceiling, which sits below everything placed earlier
	lineFirst int
	ceiling   float64
	floor     float64
}

func (b *builder) title(doc *document.Document) {
	b.startLine(0)
	for _, tok := range strings.Fields(doc.Title) {
		b.place(tok, Style{Size: document.Large, Color: b.cfg.TextColor}, "")
	}
	b.rule(b.cfg.TitleRuleThickness)
	b.y -= b.cfg.VSpace

	if strings.TrimSpace(doc.Subtitle) != "" {
		b.startLine(0)
		for _, tok := range strings.Fields(doc.Subtitle) {
			b.place(tok, Style{Size: document.Small, Color: b.cfg.SubtitleColor}, "")
		}
	}
	b.y -= b.cfg.ParSpace
}

func (b *builder) block(blk document.Block) {
	switch blk.Kind {
	case document.KindHeading:
		size := document.Medium
		if blk.Level <= 1 {
			size = document.Large
		}
		b.startLine(0)
		b.runs(blk.Runs, &size)
		b.rule(b.cfg.RuleThickness)

	case document.KindListItem:
		b.startLine(b.cfg.Indent)
		if b.cfg.Bullet != "" {
			b.place(b.cfg.Bullet, Style{Size: document.Small, Color: b.cfg.TextColor}, "")
		}
		b.runs(blk.Runs, nil)

	default:
		b.startLine(0)
		b.runs(blk.Runs, nil)
	}
}

// gap drops the cursor between blocks
func (b *builder) gap(cur document.Block, next *document.Block) {
	switch {
	case cur.Kind == document.KindHeading:
		b.y -= b.cfg.VSpace
	case cur.Kind == document.KindListItem && next != nil && next.Kind == document.KindListItem:
		b.y -= b.cfg.VSpace
	default:
		b.y -= b.cfg.ParSpace
	}
}

// runs places each whitespace-delimited token; size overrides the run size when set
func (b *builder) runs(runs []document.Run, size *document.Size) {
	for _, r := range runs {
		st := Style{Bold: r.Style.Bold, Italic: r.Style.Italic, Size: r.Size, Color: b.cfg.TextColor}
		if size != nil {
			st.Size = *size
		}
		for _, tok := range strings.Fields(r.Text) {
			b.place(tok, st, r.Link)
		}
	}
}

func (b *builder) startLine(x float64) {
	b.lineStart = x
	b.x = x
	b.lineEmpty = true
	b.openLine()
}

func (b *builder) openLine() {
	b.lineFirst = len(b.page.Words)
	b.ceiling = b.floor - b.cfg.LinePadding
}

// lower drops the current line by d
func (b *builder) lower(d float64) {
	b.y -= d
	shift := vmath.Vec2{Y: -d}
	for i := b.lineFirst; i < len(b.page.Words); i++ {
		b.page.Words[i].Rect = b.page.Words[i].Rect.Translate(shift)
	}
}

func (b *builder) rule(thickness float64) {
	b.page.Lines = append(b.page.Lines, Line{
		Y:         b.y - b.cfg.LinePadding,
		Left:      0,
		Right:     b.cfg.PageWidth,
		Thickness: thickness,
	})
}

func (b *builder) place(token string, st Style, link string) {
	if link != "" {
		st.Color = b.cfg.LinkColor
	}

	w, h := b.measure.Measure(token, st)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	x := b.x
	if !b.lineEmpty && !attaches(token) {
		x += b.cfg.HSpace * math.Sqrt(float64(st.Size.Index()+1))
	}
	if !b.lineEmpty && x+w > b.cfg.PageWidth {
		x = b.lineStart
		b.openLine()
		b.y -= h + b.cfg.VSpace
	}
	if b.lineStart+w > b.cfg.PageWidth && x == b.lineStart {
		// Too wide even for an empty indented line
		x = 0
	}

	if top := b.y + h; top > b.ceiling {
		b.lower(top - b.ceiling)
	}
	rect := vmath.Rect{Left: x, Bottom: b.y, Right: x + w, Top: b.y + h}

	n := len(b.page.Words)
	if last := b.page.Boundaries[len(b.page.Boundaries)-1]; b.sectionTop-rect.Bottom > b.cfg.ViewportHeight && n > last {
		b.page.Boundaries = append(b.page.Boundaries, n)
		b.sectionTop = rect.Bottom
	}

	b.page.Words = append(b.page.Words, Word{
		Text:     token,
		Rect:     rect,
		Style:    st,
		Friction: b.friction(token, link),
		Link:     link,
	})
	b.x = rect.Right
	b.lineEmpty = false
	b.floor = min(b.floor, rect.Bottom)
}

func (b *builder) friction(token, link string) float64 {
	if link != "" {
		return b.cfg.Friction.Link
	}
	switch b.lexicon.Classify(token) {
	case SurfaceSticky:
		return b.cfg.Friction.Sticky
	case SurfaceSlippery:
		return b.cfg.Friction.Slippery
	}
	return b.cfg.Friction.Default
}

func (b *builder) finish() *Page {
	p := b.page
	if n := len(p.Words); p.Boundaries[len(p.Boundaries)-1] != n {
		p.Boundaries = append(p.Boundaries, n)
	}
	p.extents = make([]vmath.Rect, p.SectionCount())
	for i := range p.extents {
		p.extents[i] = p.extentOf(p.Section(i))
	}
	return p
}

// attaches reports whether token joins the previous word without a gap,
// true for tokens opening with closing punctuation like "," or ")"
func attaches(token string) bool {
	r, _ := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsPunct(r) && !unicode.In(r, unicode.Ps, unicode.Pi)
}
