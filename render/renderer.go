package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/wikijump/engine"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/parameter"
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

// Canvas is the drawing surface; tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Renderer draws session snapshots onto a terminal canvas, centered on the camera
// The bottom row is the status bar
type Renderer struct {
	cellW, cellH float64

	// per-frame geometry
	width, height int
	camera        vmath.Vec2
	paper         tcell.Style
}

func NewRenderer(cellW, cellH float64) *Renderer {
	if cellW <= 0 {
		cellW = parameter.CellWidth
	}
	if cellH <= 0 {
		cellH = parameter.CellHeight
	}
	return &Renderer{
		cellW: cellW,
		cellH: cellH,
		paper: tcell.StyleDefault.Background(RgbPaper).Foreground(tcell.ColorBlack),
	}
}

// ViewRadius is the vertical page distance covered by half the screen
func (r *Renderer) ViewRadius(height int) float64 {
	return float64(height) / 2 * r.cellH
}

// Draw renders the entire frame
func (r *Renderer) Draw(c Canvas, snap engine.Snapshot) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	r.width, r.height = w, h-1
	r.camera = snap.Camera

	r.clear(c)
	r.drawLines(c, snap.Lines)
	r.drawWords(c, snap.Words)
	if snap.Title != "" && !snap.Loading {
		r.drawTrail(c, snap)
		r.drawPlayer(c, snap)
	}
	if snap.Loading {
		r.drawOverlay(c, "Loading "+snap.Target+" …")
	}
	r.drawStatusBar(c, snap)
}

// toCell maps a page point to a screen cell; page y grows upward
func (r *Renderer) toCell(p vmath.Vec2) (col, row int) {
	col = r.width/2 + int(math.Floor((p.X-r.camera.X)/r.cellW))
	row = r.height/2 - 1 - int(math.Floor((p.Y-r.camera.Y)/r.cellH))
	return col, row
}

func (r *Renderer) inView(col, row int) bool {
	return col >= 0 && col < r.width && row >= 0 && row < r.height
}

func (r *Renderer) set(c Canvas, col, row int, ch rune, st tcell.Style) {
	if r.inView(col, row) {
		c.SetContent(col, row, ch, nil, st)
	}
}

func (r *Renderer) clear(c Canvas) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c.SetContent(x, y, ' ', nil, r.paper)
		}
	}
}

func (r *Renderer) drawLines(c Canvas, lines []layout.Line) {
	st := r.paper.Foreground(RgbRule)
	for _, ln := range lines {
		glyph := parameter.GlyphRule
		if ln.Thickness >= 2 {
			glyph = parameter.GlyphRuleThick
		}
		left, row := r.toCell(vmath.Vec2{X: ln.Left, Y: ln.Y})
		right, _ := r.toCell(vmath.Vec2{X: ln.Right, Y: ln.Y})
		if row < 0 || row >= r.height {
			continue
		}
		for col := max(left, 0); col < min(right, r.width); col++ {
			c.SetContent(col, row, glyph, nil, st)
		}
	}
}

func (r *Renderer) drawWords(c Canvas, words []layout.Word) {
	for i := range words {
		w := &words[i]
		col, row := r.toCell(vmath.Vec2{X: w.Rect.Left, Y: w.Rect.Center().Y})
		if row < 0 || row >= r.height || col >= r.width {
			continue
		}
		st := r.wordStyle(w)
		for _, ch := range w.Text {
			cw := runewidth.RuneWidth(ch)
			if cw == 0 {
				continue
			}
			if col >= 0 && col+cw <= r.width {
				c.SetContent(col, row, ch, nil, st)
			}
			col += cw
		}
	}
}

func (r *Renderer) wordStyle(w *layout.Word) tcell.Style {
	st := r.paper.Foreground(HexColor(w.Style.Color)).
		Bold(w.Style.Bold).
		Italic(w.Style.Italic)
	if w.IsLink() {
		st = st.Foreground(HexColor(parameter.ColorLink)).Underline(true)
	}
	return st
}

func (r *Renderer) drawTrail(c Canvas, snap engine.Snapshot) {
	st := r.paper.Foreground(RgbTrail)
	half := vmath.Vec2{X: snap.Body.Width() / 2, Y: snap.Body.Height() / 2}
	for _, p := range snap.Trail {
		col, row := r.toCell(p.Add(half))
		r.set(c, col, row, parameter.GlyphTrail, st)
	}
}

// drawPlayer fills the body box and marks the facing side of its top row
func (r *Renderer) drawPlayer(c Canvas, snap engine.Snapshot) {
	b := snap.Body
	color := RgbPlayer
	if snap.Boosted {
		color = RgbBoosted
	}
	st := r.paper.Foreground(color)
	glyph := parameter.GlyphBody
	if !snap.Grounded {
		glyph = parameter.GlyphBodyAir
	}

	left, top := r.toCell(vmath.Vec2{X: b.Left, Y: b.Top - r.cellH/2})
	right, bottom := r.toCell(vmath.Vec2{X: b.Right - r.cellW/2, Y: b.Bottom + r.cellH/2})
	right = max(right, left)
	bottom = max(bottom, top)

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			r.set(c, col, row, glyph, st)
		}
	}

	face, faceCol := parameter.GlyphFaceRight, right
	if snap.Facing == physics.DirLeft {
		face, faceCol = parameter.GlyphFaceLeft, left
	}
	r.set(c, faceCol, top, face, st.Reverse(true))
}

// drawOverlay centers a one-line message box
func (r *Renderer) drawOverlay(c Canvas, msg string) {
	text := " " + msg + " "
	tw := runewidth.StringWidth(text)
	col := max((r.width-tw)/2, 0)
	row := r.height / 2
	st := tcell.StyleDefault.Background(RgbOverlay).Foreground(RgbOverlayF)
	for _, ch := range text {
		r.set(c, col, row, ch, st)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}

// drawStatusBar shows the state badge, title, jumps, hops and the link underfoot
func (r *Renderer) drawStatusBar(c Canvas, snap engine.Snapshot) {
	row := r.height
	bar := tcell.StyleDefault.Background(RgbStatusBg).Foreground(RgbStatusInfo)
	for x := 0; x < r.width; x++ {
		c.SetContent(x, row, ' ', nil, bar)
	}

	badge := " " + strings.ToUpper(snap.StateName) + " "
	col := r.text(c, 0, row, badge, bar.Foreground(RgbStatusText).Background(GetStateColor(snap.State)))

	info := snap.Title
	if info == "" {
		info = snap.Target
	}
	info = " " + info + parameter.StatusSeparator +
		fmt.Sprintf("jumps %d%shops %d", snap.JumpsLeft, parameter.StatusSeparator, snap.Hops)
	col = r.text(c, col, row, info, bar)

	if snap.Link != "" {
		col = r.text(c, col, row, parameter.StatusSeparator, bar)
		r.text(c, col, row, "↓ "+snap.Link, bar.Foreground(RgbStatusLink).Underline(true))
	}
}

// text writes s from col and returns the column after it, clipped to the screen width
func (r *Renderer) text(c Canvas, col, row int, s string, st tcell.Style) int {
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if col+cw > r.width {
			return col
		}
		c.SetContent(col, row, ch, nil, st)
		col += cw
	}
	return col
}
