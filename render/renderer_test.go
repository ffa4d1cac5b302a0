package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wikijump/engine"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/parameter"
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

type fakeCell struct {
	ch rune
	st tcell.Style
}

type fakeCanvas struct {
	t     *testing.T
	w, h  int
	cells map[[2]int]fakeCell
}

func newFakeCanvas(t *testing.T, w, h int) *fakeCanvas {
	return &fakeCanvas{t: t, w: w, h: h, cells: make(map[[2]int]fakeCell)}
}

func (f *fakeCanvas) SetContent(x, y int, ch rune, _ []rune, st tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		f.t.Errorf("write outside canvas at (%d, %d)", x, y)
		return
	}
	f.cells[[2]int{x, y}] = fakeCell{ch, st}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }

func (f *fakeCanvas) at(x, y int) fakeCell { return f.cells[[2]int{x, y}] }

func (f *fakeCanvas) row(y int) string {
	var sb strings.Builder
	for x := 0; x < f.w; x++ {
		if c, ok := f.cells[[2]int{x, y}]; ok && c.ch != 0 {
			sb.WriteRune(c.ch)
		}
	}
	return sb.String()
}

func word(text string, left, centerY float64, link string) layout.Word {
	return layout.Word{
		Text:  text,
		Rect:  vmath.Rect{Left: left, Bottom: centerY - 20, Right: left + 20*float64(len(text)), Top: centerY + 20},
		Style: layout.Style{Color: parameter.ColorText},
		Link:  link,
	}
}

func playingSnapshot() engine.Snapshot {
	return engine.Snapshot{
		State:     engine.StatePlaying,
		StateName: "Playing",
		Title:     "Ice",
		Body:      vmath.RectAt(vmath.Vec2{X: 400, Y: 400}, 48, 64),
		Facing:    physics.DirRight,
		Grounded:  true,
		JumpsLeft: 2,
		Hops:      3,
	}
}

func TestDrawWordAtCamera(t *testing.T) {
	c := newFakeCanvas(t, 40, 21)
	snap := playingSnapshot()
	snap.Words = []layout.Word{word("hi", 0, 0, ""), word("go", 60, 0, "Go")}

	NewRenderer(parameter.CellWidth, parameter.CellHeight).Draw(c, snap)

	if c.at(20, 9).ch != 'h' || c.at(21, 9).ch != 'i' {
		t.Fatalf("row 9 = %q", c.row(9))
	}
	paper := tcell.StyleDefault.Background(RgbPaper)
	if st := c.at(20, 9).st; st != paper.Foreground(HexColor(parameter.ColorText)) {
		t.Errorf("plain word style = %+v", st)
	}

	link := c.at(23, 9)
	if link.ch != 'g' {
		t.Fatalf("link word missing, row = %q", c.row(9))
	}
	fg, _, _ := link.st.Decompose()
	if fg != HexColor(parameter.ColorLink) {
		t.Errorf("link fg = %v", fg)
	}
	if link.st == paper.Foreground(HexColor(parameter.ColorLink)) {
		t.Error("link not underlined")
	}
}

func TestDrawFollowsCamera(t *testing.T) {
	c := newFakeCanvas(t, 40, 21)
	snap := playingSnapshot()
	snap.Camera = vmath.Vec2{X: 200, Y: -400}
	snap.Words = []layout.Word{word("x", 200, -400, "")}

	NewRenderer(0, 0).Draw(c, snap)
	if c.at(20, 9).ch != 'x' {
		t.Errorf("word under camera not centered, row 9 = %q", c.row(9))
	}
}

func TestDrawClipsOffscreen(t *testing.T) {
	c := newFakeCanvas(t, 20, 11)
	snap := playingSnapshot()
	snap.Words = []layout.Word{
		word("farleft", -5000, 0, ""),
		word("farright", 5000, 0, ""),
		word("edge", 150, 0, ""),
		word("above", 0, 9000, ""),
		word("below", 0, -9000, ""),
	}
	snap.Lines = []layout.Line{{Y: 0, Left: -1000, Right: 1000, Thickness: 2}}
	snap.Body = vmath.RectAt(vmath.Vec2{X: 5000, Y: 5000}, 48, 64)
	snap.Trail = []vmath.Vec2{{X: -9000, Y: 0}}

	NewRenderer(0, 0).Draw(c, snap)
	if !strings.Contains(c.row(4), "e") {
		t.Errorf("partially visible word lost, row 4 = %q", c.row(4))
	}
}

func TestDrawWideRunes(t *testing.T) {
	c := newFakeCanvas(t, 40, 21)
	snap := playingSnapshot()
	snap.Words = []layout.Word{word("日本", 0, 0, "")}

	NewRenderer(0, 0).Draw(c, snap)
	if c.at(20, 9).ch != '日' || c.at(22, 9).ch != '本' {
		t.Errorf("wide runes misplaced, row 9 = %q", c.row(9))
	}
}

func TestDrawRules(t *testing.T) {
	c := newFakeCanvas(t, 30, 11)
	snap := playingSnapshot()
	snap.Lines = []layout.Line{
		{Y: 0, Left: 0, Right: 100, Thickness: 2},
		{Y: -80, Left: 0, Right: 100, Thickness: 1},
	}
	NewRenderer(0, 0).Draw(c, snap)

	want := strings.Repeat(" ", 15) + strings.Repeat(string(parameter.GlyphRuleThick), 5) + strings.Repeat(" ", 10)
	if got := c.row(4); got != want {
		t.Errorf("thick rule row = %q", got)
	}
	if c.at(15, 6).ch != parameter.GlyphRule {
		t.Errorf("thin rule row = %q", c.row(6))
	}
}

func TestDrawPlayerFacing(t *testing.T) {
	for _, tt := range []struct {
		dir  physics.Direction
		want rune
	}{
		{physics.DirRight, parameter.GlyphFaceRight},
		{physics.DirLeft, parameter.GlyphFaceLeft},
	} {
		c := newFakeCanvas(t, 40, 21)
		snap := playingSnapshot()
		snap.Camera = vmath.Vec2{X: 424, Y: 432}
		snap.Facing = tt.dir
		snap.Trail = []vmath.Vec2{{X: 300, Y: 400}}

		NewRenderer(0, 0).Draw(c, snap)
		found := false
		body := 0
		for _, cell := range c.cells {
			if cell.ch == tt.want {
				found = true
			}
			if cell.ch == parameter.GlyphBody {
				body++
			}
		}
		if !found || body == 0 {
			t.Errorf("facing %v: glyph found=%v body cells=%d", tt.dir, found, body)
		}
		if !strings.ContainsRune(c.row(9), parameter.GlyphTrail) && !strings.ContainsRune(c.row(8), parameter.GlyphTrail) {
			t.Errorf("trail not drawn near the body row")
		}
	}
}

func TestDrawStatusBar(t *testing.T) {
	c := newFakeCanvas(t, 80, 11)
	snap := playingSnapshot()
	snap.Link = "Water"

	NewRenderer(0, 0).Draw(c, snap)
	status := c.row(10)
	for _, want := range []string{"PLAYING", "Ice", "jumps 2", "hops 3", "Water"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
	_, bg, _ := c.at(0, 10).st.Decompose()
	if bg != RgbStatePlayingBg {
		t.Errorf("badge bg = %v", bg)
	}
}

func TestDrawLoadingOverlay(t *testing.T) {
	c := newFakeCanvas(t, 60, 11)
	snap := engine.Snapshot{
		State:     engine.StateTransitioning,
		StateName: "Transitioning",
		Loading:   true,
		Target:    "Next",
	}
	NewRenderer(0, 0).Draw(c, snap)

	if !strings.Contains(c.row(5), "Loading Next") {
		t.Errorf("overlay row = %q", c.row(5))
	}
	if !strings.Contains(c.row(10), "Next") {
		t.Errorf("status row = %q", c.row(10))
	}
	for _, cell := range c.cells {
		if cell.ch == parameter.GlyphBody || cell.ch == parameter.GlyphBodyAir {
			t.Fatal("player drawn while loading")
		}
	}
}

func TestDrawTinyCanvas(t *testing.T) {
	snap := playingSnapshot()
	snap.Words = []layout.Word{word("hello", 0, 0, "")}
	r := NewRenderer(0, 0)
	r.Draw(newFakeCanvas(t, 0, 0), snap)
	r.Draw(newFakeCanvas(t, 3, 1), snap)
}
