package layout

import (
	"testing"

	"github.com/lixenwraith/wikijump/vmath"
)

func stackedPage() *Page {
	// Three sections of one word each, 1000 units apart
	p := &Page{Boundaries: []int{0, 1, 2, 3}}
	for i := range 3 {
		y := -1000 * float64(i)
		p.Words = append(p.Words, Word{Text: "w", Rect: vmath.Rect{Left: 0, Bottom: y, Right: 10, Top: y + 40}})
	}
	return p
}

func TestVisible(t *testing.T) {
	p := stackedPage()
	tests := []struct {
		name   string
		center float64
		radius float64
		want   Span
	}{
		{"top only", 0, 100, Span{0, 1}},
		{"middle", -1000, 100, Span{1, 2}},
		{"two sections", -500, 600, Span{0, 2}},
		{"all", -1000, 2000, Span{0, 3}},
		{"none", 5000, 100, Span{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Visible(tt.center, tt.radius)
			if got != tt.want && !(got.Empty() && tt.want.Empty()) {
				t.Errorf("Visible(%v, %v) = %+v, want %+v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	p := stackedPage()
	p.Lines = []Line{{Y: 100, Left: 0, Right: 50, Thickness: 2}}
	b := p.Bounds()
	want := vmath.Rect{Left: 0, Bottom: -2000, Right: 50, Top: 100}
	if b != want {
		t.Errorf("Bounds = %+v, want %+v", b, want)
	}
}
