package vmath

// Rect is an axis-aligned box with Bottom < Top
type Rect struct {
	Left, Bottom, Right, Top float64
}

// RectAt builds a box whose bottom-left corner sits at p
func RectAt(p Vec2, w, h float64) Rect {
	return Rect{Left: p.X, Bottom: p.Y, Right: p.X + w, Top: p.Y + h}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Left + r.Right) / 2, (r.Bottom + r.Top) / 2}
}

// Overlaps reports strict intersection; touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Bottom < o.Top && o.Bottom < r.Top
}

// OverlapsX reports whether horizontal extents intersect, edges inclusive
func (r Rect) OverlapsX(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right
}

// Translate moves the box by d
func (r Rect) Translate(d Vec2) Rect {
	return Rect{r.Left + d.X, r.Bottom + d.Y, r.Right + d.X, r.Top + d.Y}
}

// Union returns the smallest box containing both; a zero Rect is treated as empty
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	return Rect{
		Left:   min(r.Left, o.Left),
		Bottom: min(r.Bottom, o.Bottom),
		Right:  max(r.Right, o.Right),
		Top:    max(r.Top, o.Top),
	}
}
