package physics

import "github.com/lixenwraith/wikijump/layout"

// Result summarizes the corrections made by Resolve
type Result struct {
	Landed  bool
	Walled  bool
	Bumped  bool
	Contact Handle
}

// Resolve pushes the body out of every overlapping platform in span, in layout order
// Each platform corrects at most one axis: landing, then walls, then ceiling.
// A platform is only resolved from the side the body's leading third came from.
func Resolve(b *Body, st *Stage, span layout.Span) Result {
	var res Result
	lo, hi := max(span.Lo, 0), min(span.Hi, len(st.Words))

	for i := lo; i < hi; i++ {
		p := st.Words[i].Rect
		box := b.Bounds()
		if !box.Overlaps(p) {
			continue
		}

		s := &b.State
		switch {
		case s.Vel.Y < 0 && (2*box.Bottom+box.Top)/3 > p.Top:
			s.Pos.Y = p.Top
			s.Vel.Y = 0
			s.Contact = st.Handle(i)
			s.JumpsUsed = 0
			res.Landed = true
			res.Contact = s.Contact

		case s.Vel.X > 0 && (2*box.Right+box.Left)/3 < p.Left:
			s.Pos.X = p.Left - b.Size.X
			res.Walled = true

		case s.Vel.X < 0 && (2*box.Left+box.Right)/3 > p.Right:
			s.Pos.X = p.Right
			res.Walled = true

		case s.Vel.Y > 0 && (2*box.Top+box.Bottom)/3 < p.Bottom:
			s.Pos.Y = p.Bottom - b.Size.Y
			s.Vel.Y = 0
			res.Bumped = true
		}
	}
	return res
}
