package engine

import (
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

// Trail is a fixed ring of recent positions drawn as an after-image
type Trail struct {
	points []vmath.Vec2
	next   int
	count  int
}

func NewTrail(n int) *Trail {
	return &Trail{points: make([]vmath.Vec2, n)}
}

// Push records p unless it repeats the latest point
func (t *Trail) Push(p vmath.Vec2) {
	if len(t.points) == 0 {
		return
	}
	if t.count > 0 {
		last := t.points[(t.next-1+len(t.points))%len(t.points)]
		if last.Equal(p) {
			return
		}
	}
	t.points[t.next] = p
	t.next = (t.next + 1) % len(t.points)
	if t.count < len(t.points) {
		t.count++
	}
}

// Points returns the trail oldest first
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, t.count)
	start := (t.next - t.count + len(t.points)) % max(len(t.points), 1)
	for i := range t.count {
		out = append(out, t.points[(start+i)%len(t.points)])
	}
	return out
}

func (t *Trail) Reset() {
	t.next, t.count = 0, 0
}

// Player is the controlled body plus decorative attachments
type Player struct {
	Body  *physics.Body
	Trail *Trail
}

func NewPlayer(cfg Config) *Player {
	return &Player{
		Body:  physics.NewBody(cfg.Physics, cfg.BodyWidth, cfg.BodyHeight),
		Trail: NewTrail(cfg.TrailLength),
	}
}
