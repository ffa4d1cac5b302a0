package engine

import (
	"github.com/lixenwraith/wikijump/engine/fsm"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

// Snapshot is a read-only view of one frame for renderers
// Words and Lines alias page storage and must not be modified
type Snapshot struct {
	State     fsm.StateID
	StateName string
	Loading   bool
	Target    string

	Title  string
	Source string
	Width  float64
	Words  []layout.Word
	Lines  []layout.Line

	Body      vmath.Rect
	Facing    physics.Direction
	VelSign   [2]int
	Grounded  bool
	Boosted   bool
	Link      string
	JumpsLeft int
	Trail     []vmath.Vec2

	Camera  vmath.Vec2
	Hops    int
	History []string
}

// Snapshot captures the words within viewRadius of the camera, vertically
func (s *Session) Snapshot(viewRadius float64) Snapshot {
	b := s.player.Body
	snap := Snapshot{
		State:     s.machine.Current(),
		StateName: s.machine.Name(),
		Loading:   s.machine.Current() == StateLoading || s.machine.Current() == StateTransitioning,
		Target:    s.target,
		Body:      b.Bounds(),
		Facing:    b.State.Facing,
		VelSign:   [2]int{vmath.Sign(b.State.Vel.X), vmath.Sign(b.State.Vel.Y)},
		Grounded:  b.Grounded(),
		Boosted:   b.State.Boost > 0,
		JumpsLeft: max(b.State.MaxJumps-b.State.JumpsUsed, 0),
		Trail:     s.player.Trail.Points(),
		Camera:    s.camera.Offset,
		Hops:      s.hops,
		History:   s.History(),
	}
	if s.page == nil {
		return snap
	}

	span := s.page.Visible(s.camera.Offset.Y, viewRadius)
	snap.Title = s.page.Title
	snap.Source = s.page.Source
	snap.Width = s.page.Width
	snap.Words = s.page.Words[span.Lo:span.Hi]
	snap.Lines = s.page.Lines
	snap.Link = s.contactLink()
	return snap
}
