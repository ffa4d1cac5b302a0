package physics

import (
	"math"

	"github.com/lixenwraith/wikijump/vmath"
)

// Direction is a horizontal heading
type Direction int8

const (
	DirLeft  Direction = -1
	DirNone  Direction = 0
	DirRight Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// MovementState is the mutable motion of a body
// Pos is the bottom-left corner of the body box
type MovementState struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Facing Direction

	GravityScale float64
	JumpScale    float64
	SpeedScale   float64

	Contact   Handle
	JumpsUsed int
	MaxJumps  int

	// Boost counts down the ticks a link jump boost survives after leaving a link
	Boost int

	// Only SetIntent and ClearIntent touch these, keeping at most one set
	movingLeft  bool
	movingRight bool
}

// Body is a box moved by gravity, friction and player intent
type Body struct {
	Size   vmath.Vec2
	Params Params
	State  MovementState
}

// Step reports contact changes made during Update
type Step struct {
	LeftPlatform bool
	LeftLink     bool
}

func NewBody(p Params, w, h float64) *Body {
	return &Body{
		Size:   vmath.Vec2{X: w, Y: h},
		Params: p,
		State: MovementState{
			Facing:       DirRight,
			GravityScale: 1,
			JumpScale:    1,
			SpeedScale:   1,
			MaxJumps:     p.MaxJumps,
		},
	}
}

func (b *Body) Bounds() vmath.Rect {
	return vmath.RectAt(b.State.Pos, b.Size.X, b.Size.Y)
}

func (b *Body) Grounded() bool { return b.State.Contact.Valid() }

// SetIntent starts moving in dir and cancels the opposite direction
func (b *Body) SetIntent(dir Direction) {
	switch dir {
	case DirLeft:
		b.State.movingLeft, b.State.movingRight = true, false
		b.State.Facing = DirLeft
	case DirRight:
		b.State.movingLeft, b.State.movingRight = false, true
		b.State.Facing = DirRight
	}
}

// ClearIntent stops moving in dir; the other direction is untouched
func (b *Body) ClearIntent(dir Direction) {
	switch dir {
	case DirLeft:
		b.State.movingLeft = false
	case DirRight:
		b.State.movingRight = false
	}
}

// Intent returns the direction currently held
func (b *Body) Intent() Direction {
	switch {
	case b.State.movingLeft:
		return DirLeft
	case b.State.movingRight:
		return DirRight
	}
	return DirNone
}

// Place teleports the body and stops it
func (b *Body) Place(pos vmath.Vec2, contact Handle) {
	b.State.Pos = pos
	b.State.Vel = vmath.Vec2{}
	b.State.Contact = contact
	b.State.Boost = 0
	if contact.Valid() {
		b.State.JumpsUsed = 0
	}
}

// Update advances the body one tick against st
func (b *Body) Update(st *Stage) Step {
	s := &b.State
	p := b.Params
	var step Step

	if s.Boost > 0 {
		s.Boost--
	}

	plat, grounded := st.Platform(s.Contact)
	if s.Contact.Valid() && (!grounded || !b.Bounds().OverlapsX(plat.Rect)) {
		step.LeftPlatform = true
		if grounded && plat.IsLink() {
			step.LeftLink = true
			s.Boost = p.BoostTimeout
		}
		s.Contact = NoContact
		s.JumpsUsed = min(s.JumpsUsed+1, s.MaxJumps)
		grounded = false
	}

	ff := p.AirFriction
	var accel vmath.Vec2
	if grounded {
		ff = plat.Friction
	} else {
		accel.Y = p.Gravity * s.GravityScale
	}

	push := p.BaseSpeed * s.SpeedScale * (1 - ff*ff*ff*ff)
	switch {
	case s.movingLeft:
		accel.X = -push
	case s.movingRight:
		accel.X = push
	}

	s.Vel.X = vmath.ClampAbs(s.Vel.X*ff+accel.X, p.MaxVelocity)
	s.Vel.Y = vmath.ClampAbs(s.Vel.Y+accel.Y, p.MaxVelocity)
	s.Pos = s.Pos.Add(s.Vel)

	return step
}

// Jump launches the body if a jump remains; the bound makes extra calls no-ops
func (b *Body) Jump(st *Stage) bool {
	s := &b.State
	p := b.Params
	if s.JumpsUsed >= s.MaxJumps {
		return false
	}

	boost := 1.0
	plat, ok := st.Platform(s.Contact)
	if (ok && plat.IsLink()) || s.Boost > 0 {
		boost = p.LinkBoost
		s.Boost = 0
	}

	vy := p.BaseJumpSpeed * s.JumpScale * boost * math.Pow(p.DoubleJumpPenalty, float64(s.JumpsUsed))
	s.Vel.Y = vmath.ClampAbs(vy, p.MaxVelocity)
	s.Contact = NoContact
	s.JumpsUsed++
	return true
}

// JumpRelease cuts a rising jump short
func (b *Body) JumpRelease() {
	if b.State.Vel.Y > 0 {
		b.State.Vel.Y *= b.Params.JumpCut
	}
}
