package engine

import "github.com/lixenwraith/wikijump/vmath"

// Camera follows a target with a per-axis dead zone
type Camera struct {
	Offset vmath.Vec2
	Slack  float64
}

func NewCamera(slack float64) *Camera {
	return &Camera{Slack: slack}
}

// Follow moves the offset just enough to keep target within Slack on each axis
func (c *Camera) Follow(target vmath.Vec2) {
	c.Offset.X = follow(c.Offset.X, target.X, c.Slack)
	c.Offset.Y = follow(c.Offset.Y, target.Y, c.Slack)
}

// Reset centers the camera on target
func (c *Camera) Reset(target vmath.Vec2) {
	c.Offset = target
}

func follow(offset, pos, slack float64) float64 {
	if pos-offset > slack {
		return pos - slack
	}
	if offset-pos > slack {
		return pos + slack
	}
	return offset
}
