package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/wikijump/parameter"
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

// Config tunes a Session
type Config struct {
	// Start is resolved on load and restart
	Start    string
	StartPos vmath.Vec2

	BodyWidth  float64
	BodyHeight float64
	Physics    physics.Params

	CameraSlack float64

	// CullRadius is the half-height of the collision band around the camera
	CullRadius float64

	// FallLimit is how many viewport heights below the lowest word respawn the body
	FallLimit float64

	// Seed drives landing spot selection after following a link; 0 picks a random seed
	Seed uint64

	TrailLength int
}

func DefaultConfig() Config {
	return Config{
		Start:       parameter.StartPage,
		StartPos:    vmath.Vec2{X: parameter.StartX, Y: parameter.StartY},
		BodyWidth:   parameter.BodyWidth,
		BodyHeight:  parameter.BodyHeight,
		Physics:     physics.DefaultParams(),
		CameraSlack: parameter.CameraSlack,
		CullRadius:  parameter.ViewportHeight,
		FallLimit:   parameter.FallLimit,
		TrailLength: parameter.TrailLength,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Start == "" {
		errs = append(errs, errors.New("start page must not be empty"))
	}
	if c.BodyWidth <= 0 || c.BodyHeight <= 0 {
		errs = append(errs, fmt.Errorf("body size must be positive, got %vx%v", c.BodyWidth, c.BodyHeight))
	}
	if c.CameraSlack < 0 {
		errs = append(errs, fmt.Errorf("camera slack must not be negative, got %v", c.CameraSlack))
	}
	if c.CullRadius <= 0 {
		errs = append(errs, fmt.Errorf("cull radius must be positive, got %v", c.CullRadius))
	}
	if c.FallLimit <= 0 {
		errs = append(errs, fmt.Errorf("fall limit must be positive, got %v", c.FallLimit))
	}
	if c.TrailLength < 0 {
		errs = append(errs, fmt.Errorf("trail length must not be negative, got %d", c.TrailLength))
	}
	if err := c.Physics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("physics: %w", err))
	}
	return errors.Join(errs...)
}
