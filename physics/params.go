package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/wikijump/parameter"
)

// Params tunes body motion; all values are per tick in page units
type Params struct {
	Gravity           float64 `toml:"gravity"`
	BaseSpeed         float64 `toml:"base_speed"`
	BaseJumpSpeed     float64 `toml:"base_jump_speed"`
	MaxVelocity       float64 `toml:"max_velocity"`
	AirFriction       float64 `toml:"air_friction"`
	MaxJumps          int     `toml:"max_jumps"`
	DoubleJumpPenalty float64 `toml:"double_jump_penalty"`
	LinkBoost         float64 `toml:"link_boost"`
	BoostTimeout      int     `toml:"boost_timeout"`
	JumpCut           float64 `toml:"jump_cut"`
}

func DefaultParams() Params {
	return Params{
		Gravity:           parameter.Gravity,
		BaseSpeed:         parameter.BaseSpeed,
		BaseJumpSpeed:     parameter.BaseJumpSpeed,
		MaxVelocity:       parameter.MaxVelocity,
		AirFriction:       parameter.AirFriction,
		MaxJumps:          parameter.MaxJumps,
		DoubleJumpPenalty: parameter.DoubleJumpPenalty,
		LinkBoost:         parameter.LinkBoost,
		BoostTimeout:      parameter.BoostTimeout,
		JumpCut:           parameter.JumpCut,
	}
}

func (p Params) Validate() error {
	var errs []error
	if p.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("gravity must pull downward (negative), got %v", p.Gravity))
	}
	if p.MaxVelocity <= 0 {
		errs = append(errs, fmt.Errorf("max_velocity must be positive, got %v", p.MaxVelocity))
	}
	if p.BaseSpeed <= 0 || p.BaseJumpSpeed <= 0 {
		errs = append(errs, errors.New("base_speed and base_jump_speed must be positive"))
	}
	if p.AirFriction < 0 || p.AirFriction > 1 {
		errs = append(errs, fmt.Errorf("air_friction must be within [0,1], got %v", p.AirFriction))
	}
	if p.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("max_jumps must be at least 1, got %d", p.MaxJumps))
	}
	if p.JumpCut < 0 || p.JumpCut > 1 {
		errs = append(errs, fmt.Errorf("jump_cut must be within [0,1], got %v", p.JumpCut))
	}
	if p.BoostTimeout < 0 {
		errs = append(errs, fmt.Errorf("boost_timeout must not be negative, got %d", p.BoostTimeout))
	}
	return errors.Join(errs...)
}
