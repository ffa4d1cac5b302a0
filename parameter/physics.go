package parameter

// Body motion per tick, page units
const (
	Gravity       = -0.2
	BaseSpeed     = 1.25
	BaseJumpSpeed = 6.2
	MaxVelocity   = 15.0

	// AirFriction damps horizontal velocity while airborne
	AirFriction = 0.99

	// JumpCut scales rising velocity when the jump key is released
	JumpCut = 0.5
)

// Jump accounting
const (
	MaxJumps          = 2
	DoubleJumpPenalty = 0.9

	// LinkBoost multiplies jump speed off a hyperlink platform
	LinkBoost = 1.5

	// BoostTimeout is the number of ticks the link boost survives after leaving the link
	BoostTimeout = 12
)

// Player body size in page units, wider than the gap between words
const (
	BodyWidth  = 48.0
	BodyHeight = 64.0
)
