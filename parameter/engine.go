package parameter

import "time"

// TickInterval drives one physics step per tick (30 per second)
const TickInterval = 33 * time.Millisecond

// Session defaults
const (
	// StartPage is resolved when the session starts or restarts
	StartPage = "Special:Random"

	StartX = 100.0
	StartY = 200.0

	// FallLimit is the depth below the lowest word, in viewport heights, that respawns the body
	FallLimit = 2.0

	// TrailLength is the number of after-image positions kept behind the player
	TrailLength = 8
)
