package parameter

import "time"

// Terminals report no key releases; a held key is considered released
// when no repeat arrives within these windows
const (
	// KeyHoldInitial covers the OS delay before auto-repeat starts
	KeyHoldInitial = 600 * time.Millisecond

	// KeyHoldRepeat applies once repeats have been observed
	KeyHoldRepeat = 150 * time.Millisecond
)
