package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundJump   SoundType = iota // Upward chirp on jump
	SoundLand                    // Thud on a hard landing
	SoundBump                    // Wall or ceiling hit
	SoundTravel                  // Arpeggio on following a link
	SoundFail                    // Missing page or fall-out
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundJump:   "jump",
	SoundLand:   "land",
	SoundBump:   "bump",
	SoundTravel: "travel",
	SoundFail:   "fail",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrInvalidConfig  = errors.New("invalid audio config")
)
