package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	AudioMasterVolume = 0.6
)

// Jump chirp sweeps upward
const (
	JumpSoundDuration = 120 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 60 * time.Millisecond
	JumpStartFreq     = 330.0
	JumpEndFreq       = 660.0
)

// Land thud
const (
	LandSoundDuration = 70 * time.Millisecond
	LandSoundAttack   = 2 * time.Millisecond
	LandSoundRelease  = 50 * time.Millisecond
	LandFreq          = 110.0
)

// Bump is a short low square hit on walls and ceilings
const (
	BumpSoundDuration = 50 * time.Millisecond
	BumpSoundAttack   = 2 * time.Millisecond
	BumpSoundRelease  = 30 * time.Millisecond
	BumpFreq          = 80.0
)

// Travel is a rising three-note arpeggio played on following a link
const (
	TravelNoteDuration = 70 * time.Millisecond
	TravelNoteAttack   = 5 * time.Millisecond
	TravelNoteRelease  = 40 * time.Millisecond
)

var TravelNotes = []float64{523.25, 659.25, 783.99}

// Fail buzz for unresolved pages and respawns
const (
	FailSoundDuration = 220 * time.Millisecond
	FailSoundAttack   = 5 * time.Millisecond
	FailSoundRelease  = 120 * time.Millisecond
	FailFreq          = 98.0
)
