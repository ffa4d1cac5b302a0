package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/engine"
	"github.com/lixenwraith/wikijump/parameter"
)

// SoundManager mixes one-shot effects onto the speaker
// All methods are safe to call when audio is disabled or not initialized
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
}

func NewSoundManager(cfg Config) *SoundManager {
	rate := beep.SampleRate(cfg.SampleRate)
	return &SoundManager{
		cfg:   cfg,
		rate:  rate,
		mixer: &beep.Mixer{},
		cache: newSoundCache(rate),
	}
}

// Initialize opens the speaker; a disabled config is a silent no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	sm.cache.preload()
	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	diag.Logger().Info("audio initialized", "rate", int(sm.rate), "volume", sm.cfg.MasterVolume)
	return nil
}

// Play queues one effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := sm.streamer(st)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayCues plays the effect of each cue raised by a session tick
func (sm *SoundManager) PlayCues(cues []engine.Cue) {
	for _, c := range cues {
		if st, ok := ForCue(c); ok {
			sm.Play(st)
		}
	}
}

// streamer returns a fresh scaled stream over the cached buffer
func (sm *SoundManager) streamer(st SoundType) beep.Streamer {
	buf := sm.cache.get(st)
	if buf == nil {
		return nil
	}
	return newVolume(buf.Streamer(0, buf.Len()), sm.cfg.volume(st))
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// ForCue maps a session cue to its effect
func ForCue(c engine.Cue) (SoundType, bool) {
	switch c {
	case engine.CueJump:
		return SoundJump, true
	case engine.CueLand:
		return SoundLand, true
	case engine.CueBump:
		return SoundBump, true
	case engine.CueTravel:
		return SoundTravel, true
	case engine.CueFailed, engine.CueRespawn:
		return SoundFail, true
	}
	return 0, false
}
