package audio

import (
	"fmt"

	"github.com/lixenwraith/wikijump/parameter"
)

// Config controls the effect mixer
type Config struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"volume"`
	SampleRate   int     `toml:"sample_rate"`

	// Volumes scales individual effects by name, missing entries play at 1
	Volumes map[string]float64 `toml:"volumes"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// Validate rejects volumes outside [0, 1] and non-positive rates
func (c Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalidConfig, c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	for name, v := range c.Volumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s volume %v outside [0, 1]", ErrInvalidConfig, name, v)
		}
	}
	return nil
}

// volume is the effective gain of one effect
func (c Config) volume(st SoundType) float64 {
	v, ok := c.Volumes[st.String()]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
