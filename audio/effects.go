package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/wikijump/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateJumpSound is a sine chirp sweeping upward
func CreateJumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.JumpStartFreq, parameter.JumpEndFreq, parameter.JumpSoundDuration, WaveSine, rate)
	return NewEnvelope(osc, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate)
}

// CreateLandSound is a low thud with a touch of noise
func CreateLandSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.LandSoundDuration
	tone := NewEnvelope(NewOscillator(parameter.LandFreq, d, WaveSine, rate), d, parameter.LandSoundAttack, parameter.LandSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.LandSoundAttack, parameter.LandSoundRelease/2, rate)
	return beep.Mix(newVolume(tone, 0.8), newVolume(noise, 0.2))
}

// CreateBumpSound is a short square knock
func CreateBumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.BumpFreq, parameter.BumpSoundDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.BumpSoundDuration, parameter.BumpSoundAttack, parameter.BumpSoundRelease, rate)
}

// CreateTravelSound plays the travel notes in sequence
func CreateTravelSound(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(parameter.TravelNotes))
	for _, f := range parameter.TravelNotes {
		osc := NewOscillator(f, parameter.TravelNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, parameter.TravelNoteDuration, parameter.TravelNoteAttack, parameter.TravelNoteRelease, rate))
	}
	return beep.Seq(notes...)
}

// CreateFailSound is a descending saw buzz
func CreateFailSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.FailFreq*1.5, parameter.FailFreq, parameter.FailSoundDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.FailSoundDuration, parameter.FailSoundAttack, parameter.FailSoundRelease, rate)
}

// GetSoundEffect returns a unity-gain streamer for the given type
func GetSoundEffect(st SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case SoundJump:
		return CreateJumpSound(rate)
	case SoundLand:
		return CreateLandSound(rate)
	case SoundBump:
		return CreateBumpSound(rate)
	case SoundTravel:
		return CreateTravelSound(rate)
	case SoundFail:
		return CreateFailSound(rate)
	default:
		return nil
	}
}
