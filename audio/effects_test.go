package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/wikijump/parameter"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 1 || samples[i][0] != samples[i][1] {
			t.Errorf("sample %d = %v", i, samples[i])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Err = %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave values are +-1
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	for i, s := range drain(osc) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %v", i, s[0])
		}
	}
}

// TestOscillatorDuration verifies the stream ends after its duration
func TestOscillatorDuration(t *testing.T) {
	d := 30 * time.Millisecond
	got := len(drain(NewOscillator(300, d, WaveSaw, testRate)))
	if want := testRate.N(d); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

// zeroCrossings counts sign changes in the left channel
func zeroCrossings(samples [][2]float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
			n++
		}
	}
	return n
}

// TestSweepRises verifies an upward sweep oscillates faster at its end
func TestSweepRises(t *testing.T) {
	samples := drain(NewSweep(200, 2000, 200*time.Millisecond, WaveSine, testRate))
	quarter := len(samples) / 4
	first := zeroCrossings(samples[:quarter])
	last := zeroCrossings(samples[len(samples)-quarter:])
	if last <= first*2 {
		t.Errorf("crossings first quarter %d, last quarter %d", first, last)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate)
	samples := drain(NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, testRate))

	if len(samples) != testRate.N(d) {
		t.Fatalf("len = %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", samples[0][0])
	}
	if mid := samples[len(samples)/2][0]; mid != 1 {
		t.Errorf("sustain sample = %v, want 1", mid)
	}
	if last := math.Abs(samples[len(samples)-1][0]); last > 0.01 {
		t.Errorf("last sample = %v", last)
	}
}

func TestSoundEffectLengths(t *testing.T) {
	tests := []struct {
		st   SoundType
		want time.Duration
	}{
		{SoundJump, parameter.JumpSoundDuration},
		{SoundLand, parameter.LandSoundDuration},
		{SoundBump, parameter.BumpSoundDuration},
		{SoundTravel, parameter.TravelNoteDuration},
		{SoundFail, parameter.FailSoundDuration},
	}
	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, testRate)
			if s == nil {
				t.Fatal("nil streamer")
			}
			samples := drain(s)
			want := testRate.N(tt.want)
			if tt.st == SoundTravel {
				want *= len(parameter.TravelNotes)
			}
			if len(samples) != want {
				t.Errorf("len = %d, want %d", len(samples), want)
			}
			peak := 0.0
			for _, v := range samples {
				peak = max(peak, math.Abs(v[0]))
			}
			if peak == 0 || peak > 1.0001 {
				t.Errorf("peak = %v", peak)
			}
		})
	}
}

func TestGetSoundEffectInvalid(t *testing.T) {
	if GetSoundEffect(soundTypeCount, testRate) != nil || GetSoundEffect(-1, testRate) != nil {
		t.Error("expected nil for invalid sound type")
	}
}

// TestNewVolumeZero verifies zero volume is silent rather than -Inf gain
func TestNewVolumeZero(t *testing.T) {
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0)
	for i, v := range drain(s) {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}

func TestNewVolumeHalf(t *testing.T) {
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0.5)
	for i, v := range drain(s) {
		if math.Abs(math.Abs(v[0])-0.5) > 1e-9 {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}
