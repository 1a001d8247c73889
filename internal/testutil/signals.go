package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Step generates low for the first at samples and high afterwards.
func Step(low, high float64, at, length int) []float64 {
	out := DC(low, length)
	for i := max(at, 0); i < length; i++ {
		out[i] = high
	}
	return out
}

// MustBuffer wraps channels into an AudioBuffer and fails t on error.
func MustBuffer(t testing.TB, sampleRate float64, channels ...[]float64) *buffer.AudioBuffer {
	t.Helper()
	b, err := buffer.FromChannels(sampleRate, channels...)
	if err != nil {
		t.Fatalf("FromChannels: %v", err)
	}
	return b
}
