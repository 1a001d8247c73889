package buffer

import (
	"fmt"
	"math"
)

// AudioBuffer holds equally long channels of samples at one sample rate.
// Samples are nominally in [-1, 1]. Processing code treats a buffer as
// immutable and returns a new one.
type AudioBuffer struct {
	sampleRate float64
	channels   [][]float64
}

// New returns a zero-filled buffer with the given shape.
// Negative counts are treated as zero.
func New(channels, length int, sampleRate float64) *AudioBuffer {
	if channels < 0 {
		channels = 0
	}
	if length < 0 {
		length = 0
	}
	b := &AudioBuffer{
		sampleRate: sampleRate,
		channels:   make([][]float64, channels),
	}
	for i := range b.channels {
		b.channels[i] = make([]float64, length)
	}
	return b
}

// FromChannels wraps existing channel slices without copying.
// All channels must have the same length.
func FromChannels(sampleRate float64, channels ...[]float64) (*AudioBuffer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("buffer sample rate must be positive and finite: %f", sampleRate)
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("buffer needs at least one channel")
	}
	n := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != n {
			return nil, fmt.Errorf("buffer channel %d length %d does not match channel 0 length %d", i+1, len(ch), n)
		}
	}
	return &AudioBuffer{sampleRate: sampleRate, channels: channels}, nil
}

// SampleRate returns the sample rate in Hz.
func (b *AudioBuffer) SampleRate() float64 {
	if b == nil {
		return 0
	}
	return b.sampleRate
}

// Channels returns the channel count.
func (b *AudioBuffer) Channels() int {
	if b == nil {
		return 0
	}
	return len(b.channels)
}

// Len returns the per-channel length in samples.
func (b *AudioBuffer) Len() int {
	if b == nil || len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the samples of channel i. The slice aliases the buffer.
func (b *AudioBuffer) Channel(i int) []float64 {
	return b.channels[i]
}

// Duration returns the length in seconds.
func (b *AudioBuffer) Duration() float64 {
	if b.SampleRate() <= 0 {
		return 0
	}
	return float64(b.Len()) / b.sampleRate
}

// IsEmpty reports whether b is nil or holds no samples.
func (b *AudioBuffer) IsEmpty() bool {
	return b.Len() == 0
}

// SameShape reports whether b and other agree in channel count, length and
// sample rate.
func (b *AudioBuffer) SameShape(other *AudioBuffer) bool {
	return b.Channels() == other.Channels() &&
		b.Len() == other.Len() &&
		b.SampleRate() == other.SampleRate()
}

// Copy returns a deep copy of the buffer.
func (b *AudioBuffer) Copy() *AudioBuffer {
	if b == nil {
		return nil
	}
	out := New(len(b.channels), b.Len(), b.sampleRate)
	for i, ch := range b.channels {
		copy(out.channels[i], ch)
	}
	return out
}
