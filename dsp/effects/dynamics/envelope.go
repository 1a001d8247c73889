package dynamics

import (
	"math"

	"github.com/cwbudde/algo-compdemo/dsp/core"
)

// minTimeConstant is the floor applied to attack and release times (seconds)
// before a coefficient is derived from them.
const minTimeConstant = 1e-5

// TimeCoefficient returns the one-pole smoothing coefficient
// exp(-1 / (sampleRate * seconds)). Times below 10 µs, including zero, are
// raised to 10 µs.
func TimeCoefficient(sampleRate, seconds float64) float64 {
	return math.Exp(-1 / (sampleRate * math.Max(seconds, minTimeConstant)))
}

// EnvelopeFollower is a sample-accurate peak follower. Each call moves the
// level towards the input with the attack coefficient when the input is
// above the level and with the release coefficient otherwise.
//
// The zero value has coefficients of zero and follows its input exactly.
type EnvelopeFollower struct {
	attackCoeff  float64
	releaseCoeff float64
	level        float64
}

// NewEnvelopeFollower returns a follower at level 0 for the given sample rate
// and attack/release times in seconds.
func NewEnvelopeFollower(sampleRate, attack, release float64) EnvelopeFollower {
	return EnvelopeFollower{
		attackCoeff:  TimeCoefficient(sampleRate, attack),
		releaseCoeff: TimeCoefficient(sampleRate, release),
	}
}

// Process advances the follower by one step. x is a non-negative level,
// usually the absolute value of a sample.
func (f *EnvelopeFollower) Process(x float64) float64 {
	if x > f.level {
		f.level = x + (f.level-x)*f.attackCoeff
	} else {
		f.level = core.FlushDenormals(x + (f.level-x)*f.releaseCoeff)
	}
	return f.level
}

// Level returns the current smoothed level.
func (f *EnvelopeFollower) Level() float64 { return f.level }

// Reset returns the level to zero.
func (f *EnvelopeFollower) Reset() { f.level = 0 }

// SegmentFollower smooths a stream of per-segment peaks for display. It
// steps once per segment instead of once per sample and keeps the fraction
// (1-coeff) of the distance to the new peak on every step. Its output never
// exceeds 1.
type SegmentFollower struct {
	attackCoeff  float64
	releaseCoeff float64
	level        float64
}

// NewSegmentFollower returns a segment follower at level 0. Coefficients are
// derived at the audio sample rate, exactly as for EnvelopeFollower.
func NewSegmentFollower(sampleRate, attack, release float64) SegmentFollower {
	return SegmentFollower{
		attackCoeff:  TimeCoefficient(sampleRate, attack),
		releaseCoeff: TimeCoefficient(sampleRate, release),
	}
}

// Process advances the follower by one segment with the segment's peak.
func (f *SegmentFollower) Process(peak float64) float64 {
	coeff := f.releaseCoeff
	if peak > f.level {
		coeff = f.attackCoeff
	}
	f.level = peak + (f.level-peak)*(1-coeff)
	return math.Min(f.level, 1)
}

// Reset returns the level to zero.
func (f *SegmentFollower) Reset() { f.level = 0 }

// SegmentPeaks splits samples into n contiguous segments of
// ceil(len(samples)/n) samples and returns the maximum absolute value of
// each. Segments that start past the end of the input report 0.
func SegmentPeaks(samples []float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	peaks := make([]float64, n)
	if len(samples) == 0 {
		return peaks
	}

	segment := (len(samples) + n - 1) / n
	for i := range peaks {
		start := i * segment
		if start >= len(samples) {
			break
		}
		end := min(start+segment, len(samples))

		peak := 0.0
		for _, v := range samples[start:end] {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		peaks[i] = peak
	}
	return peaks
}
