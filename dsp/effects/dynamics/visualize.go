package dynamics

import "github.com/cwbudde/algo-compdemo/dsp/buffer"

// gainReductionTimeScale shrinks the user attack/release times for the
// displayed gain-reduction trace so it reacts faster than the envelope trace.
const gainReductionTimeScale = 0.001

// Series is a fixed-length sequence of values indexed by output position.
type Series []float64

// Visualization holds the per-pixel traces drawn over the waveform.
type Visualization struct {
	// Envelope is the smoothed level of channel 0, in [0, 1].
	Envelope Series
	// GainReduction is the smoothed reduction in dB, >= 0.
	GainReduction Series
}

// Len returns the number of output positions.
func (v Visualization) Len() int { return len(v.Envelope) }

// Visualize computes display traces of outputLength points for buf.
//
// Only channel 0 is inspected. It is cut into outputLength segments whose
// peaks drive a SegmentFollower; that gives the envelope trace. Each
// envelope point is then run through the gain curve and smoothed again by a
// sample-accurate follower using attack and release scaled by 0.001. With
// ratio <= 1 the gain-reduction trace is all zeros.
//
// A nil or empty buffer, or outputLength <= 0, yields an empty Visualization.
func Visualize(buf *buffer.AudioBuffer, p Params, outputLength int) Visualization {
	if buf.IsEmpty() || outputLength <= 0 {
		return Visualization{}
	}

	sampleRate := buf.SampleRate()
	peaks := SegmentPeaks(buf.Channel(0), outputLength)

	envelope := make(Series, outputLength)
	follower := NewSegmentFollower(sampleRate, p.Attack, p.Release)
	for i, peak := range peaks {
		envelope[i] = follower.Process(peak)
	}

	reduction := make(Series, outputLength)
	if p.Ratio <= 1 {
		return Visualization{Envelope: envelope, GainReduction: reduction}
	}

	smoother := NewEnvelopeFollower(sampleRate,
		p.Attack*gainReductionTimeScale,
		p.Release*gainReductionTimeScale)
	for i, level := range envelope {
		target := GainReductionDB(LevelToDB(level), p.ThresholdDB, p.KneeDB, p.Ratio)
		reduction[i] = smoother.Process(target)
	}

	return Visualization{Envelope: envelope, GainReduction: reduction}
}
