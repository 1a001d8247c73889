package dynamics

import (
	"math"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
)

const (
	// log2Of10Div20 is the conversion factor for dB to log2: log2(10) / 20
	log2Of10Div20 = 0.166096404744

	// referenceMakeupExponent scales the full-scale gain reduction into the
	// automatic makeup gain of the reference path.
	referenceMakeupExponent = 0.6
)

// RenderReference processes buf the way a stock host compressor node does:
// peak detection with ln2-based time constants, a log2-domain soft knee and
// automatic makeup gain of 0.6 times the reduction a full-scale signal would
// receive. The result can exceed full scale; run Normalize on it before
// playback. buf is not modified and a nil buffer yields nil.
func RenderReference(buf *buffer.AudioBuffer, p Params) *buffer.AudioBuffer {
	if buf == nil {
		return nil
	}

	out := buffer.New(buf.Channels(), buf.Len(), buf.SampleRate())
	for c := 0; c < buf.Channels(); c++ {
		rc := newReferenceCompressor(buf.SampleRate(), p)
		in, dst := buf.Channel(c), out.Channel(c)
		for i, x := range in {
			dst[i] = rc.processSample(x)
		}
	}
	return out
}

// ReferenceMakeupDB returns the automatic makeup gain of the reference path.
func ReferenceMakeupDB(p Params) float64 {
	return referenceMakeupExponent * GainReductionDB(0, p.ThresholdDB, p.KneeDB, p.Ratio)
}

// referenceCompressor is a mono compressor with state for one channel pass.
type referenceCompressor struct {
	ratio  float64
	kneeDB float64

	// Envelope follower state
	peakLevel float64

	// Computed coefficients
	attackCoeff      float64
	releaseCoeff     float64
	thresholdLog2    float64
	kneeWidthLog2    float64
	invKneeWidthLog2 float64
	makeupGainLin    float64
}

func newReferenceCompressor(sampleRate float64, p Params) *referenceCompressor {
	c := &referenceCompressor{
		ratio:         p.Ratio,
		kneeDB:        p.KneeDB,
		thresholdLog2: p.ThresholdDB * log2Of10Div20,
		kneeWidthLog2: p.KneeDB * log2Of10Div20,
		makeupGainLin: mathPower10(ReferenceMakeupDB(p) / 20),
	}
	if c.kneeDB > 0 {
		c.invKneeWidthLog2 = 1.0 / c.kneeWidthLog2
	}

	// Attack: 1 - exp(-ln2 / (attack * sample_rate))
	attack := math.Max(p.Attack, minTimeConstant)
	c.attackCoeff = 1.0 - math.Exp(-math.Ln2/(attack*sampleRate))

	// Release: exp(-ln2 / (release * sample_rate))
	release := math.Max(p.Release, minTimeConstant)
	c.releaseCoeff = math.Exp(-math.Ln2 / (release * sampleRate))

	return c
}

func (c *referenceCompressor) processSample(input float64) float64 {
	inputLevel := math.Abs(input)

	if inputLevel > c.peakLevel {
		c.peakLevel += (inputLevel - c.peakLevel) * c.attackCoeff
	} else {
		c.peakLevel = inputLevel + (c.peakLevel-inputLevel)*c.releaseCoeff
	}

	return input * c.calculateGain(c.peakLevel) * c.makeupGainLin
}

// calculateGain computes the gain multiplier with a quadratic knee in the
// log2 domain.
func (c *referenceCompressor) calculateGain(peakLevel float64) float64 {
	if peakLevel <= 0 || c.ratio <= 1 {
		return 1.0
	}

	overshoot := mathLog2(peakLevel) - c.thresholdLog2

	if c.kneeDB <= 0 {
		if overshoot <= 0 {
			return 1.0
		}
		return mathPower2(-overshoot * (1.0 - 1.0/c.ratio))
	}

	halfWidth := c.kneeWidthLog2 * 0.5
	var effectiveOvershoot float64

	switch {
	case overshoot < -halfWidth:
		return 1.0
	case overshoot > halfWidth:
		effectiveOvershoot = overshoot
	default:
		// (overshoot + w/2)^2 / (2*w)
		scratch := overshoot + halfWidth
		effectiveOvershoot = scratch * scratch * 0.5 * c.invKneeWidthLog2
	}

	return mathPower2(-effectiveOvershoot * (1.0 - 1.0/c.ratio))
}
