package dynamics

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
)

// Compress runs the sample-accurate compressor over every channel of buf
// and returns a new buffer of the same shape. buf is not modified.
//
// Each channel gets its own EnvelopeFollower starting at zero. For every
// sample the envelope of |x| is converted to dB, passed through the gain
// curve and the resulting gain is applied to x. There is no makeup gain, so
// |out[i]| <= |in[i]| always holds. A nil buffer yields nil.
func Compress(buf *buffer.AudioBuffer, p Params) *buffer.AudioBuffer {
	if buf == nil {
		return nil
	}

	out := buffer.New(buf.Channels(), buf.Len(), buf.SampleRate())
	if buf.Len() == 0 {
		return out
	}

	gains := make([]float64, buf.Len())
	for c := 0; c < buf.Channels(); c++ {
		in := buf.Channel(c)
		channelGains(gains, in, buf.SampleRate(), p)
		vecmath.MulBlock(out.Channel(c), in, gains)
	}
	return out
}

// channelGains fills gains with the linear gain for each sample of in.
func channelGains(gains, in []float64, sampleRate float64, p Params) {
	env := NewEnvelopeFollower(sampleRate, p.Attack, p.Release)
	for i, x := range in {
		level := env.Process(math.Abs(x))
		reduction := GainReductionDB(LevelToDB(level), p.ThresholdDB, p.KneeDB, p.Ratio)
		gains[i] = DBToGain(reduction)
	}
}
