package dynamics

import (
	"math"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/stats/level"
)

// Metrics summarises what a processing pass did to a buffer.
type Metrics struct {
	InputPeak          float64 // Largest absolute input sample
	OutputPeak         float64 // Largest absolute output sample
	MaxGainReductionDB float64 // Deepest per-sample attenuation, >= 0

	Input  level.Levels // Pooled level statistics of the original
	Output level.Levels // Pooled level statistics of the processed buffer
}

// Measure compares original with processed. Gain reduction is only
// evaluated when both buffers have the same shape; otherwise only the peaks
// are reported.
func Measure(original, processed *buffer.AudioBuffer) Metrics {
	m := Metrics{
		InputPeak:  Peak(original),
		OutputPeak: Peak(processed),
		Input:      level.Buffer(original),
		Output:     level.Buffer(processed),
	}
	if original.IsEmpty() || !original.SameShape(processed) {
		return m
	}

	for c := 0; c < original.Channels(); c++ {
		in, out := original.Channel(c), processed.Channel(c)
		for i, x := range in {
			if x == 0 {
				continue
			}
			reduction := LevelToDB(math.Abs(x)) - LevelToDB(math.Abs(out[i]))
			if reduction > m.MaxGainReductionDB {
				m.MaxGainReductionDB = reduction
			}
		}
	}
	return m
}
