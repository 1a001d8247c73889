// Package level computes peak, RMS and crest-factor statistics over audio
// buffers. All channels of a buffer are pooled into one set of figures.
package level

import (
	"math"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/core"
)

// Levels holds the level statistics of a block of samples.
type Levels struct {
	Length        int     // Number of samples inspected
	DC            float64 // Mean
	RMS           float64
	RMSDB         float64 // Floored at core.FloorDB
	Peak          float64 // Largest absolute sample
	PeakDB        float64 // Floored at core.FloorDB
	CrestFactor   float64 // Peak / RMS, 0 for silence
	CrestFactorDB float64 // 0 for silence
}

// Accumulator collects level statistics incrementally across blocks.
// Feeding the same samples in any block split gives the same Result.
type Accumulator struct {
	n     int
	sum   float64
	sumSq float64
	peak  float64
}

// Update adds a block of samples.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		a.sum += x
		a.sumSq += x * x
		a.peak = math.Max(a.peak, math.Abs(x))
	}
	a.n += len(samples)
}

// Result computes the statistics for everything seen so far.
func (a *Accumulator) Result() Levels {
	if a.n == 0 {
		return Levels{RMSDB: core.FloorDB, PeakDB: core.FloorDB}
	}

	nf := float64(a.n)
	rms := math.Sqrt(a.sumSq / nf)
	l := Levels{
		Length: a.n,
		DC:     a.sum / nf,
		RMS:    rms,
		RMSDB:  core.LinearToDB(rms),
		Peak:   a.peak,
		PeakDB: core.LinearToDB(a.peak),
	}
	if rms > 0 {
		l.CrestFactor = a.peak / rms
		l.CrestFactorDB = 20 * math.Log10(l.CrestFactor)
	}
	return l
}

// Reset clears all accumulated data.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Calculate returns the statistics of a single slice.
func Calculate(samples []float64) Levels {
	var a Accumulator
	a.Update(samples)
	return a.Result()
}

// Buffer returns the statistics pooled over every channel of buf.
// A nil buffer yields the empty result.
func Buffer(buf *buffer.AudioBuffer) Levels {
	var a Accumulator
	for c := 0; c < buf.Channels(); c++ {
		a.Update(buf.Channel(c))
	}
	return a.Result()
}
