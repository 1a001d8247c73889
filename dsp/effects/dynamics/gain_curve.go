package dynamics

import "github.com/cwbudde/algo-compdemo/dsp/core"

// LevelToDB converts a linear level to dBFS. Silence maps to -100 dB
// rather than -Inf. Every level conversion in this package goes through it.
func LevelToDB(level float64) float64 {
	if level <= 0 {
		return core.FloorDB
	}
	return 20 * mathLog10(level)
}

// DBToGain converts a gain reduction in dB to a linear gain factor.
func DBToGain(reductionDB float64) float64 {
	return mathPower10(-reductionDB / 20)
}

// GainReductionDB evaluates the static compression curve. It returns how
// many dB a signal at levelDB is attenuated; the result is never negative.
//
// Below threshold-knee/2 nothing happens. Above threshold+knee/2 the excess
// over threshold is reduced by (1 - 1/ratio). In between the reduction
// follows a quadratic that starts with zero slope and meets the linear
// segment with matching value and slope. A zero-width knee is a hard knee.
// A ratio that is not above 1, NaN included, means no reduction.
func GainReductionDB(levelDB, thresholdDB, kneeDB, ratio float64) float64 {
	if !(ratio > 1) {
		return 0
	}

	slope := 1 - 1/ratio
	kneeStart := thresholdDB - kneeDB/2
	kneeEnd := thresholdDB + kneeDB/2

	if levelDB <= kneeStart {
		return 0
	}

	kneeRange := kneeEnd - kneeStart
	if levelDB >= kneeEnd || kneeRange <= 0 {
		return (levelDB - thresholdDB) * slope
	}

	x := levelDB - kneeStart
	return slope * x * x / (2 * kneeRange)
}

// TransferCurve returns the static output level in dB for each input level
// in levelsDB, ignoring attack and release. It is meant for drawing the
// input/output characteristic next to the waveform.
func TransferCurve(p Params, levelsDB []float64) []float64 {
	out := make([]float64, len(levelsDB))
	for i, in := range levelsDB {
		out[i] = in - GainReductionDB(in, p.ThresholdDB, p.KneeDB, p.Ratio)
	}
	return out
}
