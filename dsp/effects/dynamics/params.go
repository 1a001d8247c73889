package dynamics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-compdemo/dsp/core"
)

const (
	// Default parameters describe a transparent 1:1 compressor.
	defaultThresholdDB = 0.0
	defaultKneeDB      = 0.0
	defaultRatio       = 1.0
	defaultAttack      = 0.003
	defaultRelease     = 0.01

	// Parameter ranges exposed by the demo controls.
	minThresholdDB = -100.0
	maxThresholdDB = 0.0
	minKneeDB      = 0.0
	maxKneeDB      = 40.0
	minRatio       = 1.0
	maxRatio       = 20.0
	minTime        = 0.0
	maxTime        = 1.0
)

// Params is the complete compressor setting. It is passed by value into
// every processing call; nothing in this package keeps a reference to it.
//
// Attack and Release are in seconds.
type Params struct {
	ThresholdDB float64
	KneeDB      float64
	Ratio       float64
	Attack      float64
	Release     float64
}

// DefaultParams returns the no-op setting: threshold 0 dB, hard knee,
// ratio 1:1, 3 ms attack and 10 ms release.
func DefaultParams() Params {
	return Params{
		ThresholdDB: defaultThresholdDB,
		KneeDB:      defaultKneeDB,
		Ratio:       defaultRatio,
		Attack:      defaultAttack,
		Release:     defaultRelease,
	}
}

// Clamped returns p with every field limited to its control range.
// NaN fields fall back to their defaults.
func (p Params) Clamped() Params {
	d := DefaultParams()
	return Params{
		ThresholdDB: clampOr(p.ThresholdDB, minThresholdDB, maxThresholdDB, d.ThresholdDB),
		KneeDB:      clampOr(p.KneeDB, minKneeDB, maxKneeDB, d.KneeDB),
		Ratio:       clampOr(p.Ratio, minRatio, maxRatio, d.Ratio),
		Attack:      clampOr(p.Attack, minTime, maxTime, d.Attack),
		Release:     clampOr(p.Release, minTime, maxTime, d.Release),
	}
}

// Validate reports every field that is non-finite or outside its control
// range. Processing functions never call it; they accept any value.
func (p Params) Validate() error {
	return errors.Join(
		checkRange("threshold", p.ThresholdDB, minThresholdDB, maxThresholdDB),
		checkRange("knee", p.KneeDB, minKneeDB, maxKneeDB),
		checkRange("ratio", p.Ratio, minRatio, maxRatio),
		checkRange("attack", p.Attack, minTime, maxTime),
		checkRange("release", p.Release, minTime, maxTime),
	)
}

func clampOr(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return core.Clamp(v, lo, hi)
}

func checkRange(name string, v, lo, hi float64) error {
	if !core.IsFinite(v) || v < lo || v > hi {
		return fmt.Errorf("compressor %s must be in [%g, %g]: %f", name, lo, hi, v)
	}
	return nil
}
