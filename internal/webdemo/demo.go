package webdemo

import (
	"fmt"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/core"
	"github.com/cwbudde/algo-compdemo/dsp/signal"
)

const (
	demoSeconds   = 2.0
	demoFreqHz    = 220.0
	demoLoud      = 0.9
	demoQuiet     = 0.1
	demoPeriodSec = 0.25
	demoNoiseAmp  = 0.5
)

// DemoSignal renders one of the named demo signals at sampleRate.
func DemoSignal(name string, sampleRate float64) (*buffer.AudioBuffer, error) {
	gen := signal.NewGenerator(core.WithSampleRate(sampleRate))
	switch name {
	case SignalBurst:
		return gen.ToneBurst(demoFreqHz, demoLoud, demoQuiet, demoPeriodSec, demoSeconds)
	case SignalSine:
		return gen.Sine(demoFreqHz, demoLoud, demoSeconds)
	case SignalNoise:
		return gen.WhiteNoise(demoNoiseAmp, demoSeconds)
	default:
		return nil, fmt.Errorf("unknown demo signal: %q", name)
	}
}
