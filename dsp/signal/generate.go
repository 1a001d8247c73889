package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/core"
)

// Generator creates deterministic test signals from a shared configuration.
// Every channel of a generated buffer carries the same signal.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates a sine wave lasting seconds.
func (g *Generator) Sine(freqHz, amplitude, seconds float64) (*buffer.AudioBuffer, error) {
	n, err := g.samples("sine", seconds)
	if err != nil {
		return nil, err
	}
	if freqHz <= 0 || freqHz >= g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in (0, nyquist): %f", freqHz)
	}
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	return g.fill(n, func(i int) float64 {
		return amplitude * math.Sin(step*float64(i))
	}), nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude, seconds float64) (*buffer.AudioBuffer, error) {
	n, err := g.samples("noise", seconds)
	if err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	rng := rand.New(rand.NewSource(g.seed))
	return g.fill(n, func(int) float64 {
		return (rng.Float64()*2 - 1) * amplitude
	}), nil
}

// ToneBurst generates a sine that alternates between a loud and a quiet
// amplitude every period seconds, starting loud. It is the classic signal for
// watching attack and release behaviour.
func (g *Generator) ToneBurst(freqHz, loud, quiet, period, seconds float64) (*buffer.AudioBuffer, error) {
	if period <= 0 {
		return nil, fmt.Errorf("burst period must be > 0: %f", period)
	}
	out, err := g.Sine(freqHz, 1, seconds)
	if err != nil {
		return nil, err
	}
	periodSamples := max(int(math.Round(period*g.cfg.SampleRate)), 1)
	for c := 0; c < out.Channels(); c++ {
		ch := out.Channel(c)
		for i := range ch {
			if (i/periodSamples)%2 == 0 {
				ch[i] *= loud
			} else {
				ch[i] *= quiet
			}
		}
	}
	return out, nil
}

func (g *Generator) samples(kind string, seconds float64) (int, error) {
	if err := g.cfg.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", kind, err)
	}
	n := int(math.Round(seconds * g.cfg.SampleRate))
	if n <= 0 {
		return 0, fmt.Errorf("%s duration must yield at least one sample: %f", kind, seconds)
	}
	return n, nil
}

func (g *Generator) fill(n int, next func(i int) float64) *buffer.AudioBuffer {
	out := buffer.New(g.cfg.Channels, n, g.cfg.SampleRate)
	first := out.Channel(0)
	for i := range first {
		first[i] = next(i)
	}
	for c := 1; c < out.Channels(); c++ {
		copy(out.Channel(c), first)
	}
	return out
}
