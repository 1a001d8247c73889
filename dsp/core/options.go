package core

import (
	"errors"
	"fmt"
	"math"
)

// Rendering defaults and limits shared by generators and front ends.
const (
	DefaultSampleRate = 44100.0
	DefaultChannels   = 1
	MaxSampleRate     = 768000.0
	MaxChannels       = 2
)

// ProcessorConfig is the rendering setup a generator or front end works in.
// Options store values as given; call Validate before using a config built
// from user input.
type ProcessorConfig struct {
	SampleRate float64
	Channels   int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns CD-rate mono.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: DefaultSampleRate, Channels: DefaultChannels}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.SampleRate = sampleRate }
}

// WithChannels sets the channel count.
func WithChannels(channels int) ProcessorOption {
	return func(cfg *ProcessorConfig) { cfg.Channels = channels }
}

// ApplyProcessorOptions applies opts in order on top of the defaults.
// Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports every out-of-range field.
func (c ProcessorConfig) Validate() error {
	var errs []error
	if math.IsNaN(c.SampleRate) || c.SampleRate <= 0 || c.SampleRate > MaxSampleRate {
		errs = append(errs, fmt.Errorf("sample rate must be in (0, %g]: %f", MaxSampleRate, c.SampleRate))
	}
	if c.Channels < 1 || c.Channels > MaxChannels {
		errs = append(errs, fmt.Errorf("channels must be in [1, %d]: %d", MaxChannels, c.Channels))
	}
	return errors.Join(errs...)
}
