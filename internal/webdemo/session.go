package webdemo

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/effects/dynamics"
)

// DefaultWidth is the visualization width used when none is configured.
const DefaultWidth = 800

// ErrNoAudio is returned by operations that need a loaded buffer.
var ErrNoAudio = errors.New("webdemo: no audio loaded")

// Session owns one loaded buffer and everything derived from it for the
// current parameters. Every change re-renders the processed buffer and the
// visualization from the original; nothing is updated incrementally.
//
// A Session is not safe for concurrent use.
type Session struct {
	width  int
	params dynamics.Params

	original  *buffer.AudioBuffer
	processed *buffer.AudioBuffer
	vis       dynamics.Visualization
}

// NewSession creates an empty session drawing width points per trace.
func NewSession(width int) (*Session, error) {
	if width <= 0 {
		return nil, fmt.Errorf("visualization width must be > 0: %d", width)
	}
	return &Session{width: width, params: dynamics.DefaultParams()}, nil
}

// Load replaces the session audio and renders it with the current params.
func (s *Session) Load(buf *buffer.AudioBuffer) error {
	if buf.IsEmpty() {
		return fmt.Errorf("load: %w", ErrNoAudio)
	}
	s.original = buf
	s.render()
	return nil
}

// LoadDemo loads one of the DemoSignals at sampleRate.
func (s *Session) LoadDemo(name string, sampleRate float64) error {
	buf, err := DemoSignal(name, sampleRate)
	if err != nil {
		return fmt.Errorf("load demo: %w", err)
	}
	return s.Load(buf)
}

// SetParams clamps p into the supported ranges, stores it and re-renders.
// The returned error reports fields that had to be clamped; the clamped
// params are applied either way.
func (s *Session) SetParams(p dynamics.Params) error {
	err := p.Validate()
	s.params = p.Clamped()
	s.render()
	return err
}

// SetWidth changes the number of visualization points and re-renders.
func (s *Session) SetWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("visualization width must be > 0: %d", width)
	}
	s.width = width
	s.render()
	return nil
}

// Params returns the parameters currently applied.
func (s *Session) Params() dynamics.Params { return s.params }

// Width returns the visualization width.
func (s *Session) Width() int { return s.width }

// Original returns the loaded buffer, or nil.
func (s *Session) Original() *buffer.AudioBuffer { return s.original }

// Processed returns the compressed buffer for the current params, or nil.
func (s *Session) Processed() *buffer.AudioBuffer { return s.processed }

// Visualization returns the traces for the current params.
func (s *Session) Visualization() dynamics.Visualization { return s.vis }

// Reference renders the loaded audio through the sample-accurate reference
// compressor and peak-normalizes the result.
func (s *Session) Reference() (*buffer.AudioBuffer, error) {
	if s.original == nil {
		return nil, ErrNoAudio
	}
	out := dynamics.RenderReference(s.original, s.params)
	dynamics.Normalize(out)
	return out, nil
}

// Metrics compares the loaded audio with the processed result.
func (s *Session) Metrics() (dynamics.Metrics, error) {
	if s.original == nil {
		return dynamics.Metrics{}, ErrNoAudio
	}
	return dynamics.Measure(s.original, s.processed), nil
}

// GainCurve evaluates the static transfer curve for the current params.
func (s *Session) GainCurve(levelsDB []float64) []float64 {
	return dynamics.TransferCurve(s.params, levelsDB)
}

func (s *Session) render() {
	if s.original == nil {
		return
	}
	s.processed = dynamics.Compress(s.original, s.params)
	s.vis = dynamics.Visualize(s.original, s.params, s.width)
}
