// Package audiofile decodes and encodes WAV files to and from
// buffer.AudioBuffer. It is the blocking file I/O boundary in front of the
// dynamics processors.
package audiofile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
)

const (
	// streamChunk is the number of frames pulled from the decoder per call.
	streamChunk = 4096
	// maxChannels is the widest layout the WAV codec handles.
	maxChannels = 2
	// savePrecision is the output sample width in bytes (16-bit PCM).
	savePrecision = 2
)

// ErrEmpty is returned when saving a buffer without samples.
var ErrEmpty = errors.New("audiofile: buffer is empty")

// Load decodes the WAV file at path into a new AudioBuffer with one channel
// per file channel.
func Load(path string) (*buffer.AudioBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiofile: open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audiofile: decode %s: %w", path, err)
	}
	defer streamer.Close()

	if format.NumChannels < 1 || format.NumChannels > maxChannels {
		return nil, fmt.Errorf("audiofile: %s has %d channels, want 1 or 2", path, format.NumChannels)
	}

	channels := make([][]float64, format.NumChannels)
	for c := range channels {
		channels[c] = make([]float64, 0, max(streamer.Len(), 0))
	}

	frames := make([][2]float64, streamChunk)
	for {
		n, ok := streamer.Stream(frames)
		for _, frame := range frames[:n] {
			for c := range channels {
				channels[c] = append(channels[c], frame[c])
			}
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audiofile: read %s: %w", path, err)
	}

	return buffer.FromChannels(float64(format.SampleRate), channels...)
}

// Save encodes buf as 16-bit PCM WAV at path. Samples outside [-1, 1] are
// clipped by the encoder; run dynamics.Normalize first when that matters.
func Save(path string, buf *buffer.AudioBuffer) error {
	if buf.IsEmpty() {
		return ErrEmpty
	}
	if buf.Channels() > maxChannels {
		return fmt.Errorf("audiofile: cannot write %d channels, want 1 or 2", buf.Channels())
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(math.Round(buf.SampleRate())),
		NumChannels: buf.Channels(),
		Precision:   savePrecision,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: create %s: %w", path, err)
	}

	if err := wav.Encode(f, newBufferStreamer(buf), format); err != nil {
		f.Close()
		return fmt.Errorf("audiofile: encode %s: %w", path, err)
	}
	return f.Close()
}

// bufferStreamer plays an AudioBuffer once as a beep.Streamer. Mono buffers
// are duplicated onto both sides of each frame.
type bufferStreamer struct {
	buf *buffer.AudioBuffer
	pos int
}

func newBufferStreamer(buf *buffer.AudioBuffer) *bufferStreamer {
	return &bufferStreamer{buf: buf}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.buf.Len() {
		return 0, false
	}
	left := s.buf.Channel(0)
	right := left
	if s.buf.Channels() > 1 {
		right = s.buf.Channel(1)
	}

	n := min(len(samples), s.buf.Len()-s.pos)
	for i := range n {
		samples[i][0] = left[s.pos+i]
		samples[i][1] = right[s.pos+i]
	}
	s.pos += n
	return n, true
}

func (s *bufferStreamer) Err() error { return nil }
