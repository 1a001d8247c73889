package dynamics

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/internal/testutil"
)

func TestVisualizeLengthAndRanges(t *testing.T) {
	in := testutil.MustBuffer(t, 44100,
		testutil.DeterministicNoise(11, 1, 44100),
		testutil.DeterministicSine(220, 44100, 0.5, 44100))

	for _, p := range compressorGrid {
		v := Visualize(in, p, 800)
		if len(v.Envelope) != 800 || len(v.GainReduction) != 800 || v.Len() != 800 {
			t.Fatalf("%+v: lengths = %d/%d, want 800", p, len(v.Envelope), len(v.GainReduction))
		}
		testutil.RequireRange(t, v.Envelope, 0, 1)
		testutil.RequireRange(t, v.GainReduction, 0, math.MaxFloat64)
	}
}

func TestVisualizeUnityRatioHasNoGainReduction(t *testing.T) {
	in := testutil.MustBuffer(t, 44100, testutil.DeterministicNoise(5, 1, 10000))
	p := Params{ThresholdDB: -60, KneeDB: 10, Ratio: 1, Attack: 0.003, Release: 0.01}

	v := Visualize(in, p, 800)
	testutil.RequireSliceNearlyEqual(t, v.GainReduction, make([]float64, 800), 0)
}

func TestVisualizeDegenerateInput(t *testing.T) {
	p := compressorGrid[0]
	tests := []struct {
		name   string
		buf    *buffer.AudioBuffer
		length int
	}{
		{"nil buffer", nil, 800},
		{"zero length buffer", buffer.New(1, 0, 44100), 800},
		{"zero output length", buffer.New(1, 100, 44100), 0},
		{"negative output length", buffer.New(1, 100, 44100), -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Visualize(tt.buf, p, tt.length)
			if v.Len() != 0 || len(v.GainReduction) != 0 {
				t.Fatalf("expected empty visualization, got %d points", v.Len())
			}
		})
	}
}

func TestVisualizeUsesFirstChannelOnly(t *testing.T) {
	first := testutil.DeterministicSine(300, 8000, 0.8, 8000)
	p := Params{ThresholdDB: -12, KneeDB: 6, Ratio: 6, Attack: 0.01, Release: 0.1}

	mono := Visualize(testutil.MustBuffer(t, 8000, first), p, 200)
	stereo := Visualize(testutil.MustBuffer(t, 8000, first, testutil.DC(1, 8000)), p, 200)

	testutil.RequireSliceNearlyEqual(t, stereo.Envelope, mono.Envelope, 0)
	testutil.RequireSliceNearlyEqual(t, stereo.GainReduction, mono.GainReduction, 0)
}

func TestVisualizeMorePointsThanSamples(t *testing.T) {
	in := testutil.MustBuffer(t, 44100, testutil.DC(0.5, 10))
	v := Visualize(in, compressorGrid[0], 800)
	if v.Len() != 800 {
		t.Fatalf("Len() = %d, want 800", v.Len())
	}
	if v.Envelope[0] <= 0 {
		t.Fatal("envelope should rise on the first segment")
	}
	// Past the input the segment peaks are zero and the envelope decays.
	if v.Envelope[799] >= v.Envelope[9] {
		t.Fatalf("envelope did not decay past the input: %v >= %v", v.Envelope[799], v.Envelope[9])
	}
}

func TestVisualizeSettlesOnCurve(t *testing.T) {
	const level = 0.5
	in := testutil.MustBuffer(t, 44100, testutil.DC(level, 44100))
	p := Params{ThresholdDB: -20, KneeDB: 0, Ratio: 4, Attack: 0.003, Release: 0.01}

	v := Visualize(in, p, 100)

	last := v.Len() - 1
	if math.Abs(v.Envelope[last]-level) > 1e-12 {
		t.Fatalf("settled envelope = %v, want %v", v.Envelope[last], level)
	}
	want := GainReductionDB(LevelToDB(level), p.ThresholdDB, p.KneeDB, p.Ratio)
	if math.Abs(v.GainReduction[last]-want) > 1e-9 {
		t.Fatalf("settled gain reduction = %v, want %v", v.GainReduction[last], want)
	}
}

func TestVisualizeEnvelopeClampedForHotInput(t *testing.T) {
	in := testutil.MustBuffer(t, 44100, testutil.DC(1.8, 4410))
	v := Visualize(in, compressorGrid[0], 50)
	testutil.RequireRange(t, v.Envelope, 0, 1)
	if v.Envelope[49] != 1 {
		t.Fatalf("hot envelope = %v, want clamped to 1", v.Envelope[49])
	}
}

func TestVisualizeGainReductionReactsFasterThanEnvelope(t *testing.T) {
	// With 0.001x time constants the reduction trace sits on the curve of
	// the envelope trace from point to point while the envelope is rising.
	const sampleRate = 1000.0
	in := testutil.MustBuffer(t, sampleRate, testutil.Step(1, 0.01, 500, 1000))
	p := Params{ThresholdDB: -20, KneeDB: 0, Ratio: 4, Attack: 0.001, Release: 0.5}

	v := Visualize(in, p, 100)
	for i := 3; i < 50; i++ {
		want := GainReductionDB(LevelToDB(v.Envelope[i]), p.ThresholdDB, p.KneeDB, p.Ratio)
		if math.Abs(v.GainReduction[i]-want) > 1e-6 {
			t.Fatalf("point %d: reduction %v lags target %v", i, v.GainReduction[i], want)
		}
	}
}
