package dynamics

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/internal/testutil"
)

var compressorGrid = []Params{
	{ThresholdDB: -20, KneeDB: 0, Ratio: 4, Attack: 0.003, Release: 0.01},
	{ThresholdDB: -40, KneeDB: 12, Ratio: 20, Attack: 0, Release: 0},
	{ThresholdDB: -6, KneeDB: 40, Ratio: 2, Attack: 0.1, Release: 1},
	{ThresholdDB: -100, KneeDB: 6, Ratio: 8, Attack: 1, Release: 0.05},
	DefaultParams(),
}

func stereoTestBuffer(t *testing.T) *buffer.AudioBuffer {
	t.Helper()
	const n = 4410
	left := testutil.DeterministicNoise(7, 0.9, n)
	right := testutil.DeterministicSine(440, 44100, 0.7, n)
	return testutil.MustBuffer(t, 44100, left, right)
}

func TestCompressPreservesShapeAndInput(t *testing.T) {
	in := stereoTestBuffer(t)
	orig := in.Copy()

	for _, p := range compressorGrid {
		out := Compress(in, p)
		if !out.SameShape(in) {
			t.Fatalf("Compress changed shape: %dx%d@%v", out.Channels(), out.Len(), out.SampleRate())
		}
		for c := 0; c < in.Channels(); c++ {
			testutil.RequireSliceNearlyEqual(t, in.Channel(c), orig.Channel(c), 0)
			testutil.RequireFinite(t, out.Channel(c))
		}
	}
}

func TestCompressUnityRatioIsIdentity(t *testing.T) {
	in := stereoTestBuffer(t)
	for _, p := range []Params{
		DefaultParams(),
		{ThresholdDB: -100, KneeDB: 0, Ratio: 1, Attack: 0, Release: 0},
		{ThresholdDB: -30, KneeDB: 40, Ratio: 1, Attack: 0.5, Release: 1},
		{ThresholdDB: -30, KneeDB: 6, Ratio: math.NaN(), Attack: 0.01, Release: 0.1},
	} {
		out := Compress(in, p)
		for c := 0; c < in.Channels(); c++ {
			for i, v := range out.Channel(c) {
				if v != in.Channel(c)[i] {
					t.Fatalf("%+v: channel %d sample %d = %v, want %v", p, c, i, v, in.Channel(c)[i])
				}
			}
		}
	}
}

func TestCompressNeverIncreasesAmplitude(t *testing.T) {
	in := stereoTestBuffer(t)
	for _, p := range compressorGrid {
		out := Compress(in, p)
		for c := 0; c < in.Channels(); c++ {
			for i, v := range out.Channel(c) {
				if math.Abs(v) > math.Abs(in.Channel(c)[i]) {
					t.Fatalf("%+v: |out| > |in| at channel %d sample %d: %v > %v", p, c, i, v, in.Channel(c)[i])
				}
			}
		}
	}
}

func TestCompressChannelsAreIndependent(t *testing.T) {
	loud := testutil.DeterministicSine(1000, 44100, 1, 2000)
	quiet := testutil.DeterministicSine(1000, 44100, 0.01, 2000)
	p := Params{ThresholdDB: -20, Ratio: 4, Attack: 0.003, Release: 0.01}

	stereo := Compress(testutil.MustBuffer(t, 44100, loud, quiet), p)
	monoLoud := Compress(testutil.MustBuffer(t, 44100, loud), p)

	testutil.RequireSliceNearlyEqual(t, stereo.Channel(0), monoLoud.Channel(0), 0)
	// The quiet channel stays below threshold and must pass unchanged.
	testutil.RequireSliceNearlyEqual(t, stereo.Channel(1), quiet, 0)
}

func TestCompressDegenerateBuffers(t *testing.T) {
	if Compress(nil, DefaultParams()) != nil {
		t.Fatal("Compress(nil) should return nil")
	}
	empty := buffer.New(2, 0, 44100)
	out := Compress(empty, compressorGrid[0])
	if out == nil || !out.SameShape(empty) {
		t.Fatal("Compress of an empty buffer should return an empty buffer of the same shape")
	}
}

func TestCompressSteadyStateDC(t *testing.T) {
	const level = 0.5
	in := testutil.MustBuffer(t, 44100, testutil.DC(level, 44100))
	p := Params{ThresholdDB: -20, KneeDB: 0, Ratio: 4, Attack: 0.003, Release: 0.01}

	out := Compress(in, p)

	excess := 20*math.Log10(level) + 20
	want := level * math.Pow(10, -excess*0.75/20)
	got := out.Channel(0)[out.Len()-1]
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("steady-state output = %v, want %v", got, want)
	}
}

// simulateEnvelope is an independent per-sample peak follower used to check
// the compressor against the curve.
func simulateEnvelope(in []float64, sampleRate, attack, release float64) []float64 {
	a := math.Exp(-1 / (sampleRate * attack))
	r := math.Exp(-1 / (sampleRate * release))
	env := make([]float64, len(in))
	s := 0.0
	for i, x := range in {
		x = math.Abs(x)
		if x > s {
			s = x + (s-x)*a
		} else {
			s = x + (s-x)*r
		}
		env[i] = s
	}
	return env
}

func TestCompressSineScenario(t *testing.T) {
	const (
		sampleRate = 44100.0
		threshold  = -20.0
		ratio      = 4.0
	)
	sine := testutil.DeterministicSine(1000, sampleRate, 1, int(sampleRate))
	p := Params{ThresholdDB: threshold, KneeDB: 0, Ratio: ratio, Attack: 0.003, Release: 0.01}

	out := Compress(testutil.MustBuffer(t, sampleRate, sine), p).Channel(0)
	env := simulateEnvelope(sine, sampleRate, p.Attack, p.Release)

	// Skip the attack transient and look at the settled second half.
	settled := len(sine) / 2
	outPeak := 0.0
	for i := settled; i < len(sine); i++ {
		envDB := 20 * math.Log10(env[i])
		if envDB <= threshold {
			t.Fatalf("envelope at %d = %v dB, expected above threshold once settled", i, envDB)
		}
		outPeak = math.Max(outPeak, math.Abs(out[i]))

		if math.Abs(sine[i]) < 1e-3 {
			continue
		}
		reduction := 20 * math.Log10(math.Abs(sine[i])/math.Abs(out[i]))
		fraction := reduction / (envDB - threshold)
		if math.Abs(fraction-(1-1/ratio)) > 1e-6 {
			t.Fatalf("sample %d: reduction is %v of the excess, want %v", i, fraction, 1-1/ratio)
		}
	}

	outPeakDB := 20 * math.Log10(outPeak)
	if outPeakDB > -11 || outPeakDB < -17 {
		t.Fatalf("settled output peak = %v dBFS, want around -13 dBFS", outPeakDB)
	}
}
