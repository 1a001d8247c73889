package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
)

// RequireBufferNearlyEqual fails t unless got and want have the same shape
// and every channel matches within eps.
func RequireBufferNearlyEqual(t testing.TB, got, want *buffer.AudioBuffer, eps float64) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %dx%d@%v, want %dx%d@%v",
			got.Channels(), got.Len(), got.SampleRate(),
			want.Channels(), want.Len(), want.SampleRate())
	}
	for c := 0; c < want.Channels(); c++ {
		diff, _ := MaxAbsDiff(got.Channel(c), want.Channel(c))
		if diff > eps {
			t.Fatalf("channel %d: max diff %v > eps %v", c, diff, eps)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireRange fails t if any element lies outside [lo, hi].
func RequireRange(t testing.TB, data []float64, lo, hi float64) {
	t.Helper()
	for i, v := range data {
		if !(v >= lo && v <= hi) {
			t.Fatalf("index %d: %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
