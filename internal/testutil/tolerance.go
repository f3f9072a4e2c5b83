package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ctrl/dsp/core"
)

// RequireNearlyEqual fails t if got and want differ by more than eps
// (absolute tolerance).
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireWithinRel fails t if got is further than rel * |want| from want.
// A zero want therefore demands an exact match.
func RequireWithinRel(t *testing.T, got, want, rel float64) {
	t.Helper()
	if !core.WithinRel(got, want, rel) {
		t.Fatalf("got %v, want %v within %.3g%% (diff %v)", got, want, rel*100, math.Abs(got-want))
	}
}

// RequireClose fails t unless got and want agree within eps, either
// absolutely or relative to the larger magnitude (core.NearlyEqual).
func RequireClose(t *testing.T, got, want, eps float64) {
	t.Helper()
	if !core.NearlyEqual(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
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
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
