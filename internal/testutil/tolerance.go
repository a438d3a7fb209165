package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("tick %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("tick %d: non-finite value %v", i, v)
		}
	}
}

// RequireSameRotation fails t if got and want are further apart than eps,
// treating q and -q as the same rotation.
func RequireSameRotation(t *testing.T, got, want mgl64.Quat, eps float64) {
	t.Helper()
	if d := RotationDistance(got, want); d > eps {
		t.Fatalf("rotation mismatch: got %v, want %v (distance %v > eps %v)", got, want, d, eps)
	}
}

// RotationDistance returns the component-wise distance between a and b
// after aligning b to the hemisphere of a.
func RotationDistance(a, b mgl64.Quat) float64 {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	d := math.Abs(a.W - b.W)
	for i := range 3 {
		d = math.Max(d, math.Abs(a.V[i]-b.V[i]))
	}
	return d
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
