package dynamics

import (
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/harmonica"

	"github.com/cwbudde/algo-dynamics/internal/testutil"
)

const tick = 1.0 / 60

func mustScalar(t *testing.T, period, damping, response float64) *Filter[Scalar] {
	t.Helper()

	f, err := New[Scalar](period, damping, response)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return f
}

func TestNewValidation(t *testing.T) {
	if _, err := New[Scalar](0, 0.5, 2); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("New(period=0) error = %v, want ErrInvalidPeriod", err)
	}

	if _, err := New[Vec2](1, -1, 2); !errors.Is(err, ErrInvalidDamping) {
		t.Fatalf("New(damping=-1) error = %v, want ErrInvalidDamping", err)
	}

	if _, err := New[Vec3](1, 1, math.NaN()); !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("New(response=NaN) error = %v, want ErrInvalidResponse", err)
	}
}

func TestNewStartsAtZero(t *testing.T) {
	f, err := New[Vec3](1, 0.5, 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if s := f.State(); s != (State[Vec3]{}) {
		t.Fatalf("initial state = %+v, want zero", s)
	}
}

func TestSettersRecomputeCoefficientsAndKeepState(t *testing.T) {
	f := mustScalar(t, 1, 0.5, 2)
	for range 30 {
		f.Update(1, tick)
	}

	before := f.State()

	if err := f.SetPeriod(3); err != nil {
		t.Fatalf("SetPeriod() error = %v", err)
	}

	if err := f.SetDamping(0.9); err != nil {
		t.Fatalf("SetDamping() error = %v", err)
	}

	if err := f.SetResponse(-0.5); err != nil {
		t.Fatalf("SetResponse() error = %v", err)
	}

	if got, want := f.Coefficients(), Solve(3, 0.9, -0.5); got != want {
		t.Fatalf("Coefficients() = %+v, want %+v", got, want)
	}

	if got := f.State(); got != before {
		t.Fatalf("state changed by setters: %+v vs %+v", got, before)
	}
}

func TestSettersRejectInvalidValues(t *testing.T) {
	f := mustScalar(t, 1, 0.5, 2)
	want := f.Coefficients()

	if err := f.SetPeriod(0); err == nil {
		t.Fatal("expected error for zero period")
	}

	if err := f.SetDamping(math.Inf(1)); err == nil {
		t.Fatal("expected error for infinite damping")
	}

	if err := f.SetParams(Params{Period: -2, Damping: 1}); err == nil {
		t.Fatal("expected error for negative period")
	}

	if got := f.Coefficients(); got != want {
		t.Fatalf("rejected setters modified coefficients: %+v vs %+v", got, want)
	}
}

func TestConvergesToConstantTarget(t *testing.T) {
	for _, damping := range []float64{0.1, 0.5, 1, 2, 4} {
		f := mustScalar(t, 1, damping, 0.5)

		var y Scalar
		for range 3600 {
			y = f.Update(1, tick)
		}

		if math.Abs(float64(y)-1) > 1e-6 {
			t.Fatalf("damping=%g: output %g did not converge to 1", damping, y)
		}
	}
}

func TestCriticalDampingDoesNotOvershoot(t *testing.T) {
	for _, period := range []float64{0.5, 1, 3} {
		f := mustScalar(t, period, 1, 0)

		prev := 0.0
		for i := range 1200 {
			y := float64(f.Update(1, tick))
			if y > 1+1e-12 {
				t.Fatalf("period=%g tick %d: overshoot %g", period, i, y)
			}

			if y < prev-1e-12 {
				t.Fatalf("period=%g tick %d: output decreased %g -> %g", period, i, prev, y)
			}

			prev = y
		}
	}
}

func TestStableUnderLargeDelta(t *testing.T) {
	for _, delta := range []float64{0.5, 1, 10} {
		f := mustScalar(t, 1, 1, 0)

		out := make([]float64, 1000)
		for i := range out {
			out[i] = float64(f.Update(1, delta))
		}

		testutil.RequireFinite(t, out)

		for i, y := range out {
			if math.Abs(y) > 3 {
				t.Fatalf("delta=%g tick %d: output %g diverged", delta, i, y)
			}
		}

		if math.Abs(out[len(out)-1]-1) > 1e-3 {
			t.Fatalf("delta=%g: final output %g, want ~1", delta, out[len(out)-1])
		}
	}
}

func TestSeedWithZeroRateHasNoTransient(t *testing.T) {
	f, err := New[Vec3](1, 0.5, 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	target := Vec3{3, -2, 7}
	f.Seed(target, target, Vec3{})

	for i := range 10 {
		if got := f.Update(target, tick); !got.ApproxEqualThreshold(target, 1e-12) {
			t.Fatalf("tick %d: got %v, want %v", i, got, target)
		}
	}
}

func TestUnseededFilterStartsFromZero(t *testing.T) {
	f := mustScalar(t, 1, 0.5, 2)

	y := f.Update(5, tick)
	if y != 0 {
		t.Fatalf("first output = %g, want 0 (position integrates the zero rate first)", y)
	}

	y = f.Update(5, tick)
	if y <= 0 || y >= 5 {
		t.Fatalf("second output = %g, want a partial move away from zero", y)
	}
}

func TestInvalidDeltaIsNoop(t *testing.T) {
	f := mustScalar(t, 1, 0.5, 2)
	for range 10 {
		f.Update(1, tick)
	}

	want := f.State()

	for _, delta := range []float64{0, -tick, math.NaN(), math.Inf(1)} {
		if got := f.Update(42, delta); got != want.Output {
			t.Fatalf("Update(delta=%g) = %g, want unchanged %g", delta, got, want.Output)
		}

		if got := f.State(); got != want {
			t.Fatalf("Update(delta=%g) changed state: %+v vs %+v", delta, got, want)
		}
	}
}

func TestScalarScenario(t *testing.T) {
	f := mustScalar(t, 1.0, 0.5, 2.0)
	f.Seed(0, 0, 0)

	peak := 0.0

	var y Scalar
	for range 300 {
		y = f.Update(1.0, tick)
		peak = math.Max(peak, float64(y))
	}

	if math.Abs(float64(y)-1) > 1e-3 {
		t.Fatalf("output after 300 ticks = %g, want within 1e-3 of 1", y)
	}

	if peak > 1.31 {
		t.Fatalf("peak = %g, want bounded overshoot <= 1.31", peak)
	}

	if peak < 1.2 {
		t.Fatalf("peak = %g, expected visible overshoot for damping 0.5 / response 2", peak)
	}
}

func TestRampTracking(t *testing.T) {
	deltas := testutil.Deltas(3, 1.0/120, 1.0/30, 3000)

	tests := []struct {
		name     string
		response float64
		lag      float64
	}{
		// response 2 makes k2 == k0, cancelling the steady-state ramp lag.
		{name: "anticipating", response: 2, lag: 0},
		{name: "plain", response: 0, lag: Solve(2, 1, 0).K0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := mustScalar(t, 2, 1, tc.response)

			x := 0.0

			var y Scalar
			for _, d := range deltas {
				x += d
				y = f.Update(Scalar(x), d)
			}

			if lag := x - float64(y); math.Abs(lag-tc.lag) > 1e-6 {
				t.Fatalf("ramp lag = %g, want %g", lag, tc.lag)
			}
		})
	}
}

func TestVec2MatchesScalarChannels(t *testing.T) {
	fv, err := New[Vec2](1.5, 0.6, 1.2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	fx := mustScalar(t, 1.5, 0.6, 1.2)
	fy := mustScalar(t, 1.5, 0.6, 1.2)

	xs := testutil.Sine(0.7, tick, 3, 240)
	ys := testutil.Ramp(-2, tick, 240)

	for i := range xs {
		v := fv.Update(Vec2{xs[i], ys[i]}, tick)
		x := fx.Update(Scalar(xs[i]), tick)
		y := fy.Update(Scalar(ys[i]), tick)

		if math.Abs(v[0]-float64(x)) > 1e-15 || math.Abs(v[1]-float64(y)) > 1e-15 {
			t.Fatalf("tick %d: vec=%v scalar=(%g, %g)", i, v, x, y)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	f := mustScalar(t, 1.2, 0.4, 1)

	in := testutil.Sine(0.9, tick, 1, 256)
	for _, x := range in[:96] {
		f.Update(Scalar(x), tick)
	}

	clone := mustScalar(t, 1.2, 0.4, 1)
	clone.SetState(f.State())

	for i, x := range in[96:] {
		y1 := f.Update(Scalar(x), tick)

		y2 := clone.Update(Scalar(x), tick)
		if y1 != y2 {
			t.Fatalf("state mismatch at %d: %g vs %g", i, y1, y2)
		}
	}
}

func TestProcessInPlaceMatchesUpdate(t *testing.T) {
	f1 := mustScalar(t, 0.8, 0.7, 1.5)
	f2 := mustScalar(t, 0.8, 0.7, 1.5)

	in := testutil.Sine(1.3, tick, 2, 200)

	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = float64(f1.Update(Scalar(x), tick))
	}

	buf := make([]Scalar, len(in))
	for i, x := range in {
		buf[i] = Scalar(x)
	}

	f2.ProcessInPlace(buf, tick)

	got := make([]float64, len(buf))
	for i, y := range buf {
		got[i] = float64(y)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestProcessBlockLeavesSource(t *testing.T) {
	f1 := mustScalar(t, 2, 0.4, 0)
	f2 := mustScalar(t, 2, 0.4, 0)

	src := []Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {0, 0, 0}}
	orig := append([]Vec3(nil), src...)

	v1, err := New[Vec3](2, 0.4, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dst := make([]Vec3, len(src))
	v1.ProcessBlock(dst, src, tick)

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("ProcessBlock modified src[%d]", i)
		}

		x := f1.Update(Scalar(src[i][0]), tick)
		y := f2.Update(Scalar(src[i][1]), tick)

		if dst[i][0] != float64(x) || dst[i][1] != float64(y) {
			t.Fatalf("tick %d: block %v, scalar (%g, %g)", i, dst[i], x, y)
		}
	}
}

func TestResetKeepsParams(t *testing.T) {
	f := mustScalar(t, 2, 0.3, 1)
	for range 20 {
		f.Update(4, tick)
	}

	f.Reset()

	if s := f.State(); s != (State[Scalar]{}) {
		t.Fatalf("state after Reset = %+v, want zero", s)
	}

	if p := f.Params(); p != (Params{Period: 2, Damping: 0.3, Response: 1}) {
		t.Fatalf("Params() after Reset = %+v", p)
	}
}

// With response 0 the filter is a damped harmonic oscillator with angular
// frequency 2π·period, which harmonica solves analytically.
func TestMatchesAnalyticSpring(t *testing.T) {
	const fps = 600

	delta := harmonica.FPS(fps)

	for _, damping := range []float64{0.3, 0.5, 1, 2} {
		f := mustScalar(t, 1, damping, 0)
		spring := harmonica.NewSpring(delta, 2*math.Pi, damping)

		pos, vel := 0.0, 0.0
		for i := range 3 * fps {
			pos, vel = spring.Update(pos, vel, 1)

			y := f.Update(1, delta)
			if d := math.Abs(float64(y) - pos); d > 0.01 {
				t.Fatalf("damping=%g tick %d: filter %g vs spring %g", damping, i, y, pos)
			}
		}
	}
}
