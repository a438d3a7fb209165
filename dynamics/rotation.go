package dynamics

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// RotationState contains explicit rotation filter state. Rate is an angular
// velocity (axis · radians per second).
type RotationState struct {
	Previous Quat
	Output   Quat
	Rate     Vec3
}

// RotationFilter is a second-order dynamics filter over unit quaternions.
//
// Differences between rotations and the accumulated rate live in the
// tangent space (rotation vectors); the exponential map turns them back into
// rotation increments that are composed on the left of the output.
type RotationFilter struct {
	params Params
	k      Coefficients

	xp Quat
	y  Quat
	yd Vec3
}

// NewRotation creates a rotation filter resting at the identity rotation.
func NewRotation(period, damping, response float64) (*RotationFilter, error) {
	return NewRotationFromParams(Params{Period: period, Damping: damping, Response: response})
}

// NewRotationFromParams creates a rotation filter from a parameter set.
func NewRotationFromParams(p Params) (*RotationFilter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f := &RotationFilter{
		params: p,
		k:      p.Coefficients(),
	}
	f.Reset()

	return f, nil
}

// Params returns the current tuning parameters.
func (f *RotationFilter) Params() Params { return f.params }

// Coefficients returns the cached coefficients.
func (f *RotationFilter) Coefficients() Coefficients { return f.k }

// Output returns the current output rotation.
func (f *RotationFilter) Output() Quat { return f.y }

// SetPeriod updates the frequency parameter and recomputes coefficients.
func (f *RotationFilter) SetPeriod(period float64) error {
	if err := validatePeriod(period); err != nil {
		return err
	}

	f.params.Period = period
	f.k = f.params.Coefficients()

	return nil
}

// SetDamping updates the damping ratio and recomputes coefficients.
func (f *RotationFilter) SetDamping(damping float64) error {
	if err := validateDamping(damping); err != nil {
		return err
	}

	f.params.Damping = damping
	f.k = f.params.Coefficients()

	return nil
}

// SetResponse updates the response gain and recomputes coefficients.
func (f *RotationFilter) SetResponse(response float64) error {
	if err := validateResponse(response); err != nil {
		return err
	}

	f.params.Response = response
	f.k = f.params.Coefficients()

	return nil
}

// SetParams replaces all tuning parameters at once.
func (f *RotationFilter) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	f.params = p
	f.k = p.Coefficients()

	return nil
}

// Seed overwrites the running state. Rotations need not be unit length; a
// zero quaternion is treated as identity on the next Update.
func (f *RotationFilter) Seed(previous, current Quat, rate Vec3) {
	f.xp = previous
	f.y = current
	f.yd = rate
}

// State returns the running state.
func (f *RotationFilter) State() RotationState {
	return RotationState{Previous: f.xp, Output: f.y, Rate: f.yd}
}

// SetState restores running state captured by State.
func (f *RotationFilter) SetState(s RotationState) {
	f.Seed(s.Previous, s.Output, s.Rate)
}

// Reset puts the filter at rest on the identity rotation.
func (f *RotationFilter) Reset() {
	f.Seed(mgl64.QuatIdent(), mgl64.QuatIdent(), Vec3{})
}

// Update advances the filter by delta seconds towards input and returns the
// new output rotation. A non-positive or non-finite delta leaves the state
// untouched.
func (f *RotationFilter) Update(input Quat, delta float64) Quat {
	if !validDelta(delta) {
		return f.y
	}

	// q and -q are the same orientation; follow the representative closest
	// to the output so the filter never takes the long way around. A zero
	// quaternion anywhere in the state or input is read as identity.
	x := normalize(input)
	if x.Dot(f.y) < 0 {
		x = x.Scale(-1)
	}

	xd := logMap(x.Mul(normalize(f.xp).Conjugate())).Mul(1 / delta)
	k1 := f.k.StableK1(delta)

	f.xp = x
	f.y = normalize(expMap(f.yd.Mul(delta)).Mul(normalize(f.y)))

	accel := logMap(x.Mul(f.y.Conjugate())).Add(xd.Mul(f.k.K2)).Sub(f.yd.Mul(f.k.K0))
	f.yd = f.yd.Add(accel.Mul(delta / k1))

	return f.y
}

// ProcessInPlace runs one Update per element with a fixed delta.
func (f *RotationFilter) ProcessInPlace(buf []Quat, delta float64) {
	for i, x := range buf {
		buf[i] = f.Update(x, delta)
	}
}

// RotationVector returns the rotation vector (axis · angle in radians) of q,
// taking the shortest arc. q is normalised first.
func RotationVector(q Quat) Vec3 {
	return logMap(q)
}

// FromRotationVector returns the unit quaternion rotating by |v| radians
// about v.
func FromRotationVector(v Vec3) Quat {
	return expMap(v)
}

func toNumber(q Quat) quat.Number {
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

func fromNumber(n quat.Number) Quat {
	return Quat{W: n.Real, V: Vec3{n.Imag, n.Jmag, n.Kmag}}
}

func normalize(q Quat) Quat {
	n := toNumber(q)

	l := quat.Abs(n)
	if l == 0 {
		return mgl64.QuatIdent()
	}

	return fromNumber(quat.Scale(1/l, n))
}

// logMap returns the shortest-arc rotation vector of q after normalising it.
func logMap(q Quat) Vec3 {
	n := toNumber(normalize(q))
	if n.Real < 0 {
		n = quat.Scale(-1, n)
	}

	l := quat.Log(n)

	return Vec3{2 * l.Imag, 2 * l.Jmag, 2 * l.Kmag}
}

func expMap(v Vec3) Quat {
	return fromNumber(quat.Exp(quat.Number{Imag: v[0] / 2, Jmag: v[1] / 2, Kmag: v[2] / 2}))
}
