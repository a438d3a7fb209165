package dynamics

// State contains explicit filter runtime state for save/restore workflows.
type State[T any] struct {
	Previous T // last input sample
	Output   T // current output
	Rate     T // current output rate of change per second
}

// Filter is a second-order dynamics filter over a vector-space value type.
type Filter[T Vector[T]] struct {
	params Params
	k      Coefficients

	xp T
	y  T
	yd T
}

// New creates a filter with zero state.
func New[T Vector[T]](period, damping, response float64) (*Filter[T], error) {
	return NewFromParams[T](Params{Period: period, Damping: damping, Response: response})
}

// NewFromParams creates a filter with zero state from a parameter set.
func NewFromParams[T Vector[T]](p Params) (*Filter[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Filter[T]{
		params: p,
		k:      p.Coefficients(),
	}, nil
}

// Params returns the current tuning parameters.
func (f *Filter[T]) Params() Params { return f.params }

// Coefficients returns the cached coefficients.
func (f *Filter[T]) Coefficients() Coefficients { return f.k }

// Output returns the current output without advancing the filter.
func (f *Filter[T]) Output() T { return f.y }

// SetPeriod updates the frequency parameter and recomputes coefficients.
// Running state is kept.
func (f *Filter[T]) SetPeriod(period float64) error {
	if err := validatePeriod(period); err != nil {
		return err
	}

	f.params.Period = period
	f.k = f.params.Coefficients()

	return nil
}

// SetDamping updates the damping ratio and recomputes coefficients.
func (f *Filter[T]) SetDamping(damping float64) error {
	if err := validateDamping(damping); err != nil {
		return err
	}

	f.params.Damping = damping
	f.k = f.params.Coefficients()

	return nil
}

// SetResponse updates the response gain and recomputes coefficients.
func (f *Filter[T]) SetResponse(response float64) error {
	if err := validateResponse(response); err != nil {
		return err
	}

	f.params.Response = response
	f.k = f.params.Coefficients()

	return nil
}

// SetParams replaces all tuning parameters at once.
func (f *Filter[T]) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}

	f.params = p
	f.k = p.Coefficients()

	return nil
}

// Seed overwrites the running state. Call it once before the first Update
// with the previously observed target, the current output and its rate
// (usually zero) to avoid a startup transient.
func (f *Filter[T]) Seed(previous, current, rate T) {
	f.xp = previous
	f.y = current
	f.yd = rate
}

// State returns the running state.
func (f *Filter[T]) State() State[T] {
	return State[T]{Previous: f.xp, Output: f.y, Rate: f.yd}
}

// SetState restores running state captured by State.
func (f *Filter[T]) SetState(s State[T]) {
	f.Seed(s.Previous, s.Output, s.Rate)
}

// Reset clears running state to zero. Parameters are kept.
func (f *Filter[T]) Reset() {
	var zero T
	f.Seed(zero, zero, zero)
}

// Update advances the filter by delta seconds towards input and returns the
// new output. A non-positive or non-finite delta leaves the state untouched.
func (f *Filter[T]) Update(input T, delta float64) T {
	if !validDelta(delta) {
		return f.y
	}

	xd := input.Sub(f.xp).Mul(1 / delta)
	k1 := f.k.StableK1(delta)

	f.xp = input
	f.y = f.y.Add(f.yd.Mul(delta))

	accel := input.Add(xd.Mul(f.k.K2)).Sub(f.y).Sub(f.yd.Mul(f.k.K0))
	f.yd = f.yd.Add(accel.Mul(delta / k1))

	return f.y
}

// ProcessBlock runs one Update per element of src with a fixed delta and
// writes the outputs to dst. dst must be at least as long as src.
func (f *Filter[T]) ProcessBlock(dst, src []T, delta float64) {
	for i, x := range src {
		dst[i] = f.Update(x, delta)
	}
}

// ProcessInPlace runs one Update per element with a fixed delta and
// overwrites buf with the outputs.
func (f *Filter[T]) ProcessInPlace(buf []T, delta float64) {
	for i, x := range buf {
		buf[i] = f.Update(x, delta)
	}
}
