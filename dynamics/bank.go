package dynamics

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Bank runs many independent scalar channels that share one parameter set.
// State is kept in contiguous slices so each tick is a handful of block
// kernels instead of a per-channel loop over Filter values.
type Bank struct {
	params Params
	k      Coefficients

	xp []float64
	y  []float64
	yd []float64

	xd  []float64
	tmp []float64
}

// NewBank creates a bank of channels filters with zero state.
func NewBank(channels int, period, damping, response float64) (*Bank, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("dynamics: channel count must be > 0: %d", channels)
	}

	p := Params{Period: period, Damping: damping, Response: response}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Bank{
		params: p,
		k:      p.Coefficients(),
		xp:     make([]float64, channels),
		y:      make([]float64, channels),
		yd:     make([]float64, channels),
		xd:     make([]float64, channels),
		tmp:    make([]float64, channels),
	}, nil
}

// Channels returns the number of channels.
func (b *Bank) Channels() int { return len(b.y) }

// Params returns the shared tuning parameters.
func (b *Bank) Params() Params { return b.params }

// SetPeriod updates the shared frequency parameter.
func (b *Bank) SetPeriod(period float64) error {
	if err := validatePeriod(period); err != nil {
		return err
	}

	b.params.Period = period
	b.k = b.params.Coefficients()

	return nil
}

// SetDamping updates the shared damping ratio.
func (b *Bank) SetDamping(damping float64) error {
	if err := validateDamping(damping); err != nil {
		return err
	}

	b.params.Damping = damping
	b.k = b.params.Coefficients()

	return nil
}

// SetResponse updates the shared response gain.
func (b *Bank) SetResponse(response float64) error {
	if err := validateResponse(response); err != nil {
		return err
	}

	b.params.Response = response
	b.k = b.params.Coefficients()

	return nil
}

// Seed overwrites the running state of every channel.
func (b *Bank) Seed(previous, current, rate []float64) error {
	if err := b.checkLen("previous", previous); err != nil {
		return err
	}

	if err := b.checkLen("current", current); err != nil {
		return err
	}

	if err := b.checkLen("rate", rate); err != nil {
		return err
	}

	copy(b.xp, previous)
	copy(b.y, current)
	copy(b.yd, rate)

	return nil
}

// Reset clears all channel state.
func (b *Bank) Reset() {
	clear(b.xp)
	clear(b.y)
	clear(b.yd)
}

// Output copies the current outputs into dst.
func (b *Bank) Output(dst []float64) error {
	if err := b.checkLen("dst", dst); err != nil {
		return err
	}

	copy(dst, b.y)

	return nil
}

// Update advances every channel by delta seconds towards input and writes the
// outputs to dst. dst may alias input. A non-positive or non-finite delta only
// copies the current outputs.
func (b *Bank) Update(dst, input []float64, delta float64) error {
	if err := b.checkLen("input", input); err != nil {
		return err
	}

	if err := b.checkLen("dst", dst); err != nil {
		return err
	}

	if !validDelta(delta) {
		copy(dst, b.y)
		return nil
	}

	k0, k2 := b.k.K0, b.k.K2
	k1 := b.k.StableK1(delta)

	// xd = (input - xp) / delta
	vecmath.ScaleBlock(b.xd, b.xp, -1)
	vecmath.AddBlockInPlace(b.xd, input)
	vecmath.ScaleBlockInPlace(b.xd, 1/delta)

	copy(b.xp, input)

	// y += delta * yd
	vecmath.ScaleBlock(b.tmp, b.yd, delta)
	vecmath.AddBlockInPlace(b.y, b.tmp)

	for i := range b.tmp {
		b.tmp[i] = b.xp[i] + k2*b.xd[i] - b.y[i] - k0*b.yd[i]
	}

	vecmath.ScaleBlockInPlace(b.tmp, delta/k1)
	vecmath.AddBlockInPlace(b.yd, b.tmp)

	copy(dst, b.y)

	return nil
}

func (b *Bank) checkLen(name string, s []float64) error {
	if len(s) != len(b.y) {
		return fmt.Errorf("dynamics: %s length %d does not match channel count %d", name, len(s), len(b.y))
	}

	return nil
}
