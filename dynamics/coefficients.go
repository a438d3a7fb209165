package dynamics

import "math"

// stabilityMargin scales the minimum k1 that keeps the explicit integration
// step from diverging when delta is large relative to the period.
const stabilityMargin = 1.1

// Coefficients holds the derived filter coefficients.
//
//	k0 = damping / (π · period)
//	k1 = 1 / (2π · period)²
//	k2 = response · damping / (2π · period)
type Coefficients struct {
	K0, K1, K2 float64
}

// Solve derives filter coefficients from the tuning parameters.
//
// Solve performs no validation: a period of zero yields infinite
// coefficients and every subsequent filter output becomes NaN. Use
// [Params.Validate] at the configuration boundary.
func Solve(period, damping, response float64) Coefficients {
	w := 2 * math.Pi * period

	return Coefficients{
		K0: damping / (math.Pi * period),
		K1: 1 / (w * w),
		K2: response * damping / w,
	}
}

// StableK1 returns k1 raised to the smallest value that keeps a step of
// length delta stable.
func (c Coefficients) StableK1(delta float64) float64 {
	return math.Max(c.K1, stabilityMargin*(delta*delta+0.5*delta*c.K0))
}

// NaturalFrequency returns the undamped natural frequency in Hz.
// For coefficients produced by Solve this equals the period parameter.
func (c Coefficients) NaturalFrequency() float64 {
	return 1 / (2 * math.Pi * math.Sqrt(c.K1))
}

// DampingRatio returns the damping ratio encoded in k0 and k1.
func (c Coefficients) DampingRatio() float64 {
	return c.K0 / (2 * math.Sqrt(c.K1))
}
