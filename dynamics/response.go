package dynamics

import (
	"math"
	"math/cmplx"
)

// Response evaluates the continuous transfer function
//
//	H(s) = (1 + k2·s) / (k1·s² + k0·s + 1)
//
// at s = j·2π·freqHz. It describes the filter for small time steps, where
// the k1 stability clamp is inactive.
func (c Coefficients) Response(freqHz float64) complex128 {
	s := complex(0, 2*math.Pi*freqHz)

	num := 1 + complex(c.K2, 0)*s
	den := complex(c.K1, 0)*s*s + complex(c.K0, 0)*s + 1

	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients) MagnitudeDB(freqHz float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz)))
}

// Phase returns the phase response in radians at the given frequency.
func (c Coefficients) Phase(freqHz float64) float64 {
	return cmplx.Phase(c.Response(freqHz))
}

// StepResponse computes n outputs of f for a unit step applied at rest,
// advancing delta seconds per tick. The filter state is saved and restored so
// this method does not modify f.
func StepResponse(f *Filter[Scalar], n int, delta float64) []float64 {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(f.Update(1, delta))
	}

	f.SetState(saved)

	return out
}

// ImpulseResponse computes n outputs of f for a single-tick unit input
// applied at rest. Like StepResponse it leaves the state of f unchanged.
func ImpulseResponse(f *Filter[Scalar], n int, delta float64) []float64 {
	if n <= 0 {
		return nil
	}

	saved := f.State()
	f.Reset()

	out := make([]float64, n)
	for i := range out {
		x := Scalar(0)
		if i == 0 {
			x = 1
		}

		out[i] = float64(f.Update(x, delta))
	}

	f.SetState(saved)

	return out
}
