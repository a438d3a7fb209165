package step

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is a one-sided magnitude spectrum.
type Spectrum struct {
	Magnitude []float64 // |H(k)| for bins 0..N/2
	BinHz     float64   // bin spacing in Hz
}

// Frequency returns the center frequency of bin k.
func (s Spectrum) Frequency(k int) float64 {
	return float64(k) * s.BinHz
}

// Peak returns the bin with the largest magnitude, ignoring DC.
func (s Spectrum) Peak() int {
	best := 0
	for k := 1; k < len(s.Magnitude); k++ {
		if best == 0 || s.Magnitude[k] > s.Magnitude[best] {
			best = k
		}
	}

	return best
}

// ImpulseSpectrum differences a unit-step response into an impulse response
// and returns its magnitude spectrum. The response is zero-padded to the next
// power of two; it should be long enough to have settled.
func (a *Analyzer) ImpulseSpectrum(response []float64) (Spectrum, error) {
	if len(response) == 0 {
		return Spectrum{}, ErrEmptyResponse
	}

	if !(a.TickRate > 0) {
		return Spectrum{}, ErrInvalidTickRate
	}

	fftSize := nextPowerOfTwo(len(response))

	in := make([]complex128, fftSize)
	prev := 0.0

	for i, v := range response {
		in[i] = complex(v-prev, 0)
		prev = v
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("step: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("step: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return Spectrum{
		Magnitude: mag,
		BinHz:     a.TickRate / float64(fftSize),
	}, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
