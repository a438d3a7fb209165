package testutil

import (
	"math"
	"math/rand"
)

// Step returns n ticks of a target held at value.
func Step(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns a target moving at rate units per second, sampled every
// delta seconds.
func Ramp(rate, delta float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rate * delta * float64(i)
	}
	return out
}

// Sine returns a sinusoidal target of freqHz sampled every delta seconds.
func Sine(freqHz, delta, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz * delta
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Deltas returns n frame times drawn uniformly from [lo, hi) with a fixed
// seed, modelling a variable-step clock.
func Deltas(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}
