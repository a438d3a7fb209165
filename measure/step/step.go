package step

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dynamics/dynamics"
)

// DefaultBand is the settling band as a fraction of the step size.
const DefaultBand = 0.02

// Errors returned by step analysis functions.
var (
	ErrEmptyResponse   = errors.New("step: response is empty")
	ErrInvalidTickRate = errors.New("step: tick rate must be positive")
	ErrZeroStep        = errors.New("step: target must differ from zero")
	ErrInvalidBand     = errors.New("step: settling band must be in (0, 1)")
)

// Metrics holds step response analysis results.
type Metrics struct {
	Overshoot    float64 // peak excursion past the target, fraction of the step
	Undershoot   float64 // excursion against the step direction, fraction of the step
	PeakIndex    int     // tick of the largest normalised value
	PeakValue    float64 // response value at PeakIndex
	RiseTime     float64 // seconds from 10 % to 90 % of the step, 0 if never reached
	SettlingTime float64 // seconds until the response stays inside the band
	Settled      bool    // response ends inside the band
	FinalError   float64 // |last - target|
}

// Analyzer computes step response metrics for responses sampled at TickRate.
type Analyzer struct {
	TickRate float64 // ticks per second
	Band     float64 // settling band, fraction of the step
}

// NewAnalyzer creates an analyzer with the default settling band.
func NewAnalyzer(tickRate float64) *Analyzer {
	return &Analyzer{TickRate: tickRate, Band: DefaultBand}
}

// Analyze computes all metrics for a response to a step from zero to target.
func (a *Analyzer) Analyze(response []float64, target float64) (Metrics, error) {
	if len(response) == 0 {
		return Metrics{}, ErrEmptyResponse
	}

	if !(a.TickRate > 0) {
		return Metrics{}, ErrInvalidTickRate
	}

	if !(a.Band > 0 && a.Band < 1) {
		return Metrics{}, ErrInvalidBand
	}

	if target == 0 {
		return Metrics{}, ErrZeroStep
	}

	// Work on the response normalised to a unit step so negative targets
	// behave like positive ones.
	norm := floats.ScaleTo(make([]float64, len(response)), 1/target, response)

	peak := floats.MaxIdx(norm)
	last := len(response) - 1

	m := Metrics{
		PeakIndex:  peak,
		PeakValue:  response[peak],
		Overshoot:  math.Max(0, norm[peak]-1),
		Undershoot: math.Max(0, -floats.Min(norm)),
		FinalError: math.Abs(response[last] - target),
	}

	m.RiseTime = a.riseTime(norm)
	m.SettlingTime, m.Settled = a.settlingTime(norm)

	return m, nil
}

// riseTime returns the time between the first crossings of 10 % and 90 %.
func (a *Analyzer) riseTime(norm []float64) float64 {
	lo, hi := -1, -1

	for i, v := range norm {
		if lo < 0 && v >= 0.1 {
			lo = i
		}

		if v >= 0.9 {
			hi = i
			break
		}
	}

	if lo < 0 || hi < 0 {
		return 0
	}

	return float64(hi-lo) / a.TickRate
}

// settlingTime scans backwards for the last tick outside the band.
func (a *Analyzer) settlingTime(norm []float64) (float64, bool) {
	last := len(norm) - 1
	if math.Abs(norm[last]-1) > a.Band {
		return float64(len(norm)) / a.TickRate, false
	}

	for i := last; i >= 0; i-- {
		if math.Abs(norm[i]-1) > a.Band {
			return float64(i+1) / a.TickRate, true
		}
	}

	return 0, true
}

// Simulate runs a scalar filter from rest towards target for n ticks of
// delta seconds and returns the outputs.
func Simulate(p dynamics.Params, target, delta float64, n int) ([]float64, error) {
	f, err := dynamics.NewFromParams[dynamics.Scalar](p)
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, ErrEmptyResponse
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(f.Update(dynamics.Scalar(target), delta))
	}

	return out, nil
}
