// Package webdemo holds the browser demo state machine: a pointer-follow
// filter driven at a fixed tick rate, independent of syscall/js so it can be
// tested natively.
package webdemo

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dynamics/dynamics"
	"github.com/cwbudde/algo-dynamics/measure/step"
)

// Engine runs a 2D filter that chases a target point.
type Engine struct {
	tickRate float64
	running  bool

	target dynamics.Vec2
	filter *dynamics.Filter[dynamics.Vec2]
}

// NewEngine creates an engine advancing tickRate ticks per second.
func NewEngine(tickRate float64) (*Engine, error) {
	if !(tickRate > 0) || math.IsInf(tickRate, 1) {
		return nil, fmt.Errorf("tick rate must be > 0: %f", tickRate)
	}

	f, err := dynamics.NewFromParams[dynamics.Vec2](dynamics.DefaultParams())
	if err != nil {
		return nil, err
	}

	return &Engine{
		tickRate: tickRate,
		running:  true,
		filter:   f,
	}, nil
}

// Params returns the current tuning parameters.
func (e *Engine) Params() dynamics.Params { return e.filter.Params() }

// SetParams replaces all tuning parameters.
func (e *Engine) SetParams(p dynamics.Params) error { return e.filter.SetParams(p) }

// SetPeriod updates the frequency parameter.
func (e *Engine) SetPeriod(v float64) error { return e.filter.SetPeriod(v) }

// SetDamping updates the damping ratio.
func (e *Engine) SetDamping(v float64) error { return e.filter.SetDamping(v) }

// SetResponse updates the response gain.
func (e *Engine) SetResponse(v float64) error { return e.filter.SetResponse(v) }

// SetRunning pauses or resumes Render.
func (e *Engine) SetRunning(running bool) { e.running = running }

// SetTarget moves the point the filter chases.
func (e *Engine) SetTarget(x, y float64) { e.target = dynamics.Vec2{x, y} }

// Seed places the filter at (x, y) at rest, targeting the same point.
func (e *Engine) Seed(x, y float64) {
	e.target = dynamics.Vec2{x, y}
	e.filter.Seed(e.target, e.target, dynamics.Vec2{})
}

// Position returns the current filter output.
func (e *Engine) Position() (float64, float64) {
	p := e.filter.Output()
	return p[0], p[1]
}

// Render advances the filter by ticks steps and returns the interleaved
// x, y positions after each tick. A paused engine repeats its position.
func (e *Engine) Render(ticks int) []float32 {
	if ticks <= 0 {
		return nil
	}

	out := make([]float32, 2*ticks)
	delta := 1 / e.tickRate

	for i := range ticks {
		p := e.filter.Output()
		if e.running {
			p = e.filter.Update(e.target, delta)
		}

		out[2*i] = float32(p[0])
		out[2*i+1] = float32(p[1])
	}

	return out
}

// ResponseCurveDB evaluates the magnitude response in dB at freqs.
func (e *Engine) ResponseCurveDB(freqs []float64) []float32 {
	c := e.filter.Coefficients()

	out := make([]float32, len(freqs))
	for i, f := range freqs {
		out[i] = float32(c.MagnitudeDB(f))
	}

	return out
}

// StepCurve simulates a unit step with the current parameters.
func (e *Engine) StepCurve(ticks int) ([]float32, error) {
	resp, err := step.Simulate(e.filter.Params(), 1, 1/e.tickRate, ticks)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(resp))
	for i, v := range resp {
		out[i] = float32(v)
	}

	return out, nil
}
