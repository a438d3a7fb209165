package animate

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dynamics/dynamics"
)

// Errors returned by Animator.
var (
	ErrNoTarget   = errors.New("animate: target is not bound")
	ErrNoDepend   = errors.New("animate: destination property is not bound")
	ErrNotReady   = errors.New("animate: Ready has not been called")
	ErrNilStepper = errors.New("animate: stepper is nil")
)

// Mode selects which host clock drives an animator.
type Mode int

const (
	// ModeProcess steps on the variable-step frame clock.
	ModeProcess Mode = iota
	// ModePhysics steps on the fixed-step simulation clock.
	ModePhysics
)

func (m Mode) String() string {
	switch m {
	case ModeProcess:
		return "process"
	case ModePhysics:
		return "physics"
	default:
		return "unknown"
	}
}

// Stepper is the filter contract an animator drives. *dynamics.Filter[T]
// satisfies Stepper[T, T]; *dynamics.RotationFilter satisfies
// Stepper[dynamics.Quat, dynamics.Vec3].
type Stepper[T, R any] interface {
	Seed(previous, current T, rate R)
	Update(input T, delta float64) T
	SetPeriod(period float64) error
	SetDamping(damping float64) error
	SetResponse(response float64) error
	Params() dynamics.Params
}

// Property is a readable and writable value on some host object.
type Property[T any] struct {
	Get func() T
	Set func(T)
}

// Option mutates animator configuration.
type Option func(*config) error

type config struct {
	mode   Mode
	active bool
}

func defaultConfig() config {
	return config{mode: ModePhysics}
}

// WithMode selects the driving clock. Default is ModePhysics.
func WithMode(mode Mode) Option {
	return func(cfg *config) error {
		if mode != ModeProcess && mode != ModePhysics {
			return fmt.Errorf("animate: invalid mode: %d", mode)
		}

		cfg.mode = mode

		return nil
	}
}

// WithActive sets the initial active flag. Default is inactive.
func WithActive(active bool) Option {
	return func(cfg *config) error {
		cfg.active = active
		return nil
	}
}

// Animator drives a destination property towards a target through a filter.
type Animator[T, R any] struct {
	stepper Stepper[T, R]
	target  func() T
	depend  Property[T]

	mode   Mode
	active bool
	ready  bool
	ticks  uint64
}

// New creates an animator. target and depend may be left unbound and bound
// later with Bind; Ready and the process hooks report unbound references.
//
// Only an untyped nil stepper is rejected. A typed nil pointer such as
// (*dynamics.Filter[T])(nil) is accepted and panics on Ready; the NewVector
// family of constructors always passes a live filter.
func New[T, R any](stepper Stepper[T, R], target func() T, depend Property[T], opts ...Option) (*Animator[T, R], error) {
	if stepper == nil {
		return nil, ErrNilStepper
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Animator[T, R]{
		stepper: stepper,
		target:  target,
		depend:  depend,
		mode:    cfg.mode,
		active:  cfg.active,
	}, nil
}

// Bind replaces the target and destination references. The animator must be
// made Ready again before it steps.
func (a *Animator[T, R]) Bind(target func() T, depend Property[T]) {
	a.target = target
	a.depend = depend
	a.ready = false
}

// Ready seeds the filter from the observed target and destination with a
// zero rate. It must be called once before the first tick.
func (a *Animator[T, R]) Ready() error {
	if err := a.check(); err != nil {
		return err
	}

	var rate R
	a.stepper.Seed(a.target(), a.depend.Get(), rate)
	a.ready = true

	return nil
}

// Process steps the animator from the variable-step clock. It does nothing
// unless the animator is active and in ModeProcess.
func (a *Animator[T, R]) Process(delta float64) error {
	if !a.active || a.mode != ModeProcess {
		return nil
	}

	return a.step(delta)
}

// PhysicsProcess steps the animator from the fixed-step clock. It does
// nothing unless the animator is active and in ModePhysics.
func (a *Animator[T, R]) PhysicsProcess(delta float64) error {
	if !a.active || a.mode != ModePhysics {
		return nil
	}

	return a.step(delta)
}

// Step advances the animator regardless of mode and active flag.
func (a *Animator[T, R]) Step(delta float64) error {
	return a.step(delta)
}

func (a *Animator[T, R]) step(delta float64) error {
	if err := a.check(); err != nil {
		return err
	}

	if !a.ready {
		return ErrNotReady
	}

	a.depend.Set(a.stepper.Update(a.target(), delta))
	a.ticks++

	return nil
}

func (a *Animator[T, R]) check() error {
	if a.target == nil {
		return ErrNoTarget
	}

	if a.depend.Get == nil || a.depend.Set == nil {
		return ErrNoDepend
	}

	return nil
}

// Active reports whether the animator reacts to its clock.
func (a *Animator[T, R]) Active() bool { return a.active }

// SetActive enables or disables the animator.
func (a *Animator[T, R]) SetActive(active bool) { a.active = active }

// Mode returns the driving clock.
func (a *Animator[T, R]) Mode() Mode { return a.mode }

// SetMode selects the driving clock.
func (a *Animator[T, R]) SetMode(mode Mode) error {
	if mode != ModeProcess && mode != ModePhysics {
		return fmt.Errorf("animate: invalid mode: %d", mode)
	}

	a.mode = mode

	return nil
}

// Ticks returns how many times the animator has stepped.
func (a *Animator[T, R]) Ticks() uint64 { return a.ticks }

// Params returns the filter tuning parameters.
func (a *Animator[T, R]) Params() dynamics.Params { return a.stepper.Params() }

// SetPeriod forwards to the filter.
func (a *Animator[T, R]) SetPeriod(period float64) error { return a.stepper.SetPeriod(period) }

// SetDamping forwards to the filter.
func (a *Animator[T, R]) SetDamping(damping float64) error { return a.stepper.SetDamping(damping) }

// SetResponse forwards to the filter.
func (a *Animator[T, R]) SetResponse(response float64) error {
	return a.stepper.SetResponse(response)
}
