package dynamics

import (
	"errors"
	"fmt"
	"math"
)

// Defaults used by DefaultParams.
const (
	DefaultPeriod   = 1.0
	DefaultDamping  = 0.5
	DefaultResponse = 2.0
)

// Errors returned by parameter validation.
var (
	ErrInvalidPeriod   = errors.New("dynamics: period must be finite and > 0")
	ErrInvalidDamping  = errors.New("dynamics: damping must be finite and >= 0")
	ErrInvalidResponse = errors.New("dynamics: response must be finite")
)

// Params are the tuning parameters of a second-order filter.
type Params struct {
	// Period is the characteristic response frequency in cycles per second.
	Period float64 `yaml:"period"`
	// Damping is the damping ratio.
	Damping float64 `yaml:"damping"`
	// Response scales the reaction to the target's rate of change.
	Response float64 `yaml:"response"`
}

// DefaultParams returns a slightly underdamped, anticipating response.
func DefaultParams() Params {
	return Params{
		Period:   DefaultPeriod,
		Damping:  DefaultDamping,
		Response: DefaultResponse,
	}
}

// Validate reports whether p can be used to build a stable filter.
func (p Params) Validate() error {
	if err := validatePeriod(p.Period); err != nil {
		return err
	}

	if err := validateDamping(p.Damping); err != nil {
		return err
	}

	return validateResponse(p.Response)
}

// Coefficients derives the filter coefficients for p.
func (p Params) Coefficients() Coefficients {
	return Solve(p.Period, p.Damping, p.Response)
}

func (p Params) String() string {
	return fmt.Sprintf("period=%g damping=%g response=%g", p.Period, p.Damping, p.Response)
}

func validatePeriod(v float64) error {
	if !isFinite(v) || v <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidPeriod, v)
	}

	return nil
}

func validateDamping(v float64) error {
	if !isFinite(v) || v < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidDamping, v)
	}

	return nil
}

func validateResponse(v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %g", ErrInvalidResponse, v)
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validDelta reports whether a time step can be integrated.
func validDelta(delta float64) bool {
	return delta > 0 && !math.IsInf(delta, 1)
}
