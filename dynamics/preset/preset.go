// Package preset provides named tuning parameter sets for second-order
// dynamics filters, built in or loaded from YAML files.
package preset

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-dynamics/dynamics"
)

// Preset selects a built-in tuning profile.
type Preset int

const (
	// PresetDefault is slightly underdamped with strong anticipation.
	PresetDefault Preset = iota
	// PresetCritical reaches the target as fast as possible without
	// overshoot.
	PresetCritical
	// PresetSmooth is slow and overdamped, suited to cameras.
	PresetSmooth
	// PresetSnappy is fast with a small overshoot.
	PresetSnappy
	// PresetBouncy oscillates visibly before settling.
	PresetBouncy
	// PresetAnticipate winds up against the direction of motion first.
	PresetAnticipate
)

var builtins = []Preset{
	PresetDefault,
	PresetCritical,
	PresetSmooth,
	PresetSnappy,
	PresetBouncy,
	PresetAnticipate,
}

func (p Preset) String() string {
	switch p {
	case PresetDefault:
		return "default"
	case PresetCritical:
		return "critical"
	case PresetSmooth:
		return "smooth"
	case PresetSnappy:
		return "snappy"
	case PresetBouncy:
		return "bouncy"
	case PresetAnticipate:
		return "anticipate"
	default:
		return "unknown"
	}
}

// Params returns the tuning parameters of a built-in preset.
func (p Preset) Params() (dynamics.Params, error) {
	switch p {
	case PresetDefault:
		return dynamics.DefaultParams(), nil
	case PresetCritical:
		return dynamics.Params{Period: 1, Damping: 1, Response: 0}, nil
	case PresetSmooth:
		return dynamics.Params{Period: 0.5, Damping: 1.5, Response: 0}, nil
	case PresetSnappy:
		return dynamics.Params{Period: 3, Damping: 0.8, Response: 1}, nil
	case PresetBouncy:
		return dynamics.Params{Period: 2, Damping: 0.2, Response: 0}, nil
	case PresetAnticipate:
		return dynamics.Params{Period: 1.5, Damping: 0.7, Response: -1.5}, nil
	default:
		return dynamics.Params{}, fmt.Errorf("preset: invalid preset: %d", p)
	}
}

// Builtins returns all built-in presets in declaration order.
func Builtins() []Preset {
	return append([]Preset(nil), builtins...)
}

// Parse returns the built-in preset with the given name.
func Parse(name string) (Preset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range builtins {
		if p.String() == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("preset: unknown preset %q", name)
}

// NewFilter creates a filter tuned by a built-in preset.
func NewFilter[T dynamics.Vector[T]](p Preset) (*dynamics.Filter[T], error) {
	params, err := p.Params()
	if err != nil {
		return nil, err
	}

	return dynamics.NewFromParams[T](params)
}

// NewRotationFilter creates a rotation filter tuned by a built-in preset.
func NewRotationFilter(p Preset) (*dynamics.RotationFilter, error) {
	params, err := p.Params()
	if err != nil {
		return nil, err
	}

	return dynamics.NewRotationFromParams(params)
}
