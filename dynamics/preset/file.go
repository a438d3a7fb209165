package preset

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dynamics/dynamics"
)

// ErrNotFound is returned by Set.Lookup for unknown names.
var ErrNotFound = errors.New("preset: not found")

// File is the on-disk layout of a preset file:
//
//	presets:
//	  camera:
//	    period: 0.8
//	    damping: 1
//	    response: 0
type File struct {
	Presets map[string]dynamics.Params `yaml:"presets"`
}

// Set is a validated collection of named parameter sets.
type Set map[string]dynamics.Params

// Load reads and validates a YAML preset file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: failed to read %s: %w", path, err)
	}

	set, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}

	return set, nil
}

// Decode parses and validates YAML preset data.
func Decode(data []byte) (Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	if len(f.Presets) == 0 {
		return nil, errors.New("no presets defined")
	}

	set := make(Set, len(f.Presets))
	for name, p := range f.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}

		set[name] = p
	}

	return set, nil
}

// Encode renders the set as YAML in the File layout.
func (s Set) Encode() ([]byte, error) {
	return yaml.Marshal(File{Presets: s})
}

// Names returns the preset names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the parameters stored under name, falling back to the
// built-in presets.
func (s Set) Lookup(name string) (dynamics.Params, error) {
	if p, ok := s[name]; ok {
		return p, nil
	}

	if b, err := Parse(name); err == nil {
		return b.Params()
	}

	return dynamics.Params{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// BuiltinSet returns the built-in presets as a Set.
func BuiltinSet() Set {
	set := make(Set, len(builtins))
	for _, b := range builtins {
		p, _ := b.Params()
		set[b.String()] = p
	}

	return set
}
