package preset

import (
	"testing"

	"github.com/cwbudde/algo-dynamics/dynamics"
)

func TestBuiltinsAreValid(t *testing.T) {
	for _, p := range Builtins() {
		t.Run(p.String(), func(t *testing.T) {
			params, err := p.Params()
			if err != nil {
				t.Fatalf("Params() error = %v", err)
			}

			if err := params.Validate(); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}

			parsed, err := Parse(p.String())
			if err != nil || parsed != p {
				t.Fatalf("Parse(%q) = %v, %v", p.String(), parsed, err)
			}
		})
	}
}

func TestInvalidPreset(t *testing.T) {
	if _, err := Preset(99).Params(); err == nil {
		t.Fatal("expected error for invalid preset")
	}

	if Preset(99).String() != "unknown" {
		t.Fatalf("String() = %q, want unknown", Preset(99).String())
	}

	if _, err := Parse("wobbly"); err == nil {
		t.Fatal("expected error for unknown name")
	}

	if _, err := NewFilter[dynamics.Scalar](Preset(-1)); err == nil {
		t.Fatal("expected error from NewFilter")
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	p, err := Parse("  Critical ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p != PresetCritical {
		t.Fatalf("Parse() = %v, want critical", p)
	}
}

func TestCriticalPresetDoesNotOvershoot(t *testing.T) {
	f, err := NewFilter[dynamics.Scalar](PresetCritical)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}

	for i := range 600 {
		if y := f.Update(1, 1.0/60); y > 1+1e-12 {
			t.Fatalf("tick %d: overshoot %g", i, y)
		}
	}
}

func TestAnticipatePresetStartsBackwards(t *testing.T) {
	f, err := NewFilter[dynamics.Scalar](PresetAnticipate)
	if err != nil {
		t.Fatalf("NewFilter() error = %v", err)
	}

	f.Update(1, 1.0/60)

	if y := f.Update(1, 1.0/60); y >= 0 {
		t.Fatalf("second output = %g, want a negative wind-up", y)
	}
}

func TestNewRotationFilter(t *testing.T) {
	f, err := NewRotationFilter(PresetSmooth)
	if err != nil {
		t.Fatalf("NewRotationFilter() error = %v", err)
	}

	want, _ := PresetSmooth.Params()
	if f.Params() != want {
		t.Fatalf("Params() = %+v, want %+v", f.Params(), want)
	}
}
