// Command dyninfo prints step response properties of second-order dynamics
// presets.
//
// Usage:
//
//	dyninfo [flags] [preset-name ...]
//
// Without arguments it prints info for every known preset.
//
// Examples:
//
//	dyninfo critical bouncy
//	dyninfo -dt 0.1 -ticks 200 snappy
//	dyninfo -period 2 -damping 0.3 -response 1
//	dyninfo -presets camera.yaml -png steps.png
//	dyninfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dynamics/dynamics"
	"github.com/cwbudde/algo-dynamics/dynamics/preset"
	"github.com/cwbudde/algo-dynamics/measure/step"
)

const customName = "custom"

type entry struct {
	name   string
	params dynamics.Params
}

type row struct {
	entry
	coeffs   dynamics.Coefficients
	metrics  step.Metrics
	response []float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dyninfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	delta := fs.Float64("dt", 1.0/60, "tick length in seconds")
	ticks := fs.Int("ticks", 600, "number of ticks to simulate")
	list := fs.Bool("list", false, "list available preset names")
	file := fs.String("presets", "", "YAML preset file to load in addition to the built-ins")
	png := fs.String("png", "", "write a plot of the step responses to this PNG file")
	period := fs.Float64("period", math.NaN(), "frequency of a custom parameter set")
	damping := fs.Float64("damping", math.NaN(), "damping ratio of a custom parameter set")
	response := fs.Float64("response", math.NaN(), "response gain of a custom parameter set")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dyninfo [flags] [preset-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints step response properties of second-order dynamics presets.\n")
		fmt.Fprintf(stderr, "Without arguments, prints info for all presets.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  dyninfo critical bouncy\n")
		fmt.Fprintf(stderr, "  dyninfo -period 2 -damping 0.3 -response 1\n")
		fmt.Fprintf(stderr, "  dyninfo -presets camera.yaml -png steps.png\n")
		fmt.Fprintf(stderr, "  dyninfo -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	set := preset.BuiltinSet()

	if *file != "" {
		loaded, err := preset.Load(*file)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}

		for name, p := range loaded {
			set[name] = p
		}
	}

	if *list {
		for _, name := range set.Names() {
			fmt.Fprintln(stdout, name)
		}

		return 0
	}

	entries, err := resolveEntries(set, fs.Args(), customParams(*period, *damping, *response))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rows, err := analyze(entries, *delta, *ticks)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	printAnalysis(stdout, rows, *delta, *ticks)

	if *png != "" {
		if err := savePlot(*png, rows, *delta); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	return 0
}

// customParams returns nil when no custom flag was given. Unset flags fall
// back to the defaults.
func customParams(period, damping, response float64) *dynamics.Params {
	if math.IsNaN(period) && math.IsNaN(damping) && math.IsNaN(response) {
		return nil
	}

	p := dynamics.DefaultParams()
	if !math.IsNaN(period) {
		p.Period = period
	}

	if !math.IsNaN(damping) {
		p.Damping = damping
	}

	if !math.IsNaN(response) {
		p.Response = response
	}

	return &p
}

func resolveEntries(set preset.Set, names []string, custom *dynamics.Params) ([]entry, error) {
	if custom != nil {
		if err := custom.Validate(); err != nil {
			return nil, fmt.Errorf("custom parameters: %w", err)
		}
	}

	if len(names) == 0 && custom == nil {
		names = set.Names()
	}

	result := make([]entry, 0, len(names)+1)

	for _, name := range names {
		name = strings.TrimSpace(name)

		p, err := set.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w (use -list to see available)", err)
		}

		result = append(result, entry{name: name, params: p})
	}

	if custom != nil {
		result = append(result, entry{name: customName, params: *custom})
	}

	return result, nil
}

func analyze(entries []entry, delta float64, ticks int) ([]row, error) {
	if !(delta > 0) || math.IsInf(delta, 1) {
		return nil, fmt.Errorf("tick length must be finite and > 0: %g", delta)
	}

	analyzer := step.NewAnalyzer(1 / delta)
	rows := make([]row, 0, len(entries))

	for _, e := range entries {
		resp, err := step.Simulate(e.params, 1, delta, ticks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}

		m, err := analyzer.Analyze(resp, 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.name, err)
		}

		rows = append(rows, row{
			entry:    e,
			coeffs:   e.params.Coefficients(),
			metrics:  m,
			response: resp,
		})
	}

	return rows, nil
}

func printAnalysis(out io.Writer, rows []row, delta float64, ticks int) {
	fmt.Fprintf(out, "Step response over %d ticks of %.4g s\n\n", ticks, delta)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Preset\tf\tzeta\tr\tk0\tk1\tk2\tOvershoot\tUndershoot\tRise\tSettle\t\n")
	fmt.Fprintf(tw, "\t(Hz)\t\t\t\t\t\t(%%)\t(%%)\t(s)\t(s)\t\n")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.3g\t%.3g\t%.3g\t%.4f\t%.4f\t%.4f\t%.1f\t%.1f\t%.3f\t%s\t\n",
			r.name,
			r.params.Period,
			r.params.Damping,
			r.params.Response,
			r.coeffs.K0,
			r.coeffs.K1,
			r.coeffs.K2,
			100*r.metrics.Overshoot,
			100*r.metrics.Undershoot,
			r.metrics.RiseTime,
			settle(r.metrics),
		)
	}

	tw.Flush()
}

func settle(m step.Metrics) string {
	if !m.Settled {
		return "-"
	}

	return fmt.Sprintf("%.3f", m.SettlingTime)
}
