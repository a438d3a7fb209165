// Package step measures the step response of second-order dynamics filters.
//
// The package reports the classic time-domain figures of a step response:
//
//   - Overshoot:    peak excursion past the target, relative to the step
//   - Undershoot:   initial excursion against the step direction
//   - RiseTime:     time from 10 % to 90 % of the step
//   - SettlingTime: time after which the response stays inside the band
//   - FinalError:   distance from the target at the last tick
//
// and the magnitude spectrum of the corresponding impulse response, obtained
// by differencing the step response and transforming it with an FFT.
//
// # Usage
//
//	resp, _ := step.Simulate(dynamics.Params{Period: 1, Damping: 0.5}, 1, 1.0/60, 600)
//	m, err := step.NewAnalyzer(60).Analyze(resp, 1)
//	fmt.Printf("overshoot = %.1f %%\n", 100*m.Overshoot)
package step
