// Package dynamics provides second-order dynamics filters that make an output
// value follow a moving target with tunable frequency, damping and response.
//
// The filter integrates
//
//	y + k0·y' + k1·y'' = x + k2·x'
//
// one tick at a time, where the coefficients are derived from three tuning
// parameters (see [Solve]):
//
//   - period:   characteristic frequency in cycles per second
//   - damping:  damping ratio (0 undamped, 1 critical, >1 overdamped)
//   - response: anticipation gain applied to the target's rate of change
//
// Supported value types:
//   - [Filter] for any type implementing [Vector]: [Scalar], [Vec2], [Vec3]
//   - [RotationFilter] for unit quaternions ([Quat]), integrated in
//     angular-velocity space through log/exp maps
//   - [Bank] for many independent scalar channels sharing one parameter set
//
// All filters are stateful and deterministic. A filter starts from zero state;
// call Seed with observed values before the first Update to avoid a jump from
// zero. Update treats a non-positive or non-finite delta as a no-op.
//
// Instances are not safe for concurrent use.
package dynamics
