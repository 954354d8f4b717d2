// Package aero provides the aerodynamic building blocks for batted-ball
// flight simulation:
//
//   - [Table]: precomputed drag/lift coefficient grids with bilinear lookup
//   - [WindModel]: altitude-dependent wind providers ([Shear], [Still])
//   - [Force]: net drag + Magnus force on a spinning ball
//
// All lookups clamp out-of-range inputs instead of failing: a 70 m/s ball
// still gets a valid, saturated coefficient.
//
// # Thread Safety
//
// A Table is immutable after construction and safe to share across
// goroutines without synchronization. Wind models are stateless values.
package aero
