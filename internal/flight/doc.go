// Package flight integrates airborne batted-ball trajectories.
//
// A trajectory advances a six-dimensional kinematic state
// [x, y, z, vx, vy, vz] (meters, meters/second) with classic fourth-order
// Runge-Kutta steps over the aerodynamic force model, and terminates at
// ground contact with the landing sample interpolated exactly onto ground
// level.
//
// Each evaluation is a pure function of its inputs: no I/O, no shared
// mutable state. Trajectories may run concurrently as long as they share
// only the read-only coefficient table.
package flight
