// Package cnum provides the complex value type used by the zeta routines.
//
// [Complex] is an immutable (Re, Im) pair; every operation returns a new
// value. Division by a divisor of zero squared magnitude does not panic: it
// returns [Sentinel], with both components +Inf, so plotting code can clamp
// the point instead of handling an error.
package cnum
