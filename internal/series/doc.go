// Package series defines the sample types exchanged between the numeric
// packages and everything that draws or stores their output.
//
//   - [Series]: a named run of (x, y) samples held in parallel slices
//   - [Point]: a single sample, used where points may be skipped
//   - [Set]: the ordered output of one computation
//
// Grids are built with [Linspace] and [IntRange]. Values are never mutated
// after construction; callers own what they receive.
package series
