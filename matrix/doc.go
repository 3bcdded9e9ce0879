// Package matrix provides the dense square storage behind the participant
// graph: a row-major float64 buffer with bounds-checked accessors.
//
// A value of math.Inf(1) marks a missing edge, the same convention the
// distance-matrix solvers of this family use. NaN is always rejected.
//
// Matrices here are small (one row per participant), so O(n²) memory and
// O(n²) Clone are acceptable; the scheduler clones the table once per round.
package matrix
