// Package numeric provides the floating-point tolerance helpers the
// partitioner leans on everywhere it compares positions, parameters, or
// areas derived from float32 geometry.
//
// # Overview
//
// Nearly every numeric comparison in the sweep — "has the sweep line reached
// this x yet", "did this curve's control point land on the wrong side of the
// chord", "is this the same vertex we already emitted" — is an approximate
// comparison against APPROX_EPSILON, not an exact one. This package centralizes
// that tolerance logic so the sweep driver and B-quad emitter read as
// geometry, not as floating-point bookkeeping.
//
// # Features
//
//   - Floating-Point Comparisons: FloatEquals, FloatGreaterThan, FloatLessThan
//     and their Or-Equal variants provide robust float32 comparisons using an
//     epsilon threshold to mitigate precision errors.
//   - Precision Adjustment: SnapToEpsilon snaps a float32 to the nearest whole
//     number when within tolerance, reducing accumulated precision artifacts.
package numeric
