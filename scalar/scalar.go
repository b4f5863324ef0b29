// SPDX-License-Identifier: MIT

// Package scalar holds the float64 policy shared by tuple and matrix.
//
// Purpose:
//   - Define the single comparison tolerance used across the module.
//   - Provide decimal rounding for display and fixture comparison.
//
// Determinism & Policy:
//   - Epsilon is the ONLY tolerance; tuple.Equal and matrix.Equal both call
//     EpsilonEqual, so approximate comparisons can never disagree.
//   - RoundTo is never used inside algebraic composition.
package scalar

import "math"

// Epsilon is the IEEE-754 binary64 machine epsilon (2^-52), the smallest
// increment distinguishable from 1.0.
const Epsilon = 0x1p-52

// EpsilonEqual reports whether |a-b| < Epsilon.
// NaN is unequal to everything, including itself.
// Complexity: O(1).
func EpsilonEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
//
// Implementation:
//   - Stage 1: scale by 10^places.
//   - Stage 2: math.Round (ties away from zero).
//   - Stage 3: scale back down.
//
// Notes:
//   - Negative places round to tens, hundreds, ... (RoundTo(1250, -2) == 1300).
//   - NaN and ±Inf pass through unchanged.
func RoundTo(v float64, places int) float64 {
	// Non-finite values have no decimal expansion; leave them alone.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if places < 0 {
		p := math.Pow(10, float64(-places))
		return math.Round(v/p) * p
	}
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}
