// SPDX-License-Identifier: MIT

// Package matrix is the square-matrix half of the lvtrace algebra kernel.
//
// What & Why:
//
//	Matrix is a row-major grid of float64 used mostly at 4×4 for homogeneous
//	transforms, but every kernel is general N×N. It supports transposition,
//	submatrix/minor/cofactor, determinant by Laplace expansion, and inversion
//	through the adjugate.
//
// Contract:
//
//	Operations return new matrices; receivers are never mutated (Set is for
//	building a matrix before it is shared). Malformed input (ragged rows,
//	non-square determinant, singular inverse, mismatched shapes, bad indices)
//	panics with an error wrapping one of the Err* sentinels. Use the
//	Validate* helpers or TryInverse to check first.
//
// Equality:
//
//	Equal compares element-wise with scalar.EpsilonEqual, the same rule as
//	tuple.Tuple.Equal. AllClose takes explicit relative/absolute tolerances
//	for results that went through many products.
//
// Example:
//
//	a := matrix.New([][]float64{
//		{-5, 2, 6, -8},
//		{1, -5, 1, 8},
//		{7, 7, -6, -7},
//		{1, -3, 7, 4},
//	})
//	if a.Invertible() {
//		inv := a.Inverse()        // inv.At(3, 2) == -160.0/532
//		_ = a.Mul(inv).Round(5)   // identity
//	}
package matrix
