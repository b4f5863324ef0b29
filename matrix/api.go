// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Free-function spellings of the method kernels for call sites that read better
//     as Product(a, b) than a.Mul(b).
//   - No logic duplication: each facade delegates to the canonical method.
//   - TryInverse offers an error-returning path for callers that cannot pre-check.

package matrix

import "github.com/katalvlaran/lvtrace/tuple"

// Product is an alias for a.Mul(b).
func Product(a, b *Matrix) *Matrix { return a.Mul(b) }

// T is an alias for m.Transpose().
func T(m *Matrix) *Matrix { return m.Transpose() }

// Det is an alias for m.Determinant().
func Det(m *Matrix) float64 { return m.Determinant() }

// InverseOf is an alias for m.Inverse().
func InverseOf(m *Matrix) *Matrix { return m.Inverse() }

// Apply is an alias for m.MulTuple(t).
func Apply(m *Matrix, t tuple.Tuple) tuple.Tuple { return m.MulTuple(t) }

// TryInverse returns m⁻¹, or ErrNilMatrix/ErrNonSquare/ErrSingular instead of panicking.
func TryInverse(m *Matrix) (*Matrix, error) {
	if err := ValidateInvertible(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse(), nil
}

// Chain multiplies ms left to right: Chain(a, b, c) == a×b×c.
// Chain() is the 4×4 identity.
func Chain(ms ...*Matrix) *Matrix {
	if len(ms) == 0 {
		return Identity()
	}
	acc := ms[0].Clone()
	for _, m := range ms[1:] {
		acc = acc.Mul(m)
	}

	return acc
}
