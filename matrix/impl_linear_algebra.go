// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels on *Matrix.
//
// Purpose:
//   - Transpose, submatrix/minor/cofactor, determinant and inverse for square matrices.
//   - Matrix×Matrix and Matrix×Tuple products.
//
// Determinism & Policy:
//   - Determinant is the textbook Laplace expansion along row 0. It is exponential in n;
//     the intended domain is n <= 4, but every kernel accepts any n.
//   - Invertible tests det != 0 EXACTLY. A determinant of 1e-300 is invertible.
//   - Inverse is cofactor matrix → transpose (adjugate) → divide by det, in that order.
//   - Contract violations (non-square, singular, shape mismatch) panic with a wrapped sentinel.
//
// Complexity quicksheet:
//   - Transpose/Submatrix: O(w*h); Determinant: O(n!); Inverse: O(n^2 * n!); Mul: O(r*n*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvtrace/tuple"
)

// ZeroDeterminant is the exact value that marks a matrix as singular.
const ZeroDeterminant = 0.0

// Transpose returns a new matrix with rows and columns swapped.
// Transpose(Transpose(m)) == m and Transpose(Identity()) == Identity().
// Complexity: O(w*h).
func (m *Matrix) Transpose() *Matrix {
	res := WithDimensions(m.h, m.w) // dims flipped
	var i, j, base int
	// data[i*w + j] → res.data[j*h + i]
	for i = 0; i < m.h; i++ {
		base = i * m.w
		for j = 0; j < m.w; j++ {
			res.data[j*m.h+i] = m.data[base+j]
		}
	}

	return res
}

// Submatrix returns a copy of m without row r and column c.
// The result is (w-1)×(h-1). Panics with ErrOutOfRange on invalid r or c.
func (m *Matrix) Submatrix(r, c int) *Matrix {
	if r < 0 || r >= m.h || c < 0 || c >= m.w {
		violate(opSubmatrix, fmt.Errorf("(%d,%d) in %dx%d: %w", r, c, m.h, m.w, ErrOutOfRange))
	}
	res := WithDimensions(m.w-1, m.h-1)
	k := 0 // write cursor into res.data
	var i, j int
	for i = 0; i < m.h; i++ {
		if i == r {
			continue
		}
		for j = 0; j < m.w; j++ {
			if j == c {
				continue
			}
			res.data[k] = m.data[i*m.w+j]
			k++
		}
	}

	return res
}

// Minor returns the determinant of Submatrix(r, c).
func (m *Matrix) Minor(r, c int) float64 {
	return m.Submatrix(r, c).Determinant()
}

// Cofactor returns Minor(r, c), negated when r+c is odd.
func (m *Matrix) Cofactor(r, c int) float64 {
	minor := m.Minor(r, c)
	if (r+c)%2 != 0 {
		return -minor
	}

	return minor
}

// Determinant computes det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - 0×0: the empty product, 1.
//   - 1×1: the single element.
//   - 2×2: a*d − b*c.
//   - n×n: Σ_i m[0,i] * Cofactor(0, i).
//
// Panics:
//   - ErrNonSquare when Width != Height.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func (m *Matrix) Determinant() float64 {
	if !m.IsSquare() {
		violate(opDeterminant, fmt.Errorf("%dx%d: %w", m.h, m.w, ErrNonSquare))
	}
	switch m.w {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	det := 0.0
	for i := 0; i < m.w; i++ {
		det += m.data[i] * m.Cofactor(0, i)
	}

	return det
}

// Invertible reports whether Determinant() != 0, compared exactly.
// Panics with ErrNonSquare like Determinant.
func (m *Matrix) Invertible() bool {
	return m.Determinant() != ZeroDeterminant
}

// Inverse returns m⁻¹ via the adjugate.
//
// Implementation:
//   - Stage 1: det := Determinant(); exact zero is a contract violation.
//   - Stage 2: build C with C[i,j] = Cofactor(i, j) (not yet transposed).
//   - Stage 3: adj := Cᵀ.
//   - Stage 4: divide every element of adj by det.
//
// Panics:
//   - ErrNonSquare for non-square input, ErrSingular when det == 0.
//     Check Invertible first.
//
// Notes:
//   - Division (not multiplication by 1/det) keeps entries such as
//     Cofactor(2,3)/det bit-identical to Inverse().At(3,2).
func (m *Matrix) Inverse() *Matrix {
	det := m.Determinant()
	if det == ZeroDeterminant {
		violate(opInverse, ErrSingular)
	}

	cof := WithDimensions(m.w, m.h)
	var i, j int
	for i = 0; i < m.h; i++ {
		for j = 0; j < m.w; j++ {
			cof.Set(i, j, m.Cofactor(i, j))
		}
	}

	adj := cof.Transpose()
	for i = range adj.data {
		adj.data[i] /= det
	}

	return adj
}

// Mul returns the product m × o (row-by-column dot products).
// The result is m.Height() × o.Width(); for square operands that is m's shape.
// Panics with ErrNilMatrix for a nil operand, ErrDimensionMismatch unless
// m.Width() == o.Height().
// Complexity: O(r*n*c).
func (m *Matrix) Mul(o *Matrix) *Matrix {
	mustMulCompatible(m, o)

	res := WithDimensions(o.w, m.h)
	var i, j, k int
	var sum float64
	for j = 0; j < o.w; j++ {
		col := o.Column(j) // materialized once per output column
		for i = 0; i < m.h; i++ {
			sum = 0
			for k = 0; k < m.w; k++ {
				sum += m.data[i*m.w+k] * col[k]
			}
			res.data[i*res.w+j] = sum
		}
	}

	return res
}

// MulTuple applies a 4×4 matrix to t: out[i] = row(i) · (X, Y, Z, W).
// Panics with ErrDimensionMismatch unless m is 4×4.
func (m *Matrix) MulTuple(t tuple.Tuple) tuple.Tuple {
	if m.w != tuple.Size || m.h != tuple.Size {
		violate(opMulTuple, fmt.Errorf("%dx%d × tuple: %w", m.h, m.w, ErrDimensionMismatch))
	}
	in := t.Components()
	var out [tuple.Size]float64
	var i, k int
	for i = 0; i < tuple.Size; i++ {
		for k = 0; k < tuple.Size; k++ {
			out[i] += m.data[i*tuple.Size+k] * in[k]
		}
	}

	return tuple.New(out[0], out[1], out[2], out[3])
}
