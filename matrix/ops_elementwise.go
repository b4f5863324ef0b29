// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise arithmetic (Add, Sub, Scale) and tolerance comparison (AllClose).
//   - All loops run over the flat row-major buffer; operands are never mutated.
//
// Policy:
//   - Add/Sub panic with ErrDimensionMismatch on shape mismatch, like Mul.
//   - AllClose returns an error instead: it is a query, usually called from tests
//     and numeric checks where a bad tolerance is input, not a programming bug.

package matrix

import (
	"fmt"
	"math"
)

// Add returns m + o.
func (m *Matrix) Add(o *Matrix) *Matrix {
	mustSameShape(opAdd, m, o)
	out := WithDimensions(m.w, m.h)
	for i, v := range m.data {
		out.data[i] = v + o.data[i]
	}

	return out
}

// Sub returns m - o.
func (m *Matrix) Sub(o *Matrix) *Matrix {
	mustSameShape(opSub, m, o)
	out := WithDimensions(m.w, m.h)
	for i, v := range m.data {
		out.data[i] = v - o.data[i]
	}

	return out
}

// Scale returns s·m.
func (m *Matrix) Scale(s float64) *Matrix {
	out := WithDimensions(m.w, m.h)
	for i, v := range m.data {
		out.data[i] = s * v
	}

	return out
}

// AllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// Negative tolerances are taken by absolute value; NaN or Inf tolerances
// return ErrNaNInf, differing shapes ErrDimensionMismatch.
//
// Unlike Equal, AllClose accepts the rounding noise of chained products,
// e.g. AllClose(m.Mul(m.Inverse()), Identity(), 0, 1e-9).
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for i, bv := range b.data {
		if !(math.Abs(a.data[i]-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil // NaN entries land here too
		}
	}

	return true, nil
}

// ValidateSameShape returns ErrDimensionMismatch unless a and b have equal width and height.
func ValidateSameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.w != b.w || a.h != b.h {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%dx%d vs %dx%d: %w", a.h, a.w, b.h, b.w, ErrDimensionMismatch))
	}

	return nil
}

func mustSameShape(op string, a, b *Matrix) {
	if err := ValidateSameShape(a, b); err != nil {
		violate(op, err)
	}
}
