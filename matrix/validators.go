// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks shared by kernels.
//   - Validate* return plain wrapped sentinels for callers that prefer errors;
//     must* panic with the same sentinel for kernels, where a bad shape is a contract violation.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrNonSquare unless m is square.
// Typical use: guard Determinant/Inverse at an API boundary instead of recovering a panic.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible returns ErrDimensionMismatch unless a.Width() == b.Height().
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.w != b.h {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d × %dx%d: %w", a.h, a.w, b.h, b.w, ErrDimensionMismatch))
	}

	return nil
}

// ValidateInvertible returns ErrNonSquare or ErrSingular when Inverse would panic.
func ValidateInvertible(m *Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if !m.Invertible() {
		return validatorErrorf("ValidateInvertible", ErrSingular)
	}

	return nil
}

// mustMulCompatible panics with the ValidateMulCompatible error.
func mustMulCompatible(a, b *Matrix) {
	if err := ValidateMulCompatible(a, b); err != nil {
		violate(opMul, err)
	}
}
