// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinels. Kernel contract violations
// panic with an error value that wraps one of these, so a caller that recovers
// can still match it via errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// Context is added with matrixErrorf at the detection site.

var (
	// ErrRaggedRows is raised by New when rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrInvalidDimensions is raised when a requested dimension is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible operand shapes (Mul, MulTuple).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is raised by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf rejects a NaN or infinite tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation tags for uniform error wrapping (no magic strings).
const (
	opNew          = "New"
	opWithDims     = "WithDimensions"
	opAt           = "At"
	opSet          = "Set"
	opRow          = "Row"
	opColumn       = "Column"
	opSubmatrix    = "Submatrix"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opMul          = "Mul"
	opMulTuple     = "MulTuple"
	opIdentityCtor = "NewIdentity"
	opAdd          = "Add"
	opSub          = "Sub"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with "Matrix.<op>: ".
// Use only with a non-nil err.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", op, err)
}

// violate panics with a wrapped sentinel. Reserved for contract violations.
func violate(op string, err error) {
	panic(matrixErrorf(op, err))
}
