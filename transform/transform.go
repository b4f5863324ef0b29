// SPDX-License-Identifier: MIT

// Package transform builds 4×4 homogeneous transforms and applies them to
// tuples, one at a time or in parallel batches.
//
// Builders return fresh *matrix.Matrix values. Chain composes them in the
// order they should be applied: Chain(rotate, scale, translate) rotates first.
package transform

import (
	"math"

	"github.com/katalvlaran/lvtrace/matrix"
	"github.com/katalvlaran/lvtrace/tuple"
)

// Translation moves points by (x, y, z). Vectors are unaffected (W=0).
func Translation(x, y, z float64) *matrix.Matrix {
	m := matrix.Identity()
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)

	return m
}

// Scaling scales each axis; a negative factor reflects.
func Scaling(x, y, z float64) *matrix.Matrix {
	m := matrix.Identity()
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)

	return m
}

// RotationX rotates by r radians around the X axis (left-handed).
func RotationX(r float64) *matrix.Matrix {
	sin, cos := math.Sincos(r)
	m := matrix.Identity()
	m.Set(1, 1, cos)
	m.Set(1, 2, -sin)
	m.Set(2, 1, sin)
	m.Set(2, 2, cos)

	return m
}

// RotationY rotates by r radians around the Y axis.
func RotationY(r float64) *matrix.Matrix {
	sin, cos := math.Sincos(r)
	m := matrix.Identity()
	m.Set(0, 0, cos)
	m.Set(0, 2, sin)
	m.Set(2, 0, -sin)
	m.Set(2, 2, cos)

	return m
}

// RotationZ rotates by r radians around the Z axis.
func RotationZ(r float64) *matrix.Matrix {
	sin, cos := math.Sincos(r)
	m := matrix.Identity()
	m.Set(0, 0, cos)
	m.Set(0, 1, -sin)
	m.Set(1, 0, sin)
	m.Set(1, 1, cos)

	return m
}

// Shearing moves each coordinate in proportion to the other two:
// xy is "x in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) *matrix.Matrix {
	m := matrix.Identity()
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)

	return m
}

// Chain composes transforms in application order and returns
// ops[n-1] × … × ops[0]. Chain() is the identity.
func Chain(ops ...*matrix.Matrix) *matrix.Matrix {
	rev := make([]*matrix.Matrix, len(ops))
	for i, op := range ops {
		rev[len(ops)-1-i] = op
	}

	return matrix.Chain(rev...)
}

// Apply transforms a single tuple.
func Apply(m *matrix.Matrix, t tuple.Tuple) tuple.Tuple {
	return m.MulTuple(t)
}
