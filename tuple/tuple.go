// SPDX-License-Identifier: MIT

// Package tuple - homogeneous 4-component values (points, vectors, colors).
//
// Purpose:
//   - One value type for positions (W=1), directions (W=0) and RGB colors.
//   - Pure arithmetic: every operation returns a new Tuple, receivers are never mutated.
//
// Determinism & Policy:
//   - Equality is approximate via scalar.EpsilonEqual on all four components.
//   - IsPoint/IsVector compare W exactly; the tags are set by the factories.
//   - Color channels are NOT clamped here; clamping belongs to the encoder.
//
// Notes:
//   - point − point = vector, point − vector = point, vector ± vector = vector.
//     Adding two points yields W=2 and is not guarded; callers keep the algebra honest.
package tuple

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtrace/scalar"
)

// Structural tags stored in W.
const (
	VectorTag = 0.0
	PointTag  = 1.0
)

// Size is the number of components in a Tuple.
const Size = 4

// Tuple is a homogeneous coordinate (X, Y, Z, W).
// For colors X, Y, Z are red, green and blue; W is unused and 0.
type Tuple struct {
	X, Y, Z, W float64
}

var _ fmt.Stringer = Tuple{}

// New returns the tuple (x, y, z, w).
func New(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point returns a position (x, y, z, 1).
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: PointTag}
}

// Vector returns a direction (x, y, z, 0).
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: VectorTag}
}

// Color returns an RGB color (r, g, b, 0). Channels may lie outside [0,1].
func Color(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b}
}

// Red returns the raw red channel.
func (t Tuple) Red() float64 { return t.X }

// Green returns the raw green channel.
func (t Tuple) Green() float64 { return t.Y }

// Blue returns the raw blue channel.
func (t Tuple) Blue() float64 { return t.Z }

// IsPoint reports whether W is exactly 1.
func (t Tuple) IsPoint() bool { return t.W == PointTag }

// IsVector reports whether W is exactly 0.
func (t Tuple) IsVector() bool { return t.W == VectorTag }

// At returns component i (0=X, 1=Y, 2=Z, 3=W).
// Panics with ErrOutOfRange for any other index.
func (t Tuple) At(i int) float64 {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	case 3:
		return t.W
	}
	panic(fmt.Errorf("Tuple.At(%d): %w", i, ErrOutOfRange))
}

// Components returns the four components in X, Y, Z, W order.
func (t Tuple) Components() [Size]float64 {
	return [Size]float64{t.X, t.Y, t.Z, t.W}
}

// Add returns t + o, component-wise.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W}
}

// Sub returns t − o, component-wise.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W}
}

// Neg returns −t.
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Scale returns t * s.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div returns t / s. Division by zero yields ±Inf/NaN components.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Hadamard returns the component-wise product (color blending).
func (t Tuple) Hadamard(o Tuple) Tuple {
	return Tuple{t.X * o.X, t.Y * o.Y, t.Z * o.Z, t.W * o.W}
}

// Dot returns the sum of pairwise products over all four components.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3D cross product of the XYZ parts.
// The result is always tagged as a vector, whatever the operands are.
func (t Tuple) Cross(o Tuple) Tuple {
	return Tuple{
		X: t.Y*o.Z - t.Z*o.Y,
		Y: t.Z*o.X - t.X*o.Z,
		Z: t.X*o.Y - t.Y*o.X,
		W: VectorTag,
	}
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize divides every component by Magnitude.
// A zero tuple yields NaN components; use NormalizeChecked to fail instead.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

// NormalizeChecked is Normalize with an explicit zero-length guard.
func (t Tuple) NormalizeChecked() (Tuple, error) {
	m := t.Magnitude()
	if m == 0 {
		return Tuple{}, fmt.Errorf("Tuple.NormalizeChecked(%v): %w", t, ErrZeroMagnitude)
	}

	return t.Div(m), nil
}

// Equal reports whether all components are within scalar.Epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return scalar.EpsilonEqual(t.X, o.X) &&
		scalar.EpsilonEqual(t.Y, o.Y) &&
		scalar.EpsilonEqual(t.Z, o.Z) &&
		scalar.EpsilonEqual(t.W, o.W)
}

// String implements fmt.Stringer.
func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}

// Sum folds Add over ts. Sum() is the zero tuple.
func Sum(ts ...Tuple) Tuple {
	var acc Tuple
	for _, t := range ts {
		acc = acc.Add(t)
	}

	return acc
}
