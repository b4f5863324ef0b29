// Package lvtrace is the numeric core of a small ray tracer: homogeneous
// tuples, 4×4 transformation matrices and a color canvas to draw into.
//
// What is inside?
//
//	scalar/      machine epsilon, tolerant comparison, decimal rounding
//	tuple/       points, vectors and colors as (x, y, z, w) values
//	matrix/      dense row-major matrices: products, transpose, determinant, inverse
//	transform/   translation, scaling, rotation, shearing; parallel batch apply
//	canvas/      pixel grid with PPM, PNG, BMP and TIFF encoders
//	projectile/  a toy physics loop that plots a flight path onto a canvas
//	cmd/projectile  the command-line driver for it
//
// Conventions:
//
//   - Points carry w = 1, vectors w = 0; a translation moves the former and
//     leaves the latter alone.
//   - Equality is epsilon-based (scalar.Epsilon, binary64 machine epsilon).
//     Use Round or matrix.AllClose when comparing results of long chains.
//   - Kernel contract violations (bad index, non-square determinant, singular
//     inverse) panic with an error wrapping a package sentinel. Collaborators
//     that deal with I/O return errors.
//
// Quick example:
//
//	m := transform.Chain(
//		transform.RotationX(math.Pi/2),
//		transform.Scaling(5, 5, 5),
//		transform.Translation(10, 5, 7),
//	)
//	p := m.MulTuple(tuple.Point(1, 0, 1)) // (15, 0, 7, 1)
//
//	go get github.com/katalvlaran/lvtrace
package lvtrace
