// SPDX-License-Identifier: MIT
// Package tuple: sentinel error set.
// Every message is prefixed with "tuple: ..." so it can be grepped in logs.

package tuple

import "errors"

var (
	// ErrOutOfRange indicates a component index outside 0..3.
	ErrOutOfRange = errors.New("tuple: component index out of range")

	// ErrZeroMagnitude is returned by NormalizeChecked for a zero-length tuple.
	ErrZeroMagnitude = errors.New("tuple: cannot normalize zero-magnitude tuple")
)
