// SPDX-License-Identifier: MIT
// Package canvas: sentinel error set.

package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("canvas: dimensions must be > 0")

	// ErrOutOfRange indicates a pixel coordinate outside the canvas.
	// Public indexers return it; they never panic.
	ErrOutOfRange = errors.New("canvas: pixel out of range")

	// ErrUnknownFormat indicates an unsupported image format name or extension.
	ErrUnknownFormat = errors.New("canvas: unknown image format")
)

// Method tags used in error wrappers.
const (
	ctxNew      = "New"
	ctxSetPixel = "SetPixel"
	ctxPixel    = "Pixel"
	ctxEncode   = "Encode"
	ctxWrite    = "WriteFile"
)

// canvasErrorf wraps err with "Canvas.<method>: ".
func canvasErrorf(method string, err error) error {
	return fmt.Errorf("Canvas.%s: %w", method, err)
}
