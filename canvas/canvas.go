// SPDX-License-Identifier: MIT

// Package canvas - a raster of color tuples and its image encoders.
//
// Purpose:
//   - Store a width×height grid of tuple.Color values (unclamped).
//   - Clamp and scale to 8-bit channels only at serialization time.
//
// Notes:
//   - Coordinates are (x, y) with y growing downward, row-major storage.
//   - SetPixel/Pixel return ErrOutOfRange instead of panicking.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/lvtrace/tuple"
)

// MaxChannel is the largest 8-bit channel value written by every encoder.
const MaxChannel = 255

// Canvas is a fixed-size grid of colors.
type Canvas struct {
	w, h   int
	pixels []tuple.Tuple // row-major, len == w*h
}

// New returns a w×h canvas filled with black.
func New(w, h int) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, canvasErrorf(ctxNew, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidDimensions))
	}

	return &Canvas{w: w, h: h, pixels: make([]tuple.Tuple, w*h)}, nil
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.h }

// Contains reports whether (x, y) lies on the canvas.
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// SetPixel stores col at (x, y).
func (c *Canvas) SetPixel(x, y int, col tuple.Tuple) error {
	if !c.Contains(x, y) {
		return canvasErrorf(ctxSetPixel, fmt.Errorf("(%d,%d) in %dx%d: %w", x, y, c.w, c.h, ErrOutOfRange))
	}
	c.pixels[y*c.w+x] = col

	return nil
}

// Pixel returns the color at (x, y).
func (c *Canvas) Pixel(x, y int) (tuple.Tuple, error) {
	if !c.Contains(x, y) {
		return tuple.Tuple{}, canvasErrorf(ctxPixel, fmt.Errorf("(%d,%d) in %dx%d: %w", x, y, c.w, c.h, ErrOutOfRange))
	}

	return c.pixels[y*c.w+x], nil
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col tuple.Tuple) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// ScaleChannel clamps v to [0,1] and scales it to 0..255, rounding to nearest.
// NaN maps to 0.
func ScaleChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(0, math.Min(1, v))

	return uint8(math.Round(MaxChannel * v))
}

// rgb8 returns the clamped 8-bit channels of a color.
func rgb8(col tuple.Tuple) (r, g, b uint8) {
	return ScaleChannel(col.Red()), ScaleChannel(col.Green()), ScaleChannel(col.Blue())
}

// Image renders the canvas into an opaque NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			r, g, b := rgb8(c.pixels[y*c.w+x])
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: MaxChannel})
		}
	}

	return img
}
