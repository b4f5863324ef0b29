// SPDX-License-Identifier: MIT

package canvas

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format selects an output encoding.
type Format int

const (
	// PPM is the plain-text Netpbm P3 format.
	PPM Format = iota
	// PNG via image/png.
	PNG
	// BMP via golang.org/x/image/bmp.
	BMP
	// TIFF via golang.org/x/image/tiff.
	TIFF
)

// ppmMagic is the plain (ASCII) PPM identifier.
const ppmMagic = "P3"

var formatNames = map[Format]string{
	PPM:  "ppm",
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat maps a case-insensitive name ("ppm", "png", "bmp", "tif", "tiff")
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm":
		return PPM, nil
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}

	return PPM, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFromPath picks the Format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// WritePPM writes the canvas as plain PPM:
//
//	P3
//	<width> <height>
//	255
//	r g b r g b ...   (one line per row)
//
// The output always ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", ppmMagic, c.w, c.h, MaxChannel)
	var r, g, b uint8
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if x > 0 {
				bw.WriteByte(' ')
			}
			r, g, b = rgb8(c.pixels[y*c.w+x])
			fmt.Fprintf(bw, "%d %d %d", r, g, b)
		}
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first write error; Flush reports it.
	return bw.Flush()
}

// PPM returns the plain PPM rendering as a string.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	_ = c.WritePPM(&sb) // strings.Builder never fails

	return sb.String()
}

// Encode writes the canvas to w in format f.
func (c *Canvas) Encode(w io.Writer, f Format) error {
	var err error
	switch f {
	case PPM:
		err = c.WritePPM(w)
	case PNG:
		err = png.Encode(w, c.Image())
	case BMP:
		err = bmp.Encode(w, c.Image())
	case TIFF:
		err = tiff.Encode(w, c.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("%v: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return canvasErrorf(ctxEncode, err)
	}

	return nil
}

// WriteFile creates path and encodes the canvas in the format its extension names.
func (c *Canvas) WriteFile(path string) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return canvasErrorf(ctxWrite, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return canvasErrorf(ctxWrite, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = canvasErrorf(ctxWrite, cerr)
		}
	}()

	return c.Encode(file, f)
}
