// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & bounds-checked accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*width + c.
//   - Keep the storage layout private: callers see Width/Height/At/Set/Row/Column only.
//   - Treat every *Matrix returned by an operation as a finished value; Set exists for
//     incremental construction before the value is handed on.
//
// Complexity quicksheet:
//   - New: O(w*h) copy; WithDimensions: O(w*h) zero-init; At/Set: O(1); Clone: O(w*h).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// IdentitySize is the dimension of the fixed homogeneous identity.
const IdentitySize = 4

// Matrix is a width×height grid of float64 in row-major order.
//   - w,h hold dimensions (columns, rows).
//   - data is a flat buffer of length w*h (offset = r*w + c).
type Matrix struct {
	w, h int       // column and row counts (>=0)
	data []float64 // contiguous row-major storage (len == w*h)
}

var _ fmt.Stringer = (*Matrix)(nil)

// New builds a matrix from equal-length rows (copied, not aliased).
//
// Implementation:
//   - Stage 1: height = len(rows), width = len(rows[0]) (0 when there are no rows).
//   - Stage 2: verify every row has exactly width elements.
//   - Stage 3: copy rows into a single flat buffer.
//
// Panics:
//   - ErrRaggedRows when rows differ in length (contract violation).
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New(rows [][]float64) *Matrix {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != w {
			violate(opNew, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), w, ErrRaggedRows))
		}
	}

	m := &Matrix{w: w, h: h, data: make([]float64, w*h)}
	for i, row := range rows {
		copy(m.data[i*w:(i+1)*w], row) // one row-block copy per row
	}

	return m
}

// WithDimensions returns a zero-filled matrix with w columns and h rows.
// 0×0 and other empty shapes are legal (they arise from Submatrix on 1×1).
// Panics with ErrInvalidDimensions on negative sizes.
func WithDimensions(w, h int) *Matrix {
	if w < 0 || h < 0 {
		violate(opWithDims, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidDimensions))
	}

	return &Matrix{w: w, h: h, data: make([]float64, w*h)}
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Panics with ErrInvalidDimensions when n < 0.
func NewIdentity(n int) *Matrix {
	if n < 0 {
		violate(opIdentityCtor, fmt.Errorf("n=%d: %w", n, ErrInvalidDimensions))
	}
	m := WithDimensions(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m
}

// Identity returns the 4×4 identity, the neutral element for homogeneous transforms.
func Identity() *Matrix {
	return NewIdentity(IdentitySize)
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.w }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.h }

// IsSquare reports whether Width == Height.
func (m *Matrix) IsSquare() bool { return m.w == m.h }

// offset bounds-checks (row, col) and returns the flat index.
// op names the public caller for the panic message.
func (m *Matrix) offset(op string, row, col int) int {
	if row < 0 || row >= m.h || col < 0 || col >= m.w {
		violate(op, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.h, m.w, ErrOutOfRange))
	}

	return row*m.w + col
}

// At returns the element at (row, col), 0-based.
// Panics with ErrOutOfRange on invalid indices, like slice indexing.
func (m *Matrix) At(row, col int) float64 {
	return m.data[m.offset(opAt, row, col)]
}

// Set stores v at (row, col). Intended for building a matrix before it is shared.
// Panics with ErrOutOfRange on invalid indices.
func (m *Matrix) Set(row, col int, v float64) {
	m.data[m.offset(opSet, row, col)] = v
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.h {
		violate(opRow, fmt.Errorf("row %d of %d: %w", i, m.h, ErrOutOfRange))
	}
	out := make([]float64, m.w)
	copy(out, m.data[i*m.w:(i+1)*m.w])

	return out
}

// Column materializes column i. There is no stored column-major form.
func (m *Matrix) Column(i int) []float64 {
	if i < 0 || i >= m.w {
		violate(opColumn, fmt.Errorf("column %d of %d: %w", i, m.w, ErrOutOfRange))
	}
	out := make([]float64, m.h)
	for r := 0; r < m.h; r++ {
		out[r] = m.data[r*m.w+i]
	}

	return out
}

// Rows returns a deep copy of the contents as [][]float64.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.h)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{w: m.w, h: m.h, data: cp}
}

// Equal reports whether o has the same shape and every element is
// epsilon-equal (scalar.EpsilonEqual). A nil operand is never equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return false
	}
	if m.w != o.w || m.h != o.h {
		return false
	}
	for i, v := range m.data {
		if !scalar.EpsilonEqual(v, o.data[i]) {
			return false
		}
	}

	return true
}

// Round returns a copy with every element rounded to the given decimal places.
// For display and fixture comparison only; never feed the result back into algebra.
func (m *Matrix) Round(places int) *Matrix {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = scalar.RoundTo(v, places)
	}

	return out
}

// String renders one bracketed, comma-separated line per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.h; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.w; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.w+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
