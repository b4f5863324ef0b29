// SPDX-License-Identifier: MIT

package transform

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtrace/matrix"
	"github.com/katalvlaran/lvtrace/tuple"
)

// ErrNotHomogeneous is returned by ApplyAll when the matrix is not 4×4.
var ErrNotHomogeneous = errors.New("transform: matrix must be 4x4")

// ApplyAll returns m×t for every t in ts, preserving order.
//
// Implementation:
//   - Stage 1: validate m (non-nil, 4×4) before any goroutine starts.
//   - Stage 2: split ts into ChunkSize slices; an errgroup bounded by Workers
//     transforms each chunk into its own window of the output slice.
//   - Stage 3: Wait; the first error (context cancellation) wins.
//
// Behavior highlights:
//   - Chunks write disjoint output windows, so no locking is needed.
//   - The input slice is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNotHomogeneous, ctx.Err().
func ApplyAll(ctx context.Context, m *matrix.Matrix, ts []tuple.Tuple, opts ...Option) ([]tuple.Tuple, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ApplyAll: %w", err)
	}
	if m.Width() != tuple.Size || m.Height() != tuple.Size {
		return nil, fmt.Errorf("ApplyAll: %dx%d: %w", m.Height(), m.Width(), ErrNotHomogeneous)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := gatherOptions(opts...)
	out := make([]tuple.Tuple, len(ts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < len(ts); lo += o.chunkSize {
		hi := min(lo+o.chunkSize, len(ts))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = m.MulTuple(ts[i])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
