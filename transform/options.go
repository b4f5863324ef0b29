// SPDX-License-Identifier: MIT

// Package transform: functional configuration for batch application.
//
// Design goals:
//   - Deterministic behavior: no global state; output order always equals input order.
//   - Safe by construction: WithX panic only on nonsensical values (programmer error).
package transform

import "runtime"

// DefaultChunkSize is the number of tuples one worker transforms per task.
const DefaultChunkSize = 1024

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "transform: WithWorkers: n must be > 0"
	panicChunkSizeInvalid = "transform: WithChunkSize: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the batch configuration. Fields are unexported; use WithX.
type Options struct {
	workers   int // max concurrent chunks
	chunkSize int // tuples per chunk
}

// DefaultOptions returns workers = GOMAXPROCS, chunkSize = DefaultChunkSize.
func DefaultOptions() Options {
	return Options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
	}
}

// WithWorkers bounds the number of chunks transformed concurrently.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many tuples a single task transforms.
func WithChunkSize(n int) Option {
	if n <= 0 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

// Workers returns the configured worker bound.
func (o Options) Workers() int { return o.workers }

// ChunkSize returns the configured chunk size.
func (o Options) ChunkSize() int { return o.chunkSize }

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
