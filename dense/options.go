// SPDX-License-Identifier: MIT
// Package dense: functional configuration for the multiply dispatcher.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective config.
//
// Design goals:
//   - Deterministic behavior: the selected path never changes the result,
//     only the schedule.
//   - No dead switches: each knob is exercised by the dispatcher and covered
//     by tests.
//   - Panic only on invalid parameters (programmer error); shape errors are
//     returned by the kernels themselves.

package dense

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the worker count for the parallel multiply path.
	// 0 means runtime.NumCPU(), resolved at dispatch time.
	DefaultWorkers = 0

	// DefaultParallelThreshold is the minimum rows*inner*cols product at
	// which Mul switches to row-parallel execution. Below it the
	// sequential paths win on goroutine overhead.
	DefaultParallelThreshold = 1 << 20

	// DefaultBlockSize is the tile edge for the cache-blocked generic
	// multiply kernel.
	DefaultBlockSize = 64

	// mulNaiveCutoff is the rows*inner*cols product below which the plain
	// triple loop beats the blocked kernel's tiling overhead.
	mulNaiveCutoff = 1 << 14
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "dense: WithWorkers: n must be >= 0"
	panicThresholdInvalid = "dense: WithParallelThreshold: n must be >= 0"
	panicBlockInvalid     = "dense: WithBlockSize: b must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective dispatcher configuration. Fields are
// unexported; public entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	workers           int // 0 = runtime.NumCPU()
	parallelThreshold int // ops count gating the parallel path
	blockSize         int // tile edge for the blocked kernel
}

// WithWorkers caps the worker count of the parallel multiply path.
// n == 0 restores the runtime.NumCPU() default. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the rows*inner*cols product at which Mul goes
// parallel. 0 forces the parallel path for every shape. Panics if n < 0.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) { o.parallelThreshold = n }
}

// WithBlockSize sets the tile edge of the blocked kernel. Panics if b <= 0.
func WithBlockSize(b int) Option {
	if b <= 0 {
		panic(panicBlockInvalid)
	}
	return func(o *Options) { o.blockSize = b }
}

// gatherOptions resolves defaults, then applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
		blockSize:         DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
