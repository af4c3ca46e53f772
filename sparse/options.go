// SPDX-License-Identifier: MIT
// Package sparse: functional configuration for triplet stores.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - The zero-filter policy is a store-level decision made once at
//     construction, not a per-call flag: results inherit the receiver's
//     policy, so a pipeline stays canonical (or stays literal) end to end.
//   - Panic only on invalid parameters (programmer error); data errors are
//     returned by operations.

package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDropZeros keeps ring-zero results stored. Summing +5 and -5
	// yields an explicit 0 entry, and dense-row writes store the whole row;
	// canonical-zero removal is strictly opt-in.
	DefaultDropZeros = false

	// DefaultCapacity preallocates nothing; stores grow on demand.
	DefaultCapacity = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const panicCapacityInvalid = "sparse: WithCapacity: n must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective store configuration. Fields are unexported;
// constructors accept ...Option and resolve them via gatherOptions.
type Options struct {
	dropZeros bool // remove ring-zero entries after mutations and merges
	capacity  int  // initial triplet capacity hint
}

// WithDropZeros controls canonical-zero removal: when enabled, operations
// that produce or store a ring-zero value drop the entry instead.
func WithDropZeros(drop bool) Option {
	return func(o *Options) { o.dropZeros = drop }
}

// WithCapacity preallocates space for n triplets. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}
	return func(o *Options) { o.capacity = n }
}

// gatherOptions resolves defaults, then applies setters in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		dropZeros: DefaultDropZeros,
		capacity:  DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
