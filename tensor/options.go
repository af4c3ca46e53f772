// SPDX-License-Identifier: MIT
// Package tensor: functional configuration for rank-R triplet stores.
// Mirrors the sparse package: the zero-filter policy is fixed at
// construction and inherited by derived stores; option constructors panic
// on nonsensical parameters, operations return errors for data problems.

package tensor

const (
	// DefaultDropZeros keeps ring-zero results stored; canonical removal
	// is opt-in.
	DefaultDropZeros = false

	// DefaultCapacity preallocates nothing.
	DefaultCapacity = 0
)

const panicCapacityInvalid = "tensor: WithCapacity: n must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective store configuration.
type Options struct {
	dropZeros bool
	capacity  int
}

// WithDropZeros controls canonical-zero removal: when enabled, operations
// that produce or store a ring-zero value drop the entry instead.
func WithDropZeros(drop bool) Option {
	return func(o *Options) { o.dropZeros = drop }
}

// WithCapacity preallocates space for n entries. Panics if n < 0.
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
