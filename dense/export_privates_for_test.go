// SPDX-License-Identifier: MIT

package dense

// Test-Bridge (White-Box) for Private Multiply Kernels
//
// Purpose:
//   - Expose the unexported mulRows* kernels and the options snapshot to
//     dense_test ONLY, so path-equivalence can be verified without widening
//     the production API.
//
// Provided Surface:
//   - MulRows*_TestOnly wrappers: thin pass-through to the private kernels.
//   - GatherOptions_TestOnly: stable read-only view of the resolved Options.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped kernels do; no side effects.

// MulRowsNaive_TestOnly forwards to the private naive triple-loop kernel.
func MulRowsNaive_TestOnly[E any](res, a, b *Dense[E], i0, i1 int) {
	mulRowsNaive(res, a, b, i0, i1)
}

// MulRowsBlocked_TestOnly forwards to the cache-blocked kernel.
func MulRowsBlocked_TestOnly[E any](res, a, b *Dense[E], i0, i1, bs int) {
	mulRowsBlocked(res, a, b, i0, i1, bs)
}

// MulRowsF64_TestOnly forwards to the vek float64 row-axpy kernel.
func MulRowsF64_TestOnly[E any](res, a, b *Dense[E], i0, i1 int) {
	mulRowsF64(res, a, b, i0, i1)
}

// GatherOptions_TestOnly resolves opts and returns the effective
// (workers, parallelThreshold, blockSize) triple.
func GatherOptions_TestOnly(opts ...Option) (int, int, int) {
	o := gatherOptions(opts...)
	return o.workers, o.parallelThreshold, o.blockSize
}
