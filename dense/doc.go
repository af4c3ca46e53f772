// Package dense provides row-major dense matrices over a generic element
// ring and the multiply kernel dispatcher consumed by the sparse engine.
//
// The dense package provides:
//
//   - Matrix[E], the minimal polymorphic contract (Rows/Cols/At/Set/Ring/
//     Clone), and Dense[E], its canonical flat-slice implementation.
//   - Element-wise kernels (Add, Sub, Hadamard, Scale, Transpose, MatVec)
//     with a fast path over *Dense backing slices and a generic fallback
//     over the Matrix interface.
//   - Mul, a dispatcher that selects among a naive triple loop, a
//     cache-blocked kernel, SIMD-accelerated row operations (viterin/vek,
//     float64/float32 rings only) and row-parallel execution, purely by
//     problem shape. Every path produces the same result.
//   - Interchange with gonum: ToGonum/FromGonum copies and a zero-copy
//     mat.Matrix wrapper.
//
// Cells of a fresh matrix start at the ring's additive identity, which for
// semirings such as algebra.MinPlus is not Go's zero value.
//
// Matrices are not safe for concurrent mutation; the parallel multiply path
// writes disjoint row blocks and is deterministic.
package dense
