// Package lvlalg is your in-memory toolkit for numerical linear algebra
// over pluggable element rings: dense kernels, sparse triplet stores and
// their rank-R tensor generalization.
//
// 🚀 What is lvlalg?
//
//	A generic, allocation-conscious library that brings together:
//		• Element rings: float32/float64/complex128/int/bool and the (min,+) semiring
//		• Dense matrices: elementwise kernels plus a multiply dispatcher (naive, blocked, SIMD, parallel)
//		• Sparse COO matrices & vectors: lexicographically sorted triplet stores with merge-based arithmetic
//		• CSR: row-pointer compression with gather MatVec
//		• Tensors: rank-R coordinate stores with axis-swap and permutation transposes
//		• Interop: gonum mat adapters on the float64 dense side
//
// ✨ Why choose lvlalg?
//
//   - One algebra, many element types – every container is generic over Ring[E]
//   - Deterministic – sorted stores, merge-based ops, reproducible parallel kernels
//   - Pure Go – no cgo; SIMD comes from viterin/vek where the ring allows it
//   - Honest errors – sentinel errors wrapped with the operation name, eager validation
//
// Under the hood, everything is organized under four subpackages:
//
//	algebra/ — Ring & Field contracts + concrete instances (incl. MinPlus)
//	dense/   — flat row-major matrices, kernels & the multiply dispatcher
//	sparse/  — COO matrices & vectors, CSR, conversions, mixed products
//	tensor/  — Shape + rank-R coordinate stores
//
// Quick example, all-pairs shortest paths by squaring over (min,+):
//
//	g, _ := dense.New(algebra.NewMinPlus(), 3, 3)
//	// 0 on the diagonal, edge weights elsewhere, +Inf = no edge
//	d, _ := dense.Pow[float64](g, 2)
//
// Dive into each package's doc.go for the full contract: ownership rules,
// the stored-zero policy and complexity notes.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
