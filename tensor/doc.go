// Package tensor generalizes the coordinate-format sparse engine to rank-R
// arrays: values paired with full index tuples, kept in strict lexicographic
// tuple order.
//
// The tensor package provides:
//
//   - Shape: an immutable axis-size tuple with the row-major FlatIndex
//     mapping and the SwapAxes/Permute rewrites, passed by value throughout.
//   - Sparse[E]: the rank-R triplet store (values plus index tuples), unique
//     by tuple and sorted by tuple whenever visible to a caller. At/Set run
//     a binary search over tuple keys; Add and ElemMul are two-pointer
//     merges; Transpose and Permute rewrite every tuple and re-sort, the
//     only operations here that pay the O(nnz log nnz).
//   - Dense[E]: a flat row-major buffer addressed through Shape.FlatIndex.
//     It is deliberately small, existing as the scatter target for ToDense
//     and the round-trip oracle for FromDense.
//
// Ownership follows the sparse package: Set mutates its receiver, every
// other operation returns a new store, Clone copies, and a failed operation
// never leaves the receiver partially mutated.
//
// Containers are not safe for concurrent mutation.
package tensor
