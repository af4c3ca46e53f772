// Package sparse implements the coordinate-format (COO) sparse engine:
// matrices and vectors stored as parallel triplet arrays kept in strict
// lexicographic index order, with merge-based arithmetic and
// order-preserving structural edits.
//
// The sparse package provides:
//
//   - Matrix[E]: the triplet store (values, row indices, column indices),
//     unique by (row, col) and sorted by (row, col) whenever visible to a
//     caller. Stored zero values are legal; WithDropZeros opts into
//     canonical removal.
//   - Merge-based binary ops: Add/Sub (union merge), ElemMul/ElemDiv
//     (intersection merge), Equal, and the structural predicates
//     IsIdentity, IsSymmetric, IsTriU, IsTriL. All run in
//     O(nnz1+nnz2) over the sorted stores; outputs are sorted by
//     construction.
//   - Manipulation: At/Set by binary search, row/column/slice reads and
//     writes, row/column swaps, and concatenation (Stack, Augment; Join
//     and Repeat on vectors). Operations that can break the sort invariant
//     restore it before returning; operations that preserve order by
//     construction skip the sort.
//   - Vector[E]: the 1-D triplet store with the same invariants, merged
//     Add/ElemMul/Dot and the Join/Repeat builders.
//   - CSR[E]: compressed-row storage built from row-sorted COO by
//     count + prefix-sum, with gather MatVec.
//   - Conversions: ToDense/FromDense, ToCSR/ToCOO, transpose, and the
//     mixed products MulDense/DenseMul that route through the dense
//     kernel dispatcher's row operations.
//
// Ownership is mutable-with-explicit-copy, applied uniformly: Set, SetRow,
// SetRowSparse, SetCol, SetColSparse, SetSlice, SwapRows, SwapCols and
// Scale mutate their receiver; every other operation returns a new store;
// Clone copies. A failed operation never leaves the receiver partially
// mutated: all validation happens before the first write.
//
// Containers are not safe for concurrent mutation.
package sparse
