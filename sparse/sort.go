// SPDX-License-Identifier: MIT

// Package sparse - the COO sorter.
//
// The sort invariant: (rowIdx[i], colIdx[i]) strictly increases in
// lexicographic order for increasing i, with no duplicate pairs. Every
// operation that inserts, removes or relabels indices without guaranteeing
// order (column writes, slice writes, swaps, horizontal concatenation,
// transpose) calls sortTriplets before its store becomes visible; operations
// whose output is ordered by construction (merges, row splices, vertical
// concatenation) must NOT pay the O(nnz log nnz).
//
// The sorter is a sort.Interface view over the three parallel arrays,
// swapping them in lock-step, so the permutation never materializes an
// index array.

package sparse

import "sort"

// keyLess reports (r1,c1) < (r2,c2) in lexicographic order.
func keyLess(r1, c1, r2, c2 int) bool {
	return r1 < r2 || (r1 == r2 && c1 < c2)
}

// cooSorter adapts a Matrix's parallel triplet arrays to sort.Interface.
type cooSorter[E any] struct {
	m *Matrix[E]
}

func (s cooSorter[E]) Len() int { return len(s.m.val) }

func (s cooSorter[E]) Less(i, j int) bool {
	return keyLess(s.m.rowIdx[i], s.m.colIdx[i], s.m.rowIdx[j], s.m.colIdx[j])
}

func (s cooSorter[E]) Swap(i, j int) {
	s.m.rowIdx[i], s.m.rowIdx[j] = s.m.rowIdx[j], s.m.rowIdx[i]
	s.m.colIdx[i], s.m.colIdx[j] = s.m.colIdx[j], s.m.colIdx[i]
	s.m.val[i], s.m.val[j] = s.m.val[j], s.m.val[i]
}

// sortTriplets restores the lexicographic order of the triplet arrays.
// MAIN DESCRIPTION:
//   - The single choke point that re-establishes the sort invariant after
//     an order-breaking mutation.
//
// Implementation:
//   - sort.Sort over the cooSorter view; comparison is on (row, col) only,
//     so the order is total whenever the uniqueness invariant holds and
//     remains a valid (if unstable between equal keys) total reordering
//     even when it does not — callers that may introduce duplicates check
//     uniqueness separately.
//
// Determinism:
//   - For unique keys the result is uniquely determined regardless of the
//     input permutation.
//
// Complexity: Time O(nnz log nnz), Space O(1) beyond the sort's stack.
func (m *Matrix[E]) sortTriplets() {
	sort.Sort(cooSorter[E]{m: m})
}

// isSortedStrict reports whether the triplet arrays are in strictly
// increasing lexicographic order (which also implies uniqueness).
func (m *Matrix[E]) isSortedStrict() bool {
	for i := 1; i < len(m.val); i++ {
		if !keyLess(m.rowIdx[i-1], m.colIdx[i-1], m.rowIdx[i], m.colIdx[i]) {
			return false
		}
	}
	return true
}

// vecSorter is the 1-D mirror of cooSorter for Vector stores.
type vecSorter[E any] struct {
	v *Vector[E]
}

func (s vecSorter[E]) Len() int           { return len(s.v.val) }
func (s vecSorter[E]) Less(i, j int) bool { return s.v.idx[i] < s.v.idx[j] }
func (s vecSorter[E]) Swap(i, j int) {
	s.v.idx[i], s.v.idx[j] = s.v.idx[j], s.v.idx[i]
	s.v.val[i], s.v.val[j] = s.v.val[j], s.v.val[i]
}

// sortEntries restores index order on a vector store.
func (v *Vector[E]) sortEntries() {
	sort.Sort(vecSorter[E]{v: v})
}

// isSortedStrict reports strictly increasing indices (sorted and unique).
func (v *Vector[E]) isSortedStrict() bool {
	for i := 1; i < len(v.val); i++ {
		if v.idx[i-1] >= v.idx[i] {
			return false
		}
	}
	return true
}
