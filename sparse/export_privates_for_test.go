// SPDX-License-Identifier: MIT

// White-box bridge: the file compiles only under `go test` (the _test.go
// suffix) yet declares package sparse, so the external test package can
// reach internals through the _TestOnly wrappers without widening the API.

package sparse

import "github.com/katalvlaran/lvlalg/algebra"

// NewRaw_TestOnly builds a store directly from raw arrays with no copying,
// sorting or validation. Tests use it to stage invariant violations on
// purpose and drive the sorter directly.
func NewRaw_TestOnly[E any](ring algebra.Ring[E], rows, cols int, vals []E, rowIdx, colIdx []int) *Matrix[E] {
	return &Matrix[E]{rows: rows, cols: cols, val: vals, rowIdx: rowIdx, colIdx: colIdx, ring: ring}
}

// SortTriplets_TestOnly runs the private sort choke point.
func (m *Matrix[E]) SortTriplets_TestOnly() { m.sortTriplets() }

// IsSortedStrict_TestOnly reports the store invariant.
func (m *Matrix[E]) IsSortedStrict_TestOnly() bool { return m.isSortedStrict() }

// Search_TestOnly exposes the binary search with its found/insertion pair.
func (m *Matrix[E]) Search_TestOnly(r, c int) (int, bool) { return m.search(r, c) }

// RowRange_TestOnly exposes the row window lookup.
func (m *Matrix[E]) RowRange_TestOnly(r int) (start, end int) { return m.rowRange(r) }

// IsSortedStrict_TestOnly reports the vector invariant.
func (v *Vector[E]) IsSortedStrict_TestOnly() bool { return v.isSortedStrict() }

// Raw_TestOnly returns the CSR backing arrays without copying, so tests
// can assert the exact layout the conversion produced.
func (s *CSR[E]) Raw_TestOnly() (vals []E, colIdx, rowPtr []int) {
	return s.val, s.colIdx, s.rowPtr
}

// GatherOptions_TestOnly resolves an option list to its final values.
func GatherOptions_TestOnly(opts ...Option) (dropZeros bool, capacity int) {
	o := gatherOptions(opts...)
	return o.dropZeros, o.capacity
}
