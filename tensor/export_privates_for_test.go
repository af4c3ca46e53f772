// SPDX-License-Identifier: MIT

// White-box bridge: the file compiles only under `go test` (the _test.go
// suffix) yet declares package tensor, so the external test package can
// reach internals through the _TestOnly wrappers without widening the API.

package tensor

import "github.com/katalvlaran/lvlalg/algebra"

// NewRaw_TestOnly builds a store directly from raw arrays with no copying,
// sorting or validation. Tests use it to stage invariant violations on
// purpose and drive the sorter directly.
func NewRaw_TestOnly[E any](ring algebra.Ring[E], shape Shape, vals []E, idx [][]int) *Sparse[E] {
	return &Sparse[E]{shape: shape, val: vals, idx: idx, ring: ring}
}

// SortTuples_TestOnly runs the private sort choke point.
func (t *Sparse[E]) SortTuples_TestOnly() { t.sortTuples() }

// IsSortedStrict_TestOnly reports the store invariant.
func (t *Sparse[E]) IsSortedStrict_TestOnly() bool { return t.isSortedStrict() }

// Search_TestOnly exposes the tuple binary search with its found/insertion
// pair.
func (t *Sparse[E]) Search_TestOnly(idx []int) (int, bool) { return t.search(idx) }

// TupleLess_TestOnly exposes the lexicographic comparison.
func TupleLess_TestOnly(a, b []int) bool { return tupleLess(a, b) }

// FlatOffset_TestOnly exposes the unchecked row-major mapping.
func (s Shape) FlatOffset_TestOnly(idx []int) int { return s.flatOffset(idx) }

// Advance_TestOnly exposes the row-major odometer step.
func (s Shape) Advance_TestOnly(idx []int) { s.advance(idx) }
