// SPDX-License-Identifier: MIT

// Package sparse - the coordinate-format matrix store.
//
// Matrix keeps three parallel arrays (val, rowIdx, colIdx) sorted by
// (row, col). Constructors establish the invariant once; point access runs
// a binary search over the keys; mutators splice around the hit. Everything
// heavier lives in the dedicated files: merges in binary.go, structural
// edits in manip.go, format changes in convert.go.

package sparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Rendering literals for String.
const (
	_fmtHeader = "%d x %d, %d stored\n"
	_fmtEntry  = "(%d, %d): %v\n"
)

// idxErrorf tags an index error with the method name and the offending pair.
func idxErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a sparse matrix in coordinate (triplet) format.
//   - rows, cols hold dimensions (both > 0).
//   - val, rowIdx, colIdx are parallel arrays of equal length; entry i is
//     the value val[i] stored at (rowIdx[i], colIdx[i]).
//   - ring supplies element arithmetic and the comparison policy.
//   - dropZeros, when set, removes ring-zero values as they are produced.
//
// Invariants between exported calls: keys strictly increase in (row, col)
// lexicographic order (hence unique), and every index lies inside the
// matrix. Absent positions read as ring.Zero(). Stored zeros are legal and
// kept unless the store was built WithDropZeros.
type Matrix[E any] struct {
	rows, cols int
	val        []E
	rowIdx     []int
	colIdx     []int
	ring       algebra.Ring[E]
	dropZeros  bool
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// New returns an empty rows×cols matrix over ring. WithCapacity preallocates
// the triplet arrays; WithDropZeros switches on zero elision for the life of
// the store and everything derived from it.
//
// Errors:
//   - ErrNilMatrix if ring is nil.
//   - ErrBadShape unless rows > 0 and cols > 0.
func New[E any](ring algebra.Ring[E], rows, cols int, opts ...Option) (*Matrix[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opNew, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opNew, ErrBadShape)
	}
	o := gatherOptions(opts...)
	m := &Matrix[E]{rows: rows, cols: cols, ring: ring, dropZeros: o.dropZeros}
	if o.capacity > 0 {
		m.val = make([]E, 0, o.capacity)
		m.rowIdx = make([]int, 0, o.capacity)
		m.colIdx = make([]int, 0, o.capacity)
	}
	return m, nil
}

// newLike returns an empty store with the given dimensions that inherits m's
// ring and zero policy. Result-producing operations build into it.
func (m *Matrix[E]) newLike(rows, cols, capHint int) *Matrix[E] {
	return &Matrix[E]{
		rows:      rows,
		cols:      cols,
		val:       make([]E, 0, capHint),
		rowIdx:    make([]int, 0, capHint),
		colIdx:    make([]int, 0, capHint),
		ring:      m.ring,
		dropZeros: m.dropZeros,
	}
}

// NewFromTriplets builds a matrix from parallel triplet slices.
// MAIN DESCRIPTION:
//   - The bulk constructor: takes values with their coordinates in any
//     order and establishes the sorted-unique store invariant.
//
// Implementation:
//   - Stage 1: validate ring, shape, equal slice lengths and index bounds
//     before any allocation.
//   - Stage 2: copy the three slices (the inputs are never aliased), then
//     sortTriplets restores lexicographic key order.
//   - Stage 3: duplicates are now adjacent; one linear pass rejects them.
//   - Stage 4: WithDropZeros stores compact ring-zero values away.
//
// Determinism:
//   - Identical inputs in any permutation produce the identical store.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrTripletLength, ErrOutOfRange,
//     ErrDuplicateIndex.
//
// Complexity: Time O(nnz log nnz), Space O(nnz).
func NewFromTriplets[E any](ring algebra.Ring[E], rows, cols int, vals []E, rowIdx, colIdx []int, opts ...Option) (*Matrix[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opFromTriplets, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opFromTriplets, ErrBadShape)
	}
	if len(vals) != len(rowIdx) || len(vals) != len(colIdx) {
		return nil, sparseErrorf(opFromTriplets, ErrTripletLength)
	}
	for i := range vals {
		if rowIdx[i] < 0 || rowIdx[i] >= rows || colIdx[i] < 0 || colIdx[i] >= cols {
			return nil, sparseErrorf(opFromTriplets, ErrOutOfRange)
		}
	}
	o := gatherOptions(opts...)
	n := len(vals)
	capHint := n
	if o.capacity > capHint {
		capHint = o.capacity
	}
	m := &Matrix[E]{
		rows:      rows,
		cols:      cols,
		val:       make([]E, n, capHint),
		rowIdx:    make([]int, n, capHint),
		colIdx:    make([]int, n, capHint),
		ring:      ring,
		dropZeros: o.dropZeros,
	}
	copy(m.val, vals)
	copy(m.rowIdx, rowIdx)
	copy(m.colIdx, colIdx)
	m.sortTriplets()
	for i := 1; i < n; i++ {
		if m.rowIdx[i-1] == m.rowIdx[i] && m.colIdx[i-1] == m.colIdx[i] {
			return nil, sparseErrorf(opFromTriplets, ErrDuplicateIndex)
		}
	}
	if m.dropZeros {
		m.compactZeros()
	}
	return m, nil
}

// NewFromMap builds a matrix from a coordinate map. Map keys are unique by
// construction, so only bounds are checked; the sort makes the result
// independent of Go's randomized iteration order.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrOutOfRange.
func NewFromMap[E any](ring algebra.Ring[E], rows, cols int, entries map[[2]int]E, opts ...Option) (*Matrix[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opFromMap, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opFromMap, ErrBadShape)
	}
	for k := range entries {
		if k[0] < 0 || k[0] >= rows || k[1] < 0 || k[1] >= cols {
			return nil, sparseErrorf(opFromMap, ErrOutOfRange)
		}
	}
	o := gatherOptions(opts...)
	n := len(entries)
	capHint := n
	if o.capacity > capHint {
		capHint = o.capacity
	}
	m := &Matrix[E]{
		rows:      rows,
		cols:      cols,
		val:       make([]E, 0, capHint),
		rowIdx:    make([]int, 0, capHint),
		colIdx:    make([]int, 0, capHint),
		ring:      ring,
		dropZeros: o.dropZeros,
	}
	for k, v := range entries {
		m.val = append(m.val, v)
		m.rowIdx = append(m.rowIdx, k[0])
		m.colIdx = append(m.colIdx, k[1])
	}
	m.sortTriplets()
	if m.dropZeros {
		m.compactZeros()
	}
	return m, nil
}

// Identity returns the n×n identity: ring.One() on the diagonal, nothing
// stored elsewhere. nnz is exactly n.
func Identity[E any](ring algebra.Ring[E], n int, opts ...Option) (*Matrix[E], error) {
	m, err := New(ring, n, n, opts...)
	if err != nil {
		return nil, sparseErrorf(opIdentity, err)
	}
	one := ring.One()
	for i := 0; i < n; i++ {
		m.val = append(m.val, one)
		m.rowIdx = append(m.rowIdx, i)
		m.colIdx = append(m.colIdx, i)
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix[E]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[E]) Cols() int { return m.cols }

// NNZ returns the number of stored entries (stored zeros included).
func (m *Matrix[E]) NNZ() int { return len(m.val) }

// Ring returns the element ring.
func (m *Matrix[E]) Ring() algebra.Ring[E] { return m.ring }

// DropZeros reports whether the store elides ring-zero values.
func (m *Matrix[E]) DropZeros() bool { return m.dropZeros }

// At returns the value at (r, c); absent positions read as ring.Zero().
//
// Errors: ErrOutOfRange.
//
// Complexity: O(log nnz).
func (m *Matrix[E]) At(r, c int) (E, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		var zero E
		return zero, idxErrorf(opAt, r, c, ErrOutOfRange)
	}
	if i, found := m.search(r, c); found {
		return m.val[i], nil
	}
	return m.ring.Zero(), nil
}

// Set writes v at (r, c), replacing a stored value or splicing a new entry
// into its sorted position. On a WithDropZeros store, writing a ring zero
// removes the entry instead.
//
// Errors: ErrOutOfRange.
//
// Complexity: O(log nnz) search + O(nnz) splice on insert or remove.
func (m *Matrix[E]) Set(r, c int, v E) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return idxErrorf(opSet, r, c, ErrOutOfRange)
	}
	i, found := m.search(r, c)
	if m.dropZeros && m.ring.IsZero(v) {
		if found {
			m.removeAt(i)
		}
		return nil
	}
	if found {
		m.val[i] = v
		return nil
	}
	m.insertAt(i, r, c, v)
	return nil
}

// Clone returns a deep copy sharing nothing with m.
func (m *Matrix[E]) Clone() *Matrix[E] {
	return &Matrix[E]{
		rows:      m.rows,
		cols:      m.cols,
		val:       append([]E(nil), m.val...),
		rowIdx:    append([]int(nil), m.rowIdx...),
		colIdx:    append([]int(nil), m.colIdx...),
		ring:      m.ring,
		dropZeros: m.dropZeros,
	}
}

// Do visits the stored entries in key order. fn returning false stops the
// walk early. The store must not be mutated during the walk.
func (m *Matrix[E]) Do(fn func(r, c int, v E) bool) {
	for i := range m.val {
		if !fn(m.rowIdx[i], m.colIdx[i], m.val[i]) {
			return
		}
	}
}

// Triplets returns copies of the value, row-index and column-index arrays
// in key order. Mutating the copies does not touch the store.
func (m *Matrix[E]) Triplets() (vals []E, rows, cols []int) {
	return append([]E(nil), m.val...),
		append([]int(nil), m.rowIdx...),
		append([]int(nil), m.colIdx...)
}

// String renders the shape header and one "(r, c): v" line per entry.
func (m *Matrix[E]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtHeader, m.rows, m.cols, len(m.val))
	for i := range m.val {
		fmt.Fprintf(&b, _fmtEntry, m.rowIdx[i], m.colIdx[i], m.val[i])
	}
	return b.String()
}

// ---------- internal store surgery ----------

// search locates key (r, c) by binary search. It returns the entry position
// and true on a hit, or the insertion position that keeps the order and
// false on a miss.
func (m *Matrix[E]) search(r, c int) (int, bool) {
	i := sort.Search(len(m.val), func(k int) bool {
		return !keyLess(m.rowIdx[k], m.colIdx[k], r, c)
	})
	if i < len(m.val) && m.rowIdx[i] == r && m.colIdx[i] == c {
		return i, true
	}
	return i, false
}

// rowRange returns the half-open window [start, end) of entries in row r.
// Two binary searches on the row component only.
func (m *Matrix[E]) rowRange(r int) (start, end int) {
	start = sort.Search(len(m.val), func(k int) bool { return m.rowIdx[k] >= r })
	end = sort.Search(len(m.val), func(k int) bool { return m.rowIdx[k] > r })
	return start, end
}

// valueAt reads (r, c) without bounds checks; absent positions read as the
// ring zero. Callers guarantee valid indices.
func (m *Matrix[E]) valueAt(r, c int) E {
	if i, found := m.search(r, c); found {
		return m.val[i]
	}
	return m.ring.Zero()
}

// push appends a triplet at the tail. The caller guarantees the key extends
// the sorted order; on a dropZeros store a ring-zero value is simply not
// emitted.
func (m *Matrix[E]) push(r, c int, v E) {
	if m.dropZeros && m.ring.IsZero(v) {
		return
	}
	m.val = append(m.val, v)
	m.rowIdx = append(m.rowIdx, r)
	m.colIdx = append(m.colIdx, c)
}

// insertAt splices (r, c, v) in at position i, shifting the suffix right.
func (m *Matrix[E]) insertAt(i, r, c int, v E) {
	var zv E
	m.val = append(m.val, zv)
	copy(m.val[i+1:], m.val[i:])
	m.val[i] = v
	m.rowIdx = append(m.rowIdx, 0)
	copy(m.rowIdx[i+1:], m.rowIdx[i:])
	m.rowIdx[i] = r
	m.colIdx = append(m.colIdx, 0)
	copy(m.colIdx[i+1:], m.colIdx[i:])
	m.colIdx[i] = c
}

// removeAt splices the entry at position i out, shifting the suffix left.
func (m *Matrix[E]) removeAt(i int) {
	m.val = append(m.val[:i], m.val[i+1:]...)
	m.rowIdx = append(m.rowIdx[:i], m.rowIdx[i+1:]...)
	m.colIdx = append(m.colIdx[:i], m.colIdx[i+1:]...)
}

// replaceRange substitutes entries [start, end) with the replacement
// triplets, building fresh arrays so no caller ever observes a half-spliced
// store. The replacement keys must already fit the order of the surrounding
// entries when the caller relies on order preservation.
func (m *Matrix[E]) replaceRange(start, end int, rv []E, rr, rc []int) {
	n := start + len(rv) + (len(m.val) - end)
	val := make([]E, 0, n)
	rowIdx := make([]int, 0, n)
	colIdx := make([]int, 0, n)
	val = append(val, m.val[:start]...)
	val = append(val, rv...)
	val = append(val, m.val[end:]...)
	rowIdx = append(rowIdx, m.rowIdx[:start]...)
	rowIdx = append(rowIdx, rr...)
	rowIdx = append(rowIdx, m.rowIdx[end:]...)
	colIdx = append(colIdx, m.colIdx[:start]...)
	colIdx = append(colIdx, rc...)
	colIdx = append(colIdx, m.colIdx[end:]...)
	m.val, m.rowIdx, m.colIdx = val, rowIdx, colIdx
}

// compactZeros drops stored ring-zero values in place, preserving order.
func (m *Matrix[E]) compactZeros() {
	w := 0
	for i := range m.val {
		if m.ring.IsZero(m.val[i]) {
			continue
		}
		m.val[w] = m.val[i]
		m.rowIdx[w] = m.rowIdx[i]
		m.colIdx[w] = m.colIdx[i]
		w++
	}
	m.val = m.val[:w]
	m.rowIdx = m.rowIdx[:w]
	m.colIdx = m.colIdx[:w]
}
