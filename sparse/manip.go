// SPDX-License-Identifier: MIT

// Package sparse - the structural manipulation engine.
//
// Row operations exploit the row-major sort order: a row occupies one
// contiguous window of the triplet arrays, found by binary search, and a
// row write is a local splice that preserves the global order. Column
// operations cannot do that (a column interleaves across every row), so
// column writes rebuild and re-sort, and column reads are documented
// linear scans. This asymmetry is the cost of the format, not an
// implementation accident.

package sparse

import "sort"

// SetRow replaces row r with the dense values vals, one per column. Every
// value is stored, ring zeros included, unless the store elides them; the
// replacement is a contiguous splice, so the order invariant survives
// without a re-sort.
//
// Errors: ErrOutOfRange, ErrShapeMismatch. On error m is untouched.
//
// Complexity: O(nnz + cols).
func (m *Matrix[E]) SetRow(r int, vals []E) error {
	if r < 0 || r >= m.rows {
		return sparseErrorf(opSetRow, ErrOutOfRange)
	}
	if len(vals) != m.cols {
		return sparseErrorf(opSetRow, ErrShapeMismatch)
	}
	rv := make([]E, 0, m.cols)
	rr := make([]int, 0, m.cols)
	rc := make([]int, 0, m.cols)
	for c, v := range vals {
		if m.dropZeros && m.ring.IsZero(v) {
			continue
		}
		rv = append(rv, v)
		rr = append(rr, r)
		rc = append(rc, c)
	}
	start, end := m.rowRange(r)
	m.replaceRange(start, end, rv, rr, rc)
	return nil
}

// SetRowSparse replaces row r with the stored entries of v, leaving the
// row's other positions absent. v's indices are already column-sorted by
// the vector invariant, so the splice preserves order without a re-sort.
//
// Errors: ErrNilVector, ErrOutOfRange, ErrShapeMismatch. On error m is
// untouched.
//
// Complexity: O(nnz + v.NNZ()).
func (m *Matrix[E]) SetRowSparse(r int, v *Vector[E]) error {
	if v == nil {
		return sparseErrorf(opSetRowSparse, ErrNilVector)
	}
	if r < 0 || r >= m.rows {
		return sparseErrorf(opSetRowSparse, ErrOutOfRange)
	}
	if v.dim != m.cols {
		return sparseErrorf(opSetRowSparse, ErrShapeMismatch)
	}
	rv := make([]E, 0, len(v.val))
	rr := make([]int, 0, len(v.val))
	rc := make([]int, 0, len(v.val))
	for i, c := range v.idx {
		if m.dropZeros && m.ring.IsZero(v.val[i]) {
			continue
		}
		rv = append(rv, v.val[i])
		rr = append(rr, r)
		rc = append(rc, c)
	}
	start, end := m.rowRange(r)
	m.replaceRange(start, end, rv, rr, rc)
	return nil
}

// SetCol replaces column c with the dense values vals, one per row. Column
// entries interleave across the whole store, so the old column is filtered
// out, the new entries appended, and the arrays re-sorted.
//
// Errors: ErrOutOfRange, ErrShapeMismatch. On error m is untouched.
//
// Complexity: O(nnz log nnz + rows).
func (m *Matrix[E]) SetCol(c int, vals []E) error {
	if c < 0 || c >= m.cols {
		return sparseErrorf(opSetCol, ErrOutOfRange)
	}
	if len(vals) != m.rows {
		return sparseErrorf(opSetCol, ErrShapeMismatch)
	}
	m.dropColumn(c)
	for r, v := range vals {
		if m.dropZeros && m.ring.IsZero(v) {
			continue
		}
		m.val = append(m.val, v)
		m.rowIdx = append(m.rowIdx, r)
		m.colIdx = append(m.colIdx, c)
	}
	m.sortTriplets()
	return nil
}

// SetColSparse replaces column c with the stored entries of v, leaving the
// column's other positions absent. Same filter-append-sort path as SetCol.
//
// Errors: ErrNilVector, ErrOutOfRange, ErrShapeMismatch. On error m is
// untouched.
func (m *Matrix[E]) SetColSparse(c int, v *Vector[E]) error {
	if v == nil {
		return sparseErrorf(opSetColSparse, ErrNilVector)
	}
	if c < 0 || c >= m.cols {
		return sparseErrorf(opSetColSparse, ErrOutOfRange)
	}
	if v.dim != m.rows {
		return sparseErrorf(opSetColSparse, ErrShapeMismatch)
	}
	m.dropColumn(c)
	for i, r := range v.idx {
		if m.dropZeros && m.ring.IsZero(v.val[i]) {
			continue
		}
		m.val = append(m.val, v.val[i])
		m.rowIdx = append(m.rowIdx, r)
		m.colIdx = append(m.colIdx, c)
	}
	m.sortTriplets()
	return nil
}

// dropColumn filters every entry of column c out, preserving order.
func (m *Matrix[E]) dropColumn(c int) {
	w := 0
	for i := range m.val {
		if m.colIdx[i] == c {
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

// GetRow returns row r as a sparse vector of dimension cols. The row is a
// contiguous window of the store, so the copy is O(log nnz + row nnz).
//
// Errors: ErrOutOfRange.
func (m *Matrix[E]) GetRow(r int) (*Vector[E], error) {
	if r < 0 || r >= m.rows {
		return nil, sparseErrorf(opGetRow, ErrOutOfRange)
	}
	start, end := m.rowRange(r)
	v := m.newVecLike(m.cols, end-start)
	v.val = append(v.val, m.val[start:end]...)
	v.idx = append(v.idx, m.colIdx[start:end]...)
	return v, nil
}

// GetCol returns column c as a sparse vector of dimension rows. Columns
// interleave across the store, so this is the documented O(nnz) scan; the
// result arrives row-sorted because the store is.
//
// Errors: ErrOutOfRange.
func (m *Matrix[E]) GetCol(c int) (*Vector[E], error) {
	if c < 0 || c >= m.cols {
		return nil, sparseErrorf(opGetCol, ErrOutOfRange)
	}
	v := m.newVecLike(m.rows, 0)
	for i := range m.val {
		if m.colIdx[i] == c {
			v.val = append(v.val, m.val[i])
			v.idx = append(v.idx, m.rowIdx[i])
		}
	}
	return v, nil
}

// GetRowRange returns the columns [colStart, colEnd) of row r as a sparse
// vector of dimension colEnd-colStart, indices rebased to colStart.
//
// Errors: ErrOutOfRange (row out of bounds, or not
// 0 <= colStart < colEnd <= cols).
func (m *Matrix[E]) GetRowRange(r, colStart, colEnd int) (*Vector[E], error) {
	if r < 0 || r >= m.rows || colStart < 0 || colStart >= colEnd || colEnd > m.cols {
		return nil, sparseErrorf(opGetRowRange, ErrOutOfRange)
	}
	start, end := m.rowRange(r)
	window := m.colIdx[start:end]
	lo := start + sort.SearchInts(window, colStart)
	v := m.newVecLike(colEnd-colStart, 0)
	for i := lo; i < end && m.colIdx[i] < colEnd; i++ {
		v.val = append(v.val, m.val[i])
		v.idx = append(v.idx, m.colIdx[i]-colStart)
	}
	return v, nil
}

// GetColRange returns the rows [rowStart, rowEnd) of column c as a sparse
// vector of dimension rowEnd-rowStart, indices rebased to rowStart. The
// scan starts at the first entry of rowStart and stops at rowEnd, but
// still touches every entry of the rows between.
//
// Errors: ErrOutOfRange.
func (m *Matrix[E]) GetColRange(c, rowStart, rowEnd int) (*Vector[E], error) {
	if c < 0 || c >= m.cols || rowStart < 0 || rowStart >= rowEnd || rowEnd > m.rows {
		return nil, sparseErrorf(opGetColRange, ErrOutOfRange)
	}
	lo := sort.Search(len(m.val), func(k int) bool { return m.rowIdx[k] >= rowStart })
	v := m.newVecLike(rowEnd-rowStart, 0)
	for i := lo; i < len(m.val) && m.rowIdx[i] < rowEnd; i++ {
		if m.colIdx[i] == c {
			v.val = append(v.val, m.val[i])
			v.idx = append(v.idx, m.rowIdx[i]-rowStart)
		}
	}
	return v, nil
}

// GetSlice extracts the sub-matrix [rowStart, rowEnd) × [colStart, colEnd)
// as a new store with indices rebased to the slice origin.
// MAIN DESCRIPTION:
//   - Rectangular read returning a standalone matrix that inherits the
//     receiver's ring and zero policy.
//
// Implementation:
//   - Stage 1: validate 0 <= start < end <= dim on both axes; empty slices
//     are rejected because a matrix must have positive shape.
//   - Stage 2: binary search to the first entry of rowStart, then a single
//     forward scan that stops at the first entry of rowEnd; entries inside
//     the column band emit with indices shifted by (-rowStart, -colStart).
//   - The scan visits rows in order and columns in order within each row,
//     so the output is sorted by construction.
//
// Errors:
//   - ErrOutOfRange.
//
// Complexity: Time O(log nnz + scanned entries), Space O(output nnz).
func (m *Matrix[E]) GetSlice(rowStart, rowEnd, colStart, colEnd int) (*Matrix[E], error) {
	if rowStart < 0 || rowStart >= rowEnd || rowEnd > m.rows ||
		colStart < 0 || colStart >= colEnd || colEnd > m.cols {
		return nil, sparseErrorf(opGetSlice, ErrOutOfRange)
	}
	out := m.newLike(rowEnd-rowStart, colEnd-colStart, 0)
	lo := sort.Search(len(m.val), func(k int) bool { return m.rowIdx[k] >= rowStart })
	for i := lo; i < len(m.val) && m.rowIdx[i] < rowEnd; i++ {
		c := m.colIdx[i]
		if c < colStart || c >= colEnd {
			continue
		}
		out.push(m.rowIdx[i]-rowStart, c-colStart, m.val[i])
	}
	return out, nil
}

// SetSlice writes the entries of vals into m with their indices shifted by
// (rowStart, colStart), replacing the whole target rectangle: positions
// inside it that vals leaves absent become absent in m. The surviving
// outside entries and the shifted new entries are unioned into fresh
// arrays and re-sorted, so on error m is untouched and no caller ever
// sees a partial write.
//
// Errors: ErrNilMatrix, ErrOutOfRange (negative offsets),
// ErrShapeMismatch (rectangle does not fit).
//
// Complexity: O((nnz + vals.nnz) log(nnz + vals.nnz)).
func (m *Matrix[E]) SetSlice(vals *Matrix[E], rowStart, colStart int) error {
	if vals == nil {
		return sparseErrorf(opSetSlice, ErrNilMatrix)
	}
	if rowStart < 0 || colStart < 0 {
		return sparseErrorf(opSetSlice, ErrOutOfRange)
	}
	if rowStart+vals.rows > m.rows || colStart+vals.cols > m.cols {
		return sparseErrorf(opSetSlice, ErrShapeMismatch)
	}
	rowEnd, colEnd := rowStart+vals.rows, colStart+vals.cols
	n := len(m.val) + len(vals.val)
	val := make([]E, 0, n)
	rowIdx := make([]int, 0, n)
	colIdx := make([]int, 0, n)
	for i := range m.val {
		r, c := m.rowIdx[i], m.colIdx[i]
		if r >= rowStart && r < rowEnd && c >= colStart && c < colEnd {
			continue
		}
		val = append(val, m.val[i])
		rowIdx = append(rowIdx, r)
		colIdx = append(colIdx, c)
	}
	for i := range vals.val {
		if m.dropZeros && m.ring.IsZero(vals.val[i]) {
			continue
		}
		val = append(val, vals.val[i])
		rowIdx = append(rowIdx, vals.rowIdx[i]+rowStart)
		colIdx = append(colIdx, vals.colIdx[i]+colStart)
	}
	m.val, m.rowIdx, m.colIdx = val, rowIdx, colIdx
	m.sortTriplets()
	return nil
}

// SwapRows exchanges rows i and j in place by relabeling their row indices
// and re-sorting. i == j is a no-op.
//
// Errors: ErrOutOfRange. On error m is untouched.
func (m *Matrix[E]) SwapRows(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return sparseErrorf(opSwapRows, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for k := range m.rowIdx {
		switch m.rowIdx[k] {
		case i:
			m.rowIdx[k] = j
		case j:
			m.rowIdx[k] = i
		}
	}
	m.sortTriplets()
	return nil
}

// SwapCols exchanges columns i and j in place, same relabel-and-sort path
// as SwapRows.
//
// Errors: ErrOutOfRange. On error m is untouched.
func (m *Matrix[E]) SwapCols(i, j int) error {
	if i < 0 || i >= m.cols || j < 0 || j >= m.cols {
		return sparseErrorf(opSwapCols, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for k := range m.colIdx {
		switch m.colIdx[k] {
		case i:
			m.colIdx[k] = j
		case j:
			m.colIdx[k] = i
		}
	}
	m.sortTriplets()
	return nil
}
