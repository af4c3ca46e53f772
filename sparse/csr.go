// SPDX-License-Identifier: MIT

// Package sparse - the compressed sparse row format.
//
// CSR compresses the row coordinates of a COO store into a pointer array:
// row r owns the half-open window [rowPtr[r], rowPtr[r+1]) of the value
// and column arrays. Row access becomes O(1) slicing, which is what the
// row-gather kernels want. Within a row the column order is whatever the
// producer emitted; the format does not re-sort it, it only forbids
// duplicate columns.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/algebra"
)

// csrIdxErrorf tags an index error with the method name and position.
func csrIdxErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a sparse matrix in compressed sparse row format.
//   - rows, cols hold dimensions (both > 0).
//   - val, colIdx are parallel arrays of length nnz.
//   - rowPtr has length rows+1, starts at 0, is non-decreasing and ends at
//     nnz; row r occupies positions [rowPtr[r], rowPtr[r+1]).
//   - within a row, columns are unique but in producer order.
type CSR[E any] struct {
	rows, cols int
	val        []E
	colIdx     []int
	rowPtr     []int
	ring       algebra.Ring[E]
}

// NewCSR builds a CSR store from its raw arrays, copying them.
// MAIN DESCRIPTION:
//   - The validating constructor for externally produced CSR data;
//     ToCSR on a Matrix is the fast path that skips the checks it
//     guarantees by construction.
//
// Implementation:
//   - Stage 1: ring, shape and array-length checks.
//   - Stage 2: rowPtr must start at 0, never decrease, and end at nnz.
//   - Stage 3: per-row column scan validates bounds and rejects duplicate
//     columns with a row-stamped scratch array (O(nnz + cols), no map).
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrTripletLength, ErrRowPointers,
//     ErrOutOfRange, ErrDuplicateIndex.
//
// Complexity: Time O(nnz + rows + cols), Space O(nnz + cols).
func NewCSR[E any](ring algebra.Ring[E], rows, cols int, vals []E, colIdx, rowPtr []int) (*CSR[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opNewCSR, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opNewCSR, ErrBadShape)
	}
	if len(vals) != len(colIdx) {
		return nil, sparseErrorf(opNewCSR, ErrTripletLength)
	}
	if len(rowPtr) != rows+1 || rowPtr[0] != 0 || rowPtr[rows] != len(vals) {
		return nil, sparseErrorf(opNewCSR, ErrRowPointers)
	}
	for r := 0; r < rows; r++ {
		if rowPtr[r] > rowPtr[r+1] {
			return nil, sparseErrorf(opNewCSR, ErrRowPointers)
		}
	}
	seen := make([]int, cols)
	for i := range seen {
		seen[i] = -1
	}
	for r := 0; r < rows; r++ {
		for k := rowPtr[r]; k < rowPtr[r+1]; k++ {
			c := colIdx[k]
			if c < 0 || c >= cols {
				return nil, sparseErrorf(opNewCSR, ErrOutOfRange)
			}
			if seen[c] == r {
				return nil, sparseErrorf(opNewCSR, ErrDuplicateIndex)
			}
			seen[c] = r
		}
	}
	return &CSR[E]{
		rows:   rows,
		cols:   cols,
		val:    append([]E(nil), vals...),
		colIdx: append([]int(nil), colIdx...),
		rowPtr: append([]int(nil), rowPtr...),
		ring:   ring,
	}, nil
}

// Rows returns the row count.
func (s *CSR[E]) Rows() int { return s.rows }

// Cols returns the column count.
func (s *CSR[E]) Cols() int { return s.cols }

// NNZ returns the number of stored entries.
func (s *CSR[E]) NNZ() int { return len(s.val) }

// Ring returns the element ring.
func (s *CSR[E]) Ring() algebra.Ring[E] { return s.ring }

// RowNNZ returns the number of stored entries in row r.
//
// Errors: ErrOutOfRange.
func (s *CSR[E]) RowNNZ(r int) (int, error) {
	if r < 0 || r >= s.rows {
		return 0, csrIdxErrorf(opAt, r, 0, ErrOutOfRange)
	}
	return s.rowPtr[r+1] - s.rowPtr[r], nil
}

// Clone returns a deep copy sharing nothing with s.
func (s *CSR[E]) Clone() *CSR[E] {
	return &CSR[E]{
		rows:   s.rows,
		cols:   s.cols,
		val:    append([]E(nil), s.val...),
		colIdx: append([]int(nil), s.colIdx...),
		rowPtr: append([]int(nil), s.rowPtr...),
		ring:   s.ring,
	}
}

// At returns the value at (r, c); absent positions read as ring.Zero().
// The row window is found in O(1), but columns within it may be unsorted,
// so the window scan is linear.
//
// Errors: ErrOutOfRange.
func (s *CSR[E]) At(r, c int) (E, error) {
	if r < 0 || r >= s.rows || c < 0 || c >= s.cols {
		var zero E
		return zero, csrIdxErrorf(opAt, r, c, ErrOutOfRange)
	}
	for k := s.rowPtr[r]; k < s.rowPtr[r+1]; k++ {
		if s.colIdx[k] == c {
			return s.val[k], nil
		}
	}
	return s.ring.Zero(), nil
}

// Do visits the stored entries row by row, columns in producer order
// within each row. fn returning false stops the walk.
func (s *CSR[E]) Do(fn func(r, c int, v E) bool) {
	for r := 0; r < s.rows; r++ {
		for k := s.rowPtr[r]; k < s.rowPtr[r+1]; k++ {
			if !fn(r, s.colIdx[k], s.val[k]) {
				return
			}
		}
	}
}

// MatVec returns s·x under the ring: out[r] folds Add over
// Mul(val, x[col]) across row r's window. The gather never touches absent
// positions, so each row costs exactly its nnz.
//
// Errors: ErrShapeMismatch unless len(x) == Cols().
//
// Complexity: O(nnz + rows).
func (s *CSR[E]) MatVec(x []E) ([]E, error) {
	if len(x) != s.cols {
		return nil, sparseErrorf(opMatVec, ErrShapeMismatch)
	}
	out := make([]E, s.rows)
	for r := 0; r < s.rows; r++ {
		acc := s.ring.Zero()
		for k := s.rowPtr[r]; k < s.rowPtr[r+1]; k++ {
			acc = s.ring.Add(acc, s.ring.Mul(s.val[k], x[s.colIdx[k]]))
		}
		out[r] = acc
	}
	return out, nil
}
