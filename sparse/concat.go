// SPDX-License-Identifier: MIT

package sparse

// Stack returns m stacked on top of o: vertical concatenation into a
// (m.rows+o.rows)×cols store. o's row indices shift up by m.rows, so every
// shifted key already exceeds every key of m and plain array concatenation
// preserves the sort order; no re-sort runs.
//
// The result inherits m's ring and zero policy; o's values pass through
// that policy on the way in.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (column counts differ).
//
// Complexity: O(nnz1 + nnz2).
func (m *Matrix[E]) Stack(o *Matrix[E]) (*Matrix[E], error) {
	if m == nil || o == nil {
		return nil, sparseErrorf(opStack, ErrNilMatrix)
	}
	if m.cols != o.cols {
		return nil, sparseErrorf(opStack, ErrShapeMismatch)
	}
	out := m.newLike(m.rows+o.rows, m.cols, len(m.val)+len(o.val))
	out.val = append(out.val, m.val...)
	out.rowIdx = append(out.rowIdx, m.rowIdx...)
	out.colIdx = append(out.colIdx, m.colIdx...)
	for i := range o.val {
		out.push(o.rowIdx[i]+m.rows, o.colIdx[i], o.val[i])
	}
	return out, nil
}

// Augment returns [m | o]: horizontal concatenation into a
// rows×(m.cols+o.cols) store. o's column indices shift right by m.cols,
// but the two operands' rows interleave, so the concatenated arrays
// re-sort before the result becomes visible.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (row counts differ).
//
// Complexity: O((nnz1 + nnz2) log(nnz1 + nnz2)).
func (m *Matrix[E]) Augment(o *Matrix[E]) (*Matrix[E], error) {
	if m == nil || o == nil {
		return nil, sparseErrorf(opAugment, ErrNilMatrix)
	}
	if m.rows != o.rows {
		return nil, sparseErrorf(opAugment, ErrShapeMismatch)
	}
	out := m.newLike(m.rows, m.cols+o.cols, len(m.val)+len(o.val))
	out.val = append(out.val, m.val...)
	out.rowIdx = append(out.rowIdx, m.rowIdx...)
	out.colIdx = append(out.colIdx, m.colIdx...)
	for i := range o.val {
		out.push(o.rowIdx[i], o.colIdx[i]+m.cols, o.val[i])
	}
	out.sortTriplets()
	return out, nil
}
