// SPDX-License-Identifier: MIT

// Package sparse - the merge-based binary op engine.
//
// All pairwise arithmetic runs as a two-pointer walk over two sorted triplet
// stores: union merges for Add/Sub (a key present on either side emits),
// intersection merges for ElemMul/ElemDiv (only matched keys emit). The
// walk touches each entry once, so every op is O(nnz1 + nnz2), and because
// keys are consumed in increasing order the output is sorted by
// construction and never pays a re-sort.

package sparse

import "github.com/katalvlaran/lvlalg/algebra"

// keep passes a one-sided merge value through unchanged.
func keep[E any](x E) E { return x }

// mergeUnion walks a and b with two cursors, classifying each key as
// present in both, only in a, or only in b, and emitting the mapped value.
// The output inherits a's ring and zero policy.
func mergeUnion[E any](a, b *Matrix[E], both func(x, y E) E, left, right func(x E) E) *Matrix[E] {
	out := a.newLike(a.rows, a.cols, len(a.val)+len(b.val))
	i, j := 0, 0
	for i < len(a.val) && j < len(b.val) {
		ar, ac := a.rowIdx[i], a.colIdx[i]
		br, bc := b.rowIdx[j], b.colIdx[j]
		switch {
		case ar == br && ac == bc:
			out.push(ar, ac, both(a.val[i], b.val[j]))
			i++
			j++
		case keyLess(ar, ac, br, bc):
			out.push(ar, ac, left(a.val[i]))
			i++
		default:
			out.push(br, bc, right(b.val[j]))
			j++
		}
	}
	for ; i < len(a.val); i++ {
		out.push(a.rowIdx[i], a.colIdx[i], left(a.val[i]))
	}
	for ; j < len(b.val); j++ {
		out.push(b.rowIdx[j], b.colIdx[j], right(b.val[j]))
	}
	return out
}

// mergeIntersect emits only on matched keys; one-sided entries are skipped.
func mergeIntersect[E any](a, b *Matrix[E], both func(x, y E) E) *Matrix[E] {
	capHint := len(a.val)
	if len(b.val) < capHint {
		capHint = len(b.val)
	}
	out := a.newLike(a.rows, a.cols, capHint)
	i, j := 0, 0
	for i < len(a.val) && j < len(b.val) {
		ar, ac := a.rowIdx[i], a.colIdx[i]
		br, bc := b.rowIdx[j], b.colIdx[j]
		switch {
		case ar == br && ac == bc:
			out.push(ar, ac, both(a.val[i], b.val[j]))
			i++
			j++
		case keyLess(ar, ac, br, bc):
			i++
		default:
			j++
		}
	}
	return out
}

// Add returns the element-wise sum m + o as a new store.
// MAIN DESCRIPTION:
//   - Union merge under the receiver's ring: matched keys emit
//     ring.Add(v1, v2), one-sided keys pass their value through, and each
//     exhausted side drains the survivor verbatim.
//
// Implementation:
//   - Stage 1: validate non-nil operands and equal shapes.
//   - Stage 2: mergeUnion with both = ring.Add and identity passthroughs.
//
// Zeros:
//   - A sum that cancels to the ring zero stays stored; only a receiver
//     built WithDropZeros elides it. Absent∩absent positions never
//     materialize.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: Time O(nnz1 + nnz2), Space O(nnz1 + nnz2).
func (m *Matrix[E]) Add(o *Matrix[E]) (*Matrix[E], error) {
	if m == nil || o == nil {
		return nil, sparseErrorf(opAdd, ErrNilMatrix)
	}
	if m.rows != o.rows || m.cols != o.cols {
		return nil, sparseErrorf(opAdd, ErrShapeMismatch)
	}
	return mergeUnion(m, o, m.ring.Add, keep[E], keep[E]), nil
}

// Sub returns m - o as a new store. Subtraction needs additive inverses, so
// the ring must be an algebra.Field; matched keys emit Sub(v1, v2) and
// right-only keys emit Neg(v2).
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrFieldRequired.
//
// Complexity: O(nnz1 + nnz2).
func (m *Matrix[E]) Sub(o *Matrix[E]) (*Matrix[E], error) {
	if m == nil || o == nil {
		return nil, sparseErrorf(opSub, ErrNilMatrix)
	}
	if m.rows != o.rows || m.cols != o.cols {
		return nil, sparseErrorf(opSub, ErrShapeMismatch)
	}
	fld, ok := algebra.AsField(m.ring)
	if !ok {
		return nil, sparseErrorf(opSub, ErrFieldRequired)
	}
	return mergeUnion(m, o, fld.Sub, keep[E], fld.Neg), nil
}

// ElemMul returns the element-wise (Hadamard) product as a new store. Only
// keys stored on both sides can be nonzero, so the merge is an
// intersection; one-sided entries vanish without ever multiplying.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: O(nnz1 + nnz2), output nnz ≤ min(nnz1, nnz2).
func (m *Matrix[E]) ElemMul(o *Matrix[E]) (*Matrix[E], error) {
	if m == nil || o == nil {
		return nil, sparseErrorf(opElemMul, ErrNilMatrix)
	}
	if m.rows != o.rows || m.cols != o.cols {
		return nil, sparseErrorf(opElemMul, ErrShapeMismatch)
	}
	return mergeIntersect(m, o, m.ring.Mul), nil
}

// ElemDiv returns the element-wise quotient over stored∩stored keys as a
// new store. Positions absent from either operand stay absent; 0/0 cells
// therefore never materialize. A stored-zero divisor divides by the
// element type's own rules (IEEE Inf or NaN for floats).
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrFieldRequired.
//
// Complexity: O(nnz1 + nnz2).
func (m *Matrix[E]) ElemDiv(o *Matrix[E]) (*Matrix[E], error) {
	if m == nil || o == nil {
		return nil, sparseErrorf(opElemDiv, ErrNilMatrix)
	}
	if m.rows != o.rows || m.cols != o.cols {
		return nil, sparseErrorf(opElemDiv, ErrShapeMismatch)
	}
	fld, ok := algebra.AsField(m.ring)
	if !ok {
		return nil, sparseErrorf(opElemDiv, ErrFieldRequired)
	}
	return mergeIntersect(m, o, fld.Div), nil
}

// Scale multiplies every stored value by k in place. On a WithDropZeros
// store, values that collapse to the ring zero are removed afterwards.
func (m *Matrix[E]) Scale(k E) {
	for i := range m.val {
		m.val[i] = m.ring.Mul(m.val[i], k)
	}
	if m.dropZeros {
		m.compactZeros()
	}
}

// Equal reports whether o has the same shape and every position compares
// ring.Eq. Compared positions come from the key union; a stored zero on
// one side matches an absent position on the other, so two stores with
// different nnz can still be equal.
func (m *Matrix[E]) Equal(o *Matrix[E]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	i, j := 0, 0
	for i < len(m.val) && j < len(o.val) {
		ar, ac := m.rowIdx[i], m.colIdx[i]
		br, bc := o.rowIdx[j], o.colIdx[j]
		switch {
		case ar == br && ac == bc:
			if !m.ring.Eq(m.val[i], o.val[j]) {
				return false
			}
			i++
			j++
		case keyLess(ar, ac, br, bc):
			if !m.ring.IsZero(m.val[i]) {
				return false
			}
			i++
		default:
			if !m.ring.IsZero(o.val[j]) {
				return false
			}
			j++
		}
	}
	for ; i < len(m.val); i++ {
		if !m.ring.IsZero(m.val[i]) {
			return false
		}
	}
	for ; j < len(o.val); j++ {
		if !m.ring.IsZero(o.val[j]) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is the identity matrix. Non-square stores
// are never the identity, and nnz < rows cannot cover the diagonal, so
// both fast-fail before the scan. The scan demands IsOne on every diagonal
// hit and IsZero off the diagonal; the diagonal counter then confirms all
// rows supplied their entry (stored zeros can inflate nnz past rows while
// the diagonal stays incomplete).
//
// Complexity: O(nnz).
func (m *Matrix[E]) IsIdentity() bool {
	if m.rows != m.cols || len(m.val) < m.rows {
		return false
	}
	diag := 0
	for i := range m.val {
		if m.rowIdx[i] == m.colIdx[i] {
			if !m.ring.IsOne(m.val[i]) {
				return false
			}
			diag++
			continue
		}
		if !m.ring.IsZero(m.val[i]) {
			return false
		}
	}
	return diag == m.rows
}

// IsSymmetric reports whether m equals its transpose under the ring's
// comparison. Each off-diagonal entry probes its mirror with a binary
// search; an absent mirror reads as the ring zero, so a stored zero across
// from nothing still counts as symmetric.
//
// Complexity: O(nnz log nnz).
func (m *Matrix[E]) IsSymmetric() bool {
	if m.rows != m.cols {
		return false
	}
	for i := range m.val {
		r, c := m.rowIdx[i], m.colIdx[i]
		if r == c {
			continue
		}
		if !m.ring.Eq(m.val[i], m.valueAt(c, r)) {
			return false
		}
	}
	return true
}

// IsTriU reports whether every stored value below the diagonal is a ring
// zero.
func (m *Matrix[E]) IsTriU() bool {
	for i := range m.val {
		if m.rowIdx[i] > m.colIdx[i] && !m.ring.IsZero(m.val[i]) {
			return false
		}
	}
	return true
}

// IsTriL reports whether every stored value above the diagonal is a ring
// zero.
func (m *Matrix[E]) IsTriL() bool {
	for i := range m.val {
		if m.rowIdx[i] < m.colIdx[i] && !m.ring.IsZero(m.val[i]) {
			return false
		}
	}
	return true
}
