// SPDX-License-Identifier: MIT

// Package tensor - merges, axis rewrites and format changes.
//
// Add and ElemMul are the R-tuple generalizations of the matrix merges:
// two-pointer walks over two sorted stores, union for Add, intersection for
// ElemMul, output sorted by construction. Transpose and Permute rewrite
// every tuple; a rewrite that touches the leading axes destroys
// lexicographic order, so both re-sort unconditionally before returning.

package tensor

// Add returns the element-wise sum t + o as a new store. Matched tuples
// emit ring.Add(v1, v2), one-sided tuples pass their value through; a sum
// that cancels to the ring zero stays stored unless the receiver was built
// WithDropZeros.
//
// Errors: ErrNilTensor, ErrShapeMismatch.
//
// Complexity: O(R (nnz1 + nnz2)).
func (t *Sparse[E]) Add(o *Sparse[E]) (*Sparse[E], error) {
	if t == nil || o == nil {
		return nil, tensorErrorf(opAdd, ErrNilTensor)
	}
	if !t.shape.Equal(o.shape) {
		return nil, tensorErrorf(opAdd, ErrShapeMismatch)
	}
	out := t.newLike(t.shape, len(t.val)+len(o.val))
	i, j := 0, 0
	for i < len(t.val) && j < len(o.val) {
		switch {
		case tupleEq(t.idx[i], o.idx[j]):
			out.push(t.idx[i], t.ring.Add(t.val[i], o.val[j]))
			i++
			j++
		case tupleLess(t.idx[i], o.idx[j]):
			out.push(t.idx[i], t.val[i])
			i++
		default:
			out.push(o.idx[j], o.val[j])
			j++
		}
	}
	for ; i < len(t.val); i++ {
		out.push(t.idx[i], t.val[i])
	}
	for ; j < len(o.val); j++ {
		out.push(o.idx[j], o.val[j])
	}
	return out, nil
}

// ElemMul returns the element-wise product over stored∩stored tuples as a
// new store; one-sided entries vanish without ever multiplying.
//
// Errors: ErrNilTensor, ErrShapeMismatch.
//
// Complexity: O(R (nnz1 + nnz2)), output nnz <= min(nnz1, nnz2).
func (t *Sparse[E]) ElemMul(o *Sparse[E]) (*Sparse[E], error) {
	if t == nil || o == nil {
		return nil, tensorErrorf(opElemMul, ErrNilTensor)
	}
	if !t.shape.Equal(o.shape) {
		return nil, tensorErrorf(opElemMul, ErrShapeMismatch)
	}
	capHint := len(t.val)
	if len(o.val) < capHint {
		capHint = len(o.val)
	}
	out := t.newLike(t.shape, capHint)
	i, j := 0, 0
	for i < len(t.val) && j < len(o.val) {
		switch {
		case tupleEq(t.idx[i], o.idx[j]):
			out.push(t.idx[i], t.ring.Mul(t.val[i], o.val[j]))
			i++
			j++
		case tupleLess(t.idx[i], o.idx[j]):
			i++
		default:
			j++
		}
	}
	return out, nil
}

// Equal reports element-wise equality under the receiver's ring, treating
// stored zeros and absent positions alike. Shapes must match; a nil operand
// equals only a nil receiver.
//
// Complexity: O(R (nnz1 + nnz2)).
func (t *Sparse[E]) Equal(o *Sparse[E]) bool {
	if t == nil || o == nil {
		return t == o
	}
	if !t.shape.Equal(o.shape) {
		return false
	}
	i, j := 0, 0
	for i < len(t.val) && j < len(o.val) {
		switch {
		case tupleEq(t.idx[i], o.idx[j]):
			if !t.ring.Eq(t.val[i], o.val[j]) {
				return false
			}
			i++
			j++
		case tupleLess(t.idx[i], o.idx[j]):
			if !t.ring.IsZero(t.val[i]) {
				return false
			}
			i++
		default:
			if !t.ring.IsZero(o.val[j]) {
				return false
			}
			j++
		}
	}
	for ; i < len(t.val); i++ {
		if !t.ring.IsZero(t.val[i]) {
			return false
		}
	}
	for ; j < len(o.val); j++ {
		if !t.ring.IsZero(o.val[j]) {
			return false
		}
	}
	return true
}

// Transpose returns a new store with axes a1 and a2 exchanged.
// MAIN DESCRIPTION:
//   - The rank-R axis-swap transpose: every entry keeps its value and moves
//     to the tuple with components a1 and a2 exchanged; the shape swaps the
//     same axes.
//
// Implementation:
//   - Stage 1: validate both axes; equal axes short-circuit to Clone.
//   - Stage 2: clone each tuple, swap the two components, append.
//   - Stage 3: sortTuples. Exchanging tuple components reorders keys
//     whenever the swapped axes differ in a leading position, so the sort
//     runs unconditionally.
//
// Errors:
//   - ErrNilTensor, ErrAxis.
//
// Complexity: Time O(R nnz log nnz), Space O(R nnz).
func (t *Sparse[E]) Transpose(a1, a2 int) (*Sparse[E], error) {
	if t == nil {
		return nil, tensorErrorf(opTranspose, ErrNilTensor)
	}
	if !t.shape.validAxis(a1) || !t.shape.validAxis(a2) {
		return nil, tensorErrorf(opTranspose, ErrAxis)
	}
	if a1 == a2 {
		return t.Clone(), nil
	}
	out := t.newLike(t.shape.SwapAxes(a1, a2), len(t.val))
	for i := range t.val {
		idx := append([]int(nil), t.idx[i]...)
		idx[a1], idx[a2] = idx[a2], idx[a1]
		out.val = append(out.val, t.val[i])
		out.idx = append(out.idx, idx)
	}
	out.sortTuples()
	return out, nil
}

// Permute returns a new store under the general axis permutation: axis a of
// the result is axis perm[a] of the receiver, for shape and tuples alike.
// Tuples are rewritten and the store re-sorted, as in Transpose.
//
// Errors: ErrNilTensor, ErrAxis unless perm is a permutation of [0, rank).
//
// Complexity: O(R nnz log nnz).
func (t *Sparse[E]) Permute(perm []int) (*Sparse[E], error) {
	if t == nil {
		return nil, tensorErrorf(opPermute, ErrNilTensor)
	}
	if !t.shape.validPerm(perm) {
		return nil, tensorErrorf(opPermute, ErrAxis)
	}
	out := t.newLike(t.shape.Permute(perm), len(t.val))
	for i := range t.val {
		idx := make([]int, len(perm))
		for a, p := range perm {
			idx[a] = t.idx[i][p]
		}
		out.val = append(out.val, t.val[i])
		out.idx = append(out.idx, idx)
	}
	out.sortTuples()
	return out, nil
}

// ToDense scatters the stored entries into a fresh dense tensor over the
// same shape and ring; absent positions hold ring.Zero(). Tuples are unique
// by the store invariant; were that ever violated internally, the later
// entry would win.
//
// Complexity: O(size + R nnz).
func (t *Sparse[E]) ToDense() *Dense[E] {
	d := newDenseZeroed(t.ring, t.shape)
	for i := range t.val {
		d.data[t.shape.flatOffset(t.idx[i])] = t.val[i]
	}
	return d
}

// ToSparse converts the buffer to coordinate form, storing exactly the
// positions whose value is not the ring zero. The row-major scan emits
// tuples in increasing lexicographic order, so the result is sorted by
// construction and never pays a sort.
//
// Complexity: O(R size).
func (d *Dense[E]) ToSparse(opts ...Option) *Sparse[E] {
	o := gatherOptions(opts...)
	t := &Sparse[E]{shape: d.shape, ring: d.ring, dropZeros: o.dropZeros}
	if o.capacity > 0 {
		t.val = make([]E, 0, o.capacity)
		t.idx = make([][]int, 0, o.capacity)
	}
	idx := make([]int, d.shape.Rank())
	for off := range d.data {
		if !d.ring.IsZero(d.data[off]) {
			t.push(idx, d.data[off])
		}
		d.shape.advance(idx)
	}
	return t
}

// FromDense is ToSparse with a nil check, for pipelines that may carry a
// missing operand.
//
// Errors: ErrNilTensor.
func FromDense[E any](d *Dense[E], opts ...Option) (*Sparse[E], error) {
	if d == nil {
		return nil, tensorErrorf(opFromDense, ErrNilTensor)
	}
	return d.ToSparse(opts...), nil
}
