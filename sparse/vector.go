// SPDX-License-Identifier: MIT

// Package sparse - sparse vectors.
//
// Vector is the 1-D counterpart of Matrix: one value array, one index
// array, strictly increasing indices. Row and column extraction return
// vectors, row writes accept them, and the merge ops mirror the matrix
// engine with a single index to compare instead of a pair.

package sparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

const (
	_fmtVecHeader = "dim %d, %d stored\n"
	_fmtVecEntry  = "(%d): %v\n"
)

// vecIdxErrorf tags an index error with the method name and the offending
// position.
func vecIdxErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a sparse vector in coordinate format.
//   - dim is the logical length (> 0).
//   - val, idx are parallel arrays; entry k is val[k] at position idx[k].
//   - invariant: idx strictly increases, every index in [0, dim).
//
// Absent positions read as ring.Zero().
type Vector[E any] struct {
	dim       int
	val       []E
	idx       []int
	ring      algebra.Ring[E]
	dropZeros bool
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// NewVector returns an empty vector of the given dimension over ring.
//
// Errors: ErrNilVector if ring is nil, ErrBadShape unless dim > 0.
func NewVector[E any](ring algebra.Ring[E], dim int, opts ...Option) (*Vector[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opNewVector, ErrNilVector)
	}
	if dim <= 0 {
		return nil, sparseErrorf(opNewVector, ErrBadShape)
	}
	o := gatherOptions(opts...)
	v := &Vector[E]{dim: dim, ring: ring, dropZeros: o.dropZeros}
	if o.capacity > 0 {
		v.val = make([]E, 0, o.capacity)
		v.idx = make([]int, 0, o.capacity)
	}
	return v, nil
}

// newVecLike returns an empty vector inheriting m's ring and zero policy.
func (m *Matrix[E]) newVecLike(dim, capHint int) *Vector[E] {
	return &Vector[E]{
		dim:       dim,
		val:       make([]E, 0, capHint),
		idx:       make([]int, 0, capHint),
		ring:      m.ring,
		dropZeros: m.dropZeros,
	}
}

// newLike is the vector counterpart of Matrix.newLike.
func (v *Vector[E]) newLike(dim, capHint int) *Vector[E] {
	return &Vector[E]{
		dim:       dim,
		val:       make([]E, 0, capHint),
		idx:       make([]int, 0, capHint),
		ring:      v.ring,
		dropZeros: v.dropZeros,
	}
}

// NewVectorFromSlices builds a vector from parallel value/index slices in
// any order: copy, sort, reject adjacent duplicates, validate bounds.
//
// Errors: ErrNilVector, ErrBadShape, ErrTripletLength, ErrOutOfRange,
// ErrDuplicateIndex.
//
// Complexity: O(nnz log nnz).
func NewVectorFromSlices[E any](ring algebra.Ring[E], dim int, vals []E, idx []int, opts ...Option) (*Vector[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opVecFromSlice, ErrNilVector)
	}
	if dim <= 0 {
		return nil, sparseErrorf(opVecFromSlice, ErrBadShape)
	}
	if len(vals) != len(idx) {
		return nil, sparseErrorf(opVecFromSlice, ErrTripletLength)
	}
	for _, i := range idx {
		if i < 0 || i >= dim {
			return nil, sparseErrorf(opVecFromSlice, ErrOutOfRange)
		}
	}
	o := gatherOptions(opts...)
	n := len(vals)
	capHint := n
	if o.capacity > capHint {
		capHint = o.capacity
	}
	v := &Vector[E]{
		dim:       dim,
		val:       make([]E, n, capHint),
		idx:       make([]int, n, capHint),
		ring:      ring,
		dropZeros: o.dropZeros,
	}
	copy(v.val, vals)
	copy(v.idx, idx)
	v.sortEntries()
	for i := 1; i < n; i++ {
		if v.idx[i-1] == v.idx[i] {
			return nil, sparseErrorf(opVecFromSlice, ErrDuplicateIndex)
		}
	}
	if v.dropZeros {
		v.compactZeros()
	}
	return v, nil
}

// VectorFromDense builds a vector from a dense slice, storing the entries
// the ring does not consider zero. The scan runs in index order, so the
// result is sorted by construction.
//
// Errors: ErrNilVector, ErrBadShape (empty data).
func VectorFromDense[E any](ring algebra.Ring[E], data []E, opts ...Option) (*Vector[E], error) {
	if ring == nil {
		return nil, sparseErrorf(opVecFromDense, ErrNilVector)
	}
	if len(data) == 0 {
		return nil, sparseErrorf(opVecFromDense, ErrBadShape)
	}
	o := gatherOptions(opts...)
	v := &Vector[E]{dim: len(data), ring: ring, dropZeros: o.dropZeros}
	for i, x := range data {
		if ring.IsZero(x) {
			continue
		}
		v.val = append(v.val, x)
		v.idx = append(v.idx, i)
	}
	return v, nil
}

// Dim returns the logical length.
func (v *Vector[E]) Dim() int { return v.dim }

// NNZ returns the number of stored entries.
func (v *Vector[E]) NNZ() int { return len(v.val) }

// Ring returns the element ring.
func (v *Vector[E]) Ring() algebra.Ring[E] { return v.ring }

// DropZeros reports whether the vector elides ring-zero values.
func (v *Vector[E]) DropZeros() bool { return v.dropZeros }

// Clone returns a deep copy sharing nothing with v.
func (v *Vector[E]) Clone() *Vector[E] {
	return &Vector[E]{
		dim:       v.dim,
		val:       append([]E(nil), v.val...),
		idx:       append([]int(nil), v.idx...),
		ring:      v.ring,
		dropZeros: v.dropZeros,
	}
}

// search locates index i: entry position and true on a hit, insertion
// position and false on a miss.
func (v *Vector[E]) search(i int) (int, bool) {
	k := sort.SearchInts(v.idx, i)
	if k < len(v.idx) && v.idx[k] == i {
		return k, true
	}
	return k, false
}

// At returns the value at position i; absent positions read as ring.Zero().
//
// Errors: ErrOutOfRange.
func (v *Vector[E]) At(i int) (E, error) {
	if i < 0 || i >= v.dim {
		var zero E
		return zero, vecIdxErrorf(opAt, i, ErrOutOfRange)
	}
	if k, found := v.search(i); found {
		return v.val[k], nil
	}
	return v.ring.Zero(), nil
}

// Set writes x at position i, replacing or splicing as needed. On a
// WithDropZeros vector, writing a ring zero removes the entry.
//
// Errors: ErrOutOfRange.
func (v *Vector[E]) Set(i int, x E) error {
	if i < 0 || i >= v.dim {
		return vecIdxErrorf(opSet, i, ErrOutOfRange)
	}
	k, found := v.search(i)
	if v.dropZeros && v.ring.IsZero(x) {
		if found {
			v.removeAt(k)
		}
		return nil
	}
	if found {
		v.val[k] = x
		return nil
	}
	v.insertAt(k, i, x)
	return nil
}

// Do visits the stored entries in index order; fn returning false stops.
func (v *Vector[E]) Do(fn func(i int, x E) bool) {
	for k := range v.val {
		if !fn(v.idx[k], v.val[k]) {
			return
		}
	}
}

// Entries returns copies of the value and index arrays in index order.
func (v *Vector[E]) Entries() (vals []E, idx []int) {
	return append([]E(nil), v.val...), append([]int(nil), v.idx...)
}

// ToDense expands v into a dense slice of length Dim, absent positions
// filled with the ring zero.
func (v *Vector[E]) ToDense() []E {
	out := make([]E, v.dim)
	zero := v.ring.Zero()
	var zv E
	if !v.ring.IsZero(zv) {
		for i := range out {
			out[i] = zero
		}
	}
	for k, i := range v.idx {
		out[i] = v.val[k]
	}
	return out
}

// String renders the dimension header and one "(i): v" line per entry.
func (v *Vector[E]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtVecHeader, v.dim, len(v.val))
	for k := range v.val {
		fmt.Fprintf(&b, _fmtVecEntry, v.idx[k], v.val[k])
	}
	return b.String()
}

// push appends an entry at the tail; the caller guarantees ascending order.
func (v *Vector[E]) push(i int, x E) {
	if v.dropZeros && v.ring.IsZero(x) {
		return
	}
	v.val = append(v.val, x)
	v.idx = append(v.idx, i)
}

// insertAt splices (i, x) in at position k.
func (v *Vector[E]) insertAt(k, i int, x E) {
	var zv E
	v.val = append(v.val, zv)
	copy(v.val[k+1:], v.val[k:])
	v.val[k] = x
	v.idx = append(v.idx, 0)
	copy(v.idx[k+1:], v.idx[k:])
	v.idx[k] = i
}

// removeAt splices the entry at position k out.
func (v *Vector[E]) removeAt(k int) {
	v.val = append(v.val[:k], v.val[k+1:]...)
	v.idx = append(v.idx[:k], v.idx[k+1:]...)
}

// compactZeros drops stored ring-zero values in place, preserving order.
func (v *Vector[E]) compactZeros() {
	w := 0
	for k := range v.val {
		if v.ring.IsZero(v.val[k]) {
			continue
		}
		v.val[w] = v.val[k]
		v.idx[w] = v.idx[k]
		w++
	}
	v.val = v.val[:w]
	v.idx = v.idx[:w]
}

// ---------- vector arithmetic ----------

// Add returns the element-wise sum v + o as a new vector: union merge,
// matched indices emit ring.Add, one-sided entries pass through.
//
// Errors: ErrNilVector, ErrShapeMismatch.
//
// Complexity: O(nnz1 + nnz2).
func (v *Vector[E]) Add(o *Vector[E]) (*Vector[E], error) {
	if v == nil || o == nil {
		return nil, sparseErrorf(opAdd, ErrNilVector)
	}
	if v.dim != o.dim {
		return nil, sparseErrorf(opAdd, ErrShapeMismatch)
	}
	out := v.newLike(v.dim, len(v.val)+len(o.val))
	i, j := 0, 0
	for i < len(v.val) && j < len(o.val) {
		switch {
		case v.idx[i] == o.idx[j]:
			out.push(v.idx[i], v.ring.Add(v.val[i], o.val[j]))
			i++
			j++
		case v.idx[i] < o.idx[j]:
			out.push(v.idx[i], v.val[i])
			i++
		default:
			out.push(o.idx[j], o.val[j])
			j++
		}
	}
	for ; i < len(v.val); i++ {
		out.push(v.idx[i], v.val[i])
	}
	for ; j < len(o.val); j++ {
		out.push(o.idx[j], o.val[j])
	}
	return out, nil
}

// ElemMul returns the element-wise product as a new vector: intersection
// merge, only matched indices emit.
//
// Errors: ErrNilVector, ErrShapeMismatch.
//
// Complexity: O(nnz1 + nnz2).
func (v *Vector[E]) ElemMul(o *Vector[E]) (*Vector[E], error) {
	if v == nil || o == nil {
		return nil, sparseErrorf(opElemMul, ErrNilVector)
	}
	if v.dim != o.dim {
		return nil, sparseErrorf(opElemMul, ErrShapeMismatch)
	}
	capHint := len(v.val)
	if len(o.val) < capHint {
		capHint = len(o.val)
	}
	out := v.newLike(v.dim, capHint)
	i, j := 0, 0
	for i < len(v.val) && j < len(o.val) {
		switch {
		case v.idx[i] == o.idx[j]:
			out.push(v.idx[i], v.ring.Mul(v.val[i], o.val[j]))
			i++
			j++
		case v.idx[i] < o.idx[j]:
			i++
		default:
			j++
		}
	}
	return out, nil
}

// Dot returns the inner product of v and o under v's ring.
// MAIN DESCRIPTION:
//   - Intersection merge folded into a single accumulator: only indices
//     stored on both sides can contribute, everything else multiplies a
//     ring zero.
//
// Implementation:
//   - Two cursors advance through the sorted index arrays; a match folds
//     acc = Add(acc, Mul(x, y)), a miss advances the smaller side.
//   - The accumulator starts at ring.Zero(), so the empty intersection
//     returns the additive identity (0 for numbers, +Inf for MinPlus).
//
// Errors:
//   - ErrNilVector, ErrShapeMismatch.
//
// Complexity: Time O(nnz1 + nnz2), Space O(1).
func (v *Vector[E]) Dot(o *Vector[E]) (E, error) {
	var zero E
	if v == nil || o == nil {
		return zero, sparseErrorf(opDot, ErrNilVector)
	}
	if v.dim != o.dim {
		return zero, sparseErrorf(opDot, ErrShapeMismatch)
	}
	acc := v.ring.Zero()
	i, j := 0, 0
	for i < len(v.val) && j < len(o.val) {
		switch {
		case v.idx[i] == o.idx[j]:
			acc = v.ring.Add(acc, v.ring.Mul(v.val[i], o.val[j]))
			i++
			j++
		case v.idx[i] < o.idx[j]:
			i++
		default:
			j++
		}
	}
	return acc, nil
}

// Scale multiplies every stored value by k in place, compacting collapsed
// zeros on a WithDropZeros vector.
func (v *Vector[E]) Scale(k E) {
	for i := range v.val {
		v.val[i] = v.ring.Mul(v.val[i], k)
	}
	if v.dropZeros {
		v.compactZeros()
	}
}

// Equal reports whether o has the same dimension and equal values under
// v's ring policy, stored zeros matching absent positions.
func (v *Vector[E]) Equal(o *Vector[E]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.dim != o.dim {
		return false
	}
	i, j := 0, 0
	for i < len(v.val) && j < len(o.val) {
		switch {
		case v.idx[i] == o.idx[j]:
			if !v.ring.Eq(v.val[i], o.val[j]) {
				return false
			}
			i++
			j++
		case v.idx[i] < o.idx[j]:
			if !v.ring.IsZero(v.val[i]) {
				return false
			}
			i++
		default:
			if !v.ring.IsZero(o.val[j]) {
				return false
			}
			j++
		}
	}
	for ; i < len(v.val); i++ {
		if !v.ring.IsZero(v.val[i]) {
			return false
		}
	}
	for ; j < len(o.val); j++ {
		if !v.ring.IsZero(o.val[j]) {
			return false
		}
	}
	return true
}

// Join returns the concatenation of v and o as a new vector of dimension
// v.dim + o.dim. o's indices shift by v.dim, so the concatenated arrays
// are already sorted; no re-sort runs.
//
// Errors: ErrNilVector.
//
// Complexity: O(nnz1 + nnz2).
func (v *Vector[E]) Join(o *Vector[E]) (*Vector[E], error) {
	if v == nil || o == nil {
		return nil, sparseErrorf(opJoin, ErrNilVector)
	}
	out := v.newLike(v.dim+o.dim, len(v.val)+len(o.val))
	out.val = append(out.val, v.val...)
	out.idx = append(out.idx, v.idx...)
	for k := range o.val {
		out.push(o.idx[k]+v.dim, o.val[k])
	}
	return out, nil
}

// Repeat tiles v into a matrix.
//
// Axis 0 stacks n copies of v as rows: the result is n×dim and the copies
// emit row-major, so the store is sorted by construction. Axis 1 expands
// each stored entry i into row i with columns 0..n-1: the result is dim×n,
// again emitted in key order.
//
// Errors: ErrNilVector, ErrBadShape (n <= 0), ErrAxis.
//
// Complexity: O(n * nnz).
func (v *Vector[E]) Repeat(n, axis int) (*Matrix[E], error) {
	if v == nil {
		return nil, sparseErrorf(opRepeat, ErrNilVector)
	}
	if n <= 0 {
		return nil, sparseErrorf(opRepeat, ErrBadShape)
	}
	switch axis {
	case 0:
		out := &Matrix[E]{
			rows:      n,
			cols:      v.dim,
			val:       make([]E, 0, n*len(v.val)),
			rowIdx:    make([]int, 0, n*len(v.val)),
			colIdx:    make([]int, 0, n*len(v.val)),
			ring:      v.ring,
			dropZeros: v.dropZeros,
		}
		for r := 0; r < n; r++ {
			for k := range v.val {
				out.push(r, v.idx[k], v.val[k])
			}
		}
		return out, nil
	case 1:
		out := &Matrix[E]{
			rows:      v.dim,
			cols:      n,
			val:       make([]E, 0, n*len(v.val)),
			rowIdx:    make([]int, 0, n*len(v.val)),
			colIdx:    make([]int, 0, n*len(v.val)),
			ring:      v.ring,
			dropZeros: v.dropZeros,
		}
		for k := range v.val {
			for c := 0; c < n; c++ {
				out.push(v.idx[k], c, v.val[k])
			}
		}
		return out, nil
	default:
		return nil, sparseErrorf(opRepeat, ErrAxis)
	}
}
