// SPDX-License-Identifier: MIT

// Package tensor - the rank-R coordinate store.
//
// Sparse keeps two parallel arrays (val, idx) sorted by full index tuple.
// The layout and discipline mirror the sparse matrix store with the
// (row, col) key widened to an R-tuple: constructors establish the
// sorted-unique invariant once, point access runs a binary search over the
// tuples, mutators splice around the hit. Merges and axis rewrites live in
// ops.go.

package tensor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// Rendering literals for String.
const (
	_fmtTenHeader = "shape %s, %d stored\n"
	_fmtTenEntry  = "(%s): %v\n"
	_fmtTupleSep  = ", "
)

// fmtTuple renders an index tuple as "i0, i1, ..., iR-1".
func fmtTuple(idx []int) string {
	var b strings.Builder
	for k, i := range idx {
		if k > 0 {
			b.WriteString(_fmtTupleSep)
		}
		fmt.Fprintf(&b, "%d", i)
	}
	return b.String()
}

// tupleLess reports a < b in lexicographic order over equal-rank tuples:
// the first differing axis decides.
func tupleLess(a, b []int) bool {
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

// tupleEq reports component-wise equality of equal-rank tuples.
func tupleEq(a, b []int) bool {
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}

// tupleSorter adapts a Sparse store's parallel arrays to sort.Interface,
// swapping values and tuple headers in lock-step.
type tupleSorter[E any] struct {
	t *Sparse[E]
}

func (s tupleSorter[E]) Len() int           { return len(s.t.val) }
func (s tupleSorter[E]) Less(i, j int) bool { return tupleLess(s.t.idx[i], s.t.idx[j]) }
func (s tupleSorter[E]) Swap(i, j int) {
	s.t.idx[i], s.t.idx[j] = s.t.idx[j], s.t.idx[i]
	s.t.val[i], s.t.val[j] = s.t.val[j], s.t.val[i]
}

// sortTuples restores lexicographic tuple order. The single choke point
// after an order-breaking rewrite (Transpose, Permute, bulk construction);
// everything else preserves order by construction.
//
// Complexity: O(R nnz log nnz).
func (t *Sparse[E]) sortTuples() {
	sort.Sort(tupleSorter[E]{t: t})
}

// isSortedStrict reports strictly increasing tuples (sorted and unique).
func (t *Sparse[E]) isSortedStrict() bool {
	for i := 1; i < len(t.val); i++ {
		if !tupleLess(t.idx[i-1], t.idx[i]) {
			return false
		}
	}
	return true
}

// Sparse is a rank-R sparse tensor in coordinate format.
//   - shape fixes the rank and the axis bounds.
//   - val and idx are parallel arrays of equal length; entry i is the value
//     val[i] stored at the multi-index idx[i] (an []int of length Rank).
//   - ring supplies element arithmetic and the comparison policy.
//   - dropZeros, when set, removes ring-zero values as they are produced.
//
// Invariants between exported calls: tuples strictly increase in
// lexicographic order (hence unique), every tuple has full rank, and every
// component lies inside its axis. Absent positions read as ring.Zero().
// Stores never share tuple memory: constructors and operations copy every
// index tuple on the way in.
type Sparse[E any] struct {
	shape     Shape
	val       []E
	idx       [][]int
	ring      algebra.Ring[E]
	dropZeros bool
}

var _ fmt.Stringer = (*Sparse[float64])(nil)

// NewSparse returns an empty store with the given shape over ring.
//
// Errors:
//   - ErrNilTensor if ring is nil.
//   - ErrBadShape if shape has rank 0.
func NewSparse[E any](ring algebra.Ring[E], shape Shape, opts ...Option) (*Sparse[E], error) {
	if ring == nil {
		return nil, tensorErrorf(opNewSparse, ErrNilTensor)
	}
	if shape.Rank() == 0 {
		return nil, tensorErrorf(opNewSparse, ErrBadShape)
	}
	o := gatherOptions(opts...)
	t := &Sparse[E]{shape: shape, ring: ring, dropZeros: o.dropZeros}
	if o.capacity > 0 {
		t.val = make([]E, 0, o.capacity)
		t.idx = make([][]int, 0, o.capacity)
	}
	return t, nil
}

// newLike returns an empty store with the given shape that inherits t's
// ring and zero policy.
func (t *Sparse[E]) newLike(shape Shape, capHint int) *Sparse[E] {
	return &Sparse[E]{
		shape:     shape,
		val:       make([]E, 0, capHint),
		idx:       make([][]int, 0, capHint),
		ring:      t.ring,
		dropZeros: t.dropZeros,
	}
}

// SparseFromTriplets builds a store from parallel value and tuple slices.
// MAIN DESCRIPTION:
//   - The bulk constructor: takes values with their multi-indices in any
//     order and establishes the sorted-unique store invariant.
//
// Implementation:
//   - Stage 1: validate ring, shape, equal slice lengths, full-rank tuples
//     and axis bounds before any allocation.
//   - Stage 2: copy values and deep-copy every tuple, then sortTuples
//     restores lexicographic order.
//   - Stage 3: duplicates are now adjacent; one linear pass rejects them.
//   - Stage 4: WithDropZeros stores compact ring-zero values away.
//
// Determinism:
//   - Identical inputs in any permutation produce the identical store.
//
// Errors:
//   - ErrNilTensor, ErrBadShape, ErrTripletLength, ErrOutOfRange,
//     ErrDuplicateIndex.
//
// Complexity: Time O(R nnz log nnz), Space O(R nnz).
func SparseFromTriplets[E any](ring algebra.Ring[E], shape Shape, vals []E, indices [][]int, opts ...Option) (*Sparse[E], error) {
	if ring == nil {
		return nil, tensorErrorf(opFromTriplets, ErrNilTensor)
	}
	if shape.Rank() == 0 {
		return nil, tensorErrorf(opFromTriplets, ErrBadShape)
	}
	if len(vals) != len(indices) {
		return nil, tensorErrorf(opFromTriplets, ErrTripletLength)
	}
	for _, idx := range indices {
		if !shape.inBounds(idx) {
			return nil, tensorErrorf(opFromTriplets, ErrOutOfRange)
		}
	}
	o := gatherOptions(opts...)
	n := len(vals)
	capHint := n
	if o.capacity > capHint {
		capHint = o.capacity
	}
	t := &Sparse[E]{
		shape:     shape,
		val:       make([]E, n, capHint),
		idx:       make([][]int, n, capHint),
		ring:      ring,
		dropZeros: o.dropZeros,
	}
	copy(t.val, vals)
	for i, idx := range indices {
		t.idx[i] = append([]int(nil), idx...)
	}
	t.sortTuples()
	for i := 1; i < n; i++ {
		if tupleEq(t.idx[i-1], t.idx[i]) {
			return nil, tensorErrorf(opFromTriplets, ErrDuplicateIndex)
		}
	}
	if t.dropZeros {
		t.compactZeros()
	}
	return t, nil
}

// Shape returns the tensor shape (a value; the store keeps its own).
func (t *Sparse[E]) Shape() Shape { return t.shape }

// Rank returns the number of axes.
func (t *Sparse[E]) Rank() int { return t.shape.Rank() }

// NNZ returns the number of stored entries (stored zeros included).
func (t *Sparse[E]) NNZ() int { return len(t.val) }

// Ring returns the element ring.
func (t *Sparse[E]) Ring() algebra.Ring[E] { return t.ring }

// DropZeros reports whether the store elides ring-zero values.
func (t *Sparse[E]) DropZeros() bool { return t.dropZeros }

// At returns the value at the multi-index; absent positions read as
// ring.Zero().
//
// Errors: ErrOutOfRange for a wrong-length or out-of-bounds index.
//
// Complexity: O(R log nnz).
func (t *Sparse[E]) At(idx []int) (E, error) {
	if !t.shape.inBounds(idx) {
		var zero E
		return zero, idxErrorf(opAt, idx, ErrOutOfRange)
	}
	if i, found := t.search(idx); found {
		return t.val[i], nil
	}
	return t.ring.Zero(), nil
}

// Set writes v at the multi-index, replacing a stored value or splicing a
// new entry into its sorted position. The index slice is copied; the caller
// may reuse it. On a WithDropZeros store, writing a ring zero removes the
// entry instead.
//
// Errors: ErrOutOfRange.
//
// Complexity: O(R log nnz) search + O(nnz) splice on insert or remove.
func (t *Sparse[E]) Set(idx []int, v E) error {
	if !t.shape.inBounds(idx) {
		return idxErrorf(opSet, idx, ErrOutOfRange)
	}
	i, found := t.search(idx)
	if t.dropZeros && t.ring.IsZero(v) {
		if found {
			t.removeAt(i)
		}
		return nil
	}
	if found {
		t.val[i] = v
		return nil
	}
	t.insertAt(i, idx, v)
	return nil
}

// Clone returns a deep copy sharing nothing with t, tuple memory included.
func (t *Sparse[E]) Clone() *Sparse[E] {
	c := &Sparse[E]{
		shape:     t.shape,
		val:       append([]E(nil), t.val...),
		idx:       make([][]int, len(t.idx)),
		ring:      t.ring,
		dropZeros: t.dropZeros,
	}
	for i, idx := range t.idx {
		c.idx[i] = append([]int(nil), idx...)
	}
	return c
}

// Do visits the stored entries in tuple order. fn returning false stops the
// walk early. The idx slice passed to fn is only valid until fn returns and
// must not be modified or retained. The store must not be mutated during
// the walk.
func (t *Sparse[E]) Do(fn func(idx []int, v E) bool) {
	for i := range t.val {
		if !fn(t.idx[i], t.val[i]) {
			return
		}
	}
}

// String renders the shape header and one "(i0, ..., iR-1): v" line per
// entry.
func (t *Sparse[E]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, _fmtTenHeader, t.shape.String(), len(t.val))
	for i := range t.val {
		fmt.Fprintf(&b, _fmtTenEntry, fmtTuple(t.idx[i]), t.val[i])
	}
	return b.String()
}

// ---------- internal store surgery ----------

// search locates a tuple by binary search. It returns the entry position
// and true on a hit, or the insertion position that keeps the order and
// false on a miss.
func (t *Sparse[E]) search(idx []int) (int, bool) {
	i := sort.Search(len(t.val), func(k int) bool {
		return !tupleLess(t.idx[k], idx)
	})
	if i < len(t.val) && tupleEq(t.idx[i], idx) {
		return i, true
	}
	return i, false
}

// push appends an entry at the tail, copying the tuple. The caller
// guarantees the key extends the sorted order; on a dropZeros store a
// ring-zero value is simply not emitted.
func (t *Sparse[E]) push(idx []int, v E) {
	if t.dropZeros && t.ring.IsZero(v) {
		return
	}
	t.val = append(t.val, v)
	t.idx = append(t.idx, append([]int(nil), idx...))
}

// insertAt splices a copy of (idx, v) in at position i.
func (t *Sparse[E]) insertAt(i int, idx []int, v E) {
	var zv E
	t.val = append(t.val, zv)
	copy(t.val[i+1:], t.val[i:])
	t.val[i] = v
	t.idx = append(t.idx, nil)
	copy(t.idx[i+1:], t.idx[i:])
	t.idx[i] = append([]int(nil), idx...)
}

// removeAt splices the entry at position i out.
func (t *Sparse[E]) removeAt(i int) {
	t.val = append(t.val[:i], t.val[i+1:]...)
	t.idx = append(t.idx[:i], t.idx[i+1:]...)
}

// compactZeros drops stored ring-zero values in place, preserving order.
func (t *Sparse[E]) compactZeros() {
	w := 0
	for i := range t.val {
		if t.ring.IsZero(t.val[i]) {
			continue
		}
		t.val[w] = t.val[i]
		t.idx[w] = t.idx[i]
		w++
	}
	t.val = t.val[:w]
	t.idx = t.idx[:w]
}
