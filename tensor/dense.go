// SPDX-License-Identifier: MIT

// Package tensor - the dense rank-R buffer.
//
// Dense is the flat row-major companion to Sparse: a single []E addressed
// through the shape's flat-index mapping. The surface stays small; it
// exists as the scatter target for ToDense and the round-trip oracle for
// ToSparse.

package tensor

import "github.com/katalvlaran/lvlalg/algebra"

// Dense is a dense rank-R tensor: a row-major flat buffer plus its shape.
type Dense[E any] struct {
	shape Shape
	data  []E
	ring  algebra.Ring[E]
}

// NewDense returns a tensor of the given shape with every cell set to
// ring.Zero().
//
// Errors: ErrNilTensor if ring is nil, ErrBadShape if shape has rank 0.
func NewDense[E any](ring algebra.Ring[E], shape Shape) (*Dense[E], error) {
	if ring == nil {
		return nil, tensorErrorf(opNewDense, ErrNilTensor)
	}
	if shape.Rank() == 0 {
		return nil, tensorErrorf(opNewDense, ErrBadShape)
	}
	return newDenseZeroed(ring, shape), nil
}

// newDenseZeroed allocates and fills with the ring zero. make() zero-fills,
// so only rings whose additive identity differs from the Go zero value pay
// the explicit pass.
func newDenseZeroed[E any](ring algebra.Ring[E], shape Shape) *Dense[E] {
	d := &Dense[E]{shape: shape, data: make([]E, shape.Size()), ring: ring}
	var zv E
	if !ring.IsZero(zv) {
		z := ring.Zero()
		for i := range d.data {
			d.data[i] = z
		}
	}
	return d
}

// NewDenseFromFlat builds a tensor from a row-major flat slice, copying it.
//
// Errors: ErrNilTensor, ErrBadShape, and ErrShapeMismatch unless
// len(data) == shape.Size().
func NewDenseFromFlat[E any](ring algebra.Ring[E], shape Shape, data []E) (*Dense[E], error) {
	if ring == nil {
		return nil, tensorErrorf(opDenseFromFlat, ErrNilTensor)
	}
	if shape.Rank() == 0 {
		return nil, tensorErrorf(opDenseFromFlat, ErrBadShape)
	}
	if len(data) != shape.Size() {
		return nil, tensorErrorf(opDenseFromFlat, ErrShapeMismatch)
	}
	return &Dense[E]{shape: shape, data: append([]E(nil), data...), ring: ring}, nil
}

// Shape returns the tensor shape.
func (d *Dense[E]) Shape() Shape { return d.shape }

// Ring returns the element ring.
func (d *Dense[E]) Ring() algebra.Ring[E] { return d.ring }

// At returns the value at the multi-index.
//
// Errors: ErrOutOfRange for a wrong-length or out-of-bounds index.
func (d *Dense[E]) At(idx []int) (E, error) {
	if !d.shape.inBounds(idx) {
		var zero E
		return zero, denseIdxErrorf(opAt, idx, ErrOutOfRange)
	}
	return d.data[d.shape.flatOffset(idx)], nil
}

// Set writes v at the multi-index.
//
// Errors: ErrOutOfRange.
func (d *Dense[E]) Set(idx []int, v E) error {
	if !d.shape.inBounds(idx) {
		return denseIdxErrorf(opSet, idx, ErrOutOfRange)
	}
	d.data[d.shape.flatOffset(idx)] = v
	return nil
}

// Clone returns a deep copy sharing nothing with d.
func (d *Dense[E]) Clone() *Dense[E] {
	return &Dense[E]{shape: d.shape, data: append([]E(nil), d.data...), ring: d.ring}
}

// Equal reports shape equality and element-wise equality under the
// receiver's ring. A nil operand equals only a nil receiver.
func (d *Dense[E]) Equal(o *Dense[E]) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !d.shape.Equal(o.shape) {
		return false
	}
	for i := range d.data {
		if !d.ring.Eq(d.data[i], o.data[i]) {
			return false
		}
	}
	return true
}
