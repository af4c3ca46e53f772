// SPDX-License-Identifier: MIT

// Package tensor - the Shape value type.
//
// Shape wraps an immutable axis-size tuple. It is passed and stored by
// value; the dimension slice is copied on the way in and on the way out, and
// the axis-rewriting helpers (SwapAxes, Permute) return fresh shapes, so no
// two stores ever share a mutable dims array.

package tensor

import (
	"fmt"
	"strings"
)

const _fmtAxisSep = " x "

// Shape is an immutable sequence of positive axis sizes. The zero value has
// rank 0 and is rejected by every constructor that takes a Shape.
type Shape struct {
	dims []int
}

// NewShape builds a Shape from axis sizes.
//
// Errors: ErrBadShape unless at least one axis is given and all sizes are
// positive.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) == 0 {
		return Shape{}, tensorErrorf(opNewShape, ErrBadShape)
	}
	for _, d := range dims {
		if d <= 0 {
			return Shape{}, tensorErrorf(opNewShape, ErrBadShape)
		}
	}
	return Shape{dims: append([]int(nil), dims...)}, nil
}

// MustShape is NewShape for literals; it panics on an invalid shape.
func MustShape(dims ...int) Shape {
	s, err := NewShape(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s.dims) }

// Dim returns the size of the given axis. Axis bounds follow slice
// indexing; callers validate user-supplied axes before the call.
func (s Shape) Dim(axis int) int { return s.dims[axis] }

// Dims returns a copy of the axis sizes.
func (s Shape) Dims() []int { return append([]int(nil), s.dims...) }

// Size returns the total element count (the product of all axis sizes).
func (s Shape) Size() int {
	n := 1
	for _, d := range s.dims {
		n *= d
	}
	return n
}

// SwapAxes returns a new Shape with axes a and b exchanged. Callers
// validate the axes; Transpose on the stores does so for user input.
func (s Shape) SwapAxes(a, b int) Shape {
	dims := s.Dims()
	dims[a], dims[b] = dims[b], dims[a]
	return Shape{dims: dims}
}

// Permute returns a new Shape whose axis i is the receiver's axis perm[i].
// perm must be a permutation of [0, rank); Permute on the stores validates
// user input before calling here.
func (s Shape) Permute(perm []int) Shape {
	dims := make([]int, len(s.dims))
	for i, p := range perm {
		dims[i] = s.dims[p]
	}
	return Shape{dims: dims}
}

// FlatIndex maps a multi-index to its row-major flat offset: the last axis
// varies fastest.
//
// Errors: ErrOutOfRange if multiIdx has the wrong length or any component
// falls outside its axis.
func (s Shape) FlatIndex(multiIdx []int) (int, error) {
	if !s.inBounds(multiIdx) {
		return 0, tensorErrorf(opFlatIndex, ErrOutOfRange)
	}
	return s.flatOffset(multiIdx), nil
}

// flatOffset is FlatIndex without validation; callers guarantee a valid
// in-bounds multi-index of full rank.
func (s Shape) flatOffset(multiIdx []int) int {
	off := 0
	for a, i := range multiIdx {
		off = off*s.dims[a] + i
	}
	return off
}

// Equal reports whether both shapes have the same rank and axis sizes.
func (s Shape) Equal(o Shape) bool {
	if len(s.dims) != len(o.dims) {
		return false
	}
	for a := range s.dims {
		if s.dims[a] != o.dims[a] {
			return false
		}
	}
	return true
}

// String renders the shape as "d0 x d1 x ... x dR-1".
func (s Shape) String() string {
	var b strings.Builder
	for a, d := range s.dims {
		if a > 0 {
			b.WriteString(_fmtAxisSep)
		}
		fmt.Fprintf(&b, "%d", d)
	}
	return b.String()
}

// inBounds reports whether idx has full rank and every component lies
// inside its axis.
func (s Shape) inBounds(idx []int) bool {
	if len(idx) != len(s.dims) {
		return false
	}
	for a, i := range idx {
		if i < 0 || i >= s.dims[a] {
			return false
		}
	}
	return true
}

// advance steps idx to the next multi-index in row-major order (the last
// axis varies fastest); after the final index it wraps to all zeros.
func (s Shape) advance(idx []int) {
	for a := len(idx) - 1; a >= 0; a-- {
		idx[a]++
		if idx[a] < s.dims[a] {
			return
		}
		idx[a] = 0
	}
}

// validAxis reports axis in [0, rank).
func (s Shape) validAxis(axis int) bool { return axis >= 0 && axis < len(s.dims) }

// validPerm reports whether perm is a permutation of [0, rank).
func (s Shape) validPerm(perm []int) bool {
	if len(perm) != len(s.dims) {
		return false
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
