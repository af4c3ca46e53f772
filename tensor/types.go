// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// Same discipline as the sparse package: operations return these sentinels
// wrapped with an operation tag, tests match them via errors.Is, and panics
// are reserved for programmer errors.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape is invalid: rank 0 or a
	// non-positive dimension.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates a multi-index with a component outside its
	// axis bound, or a multi-index of the wrong length.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrShapeMismatch indicates operand shapes incompatible for the
	// requested operation.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrTripletLength indicates parallel value/index slices of unequal
	// length.
	ErrTripletLength = errors.New("tensor: triplet arrays length mismatch")

	// ErrDuplicateIndex indicates two provided entries sharing one index
	// tuple; stores are unique by tuple.
	ErrDuplicateIndex = errors.New("tensor: duplicate index")

	// ErrAxis indicates an axis outside [0, rank) or a perm slice that is
	// not a permutation of the axes.
	ErrAxis = errors.New("tensor: invalid axis")

	// ErrNilTensor indicates a nil store or a nil element ring.
	ErrNilTensor = errors.New("tensor: nil tensor")
)

// Operation tags for tensorErrorf.
const (
	opNewShape      = "NewShape"
	opFlatIndex     = "FlatIndex"
	opNewSparse     = "NewSparse"
	opFromTriplets  = "SparseFromTriplets"
	opFromDense     = "FromDense"
	opAt            = "At"
	opSet           = "Set"
	opAdd           = "Add"
	opElemMul       = "ElemMul"
	opTranspose     = "Transpose"
	opPermute       = "Permute"
	opNewDense      = "NewDense"
	opDenseFromFlat = "NewDenseFromFlat"
)

// tensorErrorf wraps a sentinel with the operation tag for context.
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// idxErrorf tags an index error with the method name and the offending tuple.
func idxErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Sparse.%s(%v): %w", method, idx, err)
}

// denseIdxErrorf is idxErrorf for the dense store.
func denseIdxErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Dense.%s(%v): %w", method, idx, err)
}
