// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors (option
// constructors).

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." for consistency and easy
// grepping. Do not return naked sentinels from deep helpers; wrap with
// sparseErrorf at the operation boundary so callers see the operation name
// while errors.Is keeps matching.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows<=0, cols<=0, dim<=0, or a non-positive Repeat count).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row/column/element index outside valid
	// bounds for get/set/slice/swap operations.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrShapeMismatch indicates operand shapes incompatible for the
	// requested operation: binary op shape inequality, a slice that does
	// not fit, or concatenation along mismatched dimensions.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrTripletLength indicates parallel triplet slices of unequal length.
	ErrTripletLength = errors.New("sparse: triplet arrays length mismatch")

	// ErrDuplicateIndex indicates two provided entries sharing one
	// (row, col) key; stores are unique by index tuple.
	ErrDuplicateIndex = errors.New("sparse: duplicate index")

	// ErrRowPointers indicates an invalid CSR row-pointer array:
	// wrong length, non-monotone, or final offset != nnz.
	ErrRowPointers = errors.New("sparse: invalid row pointers")

	// ErrAxis indicates an axis argument outside {0, 1}.
	ErrAxis = errors.New("sparse: invalid axis")

	// ErrNilMatrix indicates a nil *Matrix or *CSR receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("sparse: nil vector")

	// ErrFieldRequired is returned by Sub/ElemDiv when the element ring
	// does not implement algebra.Field.
	ErrFieldRequired = errors.New("sparse: element ring is not a field")
)

// Operation tags for sparseErrorf. Constants to avoid magic strings.
const (
	opNew          = "New"
	opFromTriplets = "NewFromTriplets"
	opFromMap      = "NewFromMap"
	opIdentity     = "Identity"
	opFromDense    = "FromDense"
	opAt           = "At"
	opSet          = "Set"
	opAdd          = "Add"
	opSub          = "Sub"
	opElemMul      = "ElemMul"
	opElemDiv      = "ElemDiv"
	opScale        = "Scale"
	opSetRow       = "SetRow"
	opSetRowSparse = "SetRowSparse"
	opSetCol       = "SetCol"
	opSetColSparse = "SetColSparse"
	opGetRow       = "GetRow"
	opGetCol       = "GetCol"
	opGetRowRange  = "GetRowRange"
	opGetColRange  = "GetColRange"
	opGetSlice     = "GetSlice"
	opSetSlice     = "SetSlice"
	opSwapRows     = "SwapRows"
	opSwapCols     = "SwapCols"
	opStack        = "Stack"
	opAugment      = "Augment"
	opJoin         = "Join"
	opRepeat       = "Repeat"
	opTranspose    = "T"
	opToCSR        = "ToCSR"
	opToCOO        = "ToCOO"
	opToDense      = "ToDense"
	opMatVec       = "MatVec"
	opMulDense     = "MulDense"
	opDenseMul     = "DenseMul"
	opNewCSR       = "NewCSR"
	opNewVector    = "NewVector"
	opVecFromSlice = "NewVectorFromSlices"
	opVecFromDense = "VectorFromDense"
	opDot          = "Dot"
)

// sparseErrorf wraps a sentinel with the operation tag for context.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
