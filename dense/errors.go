// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// This file defines ONLY package-level sentinel errors plus the wrapping
// helper. All operations return these sentinels and tests check them via
// errors.Is. Panics are reserved for programmer errors (option constructors,
// the gonum wrapper's At).

package dense

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "dense: ..." so wrapped errors stay
// greppable. Wrap with denseErrorf at the operation boundary; errors.Is
// still matches the sentinel through the wrap.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions:
	// Add/Sub/Hadamard shape inequality, Mul inner-dimension mismatch,
	// or a data slice whose length does not match rows*cols.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrVecLength indicates a vector argument whose length does not match
	// the matrix dimension it is applied against.
	ErrVecLength = errors.New("dense: vector length mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Pow).
	ErrNonSquare = errors.New("dense: matrix is not square")

	// ErrNilMatrix indicates a nil Matrix receiver or argument.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrFieldRequired is returned by operations that need subtraction or
	// division (Sub) when the element ring does not implement algebra.Field.
	ErrFieldRequired = errors.New("dense: element ring is not a field")
)

// Operation tags used by denseErrorf. Constants to avoid magic strings.
const (
	opNew       = "New"
	opFromSlice = "NewFromSlice"
	opIdentity  = "Identity"
	opAt        = "At"
	opSet       = "Set"
	opRow       = "Row"
	opRowView   = "RowView"
	opCol       = "Col"
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMul       = "Mul"
	opPow       = "Pow"
	opFrobenius = "Frobenius"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// denseErrorf wraps a sentinel with the operation tag for context.
func denseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
