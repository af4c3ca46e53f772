// SPDX-License-Identifier: MIT
// Package algebra: complex scalar instance.

package algebra

import "math/cmplx"

var _ Field[complex128] = Complex128{}

// Complex128 is the field of complex128 values. Eq compares the modulus of
// the difference against Eps (Eps == 0 means exact comparison). Division by
// zero follows complex IEEE semantics (Inf/NaN components).
type Complex128 struct {
	Eps float64
}

// NewComplex128 returns a Complex128 field with the default tolerance.
func NewComplex128() Complex128 { return Complex128{Eps: DefaultEpsilon} }

func (Complex128) Add(a, b complex128) complex128 { return a + b }
func (Complex128) Mul(a, b complex128) complex128 { return a * b }
func (Complex128) Zero() complex128               { return 0 }
func (Complex128) One() complex128                { return 1 }
func (Complex128) Neg(a complex128) complex128    { return -a }
func (Complex128) Sub(a, b complex128) complex128 { return a - b }
func (Complex128) Div(a, b complex128) complex128 { return a / b }

func (c Complex128) Eq(a, b complex128) bool {
	if a == b {
		return true
	}
	return cmplx.Abs(a-b) <= c.Eps
}

func (c Complex128) IsZero(a complex128) bool { return c.Eq(a, 0) }
func (c Complex128) IsOne(a complex128) bool  { return c.Eq(a, 1) }
