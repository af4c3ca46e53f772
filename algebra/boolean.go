// SPDX-License-Identifier: MIT
// Package algebra: boolean semiring.

package algebra

var _ Ring[bool] = Bool{}

// Bool is the boolean semiring: Add is OR, Mul is AND, Zero is false,
// One is true. Sparse matrices over Bool model reachability: Add merges
// edge sets, ElemMul intersects them.
type Bool struct{}

func (Bool) Add(a, b bool) bool { return a || b }
func (Bool) Mul(a, b bool) bool { return a && b }
func (Bool) Zero() bool { return false }
func (Bool) One() bool { return true }
func (Bool) Eq(a, b bool) bool { return a == b }
func (Bool) IsZero(a bool) bool { return !a }
func (Bool) IsOne(a bool) bool { return a }
