// SPDX-License-Identifier: MIT
// Package algebra: exact integer ring.

package algebra

var _ Ring[int] = Int{}

// Int is the ring of machine integers with exact comparison. It is a Ring,
// not a Field: integer division truncates and has no place behind ElemDiv.
// Overflow wraps per Go integer semantics.
type Int struct{}

func (Int) Add(a, b int) int { return a + b }
func (Int) Mul(a, b int) int { return a * b }
func (Int) Zero() int { return 0 }
func (Int) One() int { return 1 }
func (Int) Eq(a, b int) bool { return a == b }
func (Int) IsZero(a int) bool { return a == 0 }
func (Int) IsOne(a int) bool { return a == 1 }
