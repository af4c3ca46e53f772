// SPDX-License-Identifier: MIT
// Package algebra: tropical (min,+) semiring.
// The additive identity is +Inf ("no path") and the multiplicative identity
// is 0, matching the APSP distance-matrix contract (+Inf off-diagonal for
// unreachable pairs, 0 on the diagonal). Matrix multiplication over MinPlus
// performs one round of shortest-path relaxation, so the n-th matrix power
// of an adjacency matrix holds all-pairs shortest distances using at most
// n-1 hops.

package algebra

import "math"

var _ Ring[float64] = MinPlus{}

// MinPlus is the tropical semiring over float64: Add is min, Mul is +.
// Eps is the tolerance for Eq on finite distances (zero means exact).
//
// Note: MinPlus is a semiring, not a Field; min has no inverse operation.
type MinPlus struct {
	Eps float64
}

// NewMinPlus returns a MinPlus semiring with the default tolerance.
func NewMinPlus() MinPlus { return MinPlus{Eps: DefaultEpsilon} }

func (MinPlus) Add(a, b float64) float64 { return math.Min(a, b) }
func (MinPlus) Mul(a, b float64) float64 { return a + b }

// Zero returns +Inf, the identity of min and the absorbing element of +.
func (MinPlus) Zero() float64 { return math.Inf(1) }

// One returns 0, the identity of +.
func (MinPlus) One() float64 { return 0 }

func (m MinPlus) Eq(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= m.Eps
}

func (m MinPlus) IsZero(a float64) bool { return math.IsInf(a, 1) }
func (m MinPlus) IsOne(a float64) bool { return m.Eq(a, 0) }
