// SPDX-License-Identifier: MIT
// Package algebra: real scalar instances (float64, float32).
// Both carry an absolute tolerance used by Eq/IsZero/IsOne; the zero value
// compares exactly. Use the New* constructors to get the documented default
// tolerance.

package algebra

import (
	"math"

	"github.com/chewxy/math32"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance for float64 comparisons.
	DefaultEpsilon = 1e-9

	// DefaultEpsilon32 is the absolute tolerance for float32 comparisons.
	// float32 carries ~7 decimal digits, hence the looser default.
	DefaultEpsilon32 = 1e-6
)

// Compile-time conformance checks.
var (
	_ Field[float64] = Float64{}
	_ Field[float32] = Float32{}
)

// Float64 is the field of float64 values with absolute-tolerance comparison.
//
// Eps is the tolerance for Eq/IsZero/IsOne; Eps == 0 means exact comparison.
// Arithmetic is plain IEEE 754: Div by zero yields ±Inf, 0/0 yields NaN.
// NaN is never Eq to anything, including itself.
type Float64 struct {
	Eps float64
}

// NewFloat64 returns a Float64 field with the default tolerance.
func NewFloat64() Float64 { return Float64{Eps: DefaultEpsilon} }

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Zero() float64            { return 0 }
func (Float64) One() float64             { return 1 }
func (Float64) Neg(a float64) float64    { return -a }
func (Float64) Sub(a, b float64) float64 { return a - b }

// Div returns a/b with IEEE semantics (b == 0 produces ±Inf or NaN).
func (Float64) Div(a, b float64) float64 { return a / b }

// Eq reports |a-b| <= Eps. Exact matches (including equal infinities)
// short-circuit before the subtraction, so Inf == Inf holds.
func (f Float64) Eq(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= f.Eps
}

func (f Float64) IsZero(a float64) bool { return f.Eq(a, 0) }
func (f Float64) IsOne(a float64) bool  { return f.Eq(a, 1) }

// Float32 is the field of float32 values; same policy as Float64 with
// math32 primitives.
type Float32 struct {
	Eps float32
}

// NewFloat32 returns a Float32 field with the default tolerance.
func NewFloat32() Float32 { return Float32{Eps: DefaultEpsilon32} }

func (Float32) Add(a, b float32) float32 { return a + b }
func (Float32) Mul(a, b float32) float32 { return a * b }
func (Float32) Zero() float32            { return 0 }
func (Float32) One() float32             { return 1 }
func (Float32) Neg(a float32) float32    { return -a }
func (Float32) Sub(a, b float32) float32 { return a - b }
func (Float32) Div(a, b float32) float32 { return a / b }

func (f Float32) Eq(a, b float32) bool {
	if a == b {
		return true
	}
	return math32.Abs(a-b) <= f.Eps
}

func (f Float32) IsZero(a float32) bool { return f.Eq(a, 0) }
func (f Float32) IsOne(a float32) bool  { return f.Eq(a, 1) }
