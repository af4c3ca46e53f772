// SPDX-License-Identifier: MIT

// Package dense - element-wise kernels.
//
// Every public kernel follows the same stages: validate eagerly, allocate the
// result, execute with a *Dense fast path falling back to the Matrix
// interface, return. The fast path additionally routes float64/float32 rings
// through viterin/vek SIMD calls on the flat backing slices.
//
// The ring TYPE, not the element type, gates SIMD: a custom Ring[float64]
// with non-standard arithmetic must take the generic path, so the guards
// assert algebra.Float64 / algebra.Float32 on both operands' rings.

package dense

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ---------- float fast-path guards ----------

// asF64 views s as []float64 when E is exactly float64.
func asF64[E any](s []E) ([]float64, bool) {
	f, ok := any(s).([]float64)
	return f, ok
}

// asF32 views s as []float32 when E is exactly float32.
func asF32[E any](s []E) ([]float32, bool) {
	f, ok := any(s).([]float32)
	return f, ok
}

// ringIsF64 reports whether r is the standard IEEE float64 ring.
func ringIsF64[E any](r algebra.Ring[E]) bool {
	_, ok := any(r).(algebra.Float64)
	return ok
}

// ringIsF32 reports whether r is the standard IEEE float32 ring.
func ringIsF32[E any](r algebra.Ring[E]) bool {
	_, ok := any(r).(algebra.Float32)
	return ok
}

// Add returns the element-wise sum of a and b.
// MAIN DESCRIPTION:
//   - Binary element-wise addition under a's ring.
//
// Implementation:
//   - Stage 1: validate non-nil operands and equal shapes.
//   - Stage 2: allocate the result buffer (no identity fill; every cell is
//     overwritten).
//   - Stage 3: *Dense×*Dense flat loop, vek.Add_Inplace for float rings;
//     interface At/Set fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func Add[E any](a, b Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, denseErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, denseErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, denseErrorf(opAdd, err)
	}
	res := newDenseRaw(a.Ring(), a.Rows(), a.Cols())
	da, okA := a.(*Dense[E])
	db, okB := b.(*Dense[E])
	if okA && okB {
		ewAdd(res, da, db)
		return res, nil
	}
	ewAddGeneric(res, a, b)
	return res, nil
}

// ewAdd is the flat-slice addition kernel for two Dense operands.
func ewAdd[E any](res, a, b *Dense[E]) {
	if ringIsF64(a.ring) && ringIsF64(b.ring) {
		fr, _ := asF64(res.data)
		fa, _ := asF64(a.data)
		fb, _ := asF64(b.data)
		copy(fr, fa)
		vek.Add_Inplace(fr, fb)
		return
	}
	if ringIsF32(a.ring) && ringIsF32(b.ring) {
		fr, _ := asF32(res.data)
		fa, _ := asF32(a.data)
		fb, _ := asF32(b.data)
		copy(fr, fa)
		vek32.Add_Inplace(fr, fb)
		return
	}
	ring := res.ring
	for i := range res.data {
		res.data[i] = ring.Add(a.data[i], b.data[i])
	}
}

// ewAddGeneric is the interface fallback for Add.
func ewAddGeneric[E any](res *Dense[E], a, b Matrix[E]) {
	ring := res.ring
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			res.data[i*res.c+j] = ring.Add(av, bv)
		}
	}
}

// Sub returns the element-wise difference a-b. Requires a's ring to
// implement algebra.Field (ErrFieldRequired otherwise).
// Complexity: Time O(r*c), Space O(r*c).
func Sub[E any](a, b Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, denseErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, denseErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, denseErrorf(opSub, err)
	}
	fld, ok := algebra.AsField[E](a.Ring())
	if !ok {
		return nil, denseErrorf(opSub, ErrFieldRequired)
	}
	res := newDenseRaw(a.Ring(), a.Rows(), a.Cols())
	da, okA := a.(*Dense[E])
	db, okB := b.(*Dense[E])
	if okA && okB {
		if ringIsF64(da.ring) && ringIsF64(db.ring) {
			fr, _ := asF64(res.data)
			fa, _ := asF64(da.data)
			fb, _ := asF64(db.data)
			copy(fr, fa)
			vek.Sub_Inplace(fr, fb)
			return res, nil
		}
		if ringIsF32(da.ring) && ringIsF32(db.ring) {
			fr, _ := asF32(res.data)
			fa, _ := asF32(da.data)
			fb, _ := asF32(db.data)
			copy(fr, fa)
			vek32.Sub_Inplace(fr, fb)
			return res, nil
		}
		for i := range res.data {
			res.data[i] = fld.Sub(da.data[i], db.data[i])
		}
		return res, nil
	}
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			res.data[i*res.c+j] = fld.Sub(av, bv)
		}
	}
	return res, nil
}

// Hadamard returns the element-wise product of a and b.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard[E any](a, b Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, denseErrorf(opHadamard, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, denseErrorf(opHadamard, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, denseErrorf(opHadamard, err)
	}
	res := newDenseRaw(a.Ring(), a.Rows(), a.Cols())
	da, okA := a.(*Dense[E])
	db, okB := b.(*Dense[E])
	if okA && okB {
		if ringIsF64(da.ring) && ringIsF64(db.ring) {
			fr, _ := asF64(res.data)
			fa, _ := asF64(da.data)
			fb, _ := asF64(db.data)
			copy(fr, fa)
			vek.Mul_Inplace(fr, fb)
			return res, nil
		}
		if ringIsF32(da.ring) && ringIsF32(db.ring) {
			fr, _ := asF32(res.data)
			fa, _ := asF32(da.data)
			fb, _ := asF32(db.data)
			copy(fr, fa)
			vek32.Mul_Inplace(fr, fb)
			return res, nil
		}
		ring := res.ring
		for i := range res.data {
			res.data[i] = ring.Mul(da.data[i], db.data[i])
		}
		return res, nil
	}
	ring := res.ring
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			res.data[i*res.c+j] = ring.Mul(av, bv)
		}
	}
	return res, nil
}

// Scale returns alpha*m (ring.Mul applied per cell).
// Complexity: Time O(r*c), Space O(r*c).
func Scale[E any](m Matrix[E], alpha E) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opScale, err)
	}
	res := newDenseRaw(m.Ring(), m.Rows(), m.Cols())
	if d, ok := m.(*Dense[E]); ok {
		if ringIsF64(d.ring) {
			fr, _ := asF64(res.data)
			fa, _ := asF64(d.data)
			af, _ := any(alpha).(float64)
			copy(fr, fa)
			vek.MulNumber_Inplace(fr, af)
			return res, nil
		}
		if ringIsF32(d.ring) {
			fr, _ := asF32(res.data)
			fa, _ := asF32(d.data)
			af, _ := any(alpha).(float32)
			copy(fr, fa)
			vek32.MulNumber_Inplace(fr, af)
			return res, nil
		}
		ring := res.ring
		for i := range res.data {
			res.data[i] = ring.Mul(alpha, d.data[i])
		}
		return res, nil
	}
	ring := res.ring
	for i := 0; i < res.r; i++ {
		for j := 0; j < res.c; j++ {
			v, _ := m.At(i, j)
			res.data[i*res.c+j] = ring.Mul(alpha, v)
		}
	}
	return res, nil
}

// Transpose returns m's transpose as a new matrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[E any](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res := newDenseRaw(m.Ring(), c, r)
	if d, ok := m.(*Dense[E]); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				res.data[j*r+i] = d.data[base+j]
			}
		}
		return res, nil
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j)
			res.data[j*r+i] = v
		}
	}
	return res, nil
}

// MatVec returns y = m*x. For the float64 ring the per-row reduction runs
// through vek.Dot.
//
// Errors:
//   - ErrNilMatrix, ErrVecLength.
//
// Complexity: Time O(r*c), Space O(r).
func MatVec[E any](m Matrix[E], x []E) ([]E, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(m.Cols(), x); err != nil {
		return nil, denseErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	y := make([]E, r)
	if d, ok := m.(*Dense[E]); ok {
		if ringIsF64(d.ring) {
			fy, _ := asF64(y)
			fd, _ := asF64(d.data)
			fx, _ := asF64(x)
			for i := 0; i < r; i++ {
				fy[i] = vek.Dot(fd[i*c:(i+1)*c], fx)
			}
			return y, nil
		}
		if ringIsF32(d.ring) {
			fy, _ := asF32(y)
			fd, _ := asF32(d.data)
			fx, _ := asF32(x)
			for i := 0; i < r; i++ {
				fy[i] = vek32.Dot(fd[i*c:(i+1)*c], fx)
			}
			return y, nil
		}
		ring := d.ring
		for i := 0; i < r; i++ {
			acc := ring.Zero()
			base := i * c
			for j := 0; j < c; j++ {
				acc = ring.Add(acc, ring.Mul(d.data[base+j], x[j]))
			}
			y[i] = acc
		}
		return y, nil
	}
	ring := m.Ring()
	for i := 0; i < r; i++ {
		acc := ring.Zero()
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j)
			acc = ring.Add(acc, ring.Mul(v, x[j]))
		}
		y[i] = acc
	}
	return y, nil
}

// Frobenius returns the Frobenius norm of a float64 matrix; *Dense inputs
// route through vek.Norm on the flat buffer.
func Frobenius(m Matrix[float64]) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, denseErrorf(opFrobenius, err)
	}
	if d, ok := m.(*Dense[float64]); ok {
		return vek.Norm(d.data), nil
	}
	var sum float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			sum += v * v
		}
	}
	return math.Sqrt(sum), nil
}

// Frobenius32 is the float32 mirror of Frobenius (vek32/math32).
func Frobenius32(m Matrix[float32]) (float32, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, denseErrorf(opFrobenius, err)
	}
	if d, ok := m.(*Dense[float32]); ok {
		return vek32.Norm(d.data), nil
	}
	var sum float32
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			sum += v * v
		}
	}
	return math32.Sqrt(sum), nil
}

// Pow returns m^k by repeated Mul (k multiplies); k == 0 yields identity.
// Over algebra.MinPlus this is k rounds of shortest-path relaxation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange for k < 0.
func Pow[E any](m Matrix[E], k int, opts ...Option) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opPow, err)
	}
	if m.Rows() != m.Cols() {
		return nil, denseErrorf(opPow, ErrNonSquare)
	}
	if k < 0 {
		return nil, denseErrorf(opPow, ErrOutOfRange)
	}
	cur, err := Identity(m.Ring(), m.Rows())
	if err != nil {
		return nil, denseErrorf(opPow, err)
	}
	for i := 0; i < k; i++ {
		cur, err = Mul(cur, m, opts...)
		if err != nil {
			return nil, denseErrorf(opPow, err)
		}
	}
	return cur, nil
}
