// SPDX-License-Identifier: MIT

// Package dense - gonum interchange.
// In-memory bridges to gonum/mat for callers that feed results into the
// wider Go numerical ecosystem, and for cross-checking kernels in tests.

package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ToGonum returns a gonum mat.Dense holding a copy of m's contents.
// float64 matrices only; other rings convert through their own means.
func ToGonum(m Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	if d, ok := m.(*Dense[float64]); ok {
		copy(data, d.data)
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, _ := m.At(i, j)
				data[i*c+j] = v
			}
		}
	}
	return mat.NewDense(r, c, data), nil
}

// FromGonum copies g into a Dense over the default float64 field.
func FromGonum(g mat.Matrix) (*Dense[float64], error) {
	if g == nil {
		return nil, denseErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r <= 0 || c <= 0 {
		return nil, denseErrorf(opFromGonum, ErrBadShape)
	}
	d := newDenseRaw[float64](algebra.NewFloat64(), r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.data[i*c+j] = g.At(i, j)
		}
	}
	return d, nil
}

// Wrap adapts m to gonum's mat.Matrix without copying. Dims, At and T
// minimally satisfy the mat.Matrix interface; At panics on out-of-range
// indices per gonum convention, so bounds-check upstream.
func Wrap(m Matrix[float64]) mat.Matrix {
	return gonumShim{m: m}
}

type gonumShim struct {
	m Matrix[float64]
}

func (w gonumShim) Dims() (int, int) { return w.m.Rows(), w.m.Cols() }

func (w gonumShim) At(i, j int) float64 {
	v, err := w.m.At(i, j)
	if err != nil {
		panic(err)
	}
	return v
}

func (w gonumShim) T() mat.Matrix { return mat.Transpose{Matrix: w} }
