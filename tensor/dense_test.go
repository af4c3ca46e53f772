// Package tensor_test - tests for the flat dense buffer.
package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/tensor"
)

func TestNewDenseZeroFill(t *testing.T) {
	d, err := tensor.NewDense(algebra.NewFloat64(), tensor.MustShape(2, 3))
	require.NoError(t, err)
	v, err := d.At([]int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	// MinPlus fills with its own additive identity, +Inf
	td, err := tensor.NewDense(algebra.NewMinPlus(), tensor.MustShape(2, 2))
	require.NoError(t, err)
	v, err = td.At([]int{0, 1})
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	_, err = tensor.NewDense[float64](nil, tensor.MustShape(2, 2))
	require.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.NewDense(algebra.NewFloat64(), tensor.Shape{})
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestNewDenseFromFlat(t *testing.T) {
	ring := algebra.NewFloat64()
	data := []float64{1, 2, 3, 4, 5, 6}
	d, err := tensor.NewDenseFromFlat(ring, tensor.MustShape(2, 3), data)
	require.NoError(t, err)

	// row-major: At(1, 0) is the fourth flat element
	v, err := d.At([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	// the buffer was copied
	data[3] = 99
	v, err = d.At([]int{1, 0})
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	_, err = tensor.NewDenseFromFlat(ring, tensor.MustShape(2, 3), []float64{1, 2})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = tensor.NewDenseFromFlat[float64](nil, tensor.MustShape(2, 3), data)
	require.ErrorIs(t, err, tensor.ErrNilTensor)
	_, err = tensor.NewDenseFromFlat(ring, tensor.Shape{}, nil)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestDenseAtSet(t *testing.T) {
	d, err := tensor.NewDense(algebra.NewFloat64(), tensor.MustShape(2, 2, 2))
	require.NoError(t, err)

	require.NoError(t, d.Set([]int{1, 0, 1}, 7))
	v, err := d.At([]int{1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = d.At([]int{2, 0, 0})
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = d.At([]int{0, 0})
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	err = d.Set([]int{0, 0, -1}, 1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestDenseCloneAndEqual(t *testing.T) {
	a, err := tensor.NewDenseFromFlat(algebra.NewFloat64(), tensor.MustShape(2, 2),
		[]float64{1, 2, 3, 4})
	require.NoError(t, err)

	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set([]int{0, 1}, 9))
	require.False(t, a.Equal(b))
	v, err := a.At([]int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	narrow, err := tensor.NewDenseFromFlat(algebra.NewFloat64(), tensor.MustShape(4),
		[]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.False(t, a.Equal(narrow))

	var nilD *tensor.Dense[float64]
	require.False(t, a.Equal(nil))
	require.True(t, nilD.Equal(nil))
}
