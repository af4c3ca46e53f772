// Package dense_test: gonum interchange tests.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/dense"
)

func TestGonumRoundTrip(t *testing.T) {
	m := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := dense.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	back, err := dense.FromGonum(g)
	require.NoError(t, err)
	require.True(t, m.Equal(back))
}

// TestToGonumCopies ensures the exported mat.Dense does not alias m.
func TestToGonumCopies(t *testing.T) {
	m := mustDense(t, 1, 2, []float64{1, 2})
	g, err := dense.ToGonum(m)
	require.NoError(t, err)
	g.Set(0, 0, 99)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestToGonumInterfaceOperand(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	g, err := dense.ToGonum(hide[float64]{Matrix: m})
	require.NoError(t, err)
	require.Equal(t, 4.0, g.At(1, 1))
}

func TestWrap(t *testing.T) {
	m := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	w := dense.Wrap(m)

	g, err := dense.ToGonum(m)
	require.NoError(t, err)
	require.True(t, mat.Equal(w, g))

	// T is the implicit gonum transpose.
	require.Equal(t, 3.0, w.T().At(0, 1))

	// gonum convention: At panics out of range.
	require.Panics(t, func() { w.At(5, 5) })
}

func TestFromGonumNil(t *testing.T) {
	_, err := dense.FromGonum(nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}
