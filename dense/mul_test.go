// Package dense_test: multiply dispatcher tests. Every execution path is
// checked against the others and against a gonum oracle.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
)

// fillDense builds an n×m float64 matrix with a deterministic pattern.
func fillDense(t *testing.T, rows, cols int) *dense.Dense[float64] {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = float64((i*31+7)%23) - 11
	}
	return mustDense(t, rows, cols, data)
}

func TestMulSmall(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mustDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	p, err := dense.Mul[float64](a, b)
	require.NoError(t, err)
	require.True(t, mustDense(t, 2, 2, []float64{58, 64, 139, 154}).Equal(p))

	ia := mustInts(t, 2, 2, []int{1, 2, 3, 4})
	ib := mustInts(t, 2, 2, []int{5, 6, 7, 8})
	ip, err := dense.Mul[int](ia, ib)
	require.NoError(t, err)
	require.True(t, mustInts(t, 2, 2, []int{19, 22, 43, 50}).Equal(ip))
}

func TestMulValidation(t *testing.T) {
	a := mustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err := dense.Mul[float64](a, a)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)
	_, err = dense.Mul[float64](a, nil)
	require.ErrorIs(t, err, dense.ErrNilMatrix)
}

// TestMulAgainstGonum cross-checks the vek path on a shape large enough to
// clear the naive cutoff.
func TestMulAgainstGonum(t *testing.T) {
	a := fillDense(t, 30, 40)
	b := fillDense(t, 40, 35)

	p, err := dense.Mul[float64](a, b)
	require.NoError(t, err)

	ga, err := dense.ToGonum(a)
	require.NoError(t, err)
	gb, err := dense.ToGonum(b)
	require.NoError(t, err)
	var oracle mat.Dense
	oracle.Mul(ga, gb)

	require.True(t, mat.EqualApprox(dense.Wrap(p), &oracle, 1e-9))
}

// TestMulParallelMatchesSequential forces the parallel path and compares it
// to the default schedule on identical inputs.
func TestMulParallelMatchesSequential(t *testing.T) {
	a := fillDense(t, 33, 29)
	b := fillDense(t, 29, 31)

	seq, err := dense.Mul[float64](a, b)
	require.NoError(t, err)
	par, err := dense.Mul[float64](a, b,
		dense.WithParallelThreshold(0), dense.WithWorkers(3))
	require.NoError(t, err)
	require.True(t, seq.Equal(par))
}

// TestMulKernelsAgree drives the private kernels directly over the same
// operands: naive vs blocked vs vek row-axpy.
func TestMulKernelsAgree(t *testing.T) {
	const n = 24
	a := fillDense(t, n, n)
	b := fillDense(t, n, n)

	naive, err := dense.New(algebra.NewFloat64(), n, n)
	require.NoError(t, err)
	blocked, err := dense.New(algebra.NewFloat64(), n, n)
	require.NoError(t, err)
	simd, err := dense.New(algebra.NewFloat64(), n, n)
	require.NoError(t, err)

	dense.MulRowsNaive_TestOnly(naive, a, b, 0, n)
	dense.MulRowsBlocked_TestOnly(blocked, a, b, 0, n, 8)
	dense.MulRowsF64_TestOnly(simd, a, b, 0, n)

	require.True(t, naive.Equal(blocked))
	require.True(t, naive.Equal(simd))
}

// TestMulBlockedPath sends a non-float ring above the naive cutoff so the
// dispatcher takes the blocked kernel, and verifies against the naive one.
func TestMulBlockedPath(t *testing.T) {
	const n = 30 // 27000 ops, above the 1<<14 cutoff
	data := make([]int, n*n)
	for i := range data {
		data[i] = (i*13+5)%7 - 3
	}
	a := mustInts(t, n, n, data)
	b := mustInts(t, n, n, data)

	p, err := dense.Mul[int](a, b)
	require.NoError(t, err)

	want, err := dense.New(algebra.Int{}, n, n)
	require.NoError(t, err)
	dense.MulRowsNaive_TestOnly(want, a, b, 0, n)
	require.True(t, want.Equal(p))
}

func TestMulInterfaceFallback(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustDense(t, 2, 2, []float64{5, 6, 7, 8})
	direct, err := dense.Mul[float64](a, b)
	require.NoError(t, err)
	wrapped, err := dense.Mul[float64](hide[float64]{Matrix: a}, hide[float64]{Matrix: b})
	require.NoError(t, err)
	require.True(t, direct.Equal(wrapped))
}

// TestOptionsResolution checks defaults, overrides and constructor panics.
func TestOptionsResolution(t *testing.T) {
	w, th, bs := dense.GatherOptions_TestOnly()
	require.Equal(t, dense.DefaultWorkers, w)
	require.Equal(t, dense.DefaultParallelThreshold, th)
	require.Equal(t, dense.DefaultBlockSize, bs)

	w, th, bs = dense.GatherOptions_TestOnly(
		dense.WithWorkers(2), dense.WithParallelThreshold(10), dense.WithBlockSize(16))
	require.Equal(t, 2, w)
	require.Equal(t, 10, th)
	require.Equal(t, 16, bs)

	require.Panics(t, func() { dense.WithWorkers(-1) })
	require.Panics(t, func() { dense.WithParallelThreshold(-1) })
	require.Panics(t, func() { dense.WithBlockSize(0) })
}
