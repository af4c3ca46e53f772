// Package sparse_test - structural manipulation tests: row/column writes,
// slicing, swaps, and the no-partial-mutation guarantee.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/sparse"
)

// mustVec builds a float64 vector from entry slices or fails the test.
func mustVec(t *testing.T, dim int, vals []float64, idx []int, opts ...sparse.Option) *sparse.Vector[float64] {
	t.Helper()
	v, err := sparse.NewVectorFromSlices(algebra.NewFloat64(), dim, vals, idx, opts...)
	require.NoError(t, err)
	return v
}

// TestSetRowDensifies: the dense overload stores a value for every column,
// written zeros included, and replaces the row as one contiguous splice.
func TestSetRowDensifies(t *testing.T) {
	m := mustCOO(t, 3, 3, []float64{1, 5, 9}, []int{0, 1, 2}, []int{0, 1, 2})

	require.NoError(t, m.SetRow(1, []float64{7, 0, 8}))
	require.Equal(t, 5, m.NNZ())
	require.True(t, m.IsSortedStrict_TestOnly())
	assertTriplets(t, m,
		[]float64{1, 7, 0, 8, 9},
		[]int{0, 1, 1, 1, 2},
		[]int{0, 0, 1, 2, 2})

	// a dropZeros store skips the written zero
	d := mustCOO(t, 3, 3, []float64{5}, []int{1}, []int{1}, sparse.WithDropZeros(true))
	require.NoError(t, d.SetRow(1, []float64{7, 0, 8}))
	require.Equal(t, 2, d.NNZ())
}

func TestSetRowValidation(t *testing.T) {
	m := mustCOO(t, 2, 3, []float64{4}, []int{1}, []int{1})
	before := m.Clone()

	require.ErrorIs(t, m.SetRow(2, []float64{1, 2, 3}), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(0, []float64{1, 2}), sparse.ErrShapeMismatch)
	require.True(t, m.Equal(before))
}

func TestSetRowSparse(t *testing.T) {
	m := mustCOO(t, 3, 3, []float64{1, 5, 6, 9}, []int{0, 1, 1, 2}, []int{0, 0, 2, 2})
	v := mustVec(t, 3, []float64{4}, []int{1})

	require.NoError(t, m.SetRowSparse(1, v))
	require.True(t, m.IsSortedStrict_TestOnly())
	assertTriplets(t, m,
		[]float64{1, 4, 9},
		[]int{0, 1, 2},
		[]int{0, 1, 2})

	require.ErrorIs(t, m.SetRowSparse(0, nil), sparse.ErrNilVector)
	short := mustVec(t, 2, []float64{1}, []int{0})
	require.ErrorIs(t, m.SetRowSparse(0, short), sparse.ErrShapeMismatch)
}

// TestSetColResorts: the column write interleaves across rows and must
// leave a sorted store behind.
func TestSetColResorts(t *testing.T) {
	m := mustCOO(t, 3, 3, []float64{1, 5, 9}, []int{0, 1, 2}, []int{0, 1, 2})

	require.NoError(t, m.SetCol(1, []float64{2, 0, 4}))
	require.True(t, m.IsSortedStrict_TestOnly())
	assertTriplets(t, m,
		[]float64{1, 2, 0, 4, 9},
		[]int{0, 0, 1, 2, 2},
		[]int{0, 1, 1, 1, 2})

	require.ErrorIs(t, m.SetCol(3, []float64{1, 2, 3}), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetCol(0, []float64{1}), sparse.ErrShapeMismatch)
}

func TestSetColSparse(t *testing.T) {
	m := mustCOO(t, 3, 3, []float64{1, 5, 9}, []int{0, 1, 2}, []int{0, 1, 2})
	v := mustVec(t, 3, []float64{3, 6}, []int{0, 2})

	require.NoError(t, m.SetColSparse(1, v))
	require.True(t, m.IsSortedStrict_TestOnly())
	assertTriplets(t, m,
		[]float64{1, 3, 6, 9},
		[]int{0, 0, 2, 2},
		[]int{0, 1, 1, 2})

	require.ErrorIs(t, m.SetColSparse(0, nil), sparse.ErrNilVector)
}

func TestGetRowGetCol(t *testing.T) {
	m := mustCOO(t, 3, 4,
		[]float64{1, 2, 3, 4},
		[]int{0, 0, 1, 2},
		[]int{0, 3, 1, 3})

	row, err := m.GetRow(0)
	require.NoError(t, err)
	require.Equal(t, 4, row.Dim())
	vals, idx := row.Entries()
	require.Equal(t, []float64{1, 2}, vals)
	require.Equal(t, []int{0, 3}, idx)

	rowOne, err := m.GetRow(1)
	require.NoError(t, err)
	require.Equal(t, 1, rowOne.NNZ())

	col, err := m.GetCol(3)
	require.NoError(t, err)
	require.Equal(t, 3, col.Dim())
	vals, idx = col.Entries()
	require.Equal(t, []float64{2, 4}, vals)
	require.Equal(t, []int{0, 2}, idx)

	_, err = m.GetRow(3)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.GetCol(4)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestGetRowRange(t *testing.T) {
	m := mustCOO(t, 2, 5,
		[]float64{1, 2, 3, 4},
		[]int{0, 0, 0, 1},
		[]int{0, 2, 4, 1})

	v, err := m.GetRowRange(0, 1, 4)
	require.NoError(t, err)
	require.Equal(t, 3, v.Dim())
	vals, idx := v.Entries()
	require.Equal(t, []float64{2}, vals)
	require.Equal(t, []int{1}, idx) // column 2 rebased by -1

	_, err = m.GetRowRange(0, 3, 3)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.GetRowRange(0, -1, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.GetRowRange(0, 2, 6)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestGetColRange(t *testing.T) {
	m := mustCOO(t, 5, 2,
		[]float64{1, 2, 3},
		[]int{0, 2, 4},
		[]int{1, 1, 1})

	v, err := m.GetColRange(1, 1, 5)
	require.NoError(t, err)
	require.Equal(t, 4, v.Dim())
	vals, idx := v.Entries()
	require.Equal(t, []float64{2, 3}, vals)
	require.Equal(t, []int{1, 3}, idx) // rows 2 and 4 rebased by -1

	_, err = m.GetColRange(2, 0, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestGetSlice extracts an interior rectangle and checks the rebased
// layout plus the inherited ring and policy.
func TestGetSlice(t *testing.T) {
	m := mustCOO(t, 4, 4,
		[]float64{1, 2, 3, 4, 5},
		[]int{0, 1, 1, 2, 3},
		[]int{0, 1, 3, 2, 3},
		sparse.WithDropZeros(true))

	s, err := m.GetSlice(1, 3, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, s.Rows())
	require.Equal(t, 2, s.Cols())
	require.True(t, s.DropZeros())
	require.True(t, s.IsSortedStrict_TestOnly())
	assertTriplets(t, s, []float64{2, 4}, []int{0, 1}, []int{0, 1})

	_, err = m.GetSlice(0, 0, 0, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.GetSlice(0, 5, 0, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.GetSlice(-1, 2, 0, 2)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
	_, err = m.GetSlice(0, 2, 2, 1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

// TestSetSlice writes a block over a rectangle: inside positions the block
// leaves absent become absent, outside entries survive untouched.
func TestSetSlice(t *testing.T) {
	m := mustCOO(t, 4, 4,
		[]float64{1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]int{0, 1, 2, 3})
	block := mustCOO(t, 2, 2, []float64{7}, []int{0}, []int{1})

	require.NoError(t, m.SetSlice(block, 1, 1))
	require.True(t, m.IsSortedStrict_TestOnly())
	// (1,1) and (2,2) lay inside the rectangle and were not re-written
	assertTriplets(t, m,
		[]float64{1, 7, 4},
		[]int{0, 1, 3},
		[]int{0, 2, 3})
}

func TestSetSliceValidation(t *testing.T) {
	m := mustCOO(t, 3, 3, []float64{1}, []int{0}, []int{0})
	before := m.Clone()
	block := mustCOO(t, 2, 2, []float64{7}, []int{0}, []int{0})

	require.ErrorIs(t, m.SetSlice(nil, 0, 0), sparse.ErrNilMatrix)
	require.ErrorIs(t, m.SetSlice(block, -1, 0), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SetSlice(block, 2, 0), sparse.ErrShapeMismatch)
	require.ErrorIs(t, m.SetSlice(block, 0, 2), sparse.ErrShapeMismatch)
	require.True(t, m.Equal(before))
}

// TestGetSetSliceRoundTrip: reading a rectangle and writing it back is a
// no-op.
func TestGetSetSliceRoundTrip(t *testing.T) {
	m := mustCOO(t, 4, 4,
		[]float64{1, 2, 3, 4, 5},
		[]int{0, 1, 1, 2, 3},
		[]int{1, 0, 2, 3, 0})
	before := m.Clone()

	s, err := m.GetSlice(1, 3, 0, 4)
	require.NoError(t, err)
	require.NoError(t, m.SetSlice(s, 1, 0))
	require.True(t, m.Equal(before))
}

func TestSwapRows(t *testing.T) {
	m := mustCOO(t, 3, 3,
		[]float64{1, 2, 3},
		[]int{0, 0, 2},
		[]int{0, 2, 1})

	require.NoError(t, m.SwapRows(0, 2))
	require.True(t, m.IsSortedStrict_TestOnly())
	assertTriplets(t, m,
		[]float64{3, 1, 2},
		[]int{0, 2, 2},
		[]int{1, 0, 2})

	before := m.Clone()
	require.NoError(t, m.SwapRows(1, 1))
	require.True(t, m.Equal(before))

	require.ErrorIs(t, m.SwapRows(0, 3), sparse.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), sparse.ErrOutOfRange)
}

func TestSwapCols(t *testing.T) {
	m := mustCOO(t, 2, 3,
		[]float64{1, 2, 3},
		[]int{0, 0, 1},
		[]int{0, 2, 1})

	require.NoError(t, m.SwapCols(0, 2))
	require.True(t, m.IsSortedStrict_TestOnly())
	assertTriplets(t, m,
		[]float64{2, 1, 3},
		[]int{0, 0, 1},
		[]int{0, 2, 1})

	require.ErrorIs(t, m.SwapCols(0, 3), sparse.ErrOutOfRange)
}

// TestManipSequencePreservesInvariant chains several order-touching ops
// and asserts the invariant after each one.
func TestManipSequencePreservesInvariant(t *testing.T) {
	m := mustCOO(t, 4, 4,
		[]float64{1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]int{3, 0, 2, 1})

	require.NoError(t, m.SetCol(2, []float64{5, 0, 6, 0}))
	require.True(t, m.IsSortedStrict_TestOnly())
	require.NoError(t, m.SwapRows(0, 3))
	require.True(t, m.IsSortedStrict_TestOnly())
	require.NoError(t, m.SwapCols(1, 2))
	require.True(t, m.IsSortedStrict_TestOnly())
	require.NoError(t, m.SetRow(2, []float64{9, 9, 9, 9}))
	require.True(t, m.IsSortedStrict_TestOnly())

	tr := m.T()
	require.True(t, tr.IsSortedStrict_TestOnly())
}
