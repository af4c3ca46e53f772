// Package sparse_test - concatenation tests: vertical and horizontal block
// composition, index shifting, and the zero-policy handoff.
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/sparse"
)

// TestStackShiftsRows: the lower operand's row indices move up by the
// receiver's row count, so the concatenated arrays stay sorted with no
// re-sort.
func TestStackShiftsRows(t *testing.T) {
	a := mustCOO(t, 2, 3, []float64{1, 2}, []int{0, 1}, []int{0, 2})
	b := mustCOO(t, 2, 3, []float64{3, 4}, []int{0, 1}, []int{1, 0})

	st, err := a.Stack(b)
	require.NoError(t, err)
	require.Equal(t, 4, st.Rows())
	require.Equal(t, 3, st.Cols())
	require.True(t, st.IsSortedStrict_TestOnly())
	assertTriplets(t, st,
		[]float64{1, 2, 3, 4},
		[]int{0, 1, 2, 3},
		[]int{0, 2, 1, 0})

	// operands untouched
	require.Equal(t, 2, a.NNZ())
	require.Equal(t, 2, b.NNZ())
}

func TestStackValidation(t *testing.T) {
	a := mustCOO(t, 2, 3, []float64{1}, []int{0}, []int{0})
	c := mustCOO(t, 2, 2, []float64{1}, []int{0}, []int{0})

	_, err := a.Stack(c)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)

	var nilM *sparse.Matrix[float64]
	_, err = nilM.Stack(a)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = a.Stack(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestStackInheritsZeroPolicy: the result takes the receiver's policy and
// the other operand's stored zeros are filtered on the way in.
func TestStackInheritsZeroPolicy(t *testing.T) {
	a := mustCOO(t, 1, 2, []float64{1}, []int{0}, []int{0},
		sparse.WithDropZeros(true))
	b := mustCOO(t, 1, 2, []float64{0, 5}, []int{0, 0}, []int{0, 1})

	st, err := a.Stack(b)
	require.NoError(t, err)
	require.True(t, st.DropZeros())
	require.Equal(t, 2, st.NNZ())
	assertTriplets(t, st, []float64{1, 5}, []int{0, 1}, []int{0, 1})
}

// TestAugmentColumnBlock glues a 2x1 column block onto a 2x2 store: the
// shifted columns interleave with existing rows, so the result re-sorts.
func TestAugmentColumnBlock(t *testing.T) {
	m := mustCOO(t, 2, 2, []float64{1, 1}, []int{0, 1}, []int{0, 1})
	o := mustCOO(t, 2, 1, []float64{9, 8}, []int{0, 1}, []int{0, 0})

	aug, err := m.Augment(o)
	require.NoError(t, err)
	require.Equal(t, 2, aug.Rows())
	require.Equal(t, 3, aug.Cols())
	require.True(t, aug.IsSortedStrict_TestOnly())
	assertTriplets(t, aug,
		[]float64{1, 9, 1, 8},
		[]int{0, 0, 1, 1},
		[]int{0, 2, 1, 2})
}

func TestAugmentValidation(t *testing.T) {
	m := mustCOO(t, 2, 2, []float64{1}, []int{0}, []int{0})
	o := mustCOO(t, 3, 1, []float64{1}, []int{0}, []int{0})

	_, err := m.Augment(o)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)

	var nilM *sparse.Matrix[float64]
	_, err = nilM.Augment(m)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = m.Augment(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
