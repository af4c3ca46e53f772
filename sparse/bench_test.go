// Package sparse_test provides benchmarks for the triplet engine, using
// deterministic random patterns at a fixed density.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
	"github.com/katalvlaran/lvlalg/sparse"
)

// benchDims are the square store sizes to benchmark at ~5% density.
var benchDims = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sparseSinkM *sparse.Matrix[float64]
	sparseSinkC *sparse.CSR[float64]
	sparseSinkV []float64
	sparseSinkD *dense.Dense[float64]
)

// benchTriplets returns nnz unique random coordinates with values, seeded.
func benchTriplets(b *testing.B, n, nnz int, seed int64) ([]float64, []int, []int) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := rng.Perm(n * n)[:nnz]
	vals := make([]float64, nnz)
	rows := make([]int, nnz)
	cols := make([]int, nnz)
	for i, f := range flat {
		vals[i] = rng.Float64()*2 - 1
		rows[i] = f / n
		cols[i] = f % n
	}
	return vals, rows, cols
}

// benchCOO builds an n×n store at roughly 5% density.
func benchCOO(b *testing.B, n int, seed int64) *sparse.Matrix[float64] {
	b.Helper()
	nnz := n * n / 20
	vals, rows, cols := benchTriplets(b, n, nnz, seed)
	m, err := sparse.NewFromTriplets(algebra.NewFloat64(), n, n, vals, rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkNewFromTriplets(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vals, rows, cols := benchTriplets(b, n, n*n/20, 1337)
			ring := algebra.NewFloat64()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.NewFromTriplets(ring, n, n, vals, rows, cols)
				if err != nil {
					b.Fatal(err)
				}
				sparseSinkM = m
			}
		})
	}
}

func BenchmarkAddMerge(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchCOO(b, n, 11)
			y := benchCOO(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sparseSinkM = m
			}
		})
	}
}

func BenchmarkElemMulMerge(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchCOO(b, n, 33)
			y := benchCOO(b, n, 44)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := x.ElemMul(y)
				if err != nil {
					b.Fatal(err)
				}
				sparseSinkM = m
			}
		})
	}
}

func BenchmarkToCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchCOO(b, n, 55)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sparseSinkC = x.ToCSR()
			}
		})
	}
}

func BenchmarkMatVecCOO(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchCOO(b, n, 66)
			v := make([]float64, n)
			for i := range v {
				v[i] = float64(i%7) - 3
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := x.MatVec(v)
				if err != nil {
					b.Fatal(err)
				}
				sparseSinkV = y
			}
		})
	}
}

func BenchmarkMatVecCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchDims {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := benchCOO(b, n, 77).ToCSR()
			v := make([]float64, n)
			for i := range v {
				v[i] = float64(i%7) - 3
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := s.MatVec(v)
				if err != nil {
					b.Fatal(err)
				}
				sparseSinkV = y
			}
		})
	}
}

func BenchmarkMulDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchCOO(b, n, 88)
			rng := rand.New(rand.NewSource(99))
			data := make([]float64, n*n)
			for i := range data {
				data[i] = rng.Float64()*2 - 1
			}
			d, err := dense.NewFromSlice(algebra.NewFloat64(), n, n, data)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := x.MulDense(d)
				if err != nil {
					b.Fatal(err)
				}
				sparseSinkD = p
			}
		})
	}
}
