// SPDX-License-Identifier: MIT

// Package dense - multiply dispatcher.
//
// Mul picks an execution path purely from the problem shape and the operand
// rings; every path computes the same product. Paths, leaf to root:
//
//   - mulRowsNaive: plain i-k-j triple loop over ring ops (small problems).
//   - mulRowsBlocked: cache-tiled variant of the same loop (large generic).
//   - mulRowsF64/F32: per-row axpy on the flat float slices through vek
//     (copy + MulNumber_Inplace + Add_Inplace), standard-float rings only.
//   - runRowBlocks: row-parallel driver wrapping any of the above; workers
//     write disjoint contiguous row blocks, so the result is deterministic.
//
// The accumulate formulation requires the result to start at ring.Zero(),
// which New guarantees for any ring.

package dense

import (
	"runtime"
	"sync"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// Mul returns the matrix product a*b.
// MAIN DESCRIPTION:
//   - Shape-dispatched multiply over a's ring; the collaborator boundary the
//     sparse engine consumes for mixed dense/sparse products.
//
// Implementation:
//   - Stage 1: validate operands (nil, inner dimensions).
//   - Stage 2: allocate the result at ring.Zero() (accumulator semantics).
//   - Stage 3: dispatch on rows*inner*cols and the ring type:
//     naive below mulNaiveCutoff; vek row-axpy for float64/float32 rings;
//     cache-blocked otherwise; row-parallel once the product reaches
//     Options.parallelThreshold. Non-*Dense operands take the interface
//     fallback.
//
// Behavior highlights:
//   - Deterministic: path choice never changes the result, only the schedule.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: Time O(r*k*c), Space O(r*c).
func Mul[E any](a, b Matrix[E], opts ...Option) (*Dense[E], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, denseErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, denseErrorf(opMul, err)
	}
	if err := ValidateInnerDims(a, b); err != nil {
		return nil, denseErrorf(opMul, err)
	}
	o := gatherOptions(opts...)
	r, inner, c := a.Rows(), a.Cols(), b.Cols()
	res, err := New(a.Ring(), r, c)
	if err != nil {
		return nil, denseErrorf(opMul, err)
	}

	da, okA := a.(*Dense[E])
	db, okB := b.(*Dense[E])
	if !okA || !okB {
		mulGeneric(res, a, b)
		return res, nil
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ops := r * inner * c
	parallel := ops >= o.parallelThreshold && workers > 1 && r > 1

	var kern func(i0, i1 int)
	switch {
	case ops <= mulNaiveCutoff:
		kern = func(i0, i1 int) { mulRowsNaive(res, da, db, i0, i1) }
		parallel = false // tiling and goroutines both lose at this size
	case ringIsF64(da.ring) && ringIsF64(db.ring):
		kern = func(i0, i1 int) { mulRowsF64(res, da, db, i0, i1) }
	case ringIsF32(da.ring) && ringIsF32(db.ring):
		kern = func(i0, i1 int) { mulRowsF32(res, da, db, i0, i1) }
	default:
		kern = func(i0, i1 int) { mulRowsBlocked(res, da, db, i0, i1, o.blockSize) }
	}
	if parallel {
		runRowBlocks(r, workers, kern)
	} else {
		kern(0, r)
	}
	return res, nil
}

// runRowBlocks splits [0, rows) into contiguous blocks and runs kern on each
// block in its own goroutine. Output rows are disjoint, so no synchronization
// beyond the join is needed.
func runRowBlocks(rows, workers int, kern func(i0, i1 int)) {
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for i0 := 0; i0 < rows; i0 += chunk {
		i1 := min(i0+chunk, rows)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			kern(lo, hi)
		}(i0, i1)
	}
	wg.Wait()
}

// mulRowsNaive computes rows [i0, i1) with the plain i-k-j loop.
// No zero skipping: ring laws make zero contributions no-ops, and an
// epsilon-based IsZero skip could drop small-but-real contributions.
func mulRowsNaive[E any](res, a, b *Dense[E], i0, i1 int) {
	ring := res.ring
	inner, c := a.c, b.c
	for i := i0; i < i1; i++ {
		base := i * c
		abase := i * inner
		for k := 0; k < inner; k++ {
			aik := a.data[abase+k]
			bbase := k * c
			for j := 0; j < c; j++ {
				res.data[base+j] = ring.Add(res.data[base+j], ring.Mul(aik, b.data[bbase+j]))
			}
		}
	}
}

// mulRowsBlocked is mulRowsNaive tiled over k and j to keep the working set
// of b inside cache for large shapes.
func mulRowsBlocked[E any](res, a, b *Dense[E], i0, i1, bs int) {
	ring := res.ring
	inner, c := a.c, b.c
	for kb := 0; kb < inner; kb += bs {
		kMax := min(kb+bs, inner)
		for jb := 0; jb < c; jb += bs {
			jMax := min(jb+bs, c)
			for i := i0; i < i1; i++ {
				base := i * c
				abase := i * inner
				for k := kb; k < kMax; k++ {
					aik := a.data[abase+k]
					bbase := k * c
					for j := jb; j < jMax; j++ {
						res.data[base+j] = ring.Add(res.data[base+j], ring.Mul(aik, b.data[bbase+j]))
					}
				}
			}
		}
	}
}

// mulRowsF64 computes rows [i0, i1) as per-row axpy over the float64 slices:
// row_i(res) += a[i,k] * row_k(b) for each k, vectorized through vek.
// The exact ==0 skip is safe; it only elides adding a zero vector.
func mulRowsF64[E any](res, a, b *Dense[E], i0, i1 int) {
	fr, _ := asF64(res.data)
	fa, _ := asF64(a.data)
	fb, _ := asF64(b.data)
	inner, c := a.c, b.c
	scratch := make([]float64, c)
	for i := i0; i < i1; i++ {
		ri := fr[i*c : (i+1)*c]
		abase := i * inner
		for k := 0; k < inner; k++ {
			alpha := fa[abase+k]
			if alpha == 0 {
				continue
			}
			copy(scratch, fb[k*c:(k+1)*c])
			vek.MulNumber_Inplace(scratch, alpha)
			vek.Add_Inplace(ri, scratch)
		}
	}
}

// mulRowsF32 is the float32 mirror of mulRowsF64.
func mulRowsF32[E any](res, a, b *Dense[E], i0, i1 int) {
	fr, _ := asF32(res.data)
	fa, _ := asF32(a.data)
	fb, _ := asF32(b.data)
	inner, c := a.c, b.c
	scratch := make([]float32, c)
	for i := i0; i < i1; i++ {
		ri := fr[i*c : (i+1)*c]
		abase := i * inner
		for k := 0; k < inner; k++ {
			alpha := fa[abase+k]
			if alpha == 0 {
				continue
			}
			copy(scratch, fb[k*c:(k+1)*c])
			vek32.MulNumber_Inplace(scratch, alpha)
			vek32.Add_Inplace(ri, scratch)
		}
	}
}

// mulGeneric is the Matrix-interface fallback (At-based i-j-k reduction).
func mulGeneric[E any](res *Dense[E], a, b Matrix[E]) {
	ring := res.ring
	r, inner, c := a.Rows(), a.Cols(), b.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			acc := ring.Zero()
			for k := 0; k < inner; k++ {
				av, _ := a.At(i, k)
				bv, _ := b.At(k, j)
				acc = ring.Add(acc, ring.Mul(av, bv))
			}
			res.data[i*c+j] = acc
		}
	}
}
