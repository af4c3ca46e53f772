// SPDX-License-Identifier: MIT

// Package sparse - format conversions and mixed sparse/dense kernels.
//
// COO→CSR is the classic three-pass build: count, prefix-sum, copy. The
// copy is verbatim because the triplet store is already row-sorted; that
// single fact is what makes the conversion O(nnz + rows) and keeps the
// within-row column order intact. The mixed products route float64 row
// operations through viterin/vek, same gating rule as the dense package:
// the ring TYPE, not the element type, decides.

package sparse

import (
	"github.com/viterin/vek"

	"github.com/katalvlaran/lvlalg/algebra"
	"github.com/katalvlaran/lvlalg/dense"
)

// asF64 views s as []float64 when E is exactly float64.
func asF64[E any](s []E) ([]float64, bool) {
	f, ok := any(s).([]float64)
	return f, ok
}

// ringIsF64 reports whether r is the standard IEEE float64 ring.
func ringIsF64[E any](r algebra.Ring[E]) bool {
	_, ok := any(r).(algebra.Float64)
	return ok
}

// ToCSR converts the triplet store to compressed sparse row form.
// MAIN DESCRIPTION:
//   - Three passes: count row populations into rowPtr[r+1], turn the
//     counts into offsets with an in-place prefix sum, then copy values
//     and columns verbatim.
//
// Implementation:
//   - The verbatim copy is correct because the store is row-sorted: row
//     r's entries already sit contiguously in order, exactly where the
//     prefix sum says row r begins. No per-entry placement cursor runs.
//   - Within-row columns arrive ascending for the same reason, though the
//     CSR type itself does not require that.
//
// Determinism:
//   - The output is a pure function of the store contents.
//
// Complexity: Time O(nnz + rows), Space O(nnz + rows).
func (m *Matrix[E]) ToCSR() *CSR[E] {
	rowPtr := make([]int, m.rows+1)
	for _, r := range m.rowIdx {
		rowPtr[r+1]++
	}
	for r := 0; r < m.rows; r++ {
		rowPtr[r+1] += rowPtr[r]
	}
	return &CSR[E]{
		rows:   m.rows,
		cols:   m.cols,
		val:    append([]E(nil), m.val...),
		colIdx: append([]int(nil), m.colIdx...),
		rowPtr: rowPtr,
		ring:   m.ring,
	}
}

// ToCOO converts back to the triplet store, expanding the row pointers
// into explicit row indices. A store produced by ToCSR keeps within-row
// columns ascending, so the expansion is already sorted and the guard
// skips the re-sort; externally built CSR data with shuffled columns pays
// the sort once here.
//
// Complexity: O(nnz) sorted input, O(nnz log nnz) otherwise.
func (s *CSR[E]) ToCOO(opts ...Option) *Matrix[E] {
	o := gatherOptions(opts...)
	m := &Matrix[E]{
		rows:      s.rows,
		cols:      s.cols,
		val:       make([]E, 0, len(s.val)),
		rowIdx:    make([]int, 0, len(s.val)),
		colIdx:    make([]int, 0, len(s.val)),
		ring:      s.ring,
		dropZeros: o.dropZeros,
	}
	for r := 0; r < s.rows; r++ {
		for k := s.rowPtr[r]; k < s.rowPtr[r+1]; k++ {
			m.push(r, s.colIdx[k], s.val[k])
		}
	}
	if !m.isSortedStrict() {
		m.sortTriplets()
	}
	return m
}

// ToDense expands the store into a dense matrix: zero-filled allocation
// (ring zero, so MinPlus gets +Inf), then one scatter write per entry.
// Keys are unique under the store invariant; were raw arrays ever to
// carry duplicates, the later entry would win.
//
// Complexity: O(rows*cols + nnz).
func (m *Matrix[E]) ToDense() (*dense.Dense[E], error) {
	out, err := dense.New(m.ring, m.rows, m.cols)
	if err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	for i := range m.val {
		if err := out.Set(m.rowIdx[i], m.colIdx[i], m.val[i]); err != nil {
			return nil, sparseErrorf(opToDense, err)
		}
	}
	return out, nil
}

// ToDense expands the CSR store into a dense matrix, same scatter
// semantics as the triplet version.
func (s *CSR[E]) ToDense() (*dense.Dense[E], error) {
	out, err := dense.New(s.ring, s.rows, s.cols)
	if err != nil {
		return nil, sparseErrorf(opToDense, err)
	}
	for r := 0; r < s.rows; r++ {
		for k := s.rowPtr[r]; k < s.rowPtr[r+1]; k++ {
			if err := out.Set(r, s.colIdx[k], s.val[k]); err != nil {
				return nil, sparseErrorf(opToDense, err)
			}
		}
	}
	return out, nil
}

// FromDense builds a triplet store from a dense matrix, keeping the
// entries the ring does not consider zero; the ring's epsilon is the
// sparsity threshold. The row-major scan emits keys in order, so the
// store is sorted by construction.
//
// The result takes its ring from d.
//
// Errors: ErrNilMatrix.
//
// Complexity: O(rows*cols).
func FromDense[E any](d dense.Matrix[E], opts ...Option) (*Matrix[E], error) {
	if err := dense.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	ring := d.Ring()
	o := gatherOptions(opts...)
	m := &Matrix[E]{rows: d.Rows(), cols: d.Cols(), ring: ring, dropZeros: o.dropZeros}
	if o.capacity > 0 {
		m.val = make([]E, 0, o.capacity)
		m.rowIdx = make([]int, 0, o.capacity)
		m.colIdx = make([]int, 0, o.capacity)
	}
	if dd, ok := d.(*dense.Dense[E]); ok {
		for i := 0; i < m.rows; i++ {
			row, _ := dd.RowView(i)
			for j, v := range row {
				if ring.IsZero(v) {
					continue
				}
				m.val = append(m.val, v)
				m.rowIdx = append(m.rowIdx, i)
				m.colIdx = append(m.colIdx, j)
			}
		}
		return m, nil
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v, err := d.At(i, j)
			if err != nil {
				return nil, sparseErrorf(opFromDense, err)
			}
			if ring.IsZero(v) {
				continue
			}
			m.val = append(m.val, v)
			m.rowIdx = append(m.rowIdx, i)
			m.colIdx = append(m.colIdx, j)
		}
	}
	return m, nil
}

// T returns the transpose as a new store: shape and indices swap, then the
// arrays re-sort into the new key order.
//
// Complexity: O(nnz log nnz).
func (m *Matrix[E]) T() *Matrix[E] {
	out := m.newLike(m.cols, m.rows, len(m.val))
	out.val = append(out.val, m.val...)
	out.rowIdx = append(out.rowIdx, m.colIdx...)
	out.colIdx = append(out.colIdx, m.rowIdx...)
	out.sortTriplets()
	return out
}

// MatVec returns m·x under the ring as a dense slice: one scatter
// multiply-accumulate per stored entry, absent positions never touched.
//
// Errors: ErrShapeMismatch unless len(x) == Cols().
//
// Complexity: O(nnz + rows).
func (m *Matrix[E]) MatVec(x []E) ([]E, error) {
	if len(x) != m.cols {
		return nil, sparseErrorf(opMatVec, ErrShapeMismatch)
	}
	out := make([]E, m.rows)
	zero := m.ring.Zero()
	for i := range out {
		out[i] = zero
	}
	for t := range m.val {
		r, c := m.rowIdx[t], m.colIdx[t]
		out[r] = m.ring.Add(out[r], m.ring.Mul(m.val[t], x[c]))
	}
	return out, nil
}

// MulDense returns the sparse×dense product m·d.
// MAIN DESCRIPTION:
//   - Row-axpy formulation: each stored entry (r, k, v) contributes
//     v ⊗ d.row(k) into out.row(r), so the work is O(nnz · d.Cols())
//     regardless of how empty m is.
//
// Implementation:
//   - Stage 1: validate operands and the inner dimension.
//   - Stage 2: allocate the accumulator via dense.New, which fills with
//     the ring zero (MinPlus accumulates onto +Inf correctly).
//   - Stage 3: concrete *dense.Dense operands run on RowView slices; on
//     the plain float64 ring each axpy routes through vek
//     (MulNumber_Inplace on a scratch row, Add_Inplace into the
//     accumulator row). Interface operands fall back to At.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: Time O(nnz · d.Cols()), Space O(rows · d.Cols()).
func (m *Matrix[E]) MulDense(d dense.Matrix[E]) (*dense.Dense[E], error) {
	if m == nil {
		return nil, sparseErrorf(opMulDense, ErrNilMatrix)
	}
	if err := dense.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf(opMulDense, ErrNilMatrix)
	}
	if m.cols != d.Rows() {
		return nil, sparseErrorf(opMulDense, ErrShapeMismatch)
	}
	out, err := dense.New(m.ring, m.rows, d.Cols())
	if err != nil {
		return nil, sparseErrorf(opMulDense, err)
	}
	if dd, ok := d.(*dense.Dense[E]); ok {
		m.mulDenseRows(out, dd)
		return out, nil
	}
	n := d.Cols()
	for t := range m.val {
		r, k, v := m.rowIdx[t], m.colIdx[t], m.val[t]
		crow, _ := out.RowView(r)
		for j := 0; j < n; j++ {
			dv, aerr := d.At(k, j)
			if aerr != nil {
				return nil, sparseErrorf(opMulDense, aerr)
			}
			crow[j] = m.ring.Add(crow[j], m.ring.Mul(v, dv))
		}
	}
	return out, nil
}

// mulDenseRows is the concrete-operand kernel behind MulDense: one axpy
// per stored entry over shared row views.
func (m *Matrix[E]) mulDenseRows(out, d *dense.Dense[E]) {
	if ringIsF64(m.ring) && ringIsF64(d.Ring()) {
		scratch := make([]float64, d.Cols())
		for t := range m.val {
			v := any(m.val[t]).(float64)
			// exact zero contributes nothing under plain IEEE axpy
			if v == 0 {
				continue
			}
			crow, _ := out.RowView(m.rowIdx[t])
			drow, _ := d.RowView(m.colIdx[t])
			fc, _ := asF64(crow)
			fd, _ := asF64(drow)
			copy(scratch, fd)
			vek.MulNumber_Inplace(scratch, v)
			vek.Add_Inplace(fc, scratch)
		}
		return
	}
	for t := range m.val {
		v := m.val[t]
		crow, _ := out.RowView(m.rowIdx[t])
		drow, _ := d.RowView(m.colIdx[t])
		for j := range crow {
			crow[j] = m.ring.Add(crow[j], m.ring.Mul(v, drow[j]))
		}
	}
}

// DenseMul returns the dense×sparse product d·m. Each stored entry
// (k, c, v) scales column k of d into column c of the result; the writes
// are column-strided, so the kernel stays scalar. The result takes its
// ring from d.
//
// Errors: ErrNilMatrix, ErrShapeMismatch.
//
// Complexity: O(d.Rows() · nnz).
func DenseMul[E any](d dense.Matrix[E], m *Matrix[E]) (*dense.Dense[E], error) {
	if m == nil {
		return nil, sparseErrorf(opDenseMul, ErrNilMatrix)
	}
	if err := dense.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf(opDenseMul, ErrNilMatrix)
	}
	if d.Cols() != m.rows {
		return nil, sparseErrorf(opDenseMul, ErrShapeMismatch)
	}
	ring := d.Ring()
	out, err := dense.New(ring, d.Rows(), m.cols)
	if err != nil {
		return nil, sparseErrorf(opDenseMul, err)
	}
	if dd, ok := d.(*dense.Dense[E]); ok {
		for i := 0; i < d.Rows(); i++ {
			crow, _ := out.RowView(i)
			drow, _ := dd.RowView(i)
			for t := range m.val {
				k, c := m.rowIdx[t], m.colIdx[t]
				crow[c] = ring.Add(crow[c], ring.Mul(drow[k], m.val[t]))
			}
		}
		return out, nil
	}
	for i := 0; i < d.Rows(); i++ {
		crow, _ := out.RowView(i)
		for t := range m.val {
			k, c := m.rowIdx[t], m.colIdx[t]
			dv, aerr := d.At(i, k)
			if aerr != nil {
				return nil, sparseErrorf(opDenseMul, aerr)
			}
			crow[c] = ring.Add(crow[c], ring.Mul(dv, m.val[t]))
		}
	}
	return out, nil
}
