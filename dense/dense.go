// SPDX-License-Identifier: MIT

// Package dense - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j, generic over the element ring.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package dense

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/algebra"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// idxErrorf wraps a sentinel with method context and coordinates.
// Keep tags in constants for grep-ability; %w preserves errors.Is matching.
func idxErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is the minimal polymorphic contract consumed by every kernel in
// this package and by the sparse engine's mixed-operand multiply.
type Matrix[E any] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange for invalid indices. Complexity: O(1) for Dense.
	At(i, j int) (E, error)

	// Set assigns v at (i, j).
	// Returns ErrOutOfRange for invalid indices. Complexity: O(1) for Dense.
	Set(i, j int, v E) error

	// Ring returns the element ring the matrix was built with.
	Ring() algebra.Ring[E]

	// Clone returns a deep copy, independent of the original.
	Clone() Matrix[E]
}

// Dense is the concrete row-major matrix.
//   - r, c hold dimensions (both > 0).
//   - data is a flat buffer of length r*c in row-major order (offset i*c+j).
//   - ring supplies the element arithmetic and comparison policy.
type Dense[E any] struct {
	r, c int
	data []E
	ring algebra.Ring[E]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// New creates an r×c matrix with every cell set to ring.Zero().
// For float/int rings that coincides with Go's zero value and costs only the
// allocation; for semirings like algebra.MinPlus (zero = +Inf) an explicit
// fill pass runs.
//
// Errors:
//   - ErrNilMatrix if ring is nil.
//   - ErrBadShape unless rows > 0 and cols > 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[E any](ring algebra.Ring[E], rows, cols int) (*Dense[E], error) {
	if ring == nil {
		return nil, denseErrorf(opNew, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(opNew, ErrBadShape)
	}
	d := newDenseRaw(ring, rows, cols)
	// make() zero-fills; only rings whose additive identity differs from the
	// Go zero value need the explicit pass.
	var zv E
	if !ring.IsZero(zv) {
		d.Fill(ring.Zero())
	}
	return d, nil
}

// newDenseRaw allocates without the identity fill. Internal kernels that
// overwrite every cell use it to skip the pass; the buffer holds Go zero
// values until then.
func newDenseRaw[E any](ring algebra.Ring[E], rows, cols int) *Dense[E] {
	return &Dense[E]{r: rows, c: cols, data: make([]E, rows*cols), ring: ring}
}

// NewFromSlice creates an r×c matrix from a row-major slice, copying it.
//
// Errors:
//   - ErrNilMatrix / ErrBadShape as in New.
//   - ErrDimensionMismatch unless len(data) == rows*cols.
func NewFromSlice[E any](ring algebra.Ring[E], rows, cols int, data []E) (*Dense[E], error) {
	if ring == nil {
		return nil, denseErrorf(opFromSlice, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, denseErrorf(opFromSlice, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(opFromSlice, ErrDimensionMismatch)
	}
	d := newDenseRaw(ring, rows, cols)
	copy(d.data, data)
	return d, nil
}

// Identity returns I_n: ring.One() on the diagonal, ring.Zero() elsewhere.
// Complexity: O(n*n) init + O(n) diagonal writes.
func Identity[E any](ring algebra.Ring[E], n int) (*Dense[E], error) {
	m, err := New(ring, n, n)
	if err != nil {
		return nil, denseErrorf(opIdentity, err)
	}
	one := ring.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}
	return m, nil
}

// ZerosLike returns a fresh zero matrix with m's shape and ring. Handy to
// preallocate staging buffers.
func ZerosLike[E any](m Matrix[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opNew, err)
	}
	return New(m.Ring(), m.Rows(), m.Cols())
}

// indexOf returns the flat offset of (i, j), or ErrOutOfRange.
func (d *Dense[E]) indexOf(i, j int) (int, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, ErrOutOfRange
	}
	return i*d.c + j, nil
}

// Rows returns the row count.
func (d *Dense[E]) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense[E]) Cols() int { return d.c }

// Ring returns the element ring.
func (d *Dense[E]) Ring() algebra.Ring[E] { return d.ring }

// At returns the element at (i, j) or ErrOutOfRange.
func (d *Dense[E]) At(i, j int) (E, error) {
	off, err := d.indexOf(i, j)
	if err != nil {
		var zero E
		return zero, idxErrorf(opAt, i, j, err)
	}
	return d.data[off], nil
}

// Set assigns v at (i, j) or returns ErrOutOfRange.
func (d *Dense[E]) Set(i, j int, v E) error {
	off, err := d.indexOf(i, j)
	if err != nil {
		return idxErrorf(opSet, i, j, err)
	}
	d.data[off] = v
	return nil
}

// Row returns a copy of row i.
func (d *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= d.r {
		return nil, idxErrorf(opRow, i, 0, ErrOutOfRange)
	}
	out := make([]E, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])
	return out, nil
}

// RowView returns row i as a slice aliasing d's backing buffer; writes
// through it mutate the matrix. The capacity is clipped so an append cannot
// spill into the next row. Use Row for an isolated copy.
func (d *Dense[E]) RowView(i int) ([]E, error) {
	if i < 0 || i >= d.r {
		return nil, idxErrorf(opRowView, i, 0, ErrOutOfRange)
	}
	return d.data[i*d.c : (i+1)*d.c : (i+1)*d.c], nil
}

// Col returns a copy of column j. Strided read, O(rows).
func (d *Dense[E]) Col(j int) ([]E, error) {
	if j < 0 || j >= d.c {
		return nil, idxErrorf(opCol, 0, j, ErrOutOfRange)
	}
	out := make([]E, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c+j]
	}
	return out, nil
}

// Data returns a copy of the flat row-major buffer.
func (d *Dense[E]) Data() []E {
	out := make([]E, len(d.data))
	copy(out, d.data)
	return out
}

// Fill assigns v to every cell.
func (d *Dense[E]) Fill(v E) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Do visits every cell in row-major order.
func (d *Dense[E]) Do(fn func(i, j int, v E)) {
	for i := 0; i < d.r; i++ {
		base := i * d.c
		for j := 0; j < d.c; j++ {
			fn(i, j, d.data[base+j])
		}
	}
}

// Apply replaces every cell with fn(i, j, v), in place.
func (d *Dense[E]) Apply(fn func(i, j int, v E) E) {
	for i := 0; i < d.r; i++ {
		base := i * d.c
		for j := 0; j < d.c; j++ {
			d.data[base+j] = fn(i, j, d.data[base+j])
		}
	}
}

// Clone returns a deep copy of d.
func (d *Dense[E]) Clone() Matrix[E] {
	cp := newDenseRaw(d.ring, d.r, d.c)
	copy(cp.data, d.data)
	return cp
}

// Equal reports whether o has the same shape and every cell compares equal
// under d's ring policy. A nil o reports false.
func (d *Dense[E]) Equal(o Matrix[E]) bool {
	if o == nil || d.r != o.Rows() || d.c != o.Cols() {
		return false
	}
	if od, ok := o.(*Dense[E]); ok {
		for i, v := range d.data {
			if !d.ring.Eq(v, od.data[i]) {
				return false
			}
		}
		return true
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			ov, err := o.At(i, j)
			if err != nil || !d.ring.Eq(d.data[i*d.c+j], ov) {
				return false
			}
		}
	}
	return true
}

// String renders rows as "[v, v, ...]\n" lines for debugging.
func (d *Dense[E]) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%v", d.data[i*d.c+j])
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}
