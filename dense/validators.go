// SPDX-License-Identifier: MIT
// Package dense: centralized validators.
// Small, reusable precondition checks shared by every kernel. Validators
// return bare sentinels; callers wrap with the operation tag. Validation is
// eager: kernels run all checks before any allocation or write.

package dense

// ValidateNotNil reports ErrNilMatrix for a nil interface or a typed-nil
// *Dense hiding inside one.
func ValidateNotNil[E any](m Matrix[E]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense[E]); ok && d == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have equal
// row and column counts.
func ValidateSameShape[E any](a, b Matrix[E]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateInnerDims reports ErrDimensionMismatch unless a.Cols == b.Rows
// (the multiply inner dimension).
func ValidateInnerDims[E any](a, b Matrix[E]) error {
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateVecLen reports ErrVecLength unless len(x) == want.
func ValidateVecLen[E any](want int, x []E) error {
	if len(x) != want {
		return ErrVecLength
	}
	return nil
}
