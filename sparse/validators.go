// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for operand checks shared by Add, Multiply and the facades.
//   - Return sentinels wrapped with the validator name; operations add their own tag.
//
// Determinism & Performance:
//   - All checks are O(1), pure and allocation-free on the success path.

package sparse

// validatorErrorf tags a sentinel with the validator that produced it.
func validatorErrorf(tag string, err error) error {
	return sparseErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix otherwise.
func ValidateNotNil[T Number](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal rows and equal cols.
// Assumes both are non-nil.
//
// Errors:
//   - ErrShapeMismatch when either dimension differs.
func ValidateSameShape[T Number](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrShapeMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows. Assumes both are non-nil.
func ValidateMulCompatible[T Number](a, b *Matrix[T]) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrShapeMismatch)
	}

	return nil
}

// ValidateSameCommonValue ensures a and b share one common value.
// Assumes both are non-nil.
func ValidateSameCommonValue[T Number](a, b *Matrix[T]) error {
	if a.common != b.common {
		return validatorErrorf("ValidateSameCommonValue", ErrCommonValueMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row < Rows and 0 ≤ col < Cols.
func ValidateIndex[T Number](m *Matrix[T], row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// validateBinary is the composite NotNil(a) → NotNil(b) guard.
func validateBinary[T Number](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// validateAddOperands runs NotNil → SameShape → SameCommonValue.
// Shape is checked first, so a matrix differing in both reports ErrShapeMismatch.
func validateAddOperands[T Number](a, b *Matrix[T]) error {
	if err := validateBinary(a, b); err != nil {
		return err
	}
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}

	return ValidateSameCommonValue(a, b)
}

// validateMulOperands runs NotNil → MulCompatible → SameCommonValue → zero common value.
func validateMulOperands[T Number](a, b *Matrix[T]) error {
	if err := validateBinary(a, b); err != nil {
		return err
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if err := ValidateSameCommonValue(a, b); err != nil {
		return err
	}
	var zero T
	if a.common != zero {
		return validatorErrorf("validateMulOperands", ErrNonZeroCommonValue)
	}

	return nil
}
