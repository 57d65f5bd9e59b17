// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Purpose:
//   - Nil-safe function forms of the methods, for pipelines that pass matrices around.
//   - Each facade delegates to the canonical method; no logic is duplicated.

package sparse

// Transpose returns mᵀ, or ErrNilMatrix for a nil m.
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Add returns a + b. See (*Matrix).Add.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Multiply returns a × b. See (*Matrix).Multiply.
func Multiply[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, sparseErrorf(opMultiply, err)
	}

	return a.Multiply(b)
}

// Sum is an alias for Add.
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Product is an alias for Multiply.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Multiply(a, b) }
