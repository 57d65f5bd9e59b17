// SPDX-License-Identifier: MIT
// Package sparse: structural operations on the sparse representation.
//
// Purpose:
//   - Transpose, Add and Multiply working purely on stored entries (never via Materialize).
//   - Each returns a fresh Matrix that inherits the receiver's Options; operands are read-only.
//
// Notes:
//   - Results are not compacted: an accumulated cell may end up equal to the
//     result's common value and still be stored.
//   - Add keeps the shared common value as the result's common value.

package sparse

import (
	"context"
	"log/slog"
)

// Operation tags for unified error wrapping.
const (
	opTranspose        = "Transpose"
	opAdd              = "Add"
	opMultiply         = "Multiply"
	opMultiplyParallel = "MultiplyParallel"
)

// Transpose returns mᵀ.
//
// Implementation:
//   - Stage 1: allocate a cols×rows result with the same common value.
//   - Stage 2: emit (col, row, value) for every entry, preserving relative order.
//
// Behavior highlights:
//   - Never fails; m is not touched.
//
// Complexity:
//   - Time O(n), Space O(n).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	res := newMatrix(m.cols, m.rows, m.common, m.opts)
	res.entries = make([]Entry[T], len(m.entries))
	for i, e := range m.entries {
		res.entries[i] = Entry[T]{row: e.col, col: e.row, value: e.value}
	}

	return res
}

// Add returns m + other.
//
// Implementation:
//   - Stage 1: validate shapes (ErrShapeMismatch) then common values (ErrCommonValueMismatch).
//   - Stage 2: copy m's entries biased by +cv, so an unmatched cell already holds m[r,c] + cv.
//   - Stage 3: for each entry of other, fold (value − cv) into a matching cell, which then
//     holds m[r,c] + other[r,c]; otherwise append (value + cv).
//
// Behavior highlights:
//   - Result order: m's entries first, then other's unmatched entries, both in original order.
//   - Result common value is cv itself (not 2·cv); exact only when cv is the additive identity.
//   - Redundant entries equal to cv are kept.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrCommonValueMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(n_a + n_b·(n_a+n_b)) due to linear-scan matching, Space O(n_a+n_b).
//
// AI-Hints:
//   - Inject WithLogger at debug level to trace every matched position.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	if err := validateAddOperands(m, other); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	cv := m.common
	res := newMatrix(m.rows, m.cols, cv, m.opts)
	res.entries = make([]Entry[T], 0, len(m.entries)+len(other.entries))
	for _, e := range m.entries {
		res.push(e.row, e.col, e.value+cv)
	}

	log := m.opts.logger
	trace := log.Enabled(context.Background(), slog.LevelDebug)
	for _, e := range other.entries {
		if res.tryAccumulate(e.row, e.col, e.value-cv) {
			if trace {
				log.Debug("accumulated entry", "op", opAdd, "row", e.row, "col", e.col, "delta", e.value-cv)
			}
			continue
		}
		res.push(e.row, e.col, e.value+cv)
	}

	return res, nil
}

// Multiply returns m × other.
//
// Implementation:
//   - Stage 1: validate inner dimensions (ErrShapeMismatch), equal common values
//     (ErrCommonValueMismatch) and a zero common value (ErrNonZeroCommonValue).
//   - Stage 2: for every entry (r, k, v) of m and every column j of other, compute
//     p = v · other[k,j] and fold it into (r, j); a missing cell is appended iff p ≠ 0.
//
// Behavior highlights:
//   - other is consulted cell by cell through the linear-scan lookup, so its
//     common cells contribute zero products that are never stored.
//   - A cell whose contributions cancel out stays stored with value 0.
//   - Entry order follows first creation: m's entry order, then column order.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrCommonValueMismatch, ErrNonZeroCommonValue.
//
// Complexity:
//   - Time O(n_a · cols_b · (n_b + n_result)), Space O(n_result).
//
// AI-Hints:
//   - For many populated rows, MultiplyParallel produces the identical result across workers.
func (m *Matrix[T]) Multiply(other *Matrix[T]) (*Matrix[T], error) {
	if err := validateMulOperands(m, other); err != nil {
		return nil, sparseErrorf(opMultiply, err)
	}

	var zero T
	res := newMatrix(m.rows, other.cols, zero, m.opts)

	var (
		j int // destination column
		p T   // partial product
	)
	for _, e := range m.entries {
		for j = 0; j < other.cols; j++ {
			p = e.value * other.valueOf(e.col, j)
			if !res.tryAccumulate(e.row, j, p) && p != zero {
				res.push(e.row, j, p)
			}
		}
	}

	return res, nil
}
