// SPDX-License-Identifier: MIT

// Package sparse offers a compact matrix representation for data that is
// overwhelmingly one repeated "common value".
//
// Only the exceptional cells are stored, as (row, col, value) entries kept in
// insertion order. Everything else is implied by the common value.
//
// The package provides:
//
//   - Matrix[T]: the sparse container with linear-scan lookup (ValueOf),
//     ingestion of dense sources (Ingest, FromDense, FromRows) and the three
//     structural operations Transpose, Add and Multiply.
//   - MultiplyParallel: row-partitioned product that yields exactly the same
//     entries, in the same order, as Multiply.
//   - Dense[T]: row-major reconstruction used for presentation (Materialize).
//   - Listings: WriteSparse ("row, col, value" per line) and WriteDense.
//
// Results of operations are new matrices; operands are never mutated.
//
// Error policy:
//
//	Every failure wraps one sentinel from errors.go. Use errors.Is or KindOf to
//	tell a shape mismatch from a common-value mismatch.
//
// Accepted artifacts:
//
//	Add and Multiply do not compact entries whose accumulated value ends up
//	equal to the result's common value. Add keeps the operands' common value
//	as the result's common value, which is exact only when that value is the
//	additive identity. Multiply requires a common value of zero.
//
// Complexity quicksheet:
//   - ValueOf: O(n) in stored entries; Transpose: O(n); Add: O(n_a + n_b·(n_a+n_b));
//     Multiply: O(n_a · cols_b · (n_b + n_result)); Materialize: O(r·c·n).
package sparse
