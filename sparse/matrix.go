// SPDX-License-Identifier: MIT

// Package sparse - Matrix storage, lookup & ingestion.
//
// Purpose:
//   - Keep exceptional cells as an insertion-ordered slice of entries.
//   - Resolve any cell by a linear scan: first matching entry, else the common value.
//   - Fold values into existing cells (tryAccumulate) for Add and Multiply.
//
// AI-Hints:
//   - Lookup cost grows with the number of stored entries, not with the shape.
//     This is the space/simplicity trade-off of the representation; it is intended.
//   - Build from a dense source with FromDense/FromRows, or cell by cell with Ingest.
package sparse

import (
	"fmt"
	"math"
	"slices"
)

// Operation tags used in error wrappers.
const (
	opNew       = "New"
	opFromDense = "FromDense"
	opFromRows  = "FromRows"
	opIngest    = "Ingest"
	opValueOf   = "ValueOf"
)

// Matrix is a sparse matrix of T whose unlisted cells equal a common value.
//   - rows, cols are the dimensions of the represented dense matrix (>= 0).
//   - entries hold the exceptional cells in insertion order, never sorted.
//   - A Matrix exclusively owns its entries; accessors hand out copies.
type Matrix[T Number] struct {
	rows, cols int        // represented shape
	common     T          // value of every unlisted cell
	entries    []Entry[T] // exceptional cells, insertion order
	opts       Options    // logger/workers, inherited by results
}

// New returns an empty rows×cols matrix whose every cell is common.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0. Zero is legal.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T Number](rows, cols int, common T, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newMatrix(rows, cols, common, gatherOptions(opts...)), nil
}

// newMatrix is the unchecked constructor used by operations.
func newMatrix[T Number](rows, cols int, common T, opts Options) *Matrix[T] {
	return &Matrix[T]{rows: rows, cols: cols, common: common, opts: opts}
}

// FromDense ingests a row-major dense buffer of length rows*cols.
// A cell becomes an entry iff its value differs from common.
//
// Implementation:
//   - Stage 1: validate the shape and len(values) == rows*cols; a shape whose
//     cell count overflows int is rejected before the product is formed.
//   - Stage 2: scan i→j once, appending the non-common cells.
//
// Errors:
//   - ErrInvalidDimensions on negative shape or wrong value count.
//
// Complexity:
//   - Time O(r*c), Space O(k) for k non-common cells.
func FromDense[T Number](rows, cols int, common T, values []T, opts ...Option) (*Matrix[T], error) {
	m, err := New(rows, cols, common, opts...)
	if err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	if (cols != 0 && rows > math.MaxInt/cols) || len(values) != rows*cols {
		return nil, sparseErrorf(opFromDense,
			fmt.Errorf("got %d values for %dx%d: %w", len(values), rows, cols, ErrInvalidDimensions))
	}

	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			m.ingest(values[base+j], i, j)
		}
	}

	return m, nil
}

// FromRows ingests a rectangular [][]T. The column count is len(rows[0]);
// an empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions when the rows are ragged.
func FromRows[T Number](rows [][]T, common T, opts ...Option) (*Matrix[T], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := newMatrix(len(rows), cols, common, gatherOptions(opts...))
	for i, row := range rows {
		if len(row) != cols {
			return nil, sparseErrorf(opFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrInvalidDimensions))
		}
		for j, v := range row {
			m.ingest(v, i, j)
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols().
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// CommonValue returns the value of every unlisted cell.
func (m *Matrix[T]) CommonValue() T { return m.common }

// Len returns the number of stored entries.
func (m *Matrix[T]) Len() int { return len(m.entries) }

// Entries returns a copy of the stored entries in insertion order.
func (m *Matrix[T]) Entries() []Entry[T] { return slices.Clone(m.entries) }

// Do visits entries in insertion order; f returning false stops the walk.
func (m *Matrix[T]) Do(f func(e Entry[T]) bool) {
	for _, e := range m.entries {
		if !f(e) {
			return
		}
	}
}

// ValueOf returns the value at (row, col).
//
// Implementation:
//   - Stage 1: bounds-check the coordinates.
//   - Stage 2: scan entries in order; the first match wins, else the common value.
//
// Errors:
//   - ErrOutOfRange for coordinates outside the shape.
//
// Complexity:
//   - Time O(n) in stored entries, Space O(1).
func (m *Matrix[T]) ValueOf(row, col int) (T, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		var zero T
		return zero, sparseErrorf(opValueOf, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	return m.valueOf(row, col), nil
}

// valueOf is the unchecked scan shared by the operations.
func (m *Matrix[T]) valueOf(row, col int) T {
	for i := range m.entries {
		if m.entries[i].row == row && m.entries[i].col == col {
			return m.entries[i].value
		}
	}

	return m.common
}

// Ingest offers one dense cell; it is stored iff value != CommonValue().
// Callers feeding a whole dense source call it once per cell in row-major order.
//
// Errors:
//   - ErrOutOfRange for coordinates outside the shape.
func (m *Matrix[T]) Ingest(value T, row, col int) error {
	if err := ValidateIndex(m, row, col); err != nil {
		return sparseErrorf(opIngest, fmt.Errorf("(%d,%d): %w", row, col, err))
	}
	m.ingest(value, row, col)

	return nil
}

// ingest is the unchecked common-value filter.
func (m *Matrix[T]) ingest(value T, row, col int) {
	if value != m.common {
		m.push(row, col, value)
	}
}

// push appends an entry without any filtering.
func (m *Matrix[T]) push(row, col int, value T) {
	m.entries = append(m.entries, Entry[T]{row: row, col: col, value: value})
}

// tryAccumulate adds delta to the entry at (row, col) and reports whether one
// existed. On false nothing changed and the caller decides whether to append.
func (m *Matrix[T]) tryAccumulate(row, col int, delta T) bool {
	for i := range m.entries {
		if m.entries[i].row == row && m.entries[i].col == col {
			m.entries[i].accumulate(delta)
			return true
		}
	}

	return false
}
