// SPDX-License-Identifier: MIT

// Package sparse - Dense reconstruction (row-major) & safe accessors.
//
// Purpose:
//   - Hold the full value grid implied by a sparse Matrix, for presentation only.
//   - Guarantee safety at the public surface: At/Row return errors instead of panicking.
//
// AI-Hints:
//   - Never feed a Dense back into the structural operations; they work on entries.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At: O(1); Materialize: O(r*c*n).
package sparse

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxRow         = "Row"
	opNewDense     = "NewDense"
	_fmtRowOpen    = "["
	_fmtRowClose   = "]\n"
	_fmtSep        = ", "
	_fmtDenseValue = "%v"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major grid.
//   - r,c hold dimensions (rows, cols), zero allowed.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T Number] struct {
	r, c int
	data []T
}

var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates an r×c zero grid.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNewDense, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense[T]) Cols() int { return d.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (d *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= d.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*d.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (d *Dense[T]) At(row, col int) (T, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return d.data[off], nil
}

// Row returns a copy of row i.
func (d *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= d.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, d.c)
	copy(out, d.data[i*d.c:(i+1)*d.c])

	return out, nil
}

// ToRows returns the grid as a freshly allocated [][]T.
func (d *Dense[T]) ToRows() [][]T {
	out := make([][]T, d.r)
	for i := range out {
		out[i] = make([]T, d.c)
		copy(out[i], d.data[i*d.c:(i+1)*d.c])
	}

	return out
}

// Do visits each cell in row-major order; f returning false stops early.
func (d *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if !f(i, j, d.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as "[a, b]\n" lines, for diagnostics.
func (d *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < d.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * d.c
		for j = 0; j < d.c; j++ {
			fmt.Fprintf(&b, _fmtDenseValue, d.data[base+j])
			if j+1 < d.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Materialize reconstructs the dense grid: cell (r, c) = ValueOf(r, c).
//
// Implementation:
//   - One linear-scan lookup per cell, so duplicate coordinates (which valid
//     matrices never hold) resolve exactly as ValueOf does.
//
// Complexity:
//   - Time O(r*c*n), Space O(r*c).
//
// Notes:
//   - Presentation only; the structural operations never call it.
func (m *Matrix[T]) Materialize() *Dense[T] {
	d := &Dense[T]{r: m.rows, c: m.cols, data: make([]T, m.rows*m.cols)}
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			d.data[base+j] = m.valueOf(i, j)
		}
	}

	return d
}
