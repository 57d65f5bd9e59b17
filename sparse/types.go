// SPDX-License-Identifier: MIT

// Package sparse: element constraint and the stored-entry type.
package sparse

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint: any type with +, * and == semantics.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry is one exceptional cell of a Matrix.
// The value is the cell's actual value, not an offset from the common value.
type Entry[T Number] struct {
	row, col int // zero-based coordinates inside the owning matrix
	value    T   // cell value
}

// NewEntry builds a detached entry, handy for expectations in callers' tests.
func NewEntry[T Number](row, col int, value T) Entry[T] {
	return Entry[T]{row: row, col: col, value: value}
}

// Row returns the row index.
func (e Entry[T]) Row() int { return e.row }

// Col returns the column index.
func (e Entry[T]) Col() int { return e.col }

// Value returns the stored value.
func (e Entry[T]) Value() T { return e.value }

// String renders the entry in the sparse listing form "row, col, value".
func (e Entry[T]) String() string {
	return fmt.Sprintf(entryFormat, e.row, e.col, e.value)
}

// accumulate folds delta into the value in place.
// Only the owning matrix calls it, and only on result matrices under construction.
func (e *Entry[T]) accumulate(delta T) {
	e.value += delta
}
