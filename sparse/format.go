// SPDX-License-Identifier: MIT
// Package sparse: presentation listings.
//
// Two formats leave the package:
//   - sparse listing: one "row, col, value" line per stored entry, insertion order;
//   - dense listing: Cols values per row, tab-separated, newline after each row.
//
// The serialised sparse form is the header (rows, cols, common value) followed
// by the entry list; String() renders the header.

package sparse

import (
	"bufio"
	"fmt"
	"io"
)

const (
	entryFormat     = "%d, %d, %v"
	headerFormat    = "%dx%d common=%v entries=%d"
	denseSeparator  = '\t'
	denseLineEnding = '\n'
)

// String summarises the matrix header, e.g. "3x2 common=0 entries=2".
func (m *Matrix[T]) String() string {
	return fmt.Sprintf(headerFormat, m.rows, m.cols, m.common, len(m.entries))
}

// WriteSparse writes one "row, col, value" line per entry in insertion order.
func (m *Matrix[T]) WriteSparse(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range m.entries {
		if _, err := fmt.Fprintf(bw, entryFormat+"\n", e.row, e.col, e.value); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteDense writes the reconstructed grid, tab-separated, one line per row.
// A matrix with rows but no columns still gets one empty line per row.
func (m *Matrix[T]) WriteDense(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.Materialize().ToRows() {
		for j, v := range row {
			if j > 0 {
				if err := bw.WriteByte(denseSeparator); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprint(bw, v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte(denseLineEnding); err != nil {
			return err
		}
	}

	return bw.Flush()
}
