// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sparsedata/sparse"
	"github.com/spf13/cobra"
)

var (
	errUnexpectedEOF = errors.New("input: unexpected end of input")
	errNotInteger    = errors.New("input: not an integer")
)

// matrixReader reads matrices in the "rows cols common values..." text form.
// Tokens are counted from 1 across the whole stream so errors can name them.
type matrixReader struct {
	sc   *bufio.Scanner
	read int
	opts []sparse.Option
}

func newMatrixReader(r io.Reader, opts ...sparse.Option) *matrixReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &matrixReader{sc: sc, opts: opts}
}

func (r *matrixReader) next() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("token %d: %w", r.read+1, err)
		}

		return 0, fmt.Errorf("token %d: %w", r.read+1, errUnexpectedEOF)
	}
	r.read++

	v, err := strconv.Atoi(r.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("token %d %q: %w", r.read, r.sc.Text(), errNotInteger)
	}

	return v, nil
}

// readMatrix consumes one matrix: header first, then its cells row by row.
func (r *matrixReader) readMatrix() (*sparse.Matrix[int], error) {
	var header [3]int
	for i := range header {
		v, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		header[i] = v
	}

	m, err := sparse.New(header[0], header[1], header[2], r.opts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < header[0]; i++ {
		for j := 0; j < header[1]; j++ {
			v, err := r.next()
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, err)
			}
			if err = m.Ingest(v, i, j); err != nil {
				return nil, err
			}
		}
	}
	logger().Debug("matrix read", "rows", header[0], "cols", header[1], "common", header[2], "entries", m.Len())

	return m, nil
}

// readMatrices reads n matrices from the configured input.
func readMatrices(cmd *cobra.Command, path string, n int) ([]*sparse.Matrix[int], error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	rd := newMatrixReader(in, sparse.WithLogger(logger()))
	out := make([]*sparse.Matrix[int], 0, n)
	for i := 1; i <= n; i++ {
		m, err := rd.readMatrix()
		if err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == defaultInput {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}
