// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures for the sparse kernels.
//   - Dense reference computations for property checks.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sparsedata/sparse"
	"github.com/stretchr/testify/require"
)

// entryOpt lets go-cmp look inside sparse.Entry.
var entryOpt = cmp.AllowUnexported(sparse.Entry[int]{})

// mustRows builds a matrix from rows or fails the test.
func mustRows(t testing.TB, common int, rows [][]int) *sparse.Matrix[int] {
	t.Helper()
	m, err := sparse.FromRows(rows, common)
	require.NoError(t, err)

	return m
}

// mustEntries builds an r×c matrix holding exactly the given entries, in order.
func mustEntries(t testing.TB, r, c, common int, entries ...sparse.Entry[int]) *sparse.Matrix[int] {
	t.Helper()
	m, err := sparse.New(r, c, common)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, m.Ingest(e.Value(), e.Row(), e.Col()))
	}
	require.Equal(t, len(entries), m.Len(), "fixture entries must differ from the common value")

	return m
}

// e is a short entry constructor for table literals.
func e(r, c, v int) sparse.Entry[int] { return sparse.NewEntry(r, c, v) }

// randomRows fills an r×c grid where roughly density of the cells differ
// from common. Values are small so products stay exact in float64.
func randomRows(rng *rand.Rand, r, c, common int, density float64) [][]int {
	out := make([][]int, r)
	for i := range out {
		out[i] = make([]int, c)
		for j := range out[i] {
			out[i][j] = common
			if rng.Float64() < density {
				out[i][j] = rng.Intn(19) - 9
			}
		}
	}

	return out
}

// entrySet turns entries into a set keyed by (row, col, value).
func entrySet(entries []sparse.Entry[int]) map[[3]int]int {
	set := make(map[[3]int]int, len(entries))
	for _, x := range entries {
		set[[3]int{x.Row(), x.Col(), x.Value()}]++
	}

	return set
}
