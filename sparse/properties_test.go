// SPDX-License-Identifier: MIT
// Package sparse_test: randomized property checks against a dense oracle (gonum/mat).
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsedata/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// propertyRuns is the number of random instances per property.
const propertyRuns = 40

// toGonum converts an int grid to a *mat.Dense. r and c must be ≥ 1.
func toGonum(rows [][]int) *mat.Dense {
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(r, c, data)
}

// requireMatches asserts every cell of m equals the oracle.
func requireMatches(t *testing.T, want mat.Matrix, m *sparse.Matrix[int]) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, m.Rows())
	require.Equal(t, c, m.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			got, err := m.ValueOf(i, j)
			require.NoError(t, err)
			require.Equalf(t, int(want.At(i, j)), got, "cell (%d,%d)", i, j)
		}
	}
}

func TestPropertyTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for run := 0; run < propertyRuns; run++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		cv := rng.Intn(5) - 2
		rows := randomRows(rng, r, c, cv, 0.3)
		m := mustRows(t, cv, rows)

		t.Run(fmt.Sprintf("run=%d", run), func(t *testing.T) {
			requireMatches(t, toGonum(rows).T(), m.Transpose())
		})
	}
}

func TestPropertyAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(4242))
	for run := 0; run < propertyRuns; run++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		ra := randomRows(rng, r, c, 0, 0.35)
		rb := randomRows(rng, r, c, 0, 0.35)
		a, b := mustRows(t, 0, ra), mustRows(t, 0, rb)

		t.Run(fmt.Sprintf("run=%d", run), func(t *testing.T) {
			sum, err := a.Add(b)
			require.NoError(t, err)
			require.LessOrEqual(t, sum.Len(), a.Len()+b.Len())

			var want mat.Dense
			want.Add(toGonum(ra), toGonum(rb))
			requireMatches(t, &want, sum)
		})
	}
}

func TestPropertyMultiply(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < propertyRuns; run++ {
		r, k, c := 1+rng.Intn(6), 1+rng.Intn(6), 1+rng.Intn(6)
		ra := randomRows(rng, r, k, 0, 0.3)
		rb := randomRows(rng, k, c, 0, 0.3)
		a, b := mustRows(t, 0, ra), mustRows(t, 0, rb)

		t.Run(fmt.Sprintf("run=%d", run), func(t *testing.T) {
			p, err := a.Multiply(b)
			require.NoError(t, err)

			var want mat.Dense
			want.Mul(toGonum(ra), toGonum(rb))
			requireMatches(t, &want, p)
		})
	}
}
