// SPDX-License-Identifier: MIT
// Package sparse_test provides benchmarks for the structural operations,
// using deterministic random fill.
package sparse_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsedata/sparse"
)

// benchSizes are the square sizes to benchmark; density stays low.
var benchSizes = []int{32, 64, 128}

const benchDensity = 0.05

// sinkM defeats dead-code elimination.
var sinkM *sparse.Matrix[int]

func benchPair(b *testing.B, n int, seed int64) (*sparse.Matrix[int], *sparse.Matrix[int]) {
	rng := rand.New(rand.NewSource(seed))
	return mustRows(b, 0, randomRows(rng, n, n, 0, benchDensity)),
		mustRows(b, 0, randomRows(rng, n, n, 0, benchDensity))
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, _ := benchPair(b, n, 1)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Transpose()
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Multiply(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyParallel(b *testing.B) {
	b.ReportAllocs()
	ctx := context.Background()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := benchPair(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.MultiplyParallel(ctx, B, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
