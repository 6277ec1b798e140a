// SPDX-License-Identifier: MIT

package dynamic_test

import (
	"testing"

	"github.com/katalvlaran/tdynamic/dynamic"
)

// Benchmark sizes.
const (
	benchLen = 4096
	benchDim = 128
)

func benchSeq(b *testing.B, n int) *dynamic.Sequence[float64] {
	b.Helper()
	s, err := dynamic.New[float64](n)
	if err != nil {
		b.Fatalf("New(%d): %v", n, err)
	}
	s.Apply(func(i int, _ float64) float64 { return float64(i%7) + 0.5 })

	return s
}

func benchSquare(b *testing.B, n int) *dynamic.SquareMatrix[float64] {
	b.Helper()
	m, err := dynamic.NewSquare[float64](n)
	if err != nil {
		b.Fatalf("NewSquare(%d): %v", n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, float64((i+j)%5))
		}
	}

	return m
}

func BenchmarkSequence_Dot(b *testing.B) {
	x, y := benchSeq(b, benchLen), benchSeq(b, benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Dot(y)
	}
}

func BenchmarkSequence_Add(b *testing.B) {
	x, y := benchSeq(b, benchLen), benchSeq(b, benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = x.Add(y)
	}
}

func BenchmarkSquare_MulVec(b *testing.B) {
	m, v := benchSquare(b, benchDim), benchSeq(b, benchDim)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.MulVec(v)
	}
}

func BenchmarkSquare_Mul(b *testing.B) {
	m := benchSquare(b, benchDim)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Mul(m)
	}
}

func BenchmarkSquare_Clone(b *testing.B) {
	m := benchSquare(b, benchDim)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Clone()
	}
}
