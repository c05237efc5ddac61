package poly_test

import (
	"fmt"
	"testing"

	"github.com/sp301415/sparse-poly/csprng"
	"github.com/sp301415/sparse-poly/poly"
)

func BenchmarkMul(b *testing.B) {
	s := csprng.NewUniformSamplerWithSeed([]byte("bench-mul"))

	for _, termCount := range []int{16, 128, 1024, 4096} {
		p := randPoly(s, termCount, 1<<20, 1<<20)
		q := randPoly(s, termCount, 1<<20, 1<<20)

		b.Run(fmt.Sprintf("terms=%d", termCount), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = p.Mul(q)
			}
		})
	}
}

func BenchmarkRem(b *testing.B) {
	s := csprng.NewUniformSamplerWithSeed([]byte("bench-rem"))

	p := randPoly(s, 256, 2048, 1<<20)
	d := poly.From(poly.Term{Exp: 16, Coef: 1}, poly.Term{Exp: 0, Coef: -1})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Rem(d)
	}
}

func BenchmarkAdd(b *testing.B) {
	s := csprng.NewUniformSamplerWithSeed([]byte("bench-add"))

	p := randPoly(s, 1024, 1<<20, 1<<20)
	q := randPoly(s, 1024, 1<<20, 1<<20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Add(q)
	}
}
