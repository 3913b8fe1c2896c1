//go:build go1.24

package gaussint_test

import (
	"testing"

	"deedles.dev/gaussint"
)

func BenchmarkIsPrime(b *testing.B) {
	z := gaussint.New[int64](40, 63)
	for b.Loop() {
		z.IsPrime()
	}
}

func BenchmarkDivMod(b *testing.B) {
	z := gaussint.New[int64](35, -21)
	w := gaussint.New[int64](4, 7)
	for b.Loop() {
		z.DivMod(w)
	}
}

func BenchmarkGcd(b *testing.B) {
	z := gaussint.New[int64](35, -21)
	w := gaussint.New[int64](4, 7)
	for b.Loop() {
		gaussint.Gcd(z, w)
	}
}
