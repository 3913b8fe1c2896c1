package gaussint

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Integers returns an iterator over all Gaussian integers with both
// components in [-n, n], scanning the real axis in the outer loop and
// the imaginary axis in the inner one. The sequence is finite and
// restartable.
func Integers[T constraints.Signed](n T) iter.Seq[GaussianInt[T]] {
	return func(yield func(GaussianInt[T]) bool) {
		for re := -n; re <= n; re++ {
			for im := -n; im <= n; im++ {
				if !yield(New(re, im)) {
					return
				}
			}
		}
	}
}

// PositiveIntegers is the same as [Integers] but restricted to the
// half plane with non-negative real part.
func PositiveIntegers[T constraints.Signed](n T) iter.Seq[GaussianInt[T]] {
	return func(yield func(GaussianInt[T]) bool) {
		for re := T(0); re <= n; re++ {
			for im := -n; im <= n; im++ {
				if !yield(New(re, im)) {
					return
				}
			}
		}
	}
}

// Primes returns an iterator over all Gaussian primes with both
// components in [-n, n].
func Primes[T constraints.Signed](n T) iter.Seq[GaussianInt[T]] {
	return func(yield func(GaussianInt[T]) bool) {
		for z := range Integers(n) {
			if z.IsPrime() && !yield(z) {
				return
			}
		}
	}
}
