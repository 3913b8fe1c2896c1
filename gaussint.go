// Package gaussint implements arithmetic on Gaussian integers, complex
// numbers whose real and imaginary parts are both integers.
//
// The Gaussian integers form the ring ℤ[i]. It is a Euclidean domain,
// so alongside the usual ring operations the package provides Euclidean
// division with remainder, a GCD, and a Gaussian primality test.
//
// All values are immutable: every operation returns a new value and
// never modifies its operands, so values are safe to share between
// goroutines without coordination.
//
// Arithmetic inherits the overflow behavior of the instantiated element
// type. The package does not detect or prevent overflow; pick an
// element type wide enough for the values involved.
package gaussint

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// GaussianInt is a Gaussian integer with components of type T. It
// represents the value Re + Im·i.
//
// The zero value is the number zero. Values are comparable with ==,
// which is exact, component-wise equality.
type GaussianInt[T constraints.Signed] struct {
	Re, Im T
}

// New returns the Gaussian integer re + im·i.
func New[T constraints.Signed](re, im T) GaussianInt[T] {
	return GaussianInt[T]{Re: re, Im: im}
}

// Gi is shorthand for [New].
func Gi[T constraints.Signed](re, im T) GaussianInt[T] {
	return New(re, im)
}

// FromReal returns the Gaussian integer n + 0i.
func FromReal[T constraints.Signed](n T) GaussianInt[T] {
	return GaussianInt[T]{Re: n}
}

// Zero returns the additive identity 0 + 0i.
func Zero[T constraints.Signed]() GaussianInt[T] {
	return GaussianInt[T]{}
}

// One returns the multiplicative identity 1 + 0i.
func One[T constraints.Signed]() GaussianInt[T] {
	return GaussianInt[T]{Re: 1}
}

// IsZero reports whether z is zero.
func (z GaussianInt[T]) IsZero() bool {
	return z == GaussianInt[T]{}
}

// Pair returns z's components as a pair of integers.
func (z GaussianInt[T]) Pair() (re, im T) {
	return z.Re, z.Im
}

// Real returns z's real component, discarding the imaginary part. It
// is a narrowing conversion: for non-rational values it simply
// truncates to the real axis rather than failing.
func (z GaussianInt[T]) Real() T {
	return z.Re
}

// String renders z as "re+imi", with the sign of a negative imaginary
// part embedded instead of the plus, e.g. "3+4i" and "3-4i".
func (z GaussianInt[T]) String() string {
	if z.Im < 0 {
		return fmt.Sprintf("%d%di", z.Re, z.Im)
	}
	return fmt.Sprintf("%d+%di", z.Re, z.Im)
}
