package gaussint

import "golang.org/x/exp/constraints"

// Gcd returns a greatest common divisor of a and b, computed with the
// Euclidean algorithm. Termination is guaranteed because the norm of
// the remainder strictly decreases at each step.
//
// A GCD in ℤ[i] is only unique up to multiplication by a unit, so the
// result is normalized to the associate with a non-negative real part, or,
// on the imaginary axis, a non-negative imaginary part. Gcd(0, b)
// returns the normalized b, and Gcd(a, 0) the normalized a.
func Gcd[T constraints.Signed](a, b GaussianInt[T]) GaussianInt[T] {
	for !b.IsZero() {
		_, r, _ := a.DivMod(b) // divisor is nonzero
		a, b = b, r
	}
	return normalizeGcd(a)
}

// normalizeGcd picks the canonical associate: real part non-negative,
// and on the imaginary axis, imaginary part non-negative.
func normalizeGcd[T constraints.Signed](g GaussianInt[T]) GaussianInt[T] {
	if g.Re < 0 || (g.Re == 0 && g.Im < 0) {
		return g.Neg()
	}
	return g
}
