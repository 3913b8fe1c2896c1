package gaussint

import "github.com/otiai10/primes"

// IsPrime reports whether z is a Gaussian prime. A Gaussian integer
// a + bi is prime iff exactly one of the following holds:
//
//  1. one of a, b is zero and the absolute value of the other is a
//     rational prime congruent to 3 modulo 4, or
//  2. both a and b are nonzero and a² + b² is a rational prime.
//
// In the second case sum-of-two-squares theory guarantees the prime is
// never congruent to 3 modulo 4. Zero and the four units are not
// prime.
//
// The component values, and in the off-axis case the norm, must fit in
// an int64.
func (z GaussianInt[T]) IsPrime() bool {
	a, b := int64(z.Re), int64(z.Im)

	switch {
	case a == 0 && b == 0:
		return false
	case a == 0:
		return isRationalPrime(abs(b)) && abs(b)%4 == 3
	case b == 0:
		return isRationalPrime(abs(a)) && abs(a)%4 == 3
	default:
		n := a*a + b*b
		return isRationalPrime(n) && n%4 != 3
	}
}

// isRationalPrime reports whether n is a prime number in ℤ. A number
// is prime iff it is its own sole prime factor.
func isRationalPrime(n int64) bool {
	if n < 2 {
		return false
	}
	l := primes.Factorize(n).List()
	return len(l) == 1 && l[0] == n
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
