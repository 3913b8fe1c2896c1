package gaussint

import (
	"math/cmplx"

	"golang.org/x/exp/constraints"
)

// Conj returns the complex conjugate of z.
func (z GaussianInt[T]) Conj() GaussianInt[T] {
	return GaussianInt[T]{Re: z.Re, Im: -z.Im}
}

// Norm returns z * conj(z) as a Gaussian integer. Its imaginary part
// is always zero and its real part is Re² + Im², which is never
// negative.
func (z GaussianInt[T]) Norm() GaussianInt[T] {
	return z.Mul(z.Conj())
}

// NormValue returns the norm of z as a plain integer.
func (z GaussianInt[T]) NormValue() T {
	return z.Re*z.Re + z.Im*z.Im
}

// IsRational reports whether z is a rational integer, i.e. whether its
// imaginary part is zero.
func (z GaussianInt[T]) IsRational() bool {
	return z.Im == 0
}

// Divides reports whether z is a divisor of w, i.e. whether z is
// nonzero and w mod z is zero. Zero divides nothing, so a zero
// receiver reports false.
func (z GaussianInt[T]) Divides(w GaussianInt[T]) bool {
	if z.IsZero() {
		return false
	}
	_, r, _ := w.DivMod(z) // divisor is nonzero
	return r.IsZero()
}

// Congruent reports whether z and w are congruent modulo modulus, i.e.
// whether their difference is a multiple of modulus. It returns
// [ErrDivisionByZero] if modulus is zero.
func (z GaussianInt[T]) Congruent(w, modulus GaussianInt[T]) (bool, error) {
	r, err := z.Sub(w).Mod(modulus)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}

// IsEven reports whether z is even, i.e. congruent to 0 modulo 1+i.
func (z GaussianInt[T]) IsEven() bool {
	even, _ := z.Congruent(Zero[T](), New[T](1, 1)) // modulus is nonzero
	return even
}

// IsOdd reports whether z is odd, i.e. congruent to 1 modulo 1+i.
func (z GaussianInt[T]) IsOdd() bool {
	odd, _ := z.Congruent(One[T](), New[T](1, 1)) // modulus is nonzero
	return odd
}

// Units returns the four units of ℤ[i]: 1, -1, i, and -i. They are
// exactly the Gaussian integers with norm 1.
func Units[T constraints.Signed]() [4]GaussianInt[T] {
	return [4]GaussianInt[T]{
		{Re: 1}, {Re: -1}, {Im: 1}, {Im: -1},
	}
}

// IsUnit reports whether z is a unit.
func (z GaussianInt[T]) IsUnit() bool {
	return z.NormValue() == 1
}

// IsAssociated reports whether z and w are associates, i.e. whether
// z*u == w for some unit u. Associates generate the same ideal.
func (z GaussianInt[T]) IsAssociated(w GaussianInt[T]) bool {
	for _, u := range Units[T]() {
		if z.Mul(u) == w {
			return true
		}
	}
	return false
}

// Polar returns the polar form (r, θ) of z, such that
// z = r·e^(iθ). The conversion goes through float64 and loses
// precision for components beyond 2⁵³ in magnitude.
func (z GaussianInt[T]) Polar() (r, theta float64) {
	return cmplx.Polar(complex(float64(z.Re), float64(z.Im)))
}
