package gaussint

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned by [GaussianInt.DivMod] and its
// derivatives when the divisor or modulus is zero.
var ErrDivisionByZero = errors.New("gaussint: division by zero")

// Add returns z + w.
func (z GaussianInt[T]) Add(w GaussianInt[T]) GaussianInt[T] {
	return GaussianInt[T]{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z GaussianInt[T]) Sub(w GaussianInt[T]) GaussianInt[T] {
	return GaussianInt[T]{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns z * w.
func (z GaussianInt[T]) Mul(w GaussianInt[T]) GaussianInt[T] {
	return GaussianInt[T]{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Neg returns -z.
func (z GaussianInt[T]) Neg() GaussianInt[T] {
	return GaussianInt[T]{Re: -z.Re, Im: -z.Im}
}

// DivMod returns the Euclidean quotient and remainder of z divided by
// w, such that z == q*w + r and norm(r) < norm(w). It returns
// [ErrDivisionByZero] if w is zero.
//
// ℤ[i] is not ordered, so the quotient is obtained by computing the
// exact complex ratio z*conj(w)/norm(w) and rounding each component to
// the nearest integer, ties away from zero. Other roundings would
// yield different, equally valid (q, r) pairs; this one is applied
// uniformly to both components so results are deterministic.
func (z GaussianInt[T]) DivMod(w GaussianInt[T]) (q, r GaussianInt[T], err error) {
	if w.IsZero() {
		return GaussianInt[T]{}, GaussianInt[T]{}, ErrDivisionByZero
	}

	n := w.NormValue()
	q = GaussianInt[T]{
		Re: roundDiv(z.Re*w.Re+z.Im*w.Im, n),
		Im: roundDiv(z.Im*w.Re-z.Re*w.Im, n),
	}
	r = z.Sub(q.Mul(w))
	return q, r, nil
}

// Div returns the Euclidean quotient of z divided by w. See
// [GaussianInt.DivMod].
func (z GaussianInt[T]) Div(w GaussianInt[T]) (GaussianInt[T], error) {
	q, _, err := z.DivMod(w)
	return q, err
}

// Mod returns the Euclidean remainder of z divided by w. See
// [GaussianInt.DivMod].
func (z GaussianInt[T]) Mod(w GaussianInt[T]) (GaussianInt[T], error) {
	_, r, err := z.DivMod(w)
	return r, err
}

// roundDiv divides p by q, rounding to the nearest integer with ties
// away from zero. q must be positive.
func roundDiv[T constraints.Signed](p, q T) T {
	quo, rem := p/q, p%q
	if rem < 0 {
		rem = -rem
	}
	if 2*rem >= q {
		if p < 0 {
			return quo - 1
		}
		return quo + 1
	}
	return quo
}
