package gaussint_test

import (
	"fmt"

	"deedles.dev/gaussint"
)

func ExampleGaussianInt_String() {
	fmt.Println(gaussint.Gi(3, 4))
	fmt.Println(gaussint.Gi(3, -4))
	// Output:
	// 3+4i
	// 3-4i
}

func ExampleGaussianInt_Mul() {
	z := gaussint.Gi(1, 1)
	w := gaussint.Gi(1, -1)
	fmt.Println(z.Mul(w))
	// Output: 2+0i
}

func ExampleGaussianInt_DivMod() {
	q, r, _ := gaussint.Gi(5, 0).DivMod(gaussint.Gi(1, 2))
	fmt.Println(q, r)
	// Output: 1-2i 0+0i
}

func ExampleGaussianInt_Congruent() {
	a := gaussint.Gi(2, -1)
	b := gaussint.Gi(2, 3)
	n := gaussint.Gi(1, 1)

	ok, _ := a.Congruent(b, n)
	fmt.Println(ok)
	// Output: true
}

func ExampleGcd() {
	fmt.Println(gaussint.Gcd(gaussint.Gi(12, 0), gaussint.Gi(8, 0)))
	// Output: 4+0i
}

func ExamplePrimes() {
	for z := range gaussint.Primes(2) {
		fmt.Println(z)
	}
	// Output:
	// -2-1i
	// -2+1i
	// -1-2i
	// -1-1i
	// -1+1i
	// -1+2i
	// 1-2i
	// 1-1i
	// 1+1i
	// 1+2i
	// 2-1i
	// 2+1i
}
