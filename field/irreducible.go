package field

import (
	"errors"
	"fmt"
	"io"
)

const maxIrreducibleTries = 1 << 16

// IsIrreducible reports whether the monic polynomial g (low-degree-first) is irreducible over base.
//
// A polynomial of degree n is reducible iff it has an irreducible factor of degree i <= n/2, and every such factor
// divides t^(p^i) - t. Hence g is irreducible iff gcd(g, t^(p^i) - t) is constant for all 1 <= i <= n/2.
func IsIrreducible(base *PrimeField, g []*PrimeElement) (bool, error) {
	if _, err := NewExtensionField(base, g); err != nil {
		return false, err
	}
	gp := newPolynomial(base, g)
	t := monomial(base.One(), 1)

	h := t
	for i := 1; i <= gp.degree()/2; i++ {
		var err error
		if h, err = h.powMod(base.Modulus(), gp); err != nil {
			return false, err
		}
		gcd, _, err := gp.extendedEuclid(h.sub(t))
		if err != nil {
			return false, err
		}
		if gcd.degree() > 0 {
			return false, nil
		}
	}
	return true, nil
}

// RandomIrreducible samples monic polynomials of degree n over base from rand until an irreducible one is found,
// and returns its n+1 coefficients, low-degree-first.
func RandomIrreducible(base *PrimeField, n int, rand io.Reader) ([]*PrimeElement, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: degree %d", ErrInvalidGenerator, n)
	}
	for range maxIrreducibleTries {
		g := make([]*PrimeElement, n+1)
		for i := range n {
			c, err := base.Random(rand)
			if err != nil {
				return nil, err
			}
			g[i] = c
		}
		g[n] = base.One()

		ok, err := IsIrreducible(base, g)
		if err != nil {
			return nil, err
		}
		if ok {
			return g, nil
		}
	}
	return nil, errors.New("field: failed to find an irreducible polynomial")
}
