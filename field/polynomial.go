package field

import (
	"fmt"
	"math/big"
	"strings"
)

// polynomial over a prime field, coefficients stored low-degree-first without trailing zeros. The zero polynomial
// has no coefficients.
type polynomial struct {
	base   *PrimeField
	coeffs []*PrimeElement
}

func newPolynomial(base *PrimeField, coeffs []*PrimeElement) polynomial {
	c := make([]*PrimeElement, len(coeffs))
	copy(c, coeffs)
	return polynomial{base, c}.trim()
}

// monomial returns c·t^k.
func monomial(c *PrimeElement, k int) polynomial {
	coeffs := make([]*PrimeElement, k+1)
	for i := range k {
		coeffs[i] = c.Zero()
	}
	coeffs[k] = c
	return polynomial{c.field, coeffs}.trim()
}

func (p polynomial) trim() polynomial {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
	return p
}

// degree returns the degree of p, and -1 for the zero polynomial.
func (p polynomial) degree() int {
	return len(p.coeffs) - 1
}

func (p polynomial) isZero() bool {
	return len(p.coeffs) == 0
}

func (p polynomial) lead() *PrimeElement {
	return p.coeffs[len(p.coeffs)-1]
}

func (p polynomial) coeff(i int) *PrimeElement {
	if i < len(p.coeffs) {
		return p.coeffs[i]
	}
	return p.base.Zero()
}

func (p polynomial) add(q polynomial) polynomial {
	coeffs := make([]*PrimeElement, max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.coeff(i).Add(q.coeff(i))
	}
	return polynomial{p.base, coeffs}.trim()
}

func (p polynomial) sub(q polynomial) polynomial {
	coeffs := make([]*PrimeElement, max(len(p.coeffs), len(q.coeffs)))
	for i := range coeffs {
		coeffs[i] = p.coeff(i).Sub(q.coeff(i))
	}
	return polynomial{p.base, coeffs}.trim()
}

func (p polynomial) mul(q polynomial) polynomial {
	if p.isZero() || q.isZero() {
		return polynomial{base: p.base}
	}
	coeffs := make([]*PrimeElement, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = p.base.Zero()
	}
	for i, pᵢ := range p.coeffs {
		for j, qⱼ := range q.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(pᵢ.Mul(qⱼ))
		}
	}
	return polynomial{p.base, coeffs}.trim()
}

// divMod returns (q, r) with p = q·d + r and deg(r) < deg(d). Each step normalises by the inverse of the leading
// coefficient of d, so d need not be monic.
func (p polynomial) divMod(d polynomial) (polynomial, polynomial, error) {
	if d.isZero() {
		return polynomial{}, polynomial{}, fmt.Errorf("%w: polynomial division by zero", ErrDivisionByZero)
	}
	leadInv, err := d.lead().Inverse()
	if err != nil {
		return polynomial{}, polynomial{}, err
	}

	q := polynomial{base: p.base}
	r := p
	for !r.isZero() && r.degree() >= d.degree() {
		// t = (lead(r) / lead(d)) · x^k cancels the leading term of r
		t := monomial(r.lead().Mul(leadInv), r.degree()-d.degree())
		q = q.add(t)
		r = r.sub(t.mul(d))
	}
	return q, r, nil
}

// mod returns p reduced modulo d.
func (p polynomial) mod(d polynomial) (polynomial, error) {
	_, r, err := p.divMod(d)
	return r, err
}

// powMod returns p^k mod d for k >= 0.
func (p polynomial) powMod(k *big.Int, d polynomial) (polynomial, error) {
	result := polynomial{p.base, []*PrimeElement{p.base.One()}}
	base, err := p.mod(d)
	if err != nil {
		return polynomial{}, err
	}
	for i := k.BitLen() - 1; i >= 0; i-- {
		if result, err = result.mul(result).mod(d); err != nil {
			return polynomial{}, err
		}
		if k.Bit(i) == 1 {
			if result, err = result.mul(base).mod(d); err != nil {
				return polynomial{}, err
			}
		}
	}
	return result.mod(d)
}

// extendedEuclid returns (g, s) such that s·p ≡ g (mod d), where g is a (non-normalised) greatest common divisor of
// p and d.
func (p polynomial) extendedEuclid(d polynomial) (polynomial, polynomial, error) {
	r0, r1 := d, p
	s0, s1 := polynomial{base: p.base}, polynomial{p.base, []*PrimeElement{p.base.One()}}
	for !r1.isZero() {
		q, r, err := r0.divMod(r1)
		if err != nil {
			return polynomial{}, polynomial{}, err
		}
		r0, r1 = r1, r
		s0, s1 = s1, s0.sub(q.mul(s1))
	}
	return r0, s0, nil
}

func (p polynomial) equal(q polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// padded returns exactly n coefficients, filling the missing high-degree ones with zero.
func (p polynomial) padded(n int) []*PrimeElement {
	coeffs := make([]*PrimeElement, n)
	for i := range coeffs {
		coeffs[i] = p.coeff(i)
	}
	return coeffs
}

// String renders p as "c0 + c1*t + c2*t^2", skipping zero terms.
func (p polynomial) String() string {
	if p.isZero() {
		return "0"
	}
	var terms []string
	for i, c := range p.coeffs {
		if c.IsZero() {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, c.BigInt().String())
		case 1:
			terms = append(terms, c.BigInt().String()+"*t")
		default:
			terms = append(terms, fmt.Sprintf("%s*t^%d", c.BigInt(), i))
		}
	}
	return strings.Join(terms, " + ")
}
