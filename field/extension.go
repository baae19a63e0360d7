package field

import (
	"fmt"
	"io"
	"math/big"
)

// ExtensionField is GF(p^n) = GF(p)[t]/(g) for a monic irreducible generator g of degree n.
//
// Irreducibility of g is a precondition. NewExtensionField does not test it (see IsIrreducible); with a reducible g
// the structure is a ring, and Inverse fails with ErrDivisionByZero for the elements sharing a factor with g.
type ExtensionField struct {
	base      *PrimeField
	generator polynomial
}

// ExtensionElement is a polynomial of degree < n over the base field, kept as exactly n coefficients,
// low-degree-first: [c0, c1, ..., c(n-1)] represents c0 + c1·t + ... + c(n-1)·t^(n-1).
type ExtensionElement struct {
	coeffs []*PrimeElement
	field  *ExtensionField
}

// NewExtensionField returns base[t]/(g), with the generator g given low-degree-first. g must be monic (leading
// coefficient 1) and have degree >= 1, otherwise ErrInvalidGenerator is returned.
func NewExtensionField(base *PrimeField, generator []*PrimeElement) (*ExtensionField, error) {
	for _, c := range generator {
		if !c.Field().Equal(base) {
			return nil, incompatible("generator coefficient %v is not in %v", c, base)
		}
	}
	g := newPolynomial(base, generator)
	if g.degree() < 1 || !g.lead().Equal(base.One()) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGenerator, g)
	}
	return &ExtensionField{base, g}, nil
}

// RandomExtensionField returns GF(p^n) for a monic irreducible generator of degree n sampled from rand.
func RandomExtensionField(base *PrimeField, n int, rand io.Reader) (*ExtensionField, error) {
	g, err := RandomIrreducible(base, n, rand)
	if err != nil {
		return nil, err
	}
	return NewExtensionField(base, g)
}

// Base returns the prime field the extension is built on.
func (f *ExtensionField) Base() *PrimeField {
	return f.base
}

// Degree returns n, the degree of the generator.
func (f *ExtensionField) Degree() int {
	return f.generator.degree()
}

// Generator returns a copy of the generator's coefficients, low-degree-first (n+1 values).
func (f *ExtensionField) Generator() []*PrimeElement {
	return f.generator.padded(f.Degree() + 1)
}

// Order returns p^n, the number of elements of the field.
func (f *ExtensionField) Order() *big.Int {
	return new(big.Int).Exp(f.base.Modulus(), big.NewInt(int64(f.Degree())), nil)
}

// Equal reports whether f and g have the same base field and the same generator.
func (f *ExtensionField) Equal(g *ExtensionField) bool {
	return f == g || (f.base.Equal(g.base) && f.generator.equal(g.generator))
}

func (f *ExtensionField) element(p polynomial) *ExtensionElement {
	return &ExtensionElement{p.padded(f.Degree()), f}
}

func (f *ExtensionField) reduce(p polynomial) *ExtensionElement {
	r, err := p.mod(f.generator)
	if err != nil {
		// unreachable, the generator is monic and thus non-zero
		panic(err)
	}
	return f.element(r)
}

// FromCoefficients returns the element represented by the polynomial with the given coefficients (low-degree-first).
// Polynomials of degree >= n are reduced modulo the generator.
func (f *ExtensionField) FromCoefficients(coeffs []*PrimeElement) (*ExtensionElement, error) {
	for _, c := range coeffs {
		if !c.Field().Equal(f.base) {
			return nil, incompatible("coefficient %v is not in %v", c, f.base)
		}
	}
	return f.reduce(newPolynomial(f.base, coeffs)), nil
}

// FromInt64 is FromCoefficients for integer coefficients, each reduced modulo p.
func (f *ExtensionField) FromInt64(coeffs ...int64) *ExtensionElement {
	return f.reduce(newPolynomial(f.base, f.base.Elements(coeffs...)))
}

// Embed maps x of the base field to the constant polynomial x.
func (f *ExtensionField) Embed(x *PrimeElement) (*ExtensionElement, error) {
	return f.FromCoefficients([]*PrimeElement{x})
}

func (f *ExtensionField) Zero() *ExtensionElement {
	return f.element(polynomial{base: f.base})
}

func (f *ExtensionField) One() *ExtensionElement {
	return f.element(polynomial{f.base, []*PrimeElement{f.base.One()}})
}

// Random returns an element whose coefficients are sampled independently with PrimeField.Random.
func (f *ExtensionField) Random(rand io.Reader) (*ExtensionElement, error) {
	coeffs := make([]*PrimeElement, f.Degree())
	for i := range coeffs {
		c, err := f.base.Random(rand)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &ExtensionElement{coeffs, f}, nil
}

// String returns "GF(p^n)".
func (f *ExtensionField) String() string {
	return fmt.Sprintf("GF(%s^%d)", f.base.modulus, f.Degree())
}

// Field returns the field x belongs to.
func (x *ExtensionElement) Field() *ExtensionField {
	return x.field
}

// Coefficients returns a copy of the n coefficients of x, low-degree-first.
func (x *ExtensionElement) Coefficients() []*PrimeElement {
	c := make([]*PrimeElement, len(x.coeffs))
	copy(c, x.coeffs)
	return c
}

// Degree returns the degree of x as a polynomial, -1 for zero.
func (x *ExtensionElement) Degree() int {
	return x.polynomial().degree()
}

func (x *ExtensionElement) polynomial() polynomial {
	return newPolynomial(x.field.base, x.coeffs)
}

func (x *ExtensionElement) requireCompatible(y *ExtensionElement) {
	if !x.Compatible(y) {
		panic(incompatible("%v and %v", x.field, y.field))
	}
}

func (x *ExtensionElement) Compatible(y *ExtensionElement) bool {
	return x.field.Equal(y.field)
}

// Add returns x + y, computed coefficient-wise. It panics if x and y belong to different fields.
func (x *ExtensionElement) Add(y *ExtensionElement) *ExtensionElement {
	x.requireCompatible(y)
	coeffs := make([]*PrimeElement, len(x.coeffs))
	for i := range coeffs {
		coeffs[i] = x.coeffs[i].Add(y.coeffs[i])
	}
	return &ExtensionElement{coeffs, x.field}
}

// Sub returns x - y, computed coefficient-wise. It panics if x and y belong to different fields.
func (x *ExtensionElement) Sub(y *ExtensionElement) *ExtensionElement {
	x.requireCompatible(y)
	coeffs := make([]*PrimeElement, len(x.coeffs))
	for i := range coeffs {
		coeffs[i] = x.coeffs[i].Sub(y.coeffs[i])
	}
	return &ExtensionElement{coeffs, x.field}
}

func (x *ExtensionElement) Neg() *ExtensionElement {
	coeffs := make([]*PrimeElement, len(x.coeffs))
	for i := range coeffs {
		coeffs[i] = x.coeffs[i].Neg()
	}
	return &ExtensionElement{coeffs, x.field}
}

// Mul returns x * y: the full product (degree up to 2n-2) reduced modulo the generator. It panics if x and y belong
// to different fields.
func (x *ExtensionElement) Mul(y *ExtensionElement) *ExtensionElement {
	x.requireCompatible(y)
	return x.field.reduce(x.polynomial().mul(y.polynomial()))
}

// Inverse returns x⁻¹, computed with the extended Euclidean algorithm over polynomials on (x, g). It fails with
// ErrDivisionByZero for x = 0, and for any x sharing a factor with a reducible generator.
func (x *ExtensionElement) Inverse() (*ExtensionElement, error) {
	p := x.polynomial()
	if p.isZero() {
		return nil, fmt.Errorf("%w: inverse of 0 in %v", ErrDivisionByZero, x.field)
	}
	gcd, s, err := p.extendedEuclid(x.field.generator)
	if err != nil {
		return nil, err
	}
	if gcd.degree() != 0 {
		return nil, fmt.Errorf("%w: %v shares the factor %v with the generator %v", ErrDivisionByZero, p, gcd,
			x.field.generator)
	}
	// s·x ≡ c (mod g) for the constant c = gcd, so x⁻¹ = s·c⁻¹
	cInv, err := gcd.lead().Inverse()
	if err != nil {
		return nil, err
	}
	return x.field.reduce(s.mul(polynomial{x.field.base, []*PrimeElement{cInv}})), nil
}

// Div returns x / y. It fails with ErrDivisionByZero if y has no inverse and with ErrIncompatibleField if x and y
// belong to different fields.
func (x *ExtensionElement) Div(y *ExtensionElement) (*ExtensionElement, error) {
	if !x.Compatible(y) {
		return nil, incompatible("%v and %v", x.field, y.field)
	}
	inv, err := y.Inverse()
	if err != nil {
		return nil, err
	}
	return x.Mul(inv), nil
}

// Exp returns x^k. Negative exponents invert x first.
func (x *ExtensionElement) Exp(k *big.Int) (*ExtensionElement, error) {
	base := x
	if k.Sign() < 0 {
		inv, err := x.Inverse()
		if err != nil {
			return nil, err
		}
		base, k = inv, new(big.Int).Neg(k)
	}
	r, err := base.polynomial().powMod(k, x.field.generator)
	if err != nil {
		return nil, err
	}
	return x.field.element(r), nil
}

// Equal reports whether x and y are the same polynomial of the same field.
func (x *ExtensionElement) Equal(y *ExtensionElement) bool {
	if x == y {
		return true
	}
	if !x.Compatible(y) {
		return false
	}
	for i := range x.coeffs {
		if !x.coeffs[i].Equal(y.coeffs[i]) {
			return false
		}
	}
	return true
}

func (x *ExtensionElement) IsZero() bool {
	for _, c := range x.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func (x *ExtensionElement) Zero() *ExtensionElement {
	return x.field.Zero()
}

func (x *ExtensionElement) One() *ExtensionElement {
	return x.field.One()
}

func (x *ExtensionElement) Characteristic() *big.Int {
	return x.field.base.Modulus()
}

// String returns the polynomial form of x followed by its field, e.g. "2 + 1*t in GF(5^2)".
func (x *ExtensionElement) String() string {
	return fmt.Sprintf("%v in %v", x.polynomial(), x.field)
}
