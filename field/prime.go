package field

import (
	"fmt"
	"io"
	"math/big"

	"filippo.io/bigmod"
)

// PrimeField is the field GF(p) of integers modulo a prime p.
type PrimeField struct {
	modulus *Modulus
}

// PrimeElement is a residue modulo p, always kept in canonical form [0, p).
type PrimeElement struct {
	value *bigmod.Nat
	field *PrimeField
}

// NewPrimeField returns GF(p). It fails with ErrInvalidModulus if p is not a prime.
func NewPrimeField(p *big.Int) (*PrimeField, error) {
	m, err := NewModulus(p)
	if err != nil {
		return nil, err
	}
	return &PrimeField{m}, nil
}

// MustPrimeField returns GF(p) and panics if p is not a prime. To be used for constants and in tests only.
func MustPrimeField(p int64) *PrimeField {
	f, err := NewPrimeField(big.NewInt(p))
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of p.
func (f *PrimeField) Modulus() *big.Int {
	return f.modulus.BigInt()
}

// Equal reports whether f and g have the same modulus.
func (f *PrimeField) Equal(g *PrimeField) bool {
	return f == g || f.modulus.Equal(g.modulus)
}

// FromBigInt returns v mod p. Negative values are mapped to their canonical residue.
func (f *PrimeField) FromBigInt(v *big.Int) *PrimeElement {
	r := new(big.Int).Mod(v, f.modulus.p)
	n, err := bigmod.NewNat().SetBytes(r.Bytes(), f.modulus.value)
	if err != nil {
		// unreachable, r < p by construction
		panic("field: failed to set reduced residue: " + err.Error())
	}
	return &PrimeElement{n, f}
}

// FromInt64 returns v mod p.
func (f *PrimeField) FromInt64(v int64) *PrimeElement {
	return f.FromBigInt(big.NewInt(v))
}

// Elements maps every value of vs into the field, e.g. to build polynomial coefficients.
func (f *PrimeField) Elements(vs ...int64) []*PrimeElement {
	result := make([]*PrimeElement, len(vs))
	for i, v := range vs {
		result[i] = f.FromInt64(v)
	}
	return result
}

func (f *PrimeField) Zero() *PrimeElement {
	return &PrimeElement{bigmod.NewNat().ExpandFor(f.modulus.value), f}
}

func (f *PrimeField) One() *PrimeElement {
	return f.FromInt64(1)
}

// Random returns an element sampled from rand, statistically close to uniform over [0, p). A constant number of bytes
// is read, so the same reader state always yields the same element.
func (f *PrimeField) Random(rand io.Reader) (*PrimeElement, error) {
	// 128 bits more than the modulus size, so the reduction below has negligible bias.
	rngBytes := make([]byte, f.modulus.Size()+16)
	if _, err := io.ReadFull(rand, rngBytes); err != nil {
		return nil, err
	}

	// A modulus larger than any value rngBytes can hold.
	largeModBytes := make([]byte, len(rngBytes)+1)
	largeModBytes[0] = 1
	largeMod, err := bigmod.NewModulus(largeModBytes)
	if err != nil {
		return nil, err
	}

	t := bigmod.NewNat()
	if _, err := t.SetBytes(rngBytes, largeMod); err != nil {
		return nil, err
	}

	x := f.Zero()
	x.value.Mod(t, f.modulus.value)
	return x, nil
}

// String returns "GF(p)".
func (f *PrimeField) String() string {
	return fmt.Sprintf("GF(%s)", f.modulus)
}

// Field returns the field x belongs to.
func (x *PrimeElement) Field() *PrimeField {
	return x.field
}

func (x *PrimeElement) clone() *bigmod.Nat {
	n := bigmod.NewNat().ExpandFor(x.field.modulus.value)
	copy(n.Bits(), x.value.Bits())
	return n
}

func (x *PrimeElement) requireCompatible(y *PrimeElement) {
	if !x.Compatible(y) {
		panic(incompatible("%v and %v", x.field, y.field))
	}
}

func (x *PrimeElement) Compatible(y *PrimeElement) bool {
	return x.field.Equal(y.field)
}

// Add returns x + y (mod p). It panics if x and y belong to different fields.
func (x *PrimeElement) Add(y *PrimeElement) *PrimeElement {
	x.requireCompatible(y)
	return &PrimeElement{x.clone().Add(y.value, x.field.modulus.value), x.field}
}

// Sub returns x - y (mod p). It panics if x and y belong to different fields.
func (x *PrimeElement) Sub(y *PrimeElement) *PrimeElement {
	x.requireCompatible(y)
	return &PrimeElement{x.clone().Sub(y.value, x.field.modulus.value), x.field}
}

// Neg returns p - x, or 0 for x = 0.
func (x *PrimeElement) Neg() *PrimeElement {
	return x.Zero().Sub(x)
}

// Mul returns x * y (mod p). It panics if x and y belong to different fields.
func (x *PrimeElement) Mul(y *PrimeElement) *PrimeElement {
	x.requireCompatible(y)
	if !x.field.modulus.odd() {
		return x.field.FromBigInt(new(big.Int).Mul(x.BigInt(), y.BigInt()))
	}
	return &PrimeElement{x.clone().Mul(y.value, x.field.modulus.value), x.field}
}

// Inverse returns x⁻¹, computed with the extended Euclidean algorithm on (x, p). It fails with ErrDivisionByZero for
// x = 0.
func (x *PrimeElement) Inverse() (*PrimeElement, error) {
	if x.IsZero() {
		return nil, fmt.Errorf("%w: inverse of 0 in %v", ErrDivisionByZero, x.field)
	}
	_, s, _ := extendedEuclid(x.BigInt(), x.field.modulus.p)
	return x.field.FromBigInt(s), nil
}

// Div returns x / y. It fails with ErrDivisionByZero for y = 0 and with ErrIncompatibleField if x and y belong to
// different fields.
func (x *PrimeElement) Div(y *PrimeElement) (*PrimeElement, error) {
	if !x.Compatible(y) {
		return nil, incompatible("%v and %v", x.field, y.field)
	}
	inv, err := y.Inverse()
	if err != nil {
		return nil, err
	}
	return x.Mul(inv), nil
}

// Exp returns x^k. Negative exponents invert x first and thus fail with ErrDivisionByZero for x = 0.
func (x *PrimeElement) Exp(k *big.Int) (*PrimeElement, error) {
	base := x
	if k.Sign() < 0 {
		inv, err := x.Inverse()
		if err != nil {
			return nil, err
		}
		base, k = inv, new(big.Int).Neg(k)
	}
	if k.Sign() == 0 {
		return x.One(), nil
	}
	if !x.field.modulus.odd() {
		return x.field.FromBigInt(new(big.Int).Exp(base.BigInt(), k, x.field.modulus.p)), nil
	}
	r := x.Zero()
	r.value.Exp(base.value, k.Bytes(), x.field.modulus.value)
	return r, nil
}

// Equal reports whether x and y are the same residue of the same field.
func (x *PrimeElement) Equal(y *PrimeElement) bool {
	return x == y || (x.Compatible(y) && x.value.Equal(y.value) == 1)
}

func (x *PrimeElement) IsZero() bool {
	return x.value.IsZero() == 1
}

func (x *PrimeElement) Zero() *PrimeElement {
	return x.field.Zero()
}

func (x *PrimeElement) One() *PrimeElement {
	return x.field.One()
}

func (x *PrimeElement) Characteristic() *big.Int {
	return x.field.Modulus()
}

// BigInt returns the canonical residue of x as an integer in [0, p).
func (x *PrimeElement) BigInt() *big.Int {
	return new(big.Int).SetBytes(x.value.Bytes(x.field.modulus.value))
}

// Bytes returns the canonical fixed-length big-endian encoding of x.
func (x *PrimeElement) Bytes() []byte {
	return x.value.Bytes(x.field.modulus.value)
}

// String returns "x (mod p)".
func (x *PrimeElement) String() string {
	return fmt.Sprintf("%s (mod %s)", x.BigInt(), x.field.modulus)
}

// extendedEuclid returns (g, s, t) such that s·a + t·b = g = gcd(a, b), for non-negative a and b.
func extendedEuclid(a, b *big.Int) (g, s, t *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	t0, t1 := big.NewInt(0), big.NewInt(1)

	for r1.Sign() != 0 {
		q := new(big.Int).Quo(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		s0, s1 = s1, new(big.Int).Sub(s0, new(big.Int).Mul(q, s1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}
	return r0, s0, t0
}
