package curve

import (
	"math/big"

	"github.com/smartcontractkit/ecrlp/field"
)

// NIST SP 800-186, Section 3.2.1.3
const (
	p256Prime = "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"
	p256B     = "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"
	p256Gx    = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	p256Gy    = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"
	p256Order = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
)

// P256 returns the NIST P-256 curve y² = x³ - 3x + b over its prime field, together with its base point and the
// order of the group the base point generates. The generic affine arithmetic of this package is neither constant time
// nor fast; P256 exists to exercise it on a standard curve.
func P256() (*Curve[*field.PrimeElement], *Point[*field.PrimeElement], *big.Int) {
	f, err := field.NewPrimeField(mustHex(p256Prime))
	if err != nil {
		panic(err)
	}
	c, err := New(f.FromInt64(-3), f.FromBigInt(mustHex(p256B)))
	if err != nil {
		panic(err)
	}
	g, err := c.NewPoint(f.FromBigInt(mustHex(p256Gx)), f.FromBigInt(mustHex(p256Gy)))
	if err != nil {
		panic(err)
	}
	return c, g, mustHex(p256Order)
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex constant: " + s)
	}
	return n
}
