package field

import (
	"fmt"
	"math/big"

	"filippo.io/bigmod"
)

// Modulus is a prime p together with its precomputed bigmod representation.
type Modulus struct {
	value *bigmod.Modulus
	p     *big.Int
}

// NewModulus returns the modulus p. It fails with ErrInvalidModulus unless p is a prime (tested probabilistically,
// which is exact for the toy-sized moduli this package targets and overwhelmingly likely otherwise).
func NewModulus(p *big.Int) (*Modulus, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModulus, p)
	}
	m, err := bigmod.NewModulus(p.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrInvalidModulus, p, err)
	}
	return &Modulus{m, new(big.Int).Set(p)}, nil
}

func (m *Modulus) Equal(other *Modulus) bool {
	return m == other || m.p.Cmp(other.p) == 0
}

// Size returns the number of bytes of the canonical big-endian encoding of a residue.
func (m *Modulus) Size() int {
	return m.value.Size()
}

// BigInt returns a copy of p.
func (m *Modulus) BigInt() *big.Int {
	return new(big.Int).Set(m.p)
}

// odd reports whether Montgomery based bigmod routines (Mul, Exp) can be used; only p = 2 is even.
func (m *Modulus) odd() bool {
	return m.p.Bit(0) == 1
}

func (m *Modulus) String() string {
	return m.p.String()
}
