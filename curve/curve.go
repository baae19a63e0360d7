// Package curve implements the group law of short Weierstrass elliptic curves y² = x³ + a·x + b over any field of
// the field package.
//
// Curves and points are immutable and safe for concurrent use.
package curve

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/ecrlp/field"
)

// Curve is the curve y² = x³ + a·x + b over the field of its coefficients.
//
// Non-singularity (4a³ + 27b² ≠ 0) is a precondition and is not checked.
type Curve[E field.Element[E]] struct {
	a, b E
}

// New returns the curve y² = x³ + a·x + b. The coefficients must belong to the same field, whose characteristic must
// not be 2.
func New[E field.Element[E]](a, b E) (*Curve[E], error) {
	if !a.Compatible(b) {
		return nil, fmt.Errorf("%w: coefficients %v and %v", field.ErrIncompatibleField, a, b)
	}
	if a.Characteristic().Cmp(big.NewInt(2)) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedField, a)
	}
	return &Curve[E]{a, b}, nil
}

func (c *Curve[E]) A() E {
	return c.a
}

func (c *Curve[E]) B() E {
	return c.b
}

// Equal reports whether c and d are the same curve, i.e. have equal coefficients over the same field.
func (c *Curve[E]) Equal(d *Curve[E]) bool {
	return c == d || (c.a.Equal(d.a) && c.b.Equal(d.b))
}

// Contains reports whether (x, y) satisfies y² = x³ + a·x + b. Coordinates from a different field are never on the
// curve.
func (c *Curve[E]) Contains(x, y E) bool {
	if !c.a.Compatible(x) || !c.a.Compatible(y) {
		return false
	}
	return y.Mul(y).Equal(c.rhs(x))
}

// rhs returns x³ + a·x + b.
func (c *Curve[E]) rhs(x E) E {
	return x.Mul(x).Mul(x).Add(c.a.Mul(x)).Add(c.b)
}

// Infinity returns the point at infinity, the identity of the group.
func (c *Curve[E]) Infinity() *Point[E] {
	return &Point[E]{curve: c, infinity: true}
}

// NewPoint returns the point (x, y). It fails with ErrPointNotOnCurve if the coordinates do not satisfy the curve
// equation.
func (c *Curve[E]) NewPoint(x, y E) (*Point[E], error) {
	if !c.Contains(x, y) {
		return nil, fmt.Errorf("%w: (%v, %v) on %v", ErrPointNotOnCurve, x, y, c)
	}
	return &Point[E]{curve: c, x: x, y: y}, nil
}

// String returns "y^2 = x^3 + a*x + b".
func (c *Curve[E]) String() string {
	return fmt.Sprintf("y^2 = x^3 + (%v)*x + (%v)", c.a, c.b)
}
