package curve

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/ecrlp/field"
)

// Point is an affine point of a curve, or the point at infinity.
type Point[E field.Element[E]] struct {
	curve    *Curve[E]
	x, y     E
	infinity bool
}

// Curve returns the point's underlying curve.
func (p *Point[E]) Curve() *Curve[E] {
	return p.curve
}

func (p *Point[E]) IsInfinity() bool {
	return p.infinity
}

// Coordinates returns (x, y, true) for an affine point, and false for the point at infinity.
func (p *Point[E]) Coordinates() (E, E, bool) {
	return p.x, p.y, !p.infinity
}

// Equal reports whether p and q are the same point of the same curve.
func (p *Point[E]) Equal(q *Point[E]) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Negate returns -p: (x, -y), and the point at infinity for itself.
func (p *Point[E]) Negate() *Point[E] {
	if p.infinity {
		return p
	}
	return &Point[E]{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add returns p + q using the chord-and-tangent rule. It fails with ErrIncompatibleCurve if p and q are on different
// curves.
func (p *Point[E]) Add(q *Point[E]) (*Point[E], error) {
	if !p.curve.Equal(q.curve) {
		return nil, fmt.Errorf("%w: %v and %v", ErrIncompatibleCurve, p.curve, q.curve)
	}
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}
	if p.x.Equal(q.x) {
		if p.y.Equal(q.y) {
			return p.Double()
		}
		// q = -p
		return p.curve.Infinity(), nil
	}

	// λ = (y_q - y_p) / (x_q - x_p)
	inv, err := q.x.Sub(p.x).Inverse()
	if err != nil {
		return nil, err
	}
	return p.chord(q.y.Sub(p.y).Mul(inv), q.x), nil
}

// Sub returns p - q.
func (p *Point[E]) Sub(q *Point[E]) (*Point[E], error) {
	return p.Add(q.Negate())
}

// Double returns 2p. Points with y = 0 have order 2 and double to the point at infinity.
func (p *Point[E]) Double() (*Point[E], error) {
	if p.infinity {
		return p, nil
	}
	if p.y.IsZero() {
		return p.curve.Infinity(), nil
	}

	// λ = (3x² + a) / (2y)
	one := p.x.One()
	two := one.Add(one)
	three := two.Add(one)
	inv, err := two.Mul(p.y).Inverse()
	if err != nil {
		return nil, err
	}
	return p.chord(three.Mul(p.x).Mul(p.x).Add(p.curve.a).Mul(inv), p.x), nil
}

// chord returns the third intersection of the line through p with slope λ, reflected over the x-axis, where the
// line also meets the curve at x-coordinate xq.
func (p *Point[E]) chord(λ E, xq E) *Point[E] {
	x := λ.Mul(λ).Sub(p.x).Sub(xq)  // x_r = λ² - x_p - x_q
	y := λ.Mul(p.x.Sub(x)).Sub(p.y) // y_r = λ(x_p - x_r) - y_p
	return &Point[E]{curve: p.curve, x: x, y: y}
}

// ScalarMult returns k·p by double-and-add, in O(log |k|) group operations. k = 0 yields the point at infinity, and
// a negative k multiplies -p by |k|.
func (p *Point[E]) ScalarMult(k *big.Int) (*Point[E], error) {
	if k.Sign() < 0 {
		return p.Negate().ScalarMult(new(big.Int).Neg(k))
	}

	result := p.curve.Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		var err error
		if result, err = result.Double(); err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			if result, err = result.Add(p); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// String returns "(x, y)", or "Infinity" for the point at infinity.
func (p *Point[E]) String() string {
	if p.infinity {
		return "Infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

type Points[E field.Element[E]] []*Point[E]

// Sum returns the sum of all points in ps, and nil for an empty slice.
func (ps Points[E]) Sum() (*Point[E], error) {
	var result *Point[E]
	for _, pᵢ := range ps {
		if result == nil {
			result = pᵢ
			continue
		}
		var err error
		if result, err = result.Add(pᵢ); err != nil {
			return nil, err
		}
	}
	return result, nil
}
