// Package field implements arithmetic in prime fields GF(p) and their extensions GF(p^n).
//
// Elements are immutable: every operation returns a fresh value and leaves its operands untouched, so elements can be
// shared between goroutines freely. Elements of different fields must not be mixed. The value-returning operations
// (Add, Sub, Mul) panic with an error wrapping ErrIncompatibleField when they are; Inverse reports its failure as an
// error.
package field

import (
	"fmt"
	"math/big"
)

// Element is the capability implemented by the elements of every field in this package. E is the concrete element
// type, so that generic code (e.g. the curve package) can be written once for prime and extension fields alike.
type Element[E any] interface {
	Add(y E) E           // x + y
	Sub(y E) E           // x - y
	Neg() E              // -x
	Mul(y E) E           // x * y
	Inverse() (E, error) // x⁻¹, or ErrDivisionByZero if x = 0
	Equal(y E) bool      // false for elements of different fields
	IsZero() bool
	Zero() E // additive identity of the element's field
	One() E  // multiplicative identity of the element's field

	// Compatible reports whether x and y belong to the same field and can be combined.
	Compatible(y E) bool

	// Characteristic returns the characteristic p of the element's field.
	Characteristic() *big.Int

	fmt.Stringer
}

var (
	_ Element[*PrimeElement]     = (*PrimeElement)(nil)
	_ Element[*ExtensionElement] = (*ExtensionElement)(nil)
)

func incompatible(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrIncompatibleField}, args...)...)
}
