package field

import "errors"

var (
	// ErrDivisionByZero is returned when inverting the additive identity (or, for an extension field built on a
	// reducible generator, any element sharing a factor with it).
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrIncompatibleField is returned (or raised as a panic value) when elements of different fields are combined.
	ErrIncompatibleField = errors.New("field: elements belong to different fields")

	// ErrInvalidModulus is returned when a prime field is requested for a value that is not a prime.
	ErrInvalidModulus = errors.New("field: modulus must be a prime")

	// ErrInvalidGenerator is returned when an extension field generator is not a monic polynomial of degree >= 1.
	ErrInvalidGenerator = errors.New("field: generator must be a monic polynomial of degree >= 1")
)
