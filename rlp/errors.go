package rlp

import "errors"

var (
	// ErrInputTooLarge is returned when a length does not fit the 8 length-of-length bytes of the format, i.e. is
	// at least 256^8.
	ErrInputTooLarge = errors.New("rlp: input too large")

	// ErrInvalidInput is returned for values that are neither a byte string nor a list.
	ErrInvalidInput = errors.New("rlp: invalid input, expected a byte string or a list")
)
