package curve

import "errors"

var (
	// ErrIncompatibleCurve is returned when points of different curves are combined.
	ErrIncompatibleCurve = errors.New("curve: points belong to different curves")

	// ErrPointNotOnCurve is returned when explicit coordinates do not satisfy the curve equation.
	ErrPointNotOnCurve = errors.New("curve: point is not on the curve")

	// ErrUnsupportedField is returned for curves over fields of characteristic 2, where the short Weierstrass
	// doubling formula divides by 2y = 0.
	ErrUnsupportedField = errors.New("curve: fields of characteristic 2 are not supported")
)
