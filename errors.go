package contourgeom

import "errors"

var (
	// ErrShape indicates mismatched or insufficient input dimensions, such
	// as unequal column counts in a row intersection or too few points for a
	// line fit.
	ErrShape = errors.New("shape mismatch")

	// ErrDegenerateGeometry indicates a geometric construction that cannot
	// proceed, such as a basis built from a normal parallel to the fixed
	// reference axis.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
