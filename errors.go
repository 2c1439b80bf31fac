package foil

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoaded is returned when surfaces or derived curves are requested
	// before enough coordinate data exists.
	ErrNotLoaded = errors.New("airfoil not loaded")

	// ErrNotNormalized is returned when an operation that requires a
	// normalized airfoil could not normalize it implicitly.
	ErrNotNormalized = errors.New("airfoil not normalized")

	// ErrMalformedBezier is returned when a Bézier definition file misses a
	// block marker or mismatches its top and bottom blocks.
	ErrMalformedBezier = errors.New("malformed bezier definition")

	// ErrFileNotFound is returned when an airfoil file does not exist.
	ErrFileNotFound = errors.New("airfoil file not found")
)

// DomainError reports an interpolation request outside a curve's x range.
// Sides never extrapolate.
type DomainError struct {
	X        float64
	Min, Max float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("x=%g outside curve range [%g, %g]", e.X, e.Min, e.Max)
}
