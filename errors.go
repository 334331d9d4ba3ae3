package ringseg

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGeometry is returned for dimensions that cannot describe a
	// segmented ring: too few segments, non-positive radii or a wall
	// thicker than the ring itself.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrMalformedShape is returned when a shape builder receives the wrong
	// amount of points.
	ErrMalformedShape = errors.New("malformed shape input")
)

func invalidf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, a...))
}

func validSegments(n int) error {
	if n < MinSegments {
		return invalidf("segment count %d < %d", n, MinSegments)
	}
	return nil
}

func validLength(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return invalidf("%s must be positive and finite, got %g", name, v)
	}
	return nil
}
