package ringseg

import "gonum.org/v1/gonum/spatial/r2"

// ArcSpan is an angular interval in degrees, measured counter-clockwise
// from the positive x axis. Values are used as given, no wrapping to
// [0, 360) is performed.
type ArcSpan struct {
	Start, End float64
}

// Span returns the angular extent of the arc in degrees.
func (a ArcSpan) Span() float64 { return a.End - a.Start }

// Circle is a circle in drawing space.
type Circle struct {
	Origin r2.Vec
	Radius float64
}

// Point returns the point on the circle at the given angle. See ChordPoint.
func (c Circle) Point(degrees float64) r2.Vec {
	return ChordPoint(c.Origin, c.Radius, degrees)
}

// ChordPoint returns the point at an angle in degrees on a circle of given
// origin and radius. The y component is subtracted from the origin since
// drawing surfaces grow downwards; 0 degrees lies at (origin.X+radius, origin.Y)
// and 90 degrees lies above the origin.
func ChordPoint(origin r2.Vec, radius, degrees float64) r2.Vec {
	return r2.Vec{
		X: radius*DegCos(degrees) + origin.X,
		Y: origin.Y - radius*DegSin(degrees),
	}
}

// ChordDimensions returns the endpoints of the chord spanning arc
// on the circle with the given origin and radius.
func ChordDimensions(arc ArcSpan, origin r2.Vec, radius float64) (start, end r2.Vec) {
	return ChordPoint(origin, radius, arc.Start), ChordPoint(origin, radius, arc.End)
}

// DegreesPerSegment returns the angle each of n equal segments subtends.
func DegreesPerSegment(n int) float64 {
	return 360.0 / float64(n)
}

// ChordLength returns the length of the chord subtending one of n equal
// segments on a circle of given radius. All segments of an equal-angle
// layout are congruent so the first arc stands in for all of them.
func ChordLength(n int, origin r2.Vec, radius float64) (float64, error) {
	if err := validSegments(n); err != nil {
		return 0, err
	}
	if err := validLength("radius", radius); err != nil {
		return 0, err
	}
	return chordLength(n, origin, radius), nil
}

func chordLength(n int, origin r2.Vec, radius float64) float64 {
	a, b := ChordDimensions(ArcSpan{Start: 0, End: DegreesPerSegment(n)}, origin, radius)
	return Distance(a, b)
}
