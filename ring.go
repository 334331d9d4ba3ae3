package ringseg

import "gonum.org/v1/gonum/spatial/r2"

// Ring is an annulus in drawing space. Radius is the outer radius.
type Ring struct {
	Origin    r2.Vec
	Radius    float64
	Thickness float64
}

// InnerRadius returns the radius of the ring's inner wall.
func (r Ring) InnerRadius() float64 { return r.Radius - r.Thickness }

// Validate checks 0 < Thickness < Radius.
func (r Ring) Validate() error {
	if err := validLength("ring radius", r.Radius); err != nil {
		return err
	}
	if err := validLength("ring thickness", r.Thickness); err != nil {
		return err
	}
	if r.Thickness >= r.Radius {
		return invalidf("ring thickness %g >= radius %g", r.Thickness, r.Radius)
	}
	return nil
}

// SegmentSpec is a ring to be glued up from Segments equal wedges.
type SegmentSpec struct {
	Ring     Ring
	Segments int
}

// Validate checks the ring and the segment count.
func (s SegmentSpec) Validate() error {
	if err := validSegments(s.Segments); err != nil {
		return err
	}
	return s.Ring.Validate()
}

// DegreesPerSegment returns the angle subtended by each segment.
func (s SegmentSpec) DegreesPerSegment() float64 { return DegreesPerSegment(s.Segments) }

// CircumscribedRadius returns the radius of the circle through the outer
// corners of the segments.
func (s SegmentSpec) CircumscribedRadius() (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return circumscribedRadius(s.Ring.Radius, s.Segments), nil
}

// CircumscribedRadius returns the radius of the circle through the corners
// of a regular n-gon whose edge midpoints lie on a circle of ringRadius.
//
// The ring is inscribed in the segments since material is turned off them on
// the lathe. Bisecting one segment's wedge gives a right triangle with angle
// 180/n at the origin whose adjacent leg is the ring radius and whose
// hypotenuse is the circumscribed radius:
//
//	hypotenuse = adjacent / cos(theta)
func CircumscribedRadius(ringRadius float64, n int) (float64, error) {
	if err := validSegments(n); err != nil {
		return 0, err
	}
	if err := validLength("ring radius", ringRadius); err != nil {
		return 0, err
	}
	return circumscribedRadius(ringRadius, n), nil
}

func circumscribedRadius(ringRadius float64, n int) float64 {
	return ringRadius / DegCos(DegreesPerSegment(n)/2)
}

// Lengths are the stock figures of a segmented ring.
type Lengths struct {
	// Outer is the straight cut along the outside face of one segment.
	Outer float64
	// Inner is the straight cut along the inside face of one segment.
	Inner float64
	// Total is the linear stock consumed by all segments, estimated as the
	// mean of the two parallel faces times the segment count. This is an
	// approximation: it ignores kerf and the slant of the radial cuts.
	Total float64
}

// Lengths returns the per-segment and total stock lengths of the ring.
// The inner face needs no circumscribed correction since it is a chord of
// the inner wall itself.
func (s SegmentSpec) Lengths() (Lengths, error) {
	if err := s.Validate(); err != nil {
		return Lengths{}, err
	}
	n := s.Segments
	o := s.Ring.Origin
	var l Lengths
	l.Outer = chordLength(n, o, circumscribedRadius(s.Ring.Radius, n))
	l.Inner = chordLength(n, o, s.Ring.InnerRadius())
	l.Total = (l.Outer + l.Inner) / 2 * float64(n)
	return l, nil
}
