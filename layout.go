package ringseg

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Quad is the outline of one segment in polygon order:
// inner start, inner end, outer end, outer start.
type Quad [4]r2.Vec

// Points returns the quad's corners as a slice, ready to be drawn as a
// closed polygon.
func (q Quad) Points() []r2.Vec { return q[:] }

// SegmentQuad returns the trapezoid bounded by arc between the ring's inner
// wall and the circle of radius outerRadius. The inner chord is followed by
// the outer chord reversed so connecting the corners in order never crosses.
func SegmentQuad(arc ArcSpan, ring Ring, outerRadius float64) Quad {
	is, ie := ChordDimensions(arc, ring.Origin, ring.InnerRadius())
	ost, oe := ChordDimensions(arc, ring.Origin, outerRadius)
	return Quad{is, ie, oe, ost}
}

// Segment is one wedge of a laid out ring.
type Segment struct {
	Index int
	Arc   ArcSpan
	Quad  Quad
}

// Arcs partitions the full circle into n equal arcs starting at 0 degrees.
// Bounds are computed from the arc index so non-integer steps such as
// 360/7 do not drift, and the last arc ends at exactly 360.
func Arcs(n int) ([]ArcSpan, error) {
	if err := validSegments(n); err != nil {
		return nil, err
	}
	step := DegreesPerSegment(n)
	arcs := make([]ArcSpan, 0, n)
	for i := 0; i < n; i++ {
		end := float64(i+1) * step
		if i == n-1 {
			end = 360
		}
		arcs = append(arcs, ArcSpan{Start: float64(i) * step, End: end})
	}
	return arcs, nil
}

// Walk sweeps the circle calling fn once per segment, in increasing angle.
// A non-nil error from fn stops the walk and is returned.
func (s SegmentSpec) Walk(fn func(Segment) error) error {
	if err := s.Validate(); err != nil {
		return err
	}
	arcs, err := Arcs(s.Segments)
	if err != nil {
		return err
	}
	big := circumscribedRadius(s.Ring.Radius, s.Segments)
	for i, arc := range arcs {
		err = fn(Segment{Index: i, Arc: arc, Quad: SegmentQuad(arc, s.Ring, big)})
		if err != nil {
			return err
		}
	}
	return nil
}

// Layout returns every segment of the ring.
func (s SegmentSpec) Layout() ([]Segment, error) {
	segs := make([]Segment, 0, s.Segments)
	err := s.Walk(func(seg Segment) error {
		segs = append(segs, seg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return segs, nil
}
