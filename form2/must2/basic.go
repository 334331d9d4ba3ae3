package must2

import (
	"fmt"

	"github.com/soypat/ringseg"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis aligned rectangle in drawing space.
// Min is the top left corner and Max the bottom right one.
type Rect = r2.Box

func badGeometry(format string, a ...interface{}) {
	panic(fmt.Errorf("%w: %s", ringseg.ErrInvalidGeometry, fmt.Sprintf(format, a...)))
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// 2D Segment

// Segment returns the trapezoid of a ring segment spanning arc. The outer face
// is a chord of the circle of radius outerRadius, normally the ring's
// circumscribed radius.
func Segment(arc ringseg.ArcSpan, ring ringseg.Ring, outerRadius float64) ringseg.Quad {
	check(ring.Validate())
	if outerRadius < ring.Radius {
		badGeometry("outer radius %g < ring radius %g", outerRadius, ring.Radius)
	}
	if arc.Span() <= 0 || arc.Span() >= 360 {
		badGeometry("arc span %g not in (0, 360)", arc.Span())
	}
	return ringseg.SegmentQuad(arc, ring, outerRadius)
}

// Quad returns a quadrilateral from exactly four corners.
func Quad(corners []r2.Vec) ringseg.Quad {
	if len(corners) != 4 {
		panic(fmt.Errorf("%w: quadrilateral needs 4 corners, got %d", ringseg.ErrMalformedShape, len(corners)))
	}
	var q ringseg.Quad
	copy(q[:], corners)
	return q
}

// 2D Profile

// BaseRect returns the side view of a solid base: 2*radius wide, centered
// on origin.X, with its bottom edge on origin.Y.
func BaseRect(origin r2.Vec, radius, height float64) Rect {
	check(ringseg.Base{Radius: radius, Height: height}.Validate())
	return Rect{
		Min: r2.Vec{X: origin.X - radius, Y: origin.Y - height},
		Max: r2.Vec{X: origin.X + radius, Y: origin.Y},
	}
}

// RingRects returns the left and right wall cross sections of a ring seen
// from the side. Both walls are thickness wide with their outer edge at
// radius from origin.X and their bottom edge altitude above origin.Y.
func RingRects(origin r2.Vec, altitude, radius, height, thickness float64) (left, right Rect) {
	check(ringseg.LayerSpec{Radius: radius, Height: height, Thickness: thickness, Altitude: altitude}.Validate())
	top := origin.Y - altitude - height
	bottom := origin.Y - altitude
	left = Rect{
		Min: r2.Vec{X: origin.X - radius, Y: top},
		Max: r2.Vec{X: origin.X - radius + thickness, Y: bottom},
	}
	right = Rect{
		Min: r2.Vec{X: origin.X + radius - thickness, Y: top},
		Max: r2.Vec{X: origin.X + radius, Y: bottom},
	}
	return left, right
}

// LayerRects is RingRects for a stacked layer.
func LayerRects(origin r2.Vec, l ringseg.LayerSpec) (left, right Rect) {
	return RingRects(origin, l.Altitude, l.Radius, l.Height, l.Thickness)
}
