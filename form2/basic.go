package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/ringseg"
	"github.com/soypat/ringseg/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Rect is an axis aligned rectangle in drawing space.
type Rect = must2.Rect

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the error the shape builder panicked with, if any.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Segment returns the trapezoid of a ring segment spanning arc.
func Segment(arc ringseg.ArcSpan, ring ringseg.Ring, outerRadius float64) (q ringseg.Quad, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Segment(arc, ring, outerRadius), err
}

// Quad returns a quadrilateral from exactly four corners.
func Quad(corners []r2.Vec) (q ringseg.Quad, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Quad(corners), err
}

// BaseRect returns the side view of a solid base.
func BaseRect(origin r2.Vec, radius, height float64) (r Rect, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.BaseRect(origin, radius, height), err
}

// RingRects returns the left and right wall cross sections of a ring seen from the side.
func RingRects(origin r2.Vec, altitude, radius, height, thickness float64) (left, right Rect, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	left, right = must2.RingRects(origin, altitude, radius, height, thickness)
	return left, right, err
}

// LayerRects returns the wall cross sections of a stacked layer.
func LayerRects(origin r2.Vec, l ringseg.LayerSpec) (left, right Rect, err error) {
	return RingRects(origin, l.Altitude, l.Radius, l.Height, l.Thickness)
}
