package render

import (
	"fmt"

	"github.com/soypat/ringseg"
	"github.com/soypat/ringseg/form2"
	"github.com/soypat/ringseg/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Crosshair draws the reference axes of a size by size sketch: a centered
// vertical line and a horizontal line at size*division from the top.
func Crosshair(d Drawer, size, division float64, s Style) {
	x := size * 0.5
	y := size * division
	d.Line(r2.Vec{X: x}, r2.Vec{X: x, Y: size}, s)
	d.Line(r2.Vec{Y: y}, r2.Vec{X: size, Y: y}, s)
}

// DrawRing draws the outer and inner walls of ring as concentric circles.
func DrawRing(d Drawer, ring ringseg.Ring, s Style) error {
	if err := ring.Validate(); err != nil {
		return err
	}
	d.Circle(ring.Origin, ring.Radius, s)
	d.Circle(ring.Origin, ring.InnerRadius(), s)
	return nil
}

// DrawSegments draws every segment of spec as a closed trapezoid.
func DrawSegments(d Drawer, spec ringseg.SegmentSpec, s Style) error {
	big, err := spec.CircumscribedRadius()
	if err != nil {
		return err
	}
	// Shapes are built before anything is drawn so a bad segment leaves d untouched.
	quads := make([]ringseg.Quad, 0, spec.Segments)
	err = spec.Walk(func(seg ringseg.Segment) error {
		q, err := form2.Segment(seg.Arc, spec.Ring, big)
		if err != nil {
			return fmt.Errorf("segment %d: %w", seg.Index, err)
		}
		quads = append(quads, q)
		return nil
	})
	if err != nil {
		return err
	}
	for _, q := range quads {
		d.Polygon(q.Points(), s)
	}
	return nil
}

// DrawProfile draws the side view of a base with layers stacked on it.
// Layers must carry their altitude, see ringseg.Stack.
func DrawProfile(d Drawer, origin r2.Vec, base ringseg.Base, layers []ringseg.LayerSpec, s Style) error {
	b, err := form2.BaseRect(origin, base.Radius, base.Height)
	if err != nil {
		return err
	}
	rects := []form2.Rect{b}
	for i, l := range layers {
		left, right, err := form2.LayerRects(origin, l)
		if err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		rects = append(rects, left, right)
	}
	for _, r := range rects {
		d.Rect(r.Min, d2.Box(r).Size(), s)
	}
	return nil
}

// RingSketch returns the in-memory drawing of a ring laid out in segments:
// axes, the ring walls and the segment trapezoids. Nothing is written to
// disk until the returned drawing is saved.
func RingSketch(cfg Config, path string, spec ringseg.SegmentSpec) (*Drawing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	d, err := NewDrawing(path, r2.Vec{X: cfg.Size, Y: cfg.Size})
	if err != nil {
		return nil, err
	}
	Crosshair(d, cfg.Size, cfg.Division, cfg.Axes)
	if err = DrawRing(d, spec.Ring, cfg.Ring); err != nil {
		return nil, err
	}
	if err = DrawSegments(d, spec, cfg.Segment); err != nil {
		return nil, err
	}
	return d, nil
}

// ProfileSketch returns the in-memory drawing of a stacked profile whose
// base line is the sketch's horizontal axis.
func ProfileSketch(cfg Config, path string, base ringseg.Base, layers []ringseg.LayerSpec) (*Drawing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d, err := NewDrawing(path, r2.Vec{X: cfg.Size, Y: cfg.Size})
	if err != nil {
		return nil, err
	}
	Crosshair(d, cfg.Size, cfg.Division, cfg.Axes)
	if err = DrawProfile(d, cfg.Origin(), base, layers, cfg.Profile); err != nil {
		return nil, err
	}
	return d, nil
}
