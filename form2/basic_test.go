package form2_test

import (
	"errors"
	"testing"

	"github.com/soypat/ringseg"
	"github.com/soypat/ringseg/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestQuadArity(t *testing.T) {
	pts := []r2.Vec{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, {X: -1}}
	for n := 0; n <= len(pts); n++ {
		q, err := form2.Quad(pts[:n])
		if n == 4 {
			if err != nil {
				t.Fatal(err)
			}
			if q[2] != pts[2] {
				t.Errorf("got corners %v", q)
			}
			continue
		}
		if !errors.Is(err, ringseg.ErrMalformedShape) {
			t.Errorf("%d corners: got err %v", n, err)
		}
	}
}

func TestSegmentInvalid(t *testing.T) {
	ring := ringseg.Ring{Origin: r2.Vec{X: 50, Y: 50}, Radius: 10, Thickness: 2}
	arc := ringseg.ArcSpan{Start: 30, End: 60}
	for _, test := range []struct {
		name  string
		ring  ringseg.Ring
		arc   ringseg.ArcSpan
		outer float64
	}{
		{"thick wall", ringseg.Ring{Radius: 10, Thickness: 10}, arc, 11},
		{"no wall", ringseg.Ring{Radius: 10}, arc, 11},
		{"outer inside ring", ring, arc, 9},
		{"empty arc", ring, ringseg.ArcSpan{Start: 30, End: 30}, 11},
		{"reversed arc", ring, ringseg.ArcSpan{Start: 60, End: 30}, 11},
		{"full circle", ring, ringseg.ArcSpan{Start: 0, End: 360}, 11},
	} {
		_, err := form2.Segment(test.arc, test.ring, test.outer)
		if !errors.Is(err, ringseg.ErrInvalidGeometry) {
			t.Errorf("%s: got err %v", test.name, err)
		}
	}
	q, err := form2.Segment(arc, ring, 11)
	if err != nil {
		t.Fatal(err)
	}
	if q != ringseg.SegmentQuad(arc, ring, 11) {
		t.Error("form2 segment differs from engine quad")
	}
}

func TestBaseRect(t *testing.T) {
	r, err := form2.BaseRect(r2.Vec{X: 250, Y: 450}, 118.75, 25)
	if err != nil {
		t.Fatal(err)
	}
	want := form2.Rect{Min: r2.Vec{X: 131.25, Y: 425}, Max: r2.Vec{X: 368.75, Y: 450}}
	if r != want {
		t.Errorf("got %v, want %v", r, want)
	}
	if _, err := form2.BaseRect(r2.Vec{}, 0, 25); !errors.Is(err, ringseg.ErrInvalidGeometry) {
		t.Errorf("zero radius: got %v", err)
	}
}

func TestRingRects(t *testing.T) {
	origin := r2.Vec{X: 250, Y: 450}
	left, right, err := form2.RingRects(origin, 25, 137.5, 56.25, 68.75)
	if err != nil {
		t.Fatal(err)
	}
	wantLeft := form2.Rect{Min: r2.Vec{X: 112.5, Y: 368.75}, Max: r2.Vec{X: 181.25, Y: 425}}
	wantRight := form2.Rect{Min: r2.Vec{X: 318.75, Y: 368.75}, Max: r2.Vec{X: 387.5, Y: 425}}
	if left != wantLeft || right != wantRight {
		t.Errorf("got %v %v, want %v %v", left, right, wantLeft, wantRight)
	}
	// Walls mirror about the vertical axis.
	if origin.X-left.Min.X != right.Max.X-origin.X || r2.Sub(left.Max, left.Min) != r2.Sub(right.Max, right.Min) {
		t.Error("walls are not mirrored")
	}
	_, _, err = form2.RingRects(origin, 25, 10, 5, 10)
	if !errors.Is(err, ringseg.ErrInvalidGeometry) {
		t.Errorf("wall as thick as radius: got %v", err)
	}
	_, _, err = form2.LayerRects(origin, ringseg.LayerSpec{Radius: 10, Height: 5, Thickness: 2, Altitude: -1})
	if !errors.Is(err, ringseg.ErrInvalidGeometry) {
		t.Errorf("negative altitude: got %v", err)
	}
}
