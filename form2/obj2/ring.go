package obj2

import (
	"fmt"

	"github.com/soypat/ringseg"
	"gonum.org/v1/gonum/spatial/r2"
)

/*

Segmented rings dimensioned the way they are measured at the lathe:
outside diameter and wall thickness, in inches.

Example, a 6 5/8" ring with a 3/4" wall glued up from 12 segments:

	RingParams{Diameter: 6 + 5./8, Wall: 3. / 4, Segments: 12}

*/

// RingParams defines a segmented ring in inches.
type RingParams struct {
	Diameter float64 // outside diameter of the turned ring
	Wall     float64 // wall thickness
	Segments int     // number of segments glued up into the ring
}

// SegmentedRing returns the segment layout of a ring centered at origin.
// Dimensions are converted to drawing units with scale.
func SegmentedRing(k RingParams, origin r2.Vec, scale ringseg.Scale) (ringseg.SegmentSpec, error) {
	spec := ringseg.SegmentSpec{
		Ring: ringseg.Ring{
			Origin:    origin,
			Radius:    scale.Inches(k.Diameter / 2),
			Thickness: scale.Inches(k.Wall),
		},
		Segments: k.Segments,
	}
	if err := spec.Validate(); err != nil {
		return ringseg.SegmentSpec{}, err
	}
	return spec, nil
}

// LayerParams defines one ring of a stacked profile in inches.
type LayerParams struct {
	Diameter float64 // outside diameter
	Height   float64 // height of the glued up ring
	Wall     float64 // wall thickness
}

// ProfileParams defines the side view of a turned vessel: a solid base with
// rings stacked on top, bottom to top.
type ProfileParams struct {
	BaseDiameter float64
	BaseHeight   float64
	Layers       []LayerParams
}

// Profile returns the base and stacked layers of k in drawing units.
func Profile(k ProfileParams, scale ringseg.Scale) (ringseg.Base, []ringseg.LayerSpec, error) {
	base := ringseg.Base{
		Radius: scale.Inches(k.BaseDiameter / 2),
		Height: scale.Inches(k.BaseHeight),
	}
	if err := base.Validate(); err != nil {
		return ringseg.Base{}, nil, err
	}
	layers := make([]ringseg.LayerSpec, len(k.Layers))
	for i, l := range k.Layers {
		layers[i] = ringseg.LayerSpec{
			Radius:    scale.Inches(l.Diameter / 2),
			Height:    scale.Inches(l.Height),
			Thickness: scale.Inches(l.Wall),
		}
	}
	stacked, err := ringseg.Stack(base.Height, layers)
	if err != nil {
		return ringseg.Base{}, nil, fmt.Errorf("profile: %w", err)
	}
	return base, stacked, nil
}
