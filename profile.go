package ringseg

import "fmt"

// Base is the solid bottom of a turned piece seen from the side.
type Base struct {
	Radius float64
	Height float64
}

// Validate checks the base has positive dimensions.
func (b Base) Validate() error {
	if err := validLength("base radius", b.Radius); err != nil {
		return err
	}
	return validLength("base height", b.Height)
}

// LayerSpec is one ring of a stacked profile. Radius is the outer radius
// and Altitude the distance between the bottom of the layer and the base line.
type LayerSpec struct {
	Radius    float64
	Height    float64
	Thickness float64
	Altitude  float64
}

// Validate checks 0 < Thickness < Radius and a positive height.
func (l LayerSpec) Validate() error {
	r := Ring{Radius: l.Radius, Thickness: l.Thickness}
	if err := r.Validate(); err != nil {
		return err
	}
	if err := validLength("layer height", l.Height); err != nil {
		return err
	}
	if l.Altitude < 0 {
		return invalidf("layer altitude %g < 0", l.Altitude)
	}
	return nil
}

// Stack places layers on top of a base of height baseHeight, bottom to top.
// The returned copies carry their accumulated Altitude; input altitudes are ignored.
func Stack(baseHeight float64, layers []LayerSpec) ([]LayerSpec, error) {
	if err := validLength("base height", baseHeight); err != nil {
		return nil, err
	}
	stacked := make([]LayerSpec, len(layers))
	altitude := baseHeight
	for i, l := range layers {
		l.Altitude = altitude
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		stacked[i] = l
		altitude += l.Height
	}
	return stacked, nil
}
