package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
)

// Drawer accepts primitive draw calls in drawing space, where the origin
// is the top left corner and y grows downwards.
type Drawer interface {
	Line(start, end r2.Vec, s Style)
	Circle(center r2.Vec, radius float64, s Style)
	Polygon(points []r2.Vec, s Style)
	Rect(topLeft, size r2.Vec, s Style)
}

// Style is the paint of a primitive. A nil colour is not painted.
type Style struct {
	Stroke color.Color
	Fill   color.Color
	// Width is the stroke width. Zero uses DefaultLineWidth.
	Width vg.Length
}

// DefaultLineWidth is the stroke width of a Style with no width set.
const DefaultLineWidth = vg.Length(1)

func (s Style) lineWidth() vg.Length {
	if s.Width <= 0 {
		return DefaultLineWidth
	}
	return s.Width
}

// Stroked returns a style that strokes with c and does not fill.
func Stroked(c color.Color) Style { return Style{Stroke: c} }

// ParseColor returns the colour of an SVG colour name such as "blue" or a
// hex triplet such as "#2980b9". "none" and the empty string return nil.
func ParseColor(name string) (color.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "" || name == "none":
		return nil, nil
	case strings.HasPrefix(name, "#"):
		return parseHex(name[1:])
	}
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("unknown colour %q", name)
	}
	return c, nil
}

func parseHex(hex string) (color.Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("bad hex colour %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Config holds the canvas and paint of a sketch.
type Config struct {
	// Size is the side of the square canvas in drawing units.
	Size float64
	// Division places the horizontal axis at Size*Division from the top.
	// The vertical axis is always centered.
	Division float64

	Axes    Style
	Ring    Style
	Segment Style
	Profile Style
}

// DefaultConfig returns the configuration of a ring sketch: a 500 unit
// canvas with centered axes, black rings and blue segments.
func DefaultConfig() Config {
	return Config{
		Size:     500,
		Division: 0.5,
		Axes:     Stroked(colornames.Black),
		Ring:     Stroked(colornames.Black),
		Segment:  Stroked(colornames.Blue),
		Profile:  Stroked(colornames.Green),
	}
}

// DefaultProfileConfig is DefaultConfig with the horizontal axis lowered
// near the bottom of the canvas, leaving room for layers to stack upwards.
func DefaultProfileConfig() Config {
	c := DefaultConfig()
	c.Division = 0.9
	return c
}

// Origin returns the intersection of the sketch axes.
func (c Config) Origin() r2.Vec {
	return r2.Vec{X: c.Size * 0.5, Y: c.Size * c.Division}
}

// Validate checks the canvas dimensions.
func (c Config) Validate() error {
	if !(c.Size > 0) {
		return errors.New("canvas size must be positive")
	}
	if c.Division < 0 || c.Division > 1 {
		return fmt.Errorf("axis division %g not in [0, 1]", c.Division)
	}
	return nil
}
