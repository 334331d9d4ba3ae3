package ringseg

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
)

const (
	pi = math.Pi
	// MinSegments is the least amount of segments that close a ring.
	MinSegments = 3
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// DegSin returns the sine of an angle given in degrees.
func DegSin(degrees float64) float64 { return math.Sin(DtoR(degrees)) }

// DegCos returns the cosine of an angle given in degrees.
func DegCos(degrees float64) float64 { return math.Cos(DtoR(degrees)) }

// DegTan returns the tangent of an angle given in degrees. Odd multiples
// of 90 degrees yield huge or infinite values.
func DegTan(degrees float64) float64 { return math.Tan(DtoR(degrees)) }

// Distance returns the euclidean distance between two points.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Scale converts between inches and drawing units.
// The original templates were sketched at 50 drawing units per inch.
type Scale float64

// DefaultScale is 50 drawing units per inch.
const DefaultScale Scale = 50

// Inches returns the length in drawing units of a length expressed in inches.
func (s Scale) Inches(in float64) float64 { return in * float64(s) }

// ToInches converts a length in drawing units back to inches.
func (s Scale) ToInches(units float64) float64 { return units / float64(s) }

// Millimetres returns the length in drawing units of a length in millimetres.
func (s Scale) Millimetres(mm float64) float64 { return s.Inches(mm * InchesPerMillimetre) }
