// Package units provides the Length value type used for page geometry.
//
// A Length is stored in English Metric Units (EMU), the native unit of
// Office Open XML measurements. 914400 EMU equal one inch. Constructors
// are provided for the usual publishing units; WordprocessingML page
// geometry is serialized in twips (twentieths of a point), so Twips and
// the Twips() accessor are what the XML layer uses.
package units

import "fmt"

// Length is a distance in English Metric Units.
type Length int64

// EMU counts per unit.
const (
	EmusPerInch Length = 914400
	EmusPerCm   Length = 360000
	EmusPerMm   Length = 36000
	EmusPerPt   Length = 12700
	EmusPerTwip Length = 635
)

// Emu returns a Length of n English Metric Units.
func Emu(n int64) Length {
	return Length(n)
}

// Inches returns a Length of n inches.
func Inches(n float64) Length {
	return Length(n * float64(EmusPerInch))
}

// Cm returns a Length of n centimeters.
func Cm(n float64) Length {
	return Length(n * float64(EmusPerCm))
}

// Mm returns a Length of n millimeters.
func Mm(n float64) Length {
	return Length(n * float64(EmusPerMm))
}

// Pt returns a Length of n points.
func Pt(n float64) Length {
	return Length(n * float64(EmusPerPt))
}

// Twips returns a Length of n twentieths of a point.
func Twips(n int64) Length {
	return Length(n) * EmusPerTwip
}

// Emu returns the length as a count of English Metric Units.
func (l Length) Emu() int64 {
	return int64(l)
}

// Inches returns the length in inches.
func (l Length) Inches() float64 {
	return float64(l) / float64(EmusPerInch)
}

// Cm returns the length in centimeters.
func (l Length) Cm() float64 {
	return float64(l) / float64(EmusPerCm)
}

// Mm returns the length in millimeters.
func (l Length) Mm() float64 {
	return float64(l) / float64(EmusPerMm)
}

// Pt returns the length in points.
func (l Length) Pt() float64 {
	return float64(l) / float64(EmusPerPt)
}

// Twips returns the length in twentieths of a point, truncated toward zero.
func (l Length) Twips() int64 {
	return int64(l / EmusPerTwip)
}

func (l Length) String() string {
	return fmt.Sprintf("%d emu", int64(l))
}
