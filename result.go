package axisscale

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Result holds the axis units per point for each axis, plus any advisory
// diagnostics produced while computing them.
type Result struct {
	X, Y, Z     float64
	Diagnostics []Diagnostic
}

// Factor returns the data units per point along axis a.
func (r Result) Factor(a Axis) float64 {
	switch a {
	case AxisX:
		return r.X
	case AxisY:
		return r.Y
	default:
		return r.Z
	}
}

// PointsToData converts a screen length in points to data units along a.
func (r Result) PointsToData(a Axis, pts float64) float64 {
	return pts * r.Factor(a)
}

// DataToPoints converts a data length along a to points.
func (r Result) DataToPoints(a Axis, d float64) float64 {
	return d / r.Factor(a)
}

// FixedToData converts a 26.6 fixed-point length in points to data units
// along a.
func (r Result) FixedToData(a Axis, v fixed.Int26_6) float64 {
	return r.PointsToData(a, float64(v)/64)
}

// TextAdvance returns the advance width of s, set in face, in data units
// along a. The face must be sized at 72 DPI so that its pixels are points,
// as opentype.NewFace does with DPI: 72.
func (r Result) TextAdvance(a Axis, face font.Face, s string) float64 {
	return r.FixedToData(a, font.MeasureString(face, s))
}

// HasDiagnostic reports whether r carries a diagnostic with the given code.
func (r Result) HasDiagnostic(code DiagnosticCode) bool {
	for _, d := range r.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}
