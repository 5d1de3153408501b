package axisscale

import "fmt"

// Axis identifies one of the three Cartesian data axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// axes lists every axis in index order.
var axes = [...]Axis{AxisX, AxisY, AxisZ}

// String returns the lower-case axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisRange is the visible data interval along one axis.
type AxisRange struct {
	Min, Max float64
}

// Extent returns Max - Min.
func (r AxisRange) Extent() float64 {
	return r.Max - r.Min
}

// AspectRatio is the data-aspect ratio: the relative length, in equal-length
// world units, that one data unit occupies along each axis.
// All components must be strictly positive.
type AspectRatio struct {
	X, Y, Z float64
}

// Vec returns the ratio as a vector.
func (r AspectRatio) Vec() Vec3 {
	return Vec3(r)
}

// Normalize converts a data-space vector into equal-length world space by
// dividing each component by the matching ratio component.
func (r AspectRatio) Normalize(v Vec3) Vec3 {
	return v.DivElem(r.Vec())
}

// View is a camera orientation: azimuth and elevation in degrees plus the
// direction that should appear upward on screen.
type View struct {
	Azimuth   float64
	Elevation float64
	Up        Vec3
}

// DefaultUp is the conventional camera up-vector, world +z.
var DefaultUp = Vec3{X: 0, Y: 0, Z: 1}

// Viewport is the physical size of the plotting region in points.
type Viewport struct {
	Width, Height float64
}

// ProjectionMode selects how the host renders the 3D scene.
type ProjectionMode int

const (
	// Orthographic is parallel projection. It is the zero value.
	Orthographic ProjectionMode = iota

	// Perspective is computed as Orthographic and reported with
	// DiagPerspectiveApproximated, since a perspective view has no single
	// per-axis conversion factor.
	Perspective
)

// String returns the lower-case mode name.
func (m ProjectionMode) String() string {
	switch m {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", int(m))
	}
}

// ScaleKind is the spacing of an axis scale.
type ScaleKind int

const (
	// Linear is equal-interval spacing. It is the zero value.
	Linear ScaleKind = iota

	// Log is logarithmic spacing, which Compute rejects.
	Log
)

// String returns the lower-case scale name.
func (k ScaleKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return fmt.Sprintf("ScaleKind(%d)", int(k))
	}
}

// Input is a frozen snapshot of every value the computation needs.
// Ranges and Scales are indexed by Axis.
type Input struct {
	Ranges     [3]AxisRange
	Aspect     AspectRatio
	View       View
	Viewport   Viewport
	Projection ProjectionMode
	Scales     [3]ScaleKind
}

// extents returns the data extent of each axis as a vector.
func (in Input) extents() Vec3 {
	return Vec3{
		X: in.Ranges[AxisX].Extent(),
		Y: in.Ranges[AxisY].Extent(),
		Z: in.Ranges[AxisZ].Extent(),
	}
}

// DiagnosticCode classifies an advisory diagnostic.
type DiagnosticCode int

const (
	// DiagPerspectiveApproximated reports that a perspective view was
	// computed with the orthographic approximation.
	DiagPerspectiveApproximated DiagnosticCode = iota + 1

	// DiagExtraArgumentsIgnored reports that plot contexts beyond the
	// first were ignored.
	DiagExtraArgumentsIgnored
)

// String returns a short identifier for the code.
func (c DiagnosticCode) String() string {
	switch c {
	case DiagPerspectiveApproximated:
		return "perspective-approximated"
	case DiagExtraArgumentsIgnored:
		return "extra-arguments-ignored"
	default:
		return fmt.Sprintf("DiagnosticCode(%d)", int(c))
	}
}

// Diagnostic is a non-fatal notice attached to a Result.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
}

// String formats the diagnostic as "code: message".
func (d Diagnostic) String() string {
	return d.Code.String() + ": " + d.Message
}
