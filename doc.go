// Package axisscale converts screen lengths in points into data lengths for
// a 3D (or 2D) Cartesian plot.
//
// # Overview
//
// A plot shows a box of data ranges from some azimuth and elevation, with a
// data-aspect ratio that sets how long one data unit is along each axis.
// Compute returns three factors, one per axis, such that N points drawn
// along that axis cover N*factor data units. Use them to size markers,
// offset labels or draw arrows of a fixed physical length in data space.
//
// # Quick Start
//
//	import "github.com/gogpu/axisscale"
//
//	res, err := axisscale.Compute(axisscale.Input{
//		Ranges: [3]axisscale.AxisRange{{0, 10}, {0, 10}, {-1, 1}},
//		Aspect: axisscale.AspectRatio{X: 1, Y: 1, Z: 0.2},
//		View: axisscale.View{Azimuth: -37.5, Elevation: 30, Up: axisscale.DefaultUp},
//		Viewport: axisscale.ViewportFromInches(4, 3),
//	})
//	if err != nil {
//		return err
//	}
//	dx := res.PointsToData(axisscale.AxisX, 12) // 12pt along x, in data units
//
// # Host Integration
//
// The computation never reads or mutates a live plot. Hosts implement
// PlotContext, and FromContext takes a Snapshot of it before computing.
// Viewport sizes must be in points; ViewportFromPixels and friends do the
// unit conversion.
//
// # Limitations
//
// Logarithmic axes are rejected with ErrUnsupportedScale. Perspective views
// are computed as orthographic and flagged with DiagPerspectiveApproximated.
// Views that look straight down an axis yield ErrDegenerateProjection.
package axisscale
