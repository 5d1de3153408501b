package axisscale

// PointsPerInch is the number of typographic points in one inch.
const PointsPerInch = 72

const centimetersPerInch = 2.54

// ViewportFromPixels converts a pixel size at the given resolution to a
// Viewport in points.
func ViewportFromPixels(width, height, dpi float64) Viewport {
	s := PointsPerInch / dpi
	return Viewport{Width: width * s, Height: height * s}
}

// ViewportFromInches converts a size in inches to a Viewport in points.
func ViewportFromInches(width, height float64) Viewport {
	return Viewport{Width: width * PointsPerInch, Height: height * PointsPerInch}
}

// ViewportFromCentimeters converts a size in centimeters to a Viewport in
// points.
func ViewportFromCentimeters(width, height float64) Viewport {
	return ViewportFromInches(width/centimetersPerInch, height/centimetersPerInch)
}
