package axisscale

import "math"

// Compute returns the data length per point along each axis for the view
// described by in.
//
// The box spanned by the axis ranges is normalized by the aspect ratio,
// projected orthographically, and rotated so the camera up-vector points up.
// The tighter of the two viewport/span ratios gives the points per world
// unit; each axis factor is its data extent divided by the on-screen length
// of its box edge.
//
// Errors wrap ErrUnsupportedScale, ErrInvalidInput or
// ErrDegenerateProjection. On error the returned Result is zero.
// A perspective input is computed as orthographic and reported in
// Result.Diagnostics.
func Compute(in Input, opts ...Option) (Result, error) {
	o := newOptions(opts)

	diags, err := validate(in)
	if err != nil {
		return Result{}, err
	}

	size := in.Aspect.Normalize(in.extents())
	pts := buildBox(size, in.Aspect.Normalize(in.View.Up))

	proj := newOrthoProjector(in.View.Azimuth, in.View.Elevation)
	var flat [pointCount]Point
	for i, p := range pts {
		flat[i] = proj.Project(p)
	}
	corners := alignCorners(flat)

	spanX, spanY := spans(corners)
	limit := o.tolerance * size.Length()
	if !(spanX > limit) {
		return Result{}, &DegenerateError{What: "horizontal span", Length: spanX}
	}
	if !(spanY > limit) {
		return Result{}, &DegenerateError{What: "vertical span", Length: spanY}
	}

	ppu := math.Min(in.Viewport.Width/spanX, in.Viewport.Height/spanY)

	var factors [3]float64
	origin := corners[cornerOrigin]
	for _, a := range axes {
		l := corners[pureAxisCorner[a]].Sub(origin).Length()
		if !(l > o.tolerance*size.Component(a)) {
			return Result{}, &DegenerateError{What: a.String() + " axis", Length: l}
		}
		factors[a] = in.Ranges[a].Extent() / (ppu * l)
	}

	o.logger.Debug("axisscale: computed",
		"spanX", spanX, "spanY", spanY, "pointsPerUnit", ppu,
		"x", factors[AxisX], "y", factors[AxisY], "z", factors[AxisZ])
	logDiagnostics(o.logger, diags)

	return Result{
		X:           factors[AxisX],
		Y:           factors[AxisY],
		Z:           factors[AxisZ],
		Diagnostics: diags,
	}, nil
}

// spans returns the width and height of the bounding rectangle of pts.
func spans(pts [cornerCount]Point) (w, h float64) {
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return maxX - minX, maxY - minY
}
