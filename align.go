package axisscale

import "math"

// upAlignment returns the rotation that turns the projected up-vector to
// point along +Y on the view plane.
func upAlignment(up Point) Matrix {
	return Rotate(math.Pi/2 - up.Atan2())
}

// alignCorners rotates the projected box corners so that the projected
// up-vector points straight up. The up-vector itself is dropped.
func alignCorners(proj [pointCount]Point) [cornerCount]Point {
	m := upAlignment(proj[upIndex])
	var out [cornerCount]Point
	for i := range out {
		out[i] = m.TransformPoint(proj[i])
	}
	return out
}
