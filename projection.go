package axisscale

import "math"

// orthoProjector maps world-space points onto the view plane for one
// azimuth/elevation pair.
type orthoProjector struct {
	right, up Vec3
}

// newOrthoProjector builds the projection rows for angles in degrees:
//
//	right = [ cos(az),           sin(az),          0       ]
//	up    = [ -sin(az)*sin(el),  cos(az)*sin(el),  cos(el) ]
func newOrthoProjector(azimuth, elevation float64) orthoProjector {
	sa, ca := math.Sincos(radians(azimuth))
	se, ce := math.Sincos(radians(elevation))
	return orthoProjector{
		right: Vec3{X: ca, Y: sa, Z: 0},
		up:    Vec3{X: -sa * se, Y: ca * se, Z: ce},
	}
}

// Project returns the view-plane coordinates of v.
func (p orthoProjector) Project(v Vec3) Point {
	return Point{X: p.right.Dot(v), Y: p.up.Dot(v)}
}

// ViewMatrix returns the 4x4 homogeneous orthographic view matrix for the
// given azimuth and elevation in degrees. The first two rows produce the
// view-plane coordinates, the third the depth along the line of sight.
//
// ViewMatrix(az, el).Project(v) agrees with the projection Compute uses.
func ViewMatrix(azimuth, elevation float64) Mat4 {
	sa, ca := math.Sincos(radians(azimuth))
	se, ce := math.Sincos(radians(elevation))
	return Mat4{
		{ca, sa, 0, 0},
		{-sa * se, ca * se, ce, 0},
		{ce * sa, -ce * ca, se, 0},
		{0, 0, 0, 1},
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
