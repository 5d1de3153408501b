package axisscale

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Rotate creates a rotation matrix (angle in radians, counter-clockwise).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Mat4 is a 4x4 homogeneous transformation matrix in row-major order.
// Points are treated as column vectors [x y z 1].
type Mat4 [4][4]float64

// Transform applies m to v and returns the homogeneous result.
func (m Mat4) Transform(v Vec3) (x, y, z, w float64) {
	row := func(i int) float64 {
		return m[i][0]*v.X + m[i][1]*v.Y + m[i][2]*v.Z + m[i][3]
	}
	return row(0), row(1), row(2), row(3)
}

// Project applies m to v, divides by w and drops the depth coordinate.
func (m Mat4) Project(v Vec3) Point {
	x, y, _, w := m.Transform(v)
	return Point{X: x / w, Y: y / w}
}
