package axisscale

// Indices into the projected point set. The corner indices follow the order
// of boxLayout; the up-vector is appended after the last corner.
const (
	cornerOrigin = 0
	cornerX      = 1
	cornerY      = 3
	cornerZ      = 4
	cornerCount  = len(boxLayout)
	upIndex      = cornerCount
	pointCount   = cornerCount + 1
)

// boxLayout is the unit-box corner construction order.
var boxLayout = [8]Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

// pureAxisCorner maps each axis to the corner reached from the origin by
// moving along that axis alone.
var pureAxisCorner = [3]int{
	AxisX: cornerX,
	AxisY: cornerY,
	AxisZ: cornerZ,
}

// buildBox returns the box corners scaled to size, followed by up.
// Both arguments are already in equal-length world units.
func buildBox(size, up Vec3) [pointCount]Vec3 {
	var pts [pointCount]Vec3
	for i, off := range boxLayout {
		pts[i] = off.MulElem(size)
	}
	pts[upIndex] = up
	return pts
}
