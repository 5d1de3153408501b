package axisscale

import (
	"math"
	"testing"
)

func TestViewMatrixMatchesProjector(t *testing.T) {
	points := []Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 10, Y: -20, Z: 5},
		{X: 0.25, Y: 3.5, Z: -7},
	}
	for az := -180.0; az <= 180; az += 22.5 {
		for el := -90.0; el <= 90; el += 15 {
			p := newOrthoProjector(az, el)
			m := ViewMatrix(az, el)
			for _, v := range points {
				got := m.Project(v)
				want := p.Project(v)
				if !got.Approx(want, 1e-12) {
					t.Errorf("az=%v el=%v: ViewMatrix.Project(%v) = %v, projector = %v", az, el, v, got, want)
				}
			}
		}
	}
}

func TestViewMatrixRowsOrthonormal(t *testing.T) {
	for _, view := range [][2]float64{{0, 0}, {-37.5, 30}, {90, 45}, {200, -60}} {
		m := ViewMatrix(view[0], view[1])
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				var dot float64
				for k := 0; k < 3; k++ {
					dot += m[i][k] * m[j][k]
				}
				want := 0.0
				if i == j {
					want = 1
				}
				if math.Abs(dot-want) > 1e-12 {
					t.Errorf("view %v: row%d . row%d = %v, want %v", view, i, j, dot, want)
				}
			}
		}
	}
}

func TestOrthoProjectorKnownViews(t *testing.T) {
	tests := []struct {
		name   string
		az, el float64
		in     Vec3
		want   Point
	}{
		{"top view keeps x", 0, 90, V3(3, 0, 0), Pt(3, 0)},
		{"top view keeps y", 0, 90, V3(0, 4, 0), Pt(0, 4)},
		{"top view drops z", 0, 90, V3(0, 0, 5), Pt(0, 0)},
		{"front view z is up", 0, 0, V3(0, 0, 2), Pt(0, 2)},
		{"front view drops y", 0, 0, V3(0, 7, 0), Pt(0, 0)},
		{"side view y is right", 90, 0, V3(0, 2, 0), Pt(2, 0)},
		{"side view drops x", 90, 0, V3(6, 0, 0), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newOrthoProjector(tt.az, tt.el).Project(tt.in)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("Project(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUpAlignment(t *testing.T) {
	ups := []Point{
		Pt(0, 1),
		Pt(1, 0),
		Pt(-1, 0),
		Pt(0, -2),
		Pt(3, 4),
		Pt(-0.5, -0.25),
		Pt(1e-3, 1e3),
	}
	for _, up := range ups {
		got := upAlignment(up).TransformPoint(up)
		if math.Abs(got.X) > 1e-12*up.Length() {
			t.Errorf("aligned %v has X = %v, want 0", up, got.X)
		}
		if math.Abs(got.Y-up.Length()) > 1e-12*up.Length() {
			t.Errorf("aligned %v has Y = %v, want %v", up, got.Y, up.Length())
		}
	}
}

func TestAlignCornersKeepsOrigin(t *testing.T) {
	var proj [pointCount]Point
	proj[cornerX] = Pt(2, 0)
	proj[upIndex] = Pt(1, 0)
	got := alignCorners(proj)
	if got[cornerOrigin] != (Point{}) {
		t.Errorf("origin = %v, want (0, 0)", got[cornerOrigin])
	}
	// Up points along +x, so the whole frame turns a quarter turn.
	if !got[cornerX].Approx(Pt(0, 2), 1e-12) {
		t.Errorf("x corner = %v, want (0, 2)", got[cornerX])
	}
}
