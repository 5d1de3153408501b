package axisscale

import "testing"

func TestPureAxisCornersFollowLayout(t *testing.T) {
	units := [3]Vec3{AxisX: V3(1, 0, 0), AxisY: V3(0, 1, 0), AxisZ: V3(0, 0, 1)}
	for _, a := range axes {
		if got := boxLayout[pureAxisCorner[a]]; got != units[a] {
			t.Errorf("corner for %s = %v, want %v", a, got, units[a])
		}
	}
	if boxLayout[cornerOrigin] != (Vec3{}) {
		t.Errorf("origin corner = %v, want zero", boxLayout[cornerOrigin])
	}
}

func TestBoxLayoutCoversUnitCube(t *testing.T) {
	seen := make(map[Vec3]bool)
	for _, c := range boxLayout {
		for _, v := range []float64{c.X, c.Y, c.Z} {
			if v != 0 && v != 1 {
				t.Fatalf("corner %v is not on the unit cube", c)
			}
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("layout has %d distinct corners, want 8", len(seen))
	}
}

func TestBuildBox(t *testing.T) {
	size := V3(2, 3, 4)
	up := V3(0.1, 0.2, 0.3)
	pts := buildBox(size, up)

	if pts[upIndex] != up {
		t.Errorf("up point = %v, want %v", pts[upIndex], up)
	}
	if want := V3(2, 3, 4); pts[6] != want {
		t.Errorf("far corner = %v, want %v", pts[6], want)
	}
	for _, a := range axes {
		c := pts[pureAxisCorner[a]]
		if c.Length() != size.Component(a) {
			t.Errorf("%s corner %v has length %v, want %v", a, c, c.Length(), size.Component(a))
		}
	}
}
