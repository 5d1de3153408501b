package axisscale

import (
	"errors"
	"testing"
)

func TestComputeAllMatchesCompute(t *testing.T) {
	azimuths := make([]float64, 0, 72)
	for az := -180.0; az < 180; az += 5 {
		azimuths = append(azimuths, az)
	}
	inputs := Orbit(testInput(), azimuths)

	for _, workers := range []int{1, 3, 0} {
		results, errs := ComputeAll(inputs, WithWorkers(workers))
		if len(results) != len(inputs) || len(errs) != len(inputs) {
			t.Fatalf("workers=%d: got %d results, %d errors for %d inputs",
				workers, len(results), len(errs), len(inputs))
		}
		for i, in := range inputs {
			want, wantErr := Compute(in)
			if (errs[i] == nil) != (wantErr == nil) {
				t.Errorf("workers=%d az=%v: err = %v, want %v", workers, in.View.Azimuth, errs[i], wantErr)
				continue
			}
			got := results[i]
			if got.X != want.X || got.Y != want.Y || got.Z != want.Z {
				t.Errorf("workers=%d az=%v: %+v, want %+v", workers, in.View.Azimuth, got, want)
			}
		}
	}
}

func TestComputeAllReportsPerInputErrors(t *testing.T) {
	good := testInput()
	logScale := testInput()
	logScale.Scales[AxisZ] = Log
	side := testInput()
	side.View.Azimuth, side.View.Elevation = 0, 0

	results, errs := ComputeAll([]Input{good, logScale, side})
	if errs[0] != nil {
		t.Errorf("errs[0] = %v, want nil", errs[0])
	}
	if !errors.Is(errs[1], ErrUnsupportedScale) {
		t.Errorf("errs[1] = %v, want ErrUnsupportedScale", errs[1])
	}
	if !errors.Is(errs[2], ErrDegenerateProjection) {
		t.Errorf("errs[2] = %v, want ErrDegenerateProjection", errs[2])
	}
	if results[0].X == 0 || results[1].X != 0 || results[2].X != 0 {
		t.Errorf("results = %+v", results)
	}
}

func TestComputeAllEmpty(t *testing.T) {
	results, errs := ComputeAll(nil)
	if len(results) != 0 || len(errs) != 0 {
		t.Errorf("ComputeAll(nil) = %v, %v", results, errs)
	}
}

func TestOrbit(t *testing.T) {
	base := testInput()
	got := Orbit(base, []float64{0, 90})
	if len(got) != 2 || got[0].View.Azimuth != 0 || got[1].View.Azimuth != 90 {
		t.Fatalf("Orbit() = %+v", got)
	}
	if got[1].View.Elevation != base.View.Elevation || got[1].Ranges != base.Ranges {
		t.Error("Orbit changed fields other than azimuth")
	}
}
