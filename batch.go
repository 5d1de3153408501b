package axisscale

import "github.com/gogpu/axisscale/internal/parallel"

// ComputeAll computes every input on a pool of worker goroutines, for
// example one input per frame of a camera orbit or per subplot of a figure.
// results[i] and errs[i] belong to inputs[i]; errs[i] is nil on success.
//
// Each input is computed independently, exactly as Compute would.
func ComputeAll(inputs []Input, opts ...Option) (results []Result, errs []error) {
	o := newOptions(opts)
	results = make([]Result, len(inputs))
	errs = make([]error, len(inputs))

	pool := parallel.NewPool(o.workers)
	defer pool.Close()

	pool.Range(len(inputs), func(i int) {
		results[i], errs[i] = Compute(inputs[i], opts...)
	})
	return results, errs
}

// Orbit returns copies of base with the azimuth set to each of azimuths,
// ready for ComputeAll.
func Orbit(base Input, azimuths []float64) []Input {
	out := make([]Input, len(azimuths))
	for i, az := range azimuths {
		out[i] = base
		out[i].View.Azimuth = az
	}
	return out
}
