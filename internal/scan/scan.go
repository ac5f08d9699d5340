// Package scan samples potentials over distance grids. Potentials are
// immutable, so sampling fans out over worker goroutines without
// synchronization on the potential itself.
package scan

import (
	"errors"
	"runtime"
	"sync"

	"github.com/san-kum/potlab/internal/pot"
)

// ErrScalarMode indicates a sampling mode that does not produce a scalar
// curve (gradients have no single column to fill).
var ErrScalarMode = errors.New("scan: mode does not produce a scalar curve")

const minChunk = 64

// Grid is a uniform distance grid [Rmin, Rmax] with Points samples.
type Grid struct {
	Rmin   float64
	Rmax   float64
	Points int
}

func DefaultGrid() Grid {
	return Grid{Rmin: 0.8, Rmax: 3.0, Points: 200}
}

// Distances materializes the grid points.
func (g Grid) Distances() []float64 {
	if g.Points < 2 {
		return []float64{g.Rmin}
	}
	step := (g.Rmax - g.Rmin) / float64(g.Points-1)
	rs := make([]float64, g.Points)
	for i := range rs {
		rs[i] = g.Rmin + float64(i)*step
	}
	return rs
}

// Series is a sampled curve: V[i] is the requested quantity at R[i].
type Series struct {
	R []float64
	V []float64
}

// Sample evaluates p in the given scalar mode at every grid point, in
// parallel chunks. Gradient mode is rejected with ErrScalarMode; the first
// child error encountered is returned unchanged.
func Sample(p pot.Potential, m pot.Mode, g Grid) (*Series, error) {
	if m == pot.Gradient {
		return nil, ErrScalarMode
	}
	rs := g.Distances()
	vs := make([]float64, len(rs))
	errs := make([]error, len(rs))

	ParallelFor(len(rs), minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			res, err := pot.Call(p, m, pot.Args{R: rs[i]})
			if err != nil {
				errs[i] = err
				return
			}
			vs[i] = res.Scalar
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return &Series{R: rs, V: vs}, nil
}

// ParallelFor executes a function in parallel over a range [0, n)
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.NumCPU()
	if numWorkers > 8 {
		numWorkers = 8
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
