package main

import (
	"math"

	"github.com/pvto/oh-neural/rng"
)

// sample is a single row of the dataset: the input followed by its targets
type sample struct {
	x       float64
	targets []float64
}

// curve is the function being fit
func curve(x float64) float64 {
	return 1 - (x*x + math.Sin(x*10)*0.2)
}

// thirds gives the index of the output responsible for x when the curve is split between three
// outputs
func thirds(x float64) int {
	switch {
	case x < 0.333:
		return 0
	case x < 0.666:
		return 1
	default:
		return 2
	}
}

// makeDataset draws n inputs from [0, 1). With outputs == 1, each target is the curve itself.
// Otherwise the curve is split into thirds, and only the output covering x is given a non-zero
// target.
func makeDataset(n, outputs int, r rng.RNG) []sample {
	data := make([]sample, n)
	for i := range data {
		x := r.Uniform(0, 1)
		ts := make([]float64, outputs)

		if outputs == 1 {
			ts[0] = curve(x)
		} else {
			ts[thirds(x)] = curve(x)
		}

		data[i] = sample{x, ts}
	}

	return data
}

// flat returns the sample in the layout expected by Backward: the input at index 0, followed by
// the targets
func (s sample) flat() []float64 {
	return append([]float64{s.x}, s.targets...)
}
