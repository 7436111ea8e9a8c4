package neural

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dot is the default InputFunction: the weighted sum of every feeding activation.
func Dot(acts, ws [][]float64) float64 {
	var sum float64
	for k := range acts {
		sum += floats.Dot(acts[k], ws[k])
	}

	return sum
}

// Distance is an InputFunction that treats a node's weights as a point, and returns the euclidean
// distance between it and the feeding activations.
func Distance(acts, ws [][]float64) float64 {
	var sum float64
	for k := range acts {
		d := floats.Distance(acts[k], ws[k], 2)
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Momentum returns a GateFunction that blends each new input with the node's previous activation:
//	(1 - rate) * input + rate * prior
func Momentum(rate float64) GateFunction {
	return func(input, prior float64) float64 {
		return (1-rate)*input + rate*prior
	}
}
