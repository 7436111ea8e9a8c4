package costfuncs

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ****************************************
// Mean Squared Error
// ****************************************

type mse struct{}

// MSE returns the mean squared error, halved so that its derivative is simply (out - target).
func MSE() CostFunction {
	return mse{}
}

// L2 is a proxy for MSE
func L2() CostFunction {
	return MSE()
}

func (mse) TypeString() string {
	return "mse"
}

func (mse) Cost(outs, targets []float64) float64 {
	d := floats.Distance(outs, targets, 2)
	return 0.5 * d * d / float64(len(outs))
}

func (mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	floats.SubTo(ds, outs, targets)
	return ds
}

// ****************************************
// Absolute Value
// ****************************************

type abs struct{}

// Abs returns the mean absolute error. This is the measure used for early stopping by the
// regression demo. Its derivative is taken to be zero where an output matches its target.
func Abs() CostFunction {
	return abs{}
}

// L1 is a proxy for Abs
func L1() CostFunction {
	return Abs()
}

func (abs) TypeString() string {
	return "abs"
}

func (abs) Cost(outs, targets []float64) float64 {
	return floats.Distance(outs, targets, 1) / float64(len(outs))
}

func (abs) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		if d := outs[i] - targets[i]; d != 0 {
			ds[i] = math.Copysign(1, d)
		}
	}

	return ds
}

// ****************************************
// Cross Entropy
// ****************************************

type crossEntropy struct{}

// CrossEntropy returns the negative log-likelihood of the targets under the outputs, which should
// be probabilities.
func CrossEntropy() CostFunction {
	return crossEntropy{}
}

func (crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (crossEntropy) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		sum -= targets[i] * math.Log(outs[i])
	}

	return sum / float64(len(outs))
}

func (crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = -targets[i] / outs[i]
	}

	return ds
}

// ****************************************
// Huber
// ****************************************

type huber struct {
	δ float64
}

// Huber returns the Huber loss. δ controls where it transitions from MSE to Absolute Value.
func Huber(δ float64) CostFunction {
	return huber{δ}
}

func (h huber) TypeString() string {
	return "huber"
}

func (h huber) Cost(outs, targets []float64) float64 {
	var sum float64
	for i := range outs {
		d := math.Abs(outs[i] - targets[i])
		if d <= h.δ {
			sum += 0.5 * d * d
		} else {
			sum += h.δ*d - 0.5*h.δ*h.δ
		}
	}

	return sum / float64(len(outs))
}

func (h huber) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		d := outs[i] - targets[i]
		if d >= -h.δ && d <= h.δ {
			ds[i] = d
		} else {
			ds[i] = h.δ * math.Copysign(1, d)
		}
	}

	return ds
}
