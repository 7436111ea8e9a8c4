package activation

import (
	"math"
)

// beyond this magnitude of the scaled input, sigmoid and tanh return their limits directly
const saturation float64 = 100

// ****************************************
// Linear
// ****************************************

// Linear returns f(x) = x * slope.
func Linear(slope float64) Func {
	return parameterized(BaseLinear, slope, Output, func(x float64) float64 {
		return x * slope
	})
}

// LinearDeriv returns the derivative of Linear, which is constantly the slope.
func LinearDeriv(slope float64) Func {
	return parameterized(BaseLinearDeriv, slope, Output, func(float64) float64 {
		return slope
	})
}

// ****************************************
// Sigmoid
// ****************************************

// Sigmoid returns 1 / (1 + e^(steepness*x)). Note the sign of the exponent: between the guards
// the curve falls from 1 towards 0 as steepness*x grows. Outside of them the result is exactly 1
// when steepness*x > 100 and exactly 0 when steepness*x < -100.
func Sigmoid(steepness float64) Func {
	return parameterized(BaseSigmoid, steepness, Output, func(x float64) float64 {
		z := steepness * x
		if z > saturation {
			return 1.0
		} else if z < -saturation {
			return 0.0
		}

		return 1.0 / (1.0 + math.Exp(z))
	})
}

// SigmoidDeriv returns the delta function paired with Sigmoid, given the activation o that
// Sigmoid produced:
//	steepness * o * (1 - o) + 0.1
// The constant term keeps saturated nodes learning (the "flat spot" problem).
func SigmoidDeriv(steepness float64) Func {
	return parameterized(BaseSigmoidDeriv, steepness, Output, func(o float64) float64 {
		return steepness*o*(1.0-o) + 0.1
	})
}

// ****************************************
// Tanh
// ****************************************

func tanh(x, steepness float64) float64 {
	z := steepness * x
	if z > saturation {
		return 1.0
	} else if z < -saturation {
		return -1.0
	}

	return math.Tanh(z)
}

// Tanh returns tanh(steepness*x), saturating to ±1 in the same way as Sigmoid.
func Tanh(steepness float64) Func {
	return parameterized(BaseTanh, steepness, Output, func(x float64) float64 {
		return tanh(x, steepness)
	})
}

// TanhDeriv returns the derivative of Tanh. Unlike SigmoidDeriv, it takes the input to the
// transfer function and recomputes tanh from it: 1 - tanh(x)^2.
func TanhDeriv(steepness float64) Func {
	return parameterized(BaseTanhDeriv, steepness, Input, func(x float64) float64 {
		t := tanh(x, steepness)
		return 1.0 - t*t
	})
}

// ****************************************
// Softsign
// ****************************************

var (
	softsign = Func{base: BaseSoftsign, arg: Output, f: func(x float64) float64 {
		return x / (1.0 + math.Abs(x))
	}}

	softsignDeriv = Func{base: BaseSoftsignDeriv, arg: Input, f: func(x float64) float64 {
		d := 1.0 + math.Abs(x)
		return 1.0 / (d * d)
	}}
)

// Softsign returns x / (1 + |x|). It is similar in shape to Tanh.
func Softsign() Func {
	return softsign
}

// SoftsignDeriv returns 1 / (1 + |x|)^2, in terms of the input to Softsign.
func SoftsignDeriv() Func {
	return softsignDeriv
}

// ****************************************
// Gaussian
// ****************************************

func gaussian(x, sigma float64) float64 {
	return math.Exp(-(x * x) / (2 * sigma * sigma))
}

// Gaussian returns the bell curve e^(-x^2 / (2*sigma^2)).
func Gaussian(sigma float64) Func {
	return parameterized(BaseGaussian, sigma, Output, func(x float64) float64 {
		return gaussian(x, sigma)
	})
}

// GaussianDeriv returns gaussian(x) * (-x / sigma^2), in terms of the input to Gaussian.
func GaussianDeriv(sigma float64) Func {
	return parameterized(BaseGaussianDeriv, sigma, Input, func(x float64) float64 {
		return gaussian(x, sigma) * (-x / (sigma * sigma))
	})
}
