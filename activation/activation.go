// Package activation provides the transfer functions used by layers, along with their first
// derivatives.
//
// Every function is a Func: a plain value that carries the closure, the scalar it was
// parameterized by, and a Base tag naming the function it wraps. The tag is what allows the
// initializers to ask "is this a sigmoid?" without inspecting types.
//
// Derivatives do not all take the same argument. Some are written in terms of the activation the
// transfer function already produced, others in terms of the (pre-activation) input. Arg reports
// which, and callers must pass the matching value.
package activation

import (
	"fmt"
	"strconv"
)

// Base identifies the zero-argument function that a Func wraps.
type Base int8

const (
	None Base = iota
	BaseLinear
	BaseLinearDeriv
	BaseSigmoid
	BaseSigmoidDeriv
	BaseTanh
	BaseTanhDeriv
	BaseSoftsign
	BaseSoftsignDeriv
	BaseGaussian
	BaseGaussianDeriv
	BaseStaircase
	BaseStaircaseDeriv
)

var baseNames = map[Base]string{
	None:               "custom",
	BaseLinear:         "linear",
	BaseLinearDeriv:    "linear'",
	BaseSigmoid:        "sigmoid",
	BaseSigmoidDeriv:   "sigmoid'",
	BaseTanh:           "tanh",
	BaseTanhDeriv:      "tanh'",
	BaseSoftsign:       "softsign",
	BaseSoftsignDeriv:  "softsign'",
	BaseGaussian:       "gaussian",
	BaseGaussianDeriv:  "gaussian'",
	BaseStaircase:      "staircase",
	BaseStaircaseDeriv: "staircase'",
}

func (b Base) String() string {
	if s, ok := baseNames[b]; ok {
		return s
	}

	return "Base(" + strconv.Itoa(int(b)) + ")"
}

// Arg is the argument convention of a Func when it is used as a derivative.
type Arg int8

const (
	// Output marks functions that expect the activation the transfer function produced.
	Output Arg = iota
	// Input marks functions that expect the value given to the transfer function.
	Input
)

func (a Arg) String() string {
	if a == Input {
		return "input"
	}
	return "output"
}

// Func is a single-argument activation function (or derivative) together with the information
// needed to identify it. The zero value is an unset Func; calling it panics.
type Func struct {
	base  Base
	name  string
	param float64
	arg   Arg
	hasP  bool

	f func(float64) float64
}

// Apply evaluates the function at x.
func (fn Func) Apply(x float64) float64 {
	return fn.f(x)
}

// Base returns the tag of the base function wrapped by fn. Custom functions return None.
func (fn Func) Base() Base {
	return fn.base
}

// Param returns the scalar fn was constructed with (the slope, steepness, sigma or number of
// steps). Parameterless functions return 0.
func (fn Func) Param() float64 {
	return fn.param
}

// Arg returns which value fn expects when used as a derivative.
func (fn Func) Arg() Arg {
	return fn.arg
}

// IsZero returns whether fn is unset.
func (fn Func) IsZero() bool {
	return fn.f == nil
}

// String returns the name of the function with its parameter, e.g. "sigmoid(3)".
func (fn Func) String() string {
	if fn.IsZero() {
		return "<unset>"
	}

	name := fn.name
	if name == "" {
		name = fn.base.String()
	}

	if !fn.hasP {
		return name
	}
	return fmt.Sprintf("%s(%v)", name, fn.param)
}

func parameterized(b Base, param float64, arg Arg, f func(float64) float64) Func {
	return Func{base: b, param: param, arg: arg, hasP: true, f: f}
}

// Custom wraps an arbitrary function. Its Base is None, so it is never treated as one of the
// built-in functions.
func Custom(name string, f func(float64) float64, arg Arg) Func {
	if f == nil {
		panic("activation: Custom given nil function")
	}

	return Func{base: None, name: name, arg: arg, f: f}
}
