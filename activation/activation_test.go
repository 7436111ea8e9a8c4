package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoidSaturates(t *testing.T) {
	for _, steepness := range []float64{0.5, 1, 3, 10} {
		f := Sigmoid(steepness)

		for _, z := range []float64{100.5, 150, 1e6} {
			assert.Equal(t, 1.0, f.Apply(z/steepness), "steepness %v, scaled input %v", steepness, z)
			assert.Equal(t, 0.0, f.Apply(-z/steepness), "steepness %v, scaled input %v", steepness, -z)
		}
	}

	assert.Equal(t, 0.5, Sigmoid(3).Apply(0))
	assert.InDelta(t, 1/(1+math.Exp(3)), Sigmoid(3).Apply(1), 1e-15)
	assert.InDelta(t, 1/(1+math.Exp(-3)), Sigmoid(3).Apply(-1), 1e-15)

	// just inside the guards the exponent is positive for positive inputs
	assert.Less(t, Sigmoid(1).Apply(99), 1e-40)
	assert.Greater(t, Sigmoid(1).Apply(-99), 1-1e-15)
}

func TestSigmoidDerivTakesActivation(t *testing.T) {
	d := SigmoidDeriv(3)
	assert.Equal(t, Output, d.Arg())

	o := Sigmoid(3).Apply(0.2)
	assert.InDelta(t, 3*o*(1-o)+0.1, d.Apply(o), 1e-15)

	// the flat-spot term keeps saturated nodes learning
	assert.Equal(t, 0.1, d.Apply(1))
	assert.Equal(t, 0.1, d.Apply(0))
}

func TestLinear(t *testing.T) {
	assert.Equal(t, 6.0, Linear(2).Apply(3))
	assert.Equal(t, 2.0, LinearDeriv(2).Apply(-17))
	assert.Equal(t, 2.0, LinearDeriv(2).Apply(math.Inf(1)))
}

func TestTanh(t *testing.T) {
	f, d := Tanh(2), TanhDeriv(2)

	assert.InDelta(t, math.Tanh(1), f.Apply(0.5), 1e-15)
	assert.Equal(t, 1.0, f.Apply(60))
	assert.Equal(t, -1.0, f.Apply(-60))

	assert.Equal(t, Input, d.Arg())
	assert.InDelta(t, 1-math.Tanh(1)*math.Tanh(1), d.Apply(0.5), 1e-15)
	assert.Equal(t, 0.0, d.Apply(60))
}

func TestSoftsign(t *testing.T) {
	f, d := Softsign(), SoftsignDeriv()

	assert.Equal(t, 0.0, f.Apply(0))
	assert.Equal(t, 0.5, f.Apply(1))
	assert.Equal(t, -0.5, f.Apply(-1))

	assert.Equal(t, 1.0, d.Apply(0))
	assert.Equal(t, 0.25, d.Apply(1))
	assert.Equal(t, 0.25, d.Apply(-1))
	assert.Equal(t, "softsign", f.String())
}

func TestGaussian(t *testing.T) {
	f, d := Gaussian(2), GaussianDeriv(2)

	assert.Equal(t, 1.0, f.Apply(0))
	assert.InDelta(t, math.Exp(-0.5), f.Apply(2), 1e-15)
	assert.InDelta(t, math.Exp(-0.5)*(-0.5), d.Apply(2), 1e-15)
	assert.Equal(t, 0.0, d.Apply(0))
}

func TestStaircase(t *testing.T) {
	steps := 4
	f, d := Staircase(steps), StaircaseDeriv(steps)

	// thresholds at -0.75, -0.25, 0.25, 0.75
	thresholds := []float64{-0.75, -0.25, 0.25, 0.75}
	levels := make([]float64, steps)
	for i, th := range thresholds {
		levels[i] = math.Tanh(3 * th)
	}

	assert.InDelta(t, levels[0], f.Apply(-5), 1e-15)
	assert.InDelta(t, levels[0], f.Apply(-0.75), 1e-15)
	assert.InDelta(t, levels[1], f.Apply(-0.5), 1e-15)
	assert.InDelta(t, levels[2], f.Apply(0), 1e-15)
	assert.InDelta(t, levels[3], f.Apply(0.5), 1e-15)
	assert.InDelta(t, levels[3], f.Apply(5), 1e-15)

	tanhD := 1 - math.Tanh(3*0.25)*math.Tanh(3*0.25)
	assert.InDelta(t, tanhD, d.Apply(0), 1e-15)

	// levels are increasing
	for i := 1; i < steps; i++ {
		assert.Greater(t, levels[i], levels[i-1])
	}
}

func TestStaircaseCachePerStepCount(t *testing.T) {
	a := stairsFor(5)
	b := stairsFor(5)
	c := stairsFor(7)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Len(t, c.levels, 7)

	// different step counts quantize differently
	assert.NotEqual(t, Staircase(2).Apply(0.1), Staircase(9).Apply(0.1))
}

func TestStaircasePanicsWithoutSteps(t *testing.T) {
	assert.Panics(t, func() { Staircase(0) })
	assert.Panics(t, func() { StaircaseDeriv(-1) })
}

func TestBaseTags(t *testing.T) {
	cases := []struct {
		fn   Func
		base Base
		str  string
	}{
		{Linear(1), BaseLinear, "linear(1)"},
		{LinearDeriv(1), BaseLinearDeriv, "linear'(1)"},
		{Sigmoid(3), BaseSigmoid, "sigmoid(3)"},
		{SigmoidDeriv(3), BaseSigmoidDeriv, "sigmoid'(3)"},
		{Tanh(0.5), BaseTanh, "tanh(0.5)"},
		{Gaussian(2), BaseGaussian, "gaussian(2)"},
		{Staircase(8), BaseStaircase, "staircase(8)"},
		{StaircaseDeriv(8), BaseStaircaseDeriv, "staircase'(8)"},
		{Softsign(), BaseSoftsign, "softsign"},
		{Custom("relu", func(x float64) float64 { return math.Max(x, 0) }, Input), None, "relu"},
	}

	for _, c := range cases {
		assert.Equal(t, c.base, c.fn.Base(), c.str)
		assert.Equal(t, c.str, c.fn.String())
		assert.False(t, c.fn.IsZero())
	}

	assert.Equal(t, 3.0, Sigmoid(3).Param())
	assert.True(t, Func{}.IsZero())
	assert.Equal(t, "<unset>", Func{}.String())
}

func TestLookup(t *testing.T) {
	p, err := Lookup("sigmoid", 3)
	require.NoError(t, err)
	assert.Equal(t, BaseSigmoid, p.Transfer.Base())
	assert.Equal(t, BaseSigmoidDeriv, p.Deriv.Base())
	assert.Equal(t, 3.0, p.Deriv.Param())

	p, err = Lookup("staircase", 8)
	require.NoError(t, err)
	assert.Equal(t, BaseStaircase, p.Transfer.Base())

	_, err = Lookup("staircase", 2.5)
	assert.Error(t, err)

	_, err = Lookup("gaussian", 0)
	assert.Error(t, err)

	_, err = Lookup("nope", 1)
	assert.Error(t, err)

	_, err = Lookup("linear", math.NaN())
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	relu := func(float64) (Pair, error) {
		return Pair{
			Custom("relu", func(x float64) float64 { return math.Max(x, 0) }, Output),
			Custom("relu'", func(x float64) float64 {
				if x > 0 {
					return 1
				}
				return 0
			}, Input),
		}, nil
	}

	require.NoError(t, Register("test-relu", relu))
	assert.Error(t, Register("test-relu", relu))
	assert.Error(t, Register("sigmoid", relu))
	assert.Error(t, Register("", relu))
	assert.Error(t, Register("test-nil", nil))

	assert.Contains(t, Names(), "test-relu")
	assert.Contains(t, Names(), "staircase")

	p, err := Lookup("test-relu", 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Transfer.Apply(2))
	assert.Equal(t, 0.0, p.Deriv.Apply(-2))
}
