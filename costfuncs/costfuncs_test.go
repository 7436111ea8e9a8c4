package costfuncs

import (
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMSE(t *testing.T) {
	outs := []float64{1, 2, 3}
	targets := []float64{1, 0, 4}

	assert.InDelta(t, 0.5*(0+4+1)/3, MSE().Cost(outs, targets), 1e-12)
	assert.Equal(t, []float64{0, 2, -1}, MSE().Derivs(outs, targets))
	assert.Equal(t, "mse", L2().TypeString())
}

func TestAbs(t *testing.T) {
	outs := []float64{1, 2, 3}
	targets := []float64{1.5, 0, 4}

	assert.InDelta(t, (0.5+2+1)/3, Abs().Cost(outs, targets), 1e-12)
	assert.Equal(t, []float64{-1, 1, -1}, Abs().Derivs(outs, targets))

	// no direction to move in when already on target
	assert.Equal(t, []float64{0, 1, 0}, Abs().Derivs([]float64{2, 1, -0.5}, []float64{2, 0, -0.5}))
	assert.Zero(t, Abs().Cost([]float64{2}, []float64{2}))
}

func TestCrossEntropy(t *testing.T) {
	outs := []float64{0.25, 0.75}
	targets := []float64{0, 1}

	assert.InDelta(t, -math.Log(0.75)/2, CrossEntropy().Cost(outs, targets), 1e-12)
	assert.InDeltaSlice(t, []float64{0, -1 / 0.75}, CrossEntropy().Derivs(outs, targets), 1e-12)
}

func TestHuber(t *testing.T) {
	h := Huber(1)
	outs := []float64{0.5, 3, -3}
	targets := []float64{0, 0, 0}

	assert.InDelta(t, (0.125+2.5+2.5)/3, h.Cost(outs, targets), 1e-12)
	assert.Equal(t, []float64{0.5, 1, -1}, h.Derivs(outs, targets))

	// matches MSE inside δ
	small := []float64{0.1, -0.2}
	assert.InDelta(t, MSE().Cost(small, []float64{0, 0}), h.Cost(small, []float64{0, 0}), 1e-12)
}

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Subset(t, names, []string{"abs", "cross-entropy", "huber", "mse"})
	assert.True(t, sort.StringsAreSorted(names))

	c, err := Get("abs")
	require.NoError(t, err)
	assert.Equal(t, "abs", c.TypeString())

	_, err = Get("nope")
	assert.Error(t, err)

	assert.Error(t, Register("mse", func() CostFunction { return MSE() }))
	assert.Error(t, Register("", func() CostFunction { return MSE() }))
	assert.Error(t, Register("other", nil))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			name := "concurrent-" + string(rune('a'+i))
			assert.NoError(t, Register(name, func() CostFunction { return Abs() }))

			c, err := Get(name)
			assert.NoError(t, err)
			assert.Equal(t, "abs", c.TypeString())
			assert.Contains(t, Names(), name)
		}(i)
	}

	wg.Wait()
}
