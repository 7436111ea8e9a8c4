package activation

import (
	"sync"
)

// the quantization levels of a staircase, shared by every staircase with the same number of steps
type stairs struct {
	thresholds []float64
	levels     []float64
	derivs     []float64
}

var (
	stairsMux   sync.Mutex
	stairsCache = make(map[int]*stairs)
)

// the steepness of the tanh curve that the staircase levels are sampled from
const stairSteepness float64 = 3

func stairsFor(steps int) *stairs {
	stairsMux.Lock()
	defer stairsMux.Unlock()

	if s, ok := stairsCache[steps]; ok {
		return s
	}

	f, d := Tanh(stairSteepness), TanhDeriv(stairSteepness)

	s := &stairs{
		thresholds: make([]float64, steps),
		levels:     make([]float64, steps),
		derivs:     make([]float64, steps),
	}

	width := 2.0 / float64(steps)
	t := -1.0 + 0.5*width
	for i := 0; i < steps; i++ {
		s.thresholds[i] = t
		s.levels[i] = f.Apply(t)
		s.derivs[i] = d.Apply(t)
		t += width
	}

	stairsCache[steps] = s
	return s
}

// index returns the index of the first threshold at or above x, or the last index if x is beyond
// every threshold
func (s *stairs) index(x float64) int {
	for i, t := range s.thresholds {
		if t >= x {
			return i
		}
	}

	return len(s.thresholds) - 1
}

// Staircase returns a quantized tanh. The range (-1, 1) is split into 'steps' evenly spaced
// thresholds, and each threshold is given the level tanh(3t). The result for x is the level of
// the first threshold at or above x, or the last level if x is above all of them.
//
// Staircase will panic if steps < 1.
func Staircase(steps int) Func {
	if steps < 1 {
		panic("activation: staircase must have at least one step")
	}

	s := stairsFor(steps)
	return parameterized(BaseStaircase, float64(steps), Output, func(x float64) float64 {
		return s.levels[s.index(x)]
	})
}

// StaircaseDeriv returns the derivative of tanh(3t) at the threshold that Staircase would select
// for x. It takes the input to Staircase.
//
// StaircaseDeriv will panic if steps < 1.
func StaircaseDeriv(steps int) Func {
	if steps < 1 {
		panic("activation: staircase must have at least one step")
	}

	s := stairsFor(steps)
	return parameterized(BaseStaircaseDeriv, float64(steps), Input, func(x float64) float64 {
		return s.derivs[s.index(x)]
	})
}
