// Package rng supplies the uniform random numbers used to initialize and repair weights.
package rng

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RNG needs little explanation: it draws a uniformly distributed value from [lower, upper).
type RNG interface {
	Uniform(lower, upper float64) float64
}

type source struct {
	src rand.Source
}

// New returns an RNG backed by a pseudo-random source with the given seed. Two RNGs with the same
// seed produce the same values.
func New(seed uint64) RNG {
	return &source{rand.NewSource(seed)}
}

// Uniform is the implementation of RNG for New.
func (s *source) Uniform(lower, upper float64) float64 {
	dist := distuv.Uniform{
		Min: lower,
		Max: upper,
		Src: s.src,
	}

	return dist.Rand()
}

type sequence struct {
	units []float64
	next  int
}

// Sequence returns an RNG that cycles through the given values, each of which must be in [0, 1).
// A value u is mapped onto [lower, upper) as lower + u*(upper-lower). Sequence is intended for
// tests that need exact control over initial weights.
//
// Sequence panics if given no values or a value outside of [0, 1).
func Sequence(units ...float64) RNG {
	if len(units) == 0 {
		panic("rng: Sequence given no values")
	}

	for _, u := range units {
		if !(u >= 0 && u < 1) {
			panic("rng: Sequence values must be in [0, 1)")
		}
	}

	us := make([]float64, len(units))
	copy(us, units)
	return &sequence{units: us}
}

// Uniform is the implementation of RNG for Sequence.
func (s *sequence) Uniform(lower, upper float64) float64 {
	u := s.units[s.next]
	s.next = (s.next + 1) % len(s.units)

	return lower + u*(upper-lower)
}
