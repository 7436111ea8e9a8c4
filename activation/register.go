package activation

import (
	"math"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Pair is a transfer function together with the derivative used to train it.
type Pair struct {
	Transfer Func
	Deriv    Func
}

// Constructor builds a Pair from a single parameter. Constructors for parameterless functions
// ignore it.
type Constructor func(param float64) (Pair, error)

var (
	registryMux sync.RWMutex
	registry    map[string]Constructor
)

func init() {
	registry = map[string]Constructor{
		"linear": func(p float64) (Pair, error) {
			return Pair{Linear(p), LinearDeriv(p)}, nil
		},
		"sigmoid": func(p float64) (Pair, error) {
			return Pair{Sigmoid(p), SigmoidDeriv(p)}, nil
		},
		"tanh": func(p float64) (Pair, error) {
			return Pair{Tanh(p), TanhDeriv(p)}, nil
		},
		"softsign": func(float64) (Pair, error) {
			return Pair{Softsign(), SoftsignDeriv()}, nil
		},
		"gaussian": func(p float64) (Pair, error) {
			if p == 0 {
				return Pair{}, errors.Errorf("gaussian sigma must be non-zero")
			}
			return Pair{Gaussian(p), GaussianDeriv(p)}, nil
		},
		"staircase": func(p float64) (Pair, error) {
			steps := int(p)
			if float64(steps) != p || steps < 1 {
				return Pair{}, errors.Errorf("staircase needs a positive whole number of steps (%v)", p)
			}
			return Pair{Staircase(steps), StaircaseDeriv(steps)}, nil
		},
	}
}

// Register adds a named Constructor so that it can be found by Lookup. Names must be unique.
func Register(name string, c Constructor) error {
	if name == "" {
		return errors.Errorf("Can't register activation, name is empty")
	} else if c == nil {
		return errors.Errorf("Can't register activation %q, constructor is nil", name)
	}

	registryMux.Lock()
	defer registryMux.Unlock()

	if _, ok := registry[name]; ok {
		return errors.Errorf("Can't register activation, name %q is already taken", name)
	}

	registry[name] = c
	return nil
}

// Lookup returns the Pair registered under name, built with the given parameter.
func Lookup(name string, param float64) (Pair, error) {
	if math.IsNaN(param) || math.IsInf(param, 0) {
		return Pair{}, errors.Errorf("Parameter for activation %q is invalid (%v)", name, param)
	}

	registryMux.RLock()
	c, ok := registry[name]
	registryMux.RUnlock()

	if !ok {
		return Pair{}, errors.Errorf("No activation registered with name %q", name)
	}

	p, err := c(param)
	if err != nil {
		return Pair{}, errors.Wrapf(err, "Constructing activation %q failed", name)
	}

	return p, nil
}

// Names returns the sorted names of every registered activation.
func Names() []string {
	registryMux.RLock()
	defer registryMux.RUnlock()

	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}
