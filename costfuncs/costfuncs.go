// Package costfuncs provides measures of how far a layer's outputs are from their targets. The
// network itself always trains on the raw difference (target - output); these are for reporting
// progress and deciding when to stop.
package costfuncs

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// CostFunction is a measure of error over a single sample. For all methods, outs and targets have
// the same length.
type CostFunction interface {
	// TypeString returns the name the CostFunction is registered under.
	TypeString() string

	// Cost returns the average cost across every value.
	Cost(outs, targets []float64) float64

	// Derivs returns the derivative of the cost with respect to each output.
	Derivs(outs, targets []float64) []float64
}

var (
	registryMux sync.RWMutex
	registry    = make(map[string]func() CostFunction)
)

func init() {
	list := []func() CostFunction{
		func() CostFunction { return MSE() },
		func() CostFunction { return Abs() },
		func() CostFunction { return CrossEntropy() },
		func() CostFunction { return Huber(1) },
	}

	for _, f := range list {
		if err := Register(f().TypeString(), f); err != nil {
			panic(err.Error())
		}
	}
}

// Register makes a CostFunction available through Get. It returns an error if the name is empty
// or already taken. It is safe to call concurrently with Get and Names.
func Register(name string, f func() CostFunction) error {
	if name == "" {
		return errors.Errorf("Can't register cost function, name is empty")
	} else if f == nil {
		return errors.Errorf("Can't register cost function %q, constructor is nil", name)
	}

	registryMux.Lock()
	defer registryMux.Unlock()

	if _, ok := registry[name]; ok {
		return errors.Errorf("Can't register cost function %q, name is already registered", name)
	}

	registry[name] = f
	return nil
}

// Get returns a new instance of the CostFunction registered under the given name.
func Get(name string) (CostFunction, error) {
	registryMux.RLock()
	f, ok := registry[name]
	registryMux.RUnlock()

	if !ok {
		return nil, errors.Errorf("No cost function registered as %q", name)
	}

	return f(), nil
}

// Names returns every registered name, sorted.
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
