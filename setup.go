package neural

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/pvto/oh-neural/activation"
	"github.com/pvto/oh-neural/rng"
)

// New returns an empty Network that initializes weights with GlorotBengio, using a random source
// seeded from the current time. Use Seed or SetRNG for reproducible results.
func New() *Network {
	return &Network{
		rng:  rng.New(uint64(time.Now().UnixNano())),
		init: GlorotBengio,
	}
}

// Seed replaces the Network's source of randomness with one seeded by the given value, returning
// the Network.
func (net *Network) Seed(seed uint64) *Network {
	net.rng = rng.New(seed)
	return net
}

// SetRNG sets the source of randomness used for initializing weights and for replacing weights
// that became NaN or infinite, returning the Network. SetRNG will panic if r is nil.
func (net *Network) SetRNG(r rng.RNG) *Network {
	if r == nil {
		panic("neural: SetRNG given nil RNG")
	}

	net.rng = r
	return net
}

// SetInitializer sets the Initializer used for new weight slabs, returning the Network. It does
// not affect slabs that already exist. A nil Initializer restores GlorotBengio.
func (net *Network) SetInitializer(init Initializer) *Network {
	if init == nil {
		init = GlorotBengio
	}

	net.init = init
	return net
}

// AddLayer creates a new Layer with the given number of nodes and no edges. The size of a Layer
// cannot be changed afterwards.
func (net *Network) AddLayer(size int) (LayerID, error) {
	if size < 1 {
		return -1, ConfigurationError{"", fmt.Sprintf("layer must have size >= 1 (%d)", size)}
	}

	l := &Layer{
		id:          LayerID(len(net.layers)),
		activations: make([]float64, size),
		inputs:      make([]float64, size),
		errorTerms:  make([]float64, size),
		errorDeltas: make([]float64, size),
		input:       Dot,
	}

	net.layers = append(net.layers, l)
	return l.id, nil
}

// Layer returns the Layer with the given handle, or nil if there is none.
func (net *Network) Layer(id LayerID) *Layer {
	if id < 0 || int(id) >= len(net.layers) {
		return nil
	}

	return net.layers[id]
}

// NumLayers returns the number of layers that have been added to the Network.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

func (net *Network) get(id LayerID) (*Layer, error) {
	l := net.Layer(id)
	if l == nil {
		return nil, errors.Wrapf(ErrUnknownLayer, "LayerID %d", id)
	}

	return l, nil
}

// SetName sets the name used to identify the Layer in errors and in *Layer.String().
func (net *Network) SetName(id LayerID, name string) error {
	l, err := net.get(id)
	if err != nil {
		return err
	}

	l.name = name
	return nil
}

// SetActivation sets the transfer function and its derivative for a Layer, along with the
// optional gate and modulation functions (either may be nil). The transfer and delta functions
// are required.
//
// The transfer function affects weight initialization, so SetActivation should be called before
// the Layer is connected to its feeding layers.
func (net *Network) SetActivation(id LayerID, transfer, delta activation.Func, gate GateFunction, modulation ModulationFunction) error {
	l, err := net.get(id)
	if err != nil {
		return err
	}

	if transfer.IsZero() {
		return ConfigurationError{l.String(), "transfer function is unset"}
	} else if delta.IsZero() {
		return ConfigurationError{l.String(), "delta function is unset"}
	}

	l.transfer = transfer
	l.delta = delta
	l.gate = gate
	l.modulation = modulation
	return nil
}

// SetInputFunction sets how the raw input to each node of the Layer is computed. If fn is nil,
// the default (Dot) is restored.
func (net *Network) SetInputFunction(id LayerID, fn InputFunction) error {
	l, err := net.get(id)
	if err != nil {
		return err
	}

	if fn == nil {
		fn = Dot
	}

	l.input = fn
	return nil
}

// Connect makes the layer 'feeding' an input to the layer 'receiving'. A new weight slab is
// added to 'receiving' and immediately set by the Network's Initializer.
//
// If g is not nil, Connect also places both layers in it: 'feeding' is inserted at the front if
// it is absent, and 'receiving' is inserted just after 'feeding' if it is absent. This keeps
// chains in dependency order no matter which edge is connected first, but Graphs built from more
// complex topologies may still need to be checked with *Graph.Validate().
//
// Connect returns an error (wrapping ErrCycle) if the new edge would make a layer feed itself,
// directly or indirectly. If an error is returned, nothing has been changed.
func (net *Network) Connect(feeding, receiving LayerID, g *Graph) error {
	f, err := net.get(feeding)
	if err != nil {
		return errors.Wrapf(err, "Can't connect feeding layer")
	}

	r, err := net.get(receiving)
	if err != nil {
		return errors.Wrapf(err, "Can't connect receiving layer")
	}

	if r.feedingIndex(feeding) >= 0 {
		return ConfigurationError{r.String(), "already fed by layer " + f.String()}
	} else if net.reaches(receiving, feeding) {
		return errors.Wrapf(ErrCycle, "Can't connect %v to %v", f, r)
	}

	r.feeding = append(r.feeding, feeding)
	f.receiving = append(f.receiving, receiving)
	r.fanIn += f.Size()

	ws := mat.NewDense(r.Size(), f.Size(), nil)
	r.weights = append(r.weights, ws)
	net.init(r, ws, net.rng)

	net.version++

	if g != nil {
		g.place(feeding, receiving)
	}

	return nil
}

// reaches returns whether 'to' can be reached from 'from' by following edges in the direction
// values flow. A layer always reaches itself.
func (net *Network) reaches(from, to LayerID) bool {
	seen := make(map[LayerID]bool)

	var visit func(LayerID) bool
	visit = func(id LayerID) bool {
		if id == to {
			return true
		} else if seen[id] {
			return false
		}

		seen[id] = true
		for _, out := range net.layers[id].receiving {
			if visit(out) {
				return true
			}
		}

		return false
	}

	return visit(from)
}
