package neural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pvto/oh-neural/activation"
	"github.com/pvto/oh-neural/rng"
)

// LayerID is the handle of a Layer within its Network. IDs are assigned in order of creation,
// starting at zero.
type LayerID int

// Network is the arena that owns every Layer. Layers refer to each other only by LayerID, so the
// Network is the only place that holds them.
//
// A Network is not safe for concurrent use.
type Network struct {
	layers []*Layer

	rng  rng.RNG
	init Initializer

	// incremented every time an edge is added, so that Graphs know when their cached ordering
	// has gone stale
	version int
}

// Layer is a group of nodes that share one transfer function. A Layer holds its own activations,
// the error signals of the last backward pass, and the weights of every edge coming into it.
type Layer struct {
	id   LayerID
	name string

	// the values of the layer, written by the forward pass (or set by the caller, for layers with
	// no feeding layers)
	activations []float64

	// the values given to the transfer function on the last forward pass, after gating
	inputs []float64

	// the propagated error of each node, and that error scaled by the derivative of the transfer
	// function. Both are written by the backward pass.
	errorTerms  []float64
	errorDeltas []float64

	// feeding holds the layers this one reads from, receiving those that read from this one. They
	// are only changed together, by Connect.
	feeding   []LayerID
	receiving []LayerID

	// the total number of values across all feeding layers
	fanIn int

	// weights[k] has a row for each node in this layer and a column for each node in feeding[k]
	weights []*mat.Dense

	input      InputFunction
	gate       GateFunction
	transfer   activation.Func
	delta      activation.Func
	modulation ModulationFunction
}

// Graph is an ordered list of layers. Forward propagation visits layers in this order, so every
// feeding layer should come before the layers it feeds; Connect maintains that for simple
// topologies, but does not guarantee it in general.
//
// A Graph also caches the order used for backpropagation, which it recomputes whenever its own
// membership or its Network's edges change.
type Graph struct {
	ids []LayerID

	// the cached backward order: indexes into ids, receiving layers before their feeding layers
	order []int
	// which Network, at which version, 'order' was computed for
	orderNet     *Network
	orderVersion int
}
