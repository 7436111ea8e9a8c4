package neural

import (
	"gonum.org/v1/gonum/mat"

	"github.com/pvto/oh-neural/rng"
)

// InputFunction computes the raw input to a single node. acts[k] holds the activations of the
// k'th feeding layer, and ws[k] the node's weights from that layer; they always have the same
// length. The default InputFunction is Dot.
type InputFunction func(acts, ws [][]float64) float64

// GateFunction combines the raw input to a node with the node's activation from the previous
// forward step. Its result is what the transfer function is given.
type GateFunction func(input, prior float64) float64

// ModulationFunction post-processes a layer's activations when they are read through
// *Network.Output(). It is given the index of the node and its activation. Modulation has no
// effect on forward propagation.
type ModulationFunction func(node int, activation float64) float64

// Initializer dictates how a new weight slab is set. The slab has one row per node of the
// layer and one column per node of the feeding layer that was just connected; by the time the
// Initializer runs, that feeding layer has already been added to the layer.
type Initializer func(*Layer, *mat.Dense, rng.RNG)
