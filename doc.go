// Package neural provides a small framework for feedforward neural networks whose layers may be
// wired together as any directed acyclic graph.
//
// Creating Networks
//
// Layers live inside a Network and are referred to by their LayerID:
//
//		net := neural.New().Seed(1)
//		in, _ := net.AddLayer(1)
//		hl, _ := net.AddLayer(4)
//		out, _ := net.AddLayer(1)
//
// Each layer (other than those that only hold inputs) needs a transfer function and the derivative
// used to train it. Both come from the subpackage "activation":
//
//		net.SetActivation(hl, activation.Sigmoid(3), activation.SigmoidDeriv(3), nil, nil)
//		net.SetActivation(out, activation.Linear(1), activation.LinearDeriv(1), nil, nil)
//
// The transfer function is taken into account when weights are initialized, so it should be set
// before connecting. Connecting layers creates the weights between them:
//
//		g := new(neural.Graph)
//		net.Connect(in, hl, g)
//		net.Connect(hl, out, g)
//
// The Graph is the order in which layers are evaluated. Connect keeps it in dependency order for
// chains regardless of which edge is added first; more complicated graphs can be checked with
// *Graph.Validate(). Edges that would create a cycle are refused.
//
// Training
//
// A single training step is:
//
//		net.SetActivations(in, x)
//		net.Forward(g)
//		net.Backward(g, sample, offsets, rates)
//
// where 'sample' is a flat slice containing the target values of every output layer, 'offsets'
// gives, for each layer in the Graph, where its targets start in the sample (or -1), and 'rates'
// gives one learning rate per node of each layer. Outputs are read with *Network.Output().
//
// The Network never reports numerical instability: a weight update that would produce NaN or an
// infinity instead resets that weight to a small random value.
//
// Networks are not safe for concurrent use.
package neural
