package neural

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/pvto/oh-neural/activation"
)

// Forward propagates activations through the Graph, visiting layers in the Graph's order. Layers
// without feeding layers are left as they are; their activations should be set beforehand with
// SetActivations.
//
// Forward does not check that the order of the Graph respects dependencies (see
// *Graph.Validate()). It returns an error if a member does not belong to the Network or if a layer
// with feeding layers has no transfer function, in which case no activations have changed.
func (net *Network) Forward(g *Graph) error {
	if g == nil {
		return errors.Errorf("Can't run forward, graph is nil")
	}

	for i, id := range g.ids {
		l, err := net.get(id)
		if err != nil {
			return errors.Wrapf(err, "Can't run forward, graph member %d is invalid", i)
		} else if !l.IsInput() && l.transfer.IsZero() {
			return ConfigurationError{l.String(), "no transfer function set"}
		}
	}

	for _, id := range g.ids {
		net.layers[id].forward(net)
	}

	return nil
}

// Backward runs a single step of backpropagation through the Graph, updating the weights of every
// layer that has feeding layers.
//
// sample holds target values for the output layers (those with no receiving layers).
// targetOffsets[i] gives the position in sample of the targets for the i'th layer of the Graph,
// and is ignored (conventionally -1) for layers that are not outputs. learningRates[i] holds one
// rate per node of the i'th layer, and may be nil for layers without feeding layers.
//
// Layers are handled so that every layer comes after all the layers it feeds, each one using the
// already-updated weights of those layers to compute its own error terms. Every argument is
// checked before anything is changed; if an error is returned, the Network is untouched.
func (net *Network) Backward(g *Graph, sample []float64, targetOffsets []int, learningRates [][]float64) error {
	if g == nil {
		return errors.Errorf("Can't run backward, graph is nil")
	} else if len(targetOffsets) != g.Len() {
		return SizeMismatchError{g.Len(), len(targetOffsets), "target offsets"}
	} else if len(learningRates) != g.Len() {
		return SizeMismatchError{g.Len(), len(learningRates), "learning rates"}
	}

	for i, id := range g.ids {
		l, err := net.get(id)
		if err != nil {
			return errors.Wrapf(err, "Can't run backward, graph member %d is invalid", i)
		}

		if l.IsInput() {
			continue
		}

		if l.delta.IsZero() {
			return ConfigurationError{l.String(), "no delta function set"}
		} else if len(learningRates[i]) != l.Size() {
			return errors.Wrapf(SizeMismatchError{l.Size(), len(learningRates[i]), "learning rates"}, "Layer %v", l)
		}

		for _, r := range l.receiving {
			if g.Index(r) < 0 {
				return ConfigurationError{l.String(), fmt.Sprintf("feeds layer %v, which is not in the graph", net.layers[r])}
			}
		}

		if l.IsOutput() {
			off := targetOffsets[i]
			if off < 0 {
				return ConfigurationError{l.String(), "output layer has no target offset"}
			} else if off+l.Size() > len(sample) {
				return ConfigurationError{l.String(), fmt.Sprintf("targets [%d, %d) exceed sample of length %d", off, off+l.Size(), len(sample))}
			}
		}
	}

	order, err := g.backwardOrder(net)
	if err != nil {
		return errors.Wrapf(err, "Can't run backward")
	}

	for _, i := range order {
		l := net.layers[g.ids[i]]
		if l.IsInput() {
			continue
		}

		if l.IsOutput() {
			off := targetOffsets[i]
			floats.SubTo(l.errorTerms, sample[off:off+l.Size()], l.activations)
		} else {
			l.hiddenErrorTerms(net)
		}

		l.backward(net, learningRates[i])
	}

	return nil
}

// forward updates the activations of the layer from its feeding layers
func (l *Layer) forward(net *Network) {
	if len(l.feeding) == 0 {
		return
	}

	acts := make([][]float64, len(l.feeding))
	for k, f := range l.feeding {
		acts[k] = net.layers[f].activations
	}

	ws := make([][]float64, len(l.weights))
	for i := range l.activations {
		for k := range l.weights {
			ws[k] = l.weights[k].RawRowView(i)
		}

		in := l.input(acts, ws)
		if l.gate != nil {
			in = l.gate(in, l.activations[i])
		}

		l.inputs[i] = in
		l.activations[i] = l.transfer.Apply(in)
	}
}

// hiddenErrorTerms sets the error terms of a layer with receiving layers to the sum of their
// error terms, weighted by the edges between them. The derivative of this layer is applied
// later, by backward.
func (l *Layer) hiddenErrorTerms(net *Network) {
	for j := range l.errorTerms {
		l.errorTerms[j] = 0
	}

	for _, id := range l.receiving {
		r := net.layers[id]
		ws := r.weights[r.feedingIndex(l.id)]

		for i, e := range r.errorTerms {
			floats.AddScaled(l.errorTerms, e, ws.RawRowView(i))
		}
	}
}

// backward applies the delta rule to every weight coming into the layer, given its error terms.
// Weights that would become NaN or infinite are instead replaced by a random value in
// [-0.5, 0.5).
func (l *Layer) backward(net *Network, learningRates []float64) {
	corrections := make([]float64, len(l.activations))
	for i := range l.activations {
		arg := l.activations[i]
		if l.delta.Arg() == activation.Input {
			arg = l.inputs[i]
		}

		l.errorDeltas[i] = l.delta.Apply(arg) * l.errorTerms[i]
		corrections[i] = learningRates[i] * l.errorDeltas[i]
	}

	for k, f := range l.feeding {
		acts := net.layers[f].activations

		for i, c := range corrections {
			row := l.weights[k].RawRowView(i)
			floats.AddScaled(row, c, acts)

			for j, w := range row {
				if !isFinite(w) {
					row[j] = net.rng.Uniform(-0.5, 0.5)
				}
			}
		}
	}
}
