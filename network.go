package neural

import (
	"github.com/pkg/errors"
)

// SetActivations sets the activations of a layer to the given values. This is how inputs are
// given to the Network: Forward never changes the activations of layers without feeding layers.
// SetActivations returns type SizeMismatchError if the number of values doesn't match the size of
// the layer.
func (net *Network) SetActivations(id LayerID, values []float64) error {
	l, err := net.get(id)
	if err != nil {
		return err
	}

	if len(values) != l.Size() {
		return errors.Wrapf(SizeMismatchError{l.Size(), len(values), "activations"}, "Can't set activations of layer %v", l)
	}

	copy(l.activations, values)
	return nil
}

// Output returns a copy of the activations of a layer, passed through its modulation function if
// it has one.
func (net *Network) Output(id LayerID) ([]float64, error) {
	l, err := net.get(id)
	if err != nil {
		return nil, err
	}

	out := dupe(l.activations)
	if l.modulation != nil {
		for i := range out {
			out[i] = l.modulation(i, out[i])
		}
	}

	return out, nil
}

// Layers returns every layer in the Network, ordered by ID. The slice is a copy, but the layers
// are not.
func (net *Network) Layers() []*Layer {
	ls := make([]*Layer, len(net.layers))
	copy(ls, net.layers)
	return ls
}
