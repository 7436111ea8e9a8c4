package neural

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/pvto/oh-neural/activation"
)

// String offers a universal method of identifying a Layer without printing all of its fields.
// String returns the Layer's name in quotes, unless it is empty, in which case it returns:
//	<id: %d, size: %d>
// Finally, if given a Layer that is nil, String will return:
//	<nil>
func (l *Layer) String() string {
	if l == nil {
		return "<nil>"
	}

	if l.name != "" {
		return "\"" + l.name + "\""
	}

	return fmt.Sprintf("<id: %d, size: %d>", l.id, len(l.activations))
}

// ID returns the handle of the Layer within its Network.
func (l *Layer) ID() LayerID {
	return l.id
}

// Name returns the name given by *Network.SetName(). It may be empty.
func (l *Layer) Name() string {
	return l.name
}

// Size returns the number of nodes in the Layer.
func (l *Layer) Size() int {
	return len(l.activations)
}

// IsInput returns whether the Layer has no feeding layers. The activations of such a Layer are
// only ever set by the caller.
func (l *Layer) IsInput() bool {
	return len(l.feeding) == 0
}

// IsOutput returns whether no other layer reads from the Layer. Output layers are given target
// values during backpropagation.
func (l *Layer) IsOutput() bool {
	return len(l.receiving) == 0
}

// Activations returns a copy of the Layer's current activations, without modulation.
func (l *Layer) Activations() []float64 {
	return dupe(l.activations)
}

// Activation returns the activation of the node at the given index. Index-out-of-bounds panics
// are allowed through.
func (l *Layer) Activation(node int) float64 {
	return l.activations[node]
}

// ErrorTerms returns a copy of the error terms from the last backward pass.
func (l *Layer) ErrorTerms() []float64 {
	return dupe(l.errorTerms)
}

// ErrorDeltas returns a copy of the error terms from the last backward pass, scaled by the delta
// function.
func (l *Layer) ErrorDeltas() []float64 {
	return dupe(l.errorDeltas)
}

// Feeding returns a copy of the list of layers this Layer reads from, in order of connection.
func (l *Layer) Feeding() []LayerID {
	ids := make([]LayerID, len(l.feeding))
	copy(ids, l.feeding)
	return ids
}

// Receiving returns a copy of the list of layers that read from this Layer.
func (l *Layer) Receiving() []LayerID {
	ids := make([]LayerID, len(l.receiving))
	copy(ids, l.receiving)
	return ids
}

// NumFeeding returns the number of feeding layers, which is also the number of weight slabs.
func (l *Layer) NumFeeding() int {
	return len(l.feeding)
}

// FanIn returns the total number of values across every feeding layer.
func (l *Layer) FanIn() int {
	return l.fanIn
}

// Transfer returns the transfer function of the Layer. It is the zero Func if unset.
func (l *Layer) Transfer() activation.Func {
	return l.transfer
}

// Delta returns the delta function (derivative) of the Layer. It is the zero Func if unset.
func (l *Layer) Delta() activation.Func {
	return l.delta
}

// Weights returns a copy of the weight slab for the k'th feeding layer. Rows correspond to nodes
// in this Layer, columns to nodes in the feeding layer.
//
// Weights will panic if k is out of range.
func (l *Layer) Weights(k int) *mat.Dense {
	return mat.DenseCopyOf(l.weights[k])
}

// Weight returns the weight from node 'from' of the k'th feeding layer to node 'to' of this
// Layer. Out-of-range indexes panic.
func (l *Layer) Weight(k, to, from int) float64 {
	return l.weights[k].At(to, from)
}

// SetWeight sets a single weight, addressed as in *Layer.Weight(). It returns an error if any
// index is out of range.
func (l *Layer) SetWeight(k, to, from int, w float64) error {
	if k < 0 || k >= len(l.weights) {
		return errors.Errorf("Can't set weight of layer %v, feeding index %d out of range [0, %d)", l, k, len(l.weights))
	}

	r, c := l.weights[k].Dims()
	if to < 0 || to >= r || from < 0 || from >= c {
		return errors.Errorf("Can't set weight of layer %v, (%d, %d) out of range for %dx%d slab", l, to, from, r, c)
	}

	l.weights[k].Set(to, from, w)
	return nil
}

// feedingIndex returns the index of 'id' within the feeding layers, or -1
func (l *Layer) feedingIndex(id LayerID) int {
	for k, f := range l.feeding {
		if f == id {
			return k
		}
	}

	return -1
}

// Print writes the activations of the Layer, followed by each weight slab one row per node.
func (l *Layer) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "N: %v\n", l.activations); err != nil {
		return errors.Wrapf(err, "Printing layer %v failed", l)
	}

	for k := range l.weights {
		if _, err := fmt.Fprintln(w, "->"); err != nil {
			return errors.Wrapf(err, "Printing layer %v failed", l)
		}

		for i := range l.activations {
			if _, err := fmt.Fprintf(w, " %d:%v\n", i, l.weights[k].RawRowView(i)); err != nil {
				return errors.Wrapf(err, "Printing layer %v failed", l)
			}
		}
	}

	return nil
}

func dupe(fs []float64) []float64 {
	d := make([]float64, len(fs))
	copy(d, fs)
	return d
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
