package neural

import (
	"fmt"

	"github.com/pkg/errors"
)

// NewGraph returns a Graph holding the given layers, in order. Duplicates are ignored.
func NewGraph(ids ...LayerID) *Graph {
	g := new(Graph)
	for _, id := range ids {
		g.Add(id)
	}

	return g
}

// Len returns the number of layers in the Graph.
func (g *Graph) Len() int {
	return len(g.ids)
}

// Layers returns a copy of the Graph's layers, in order.
func (g *Graph) Layers() []LayerID {
	ids := make([]LayerID, len(g.ids))
	copy(ids, g.ids)
	return ids
}

// Index returns the position of the layer in the Graph, or -1 if it is not a member.
func (g *Graph) Index(id LayerID) int {
	for i, m := range g.ids {
		if m == id {
			return i
		}
	}

	return -1
}

// Add appends the layer to the end of the Graph, if it is not already a member.
func (g *Graph) Add(id LayerID) {
	if g.Index(id) >= 0 {
		return
	}

	g.ids = append(g.ids, id)
	g.order = nil
}

func (g *Graph) insert(pos int, id LayerID) {
	g.ids = append(g.ids, 0)
	copy(g.ids[pos+1:], g.ids[pos:])
	g.ids[pos] = id
	g.order = nil
}

// place puts a newly connected pair of layers into the Graph: the feeding layer at the front if
// absent, then the receiving layer just after it if absent
func (g *Graph) place(feeding, receiving LayerID) {
	f := g.Index(feeding)
	if f < 0 {
		g.insert(0, feeding)
		f = 0
	}

	if g.Index(receiving) < 0 {
		g.insert(f+1, receiving)
	}
}

// Validate checks that every layer in the Graph belongs to the Network, and that every feeding
// layer that is a member of the Graph comes before the layers it feeds. Forward propagation
// relies on the latter but does not check it.
func (g *Graph) Validate(net *Network) error {
	for i, id := range g.ids {
		l, err := net.get(id)
		if err != nil {
			return errors.Wrapf(err, "Graph member %d is invalid", i)
		}

		for _, f := range l.feeding {
			if p := g.Index(f); p > i {
				return ConfigurationError{l.String(), fmt.Sprintf("placed at %d, before its feeding layer %v at %d", i, net.layers[f], p)}
			}
		}
	}

	return nil
}

// backwardOrder returns indexes into g.ids such that every layer comes after all of the layers it
// feeds. The result is cached until the Graph or the Network's edges change.
func (g *Graph) backwardOrder(net *Network) ([]int, error) {
	if g.order != nil && g.orderNet == net && g.orderVersion == net.version {
		return g.order, nil
	}

	// Kahn's algorithm over the members of the Graph, starting from the layers with no feeding
	// members. Ties are broken by position in the Graph.
	pending := make([]int, len(g.ids))
	for i, id := range g.ids {
		for _, f := range net.layers[id].feeding {
			if g.Index(f) >= 0 {
				pending[i]++
			}
		}
	}

	var ready []int
	for i := range g.ids {
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}

	sorted := make([]int, 0, len(g.ids))
	for len(ready) != 0 {
		i := ready[0]
		ready = ready[1:]
		sorted = append(sorted, i)

		for _, out := range net.layers[g.ids[i]].receiving {
			if o := g.Index(out); o >= 0 {
				pending[o]--
				if pending[o] == 0 {
					ready = append(ready, o)
				}
			}
		}
	}

	if len(sorted) != len(g.ids) {
		return nil, errors.Wrapf(ErrCycle, "Can't order graph, only %d of %d layers resolved", len(sorted), len(g.ids))
	}

	// receiving layers must be handled before their feeding layers
	for a, b := 0, len(sorted)-1; a < b; a, b = a+1, b-1 {
		sorted[a], sorted[b] = sorted[b], sorted[a]
	}

	g.order = sorted
	g.orderNet = net
	g.orderVersion = net.version
	return sorted, nil
}
