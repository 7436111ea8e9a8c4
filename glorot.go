package neural

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pvto/oh-neural/activation"
	"github.com/pvto/oh-neural/rng"
)

// GlorotFactor returns the width of the range that GlorotBengio draws weights from for the
// given Layer (Glorot & Bengio, 2010):
//	2 * sqrt(6) / sqrt(size + fan-in)
// multiplied by 4 if the Layer's transfer function is a sigmoid. A Layer without feeding layers
// always has a factor of exactly 1.
func GlorotFactor(l *Layer) float64 {
	if len(l.feeding) == 0 {
		return 1.0
	}

	factor := 2.0 * math.Sqrt(6.0) / math.Sqrt(float64(l.Size()+l.fanIn))
	if l.transfer.Base() == activation.BaseSigmoid {
		factor *= 4.0
	}

	return factor
}

// GlorotBengio is the default Initializer. It fills the slab, row by row, with values drawn
// uniformly from [-0.5*f, 0.5*f), where f is GlorotFactor(l).
//
// Because the factor depends on the transfer function, layers should be given their activation
// before they are connected.
func GlorotBengio(l *Layer, ws *mat.Dense, r rng.RNG) {
	half := 0.5 * GlorotFactor(l)
	fill(ws, r, -half, half)
}

// Uniform returns an Initializer that draws weights uniformly from [lower, upper), independent of
// the size of the layer. If lower > upper, they are swapped.
func Uniform(lower, upper float64) Initializer {
	if lower > upper {
		lower, upper = upper, lower
	}

	return func(l *Layer, ws *mat.Dense, r rng.RNG) {
		fill(ws, r, lower, upper)
	}
}

func fill(ws *mat.Dense, r rng.RNG, lower, upper float64) {
	rows, cols := ws.Dims()
	for i := 0; i < rows; i++ {
		row := ws.RawRowView(i)
		for j := 0; j < cols; j++ {
			row[j] = r.Uniform(lower, upper)
		}
	}
}
