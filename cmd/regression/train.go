package main

import (
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	neural "github.com/pvto/oh-neural"
	"github.com/pvto/oh-neural/activation"
	"github.com/pvto/oh-neural/costfuncs"
)

const (
	statusFrequency int = 10

	// early stopping: training is only stopped after this many epochs, once the validation
	// error is both rising and more than 'tolerance' above its best value
	minEpochs int     = 40
	tolerance float64 = 0.05
)

type settings struct {
	hidden  int
	outputs int
	act     activation.Pair
	rate    float64
	epochs  int
	cost    costfuncs.CostFunction
	verbose bool
}

type model struct {
	net     *neural.Network
	g       *neural.Graph
	in, out neural.LayerID
	offsets []int
	rates   [][]float64
}

func build(net *neural.Network, s settings) (*model, error) {
	m := &model{net: net, g: new(neural.Graph)}

	var err error
	if m.in, err = net.AddLayer(1); err != nil {
		return nil, err
	}

	hl, err := net.AddLayer(s.hidden)
	if err != nil {
		return nil, err
	}

	if m.out, err = net.AddLayer(s.outputs); err != nil {
		return nil, err
	}

	net.SetName(m.in, "in")
	net.SetName(hl, "hidden")
	net.SetName(m.out, "out")

	if err = net.SetActivation(hl, s.act.Transfer, s.act.Deriv, nil, nil); err != nil {
		return nil, err
	}
	if err = net.SetActivation(m.out, activation.Linear(1), activation.LinearDeriv(1), nil, nil); err != nil {
		return nil, err
	}

	if err = net.Connect(m.in, hl, m.g); err != nil {
		return nil, err
	}
	if err = net.Connect(hl, m.out, m.g); err != nil {
		return nil, err
	}

	m.offsets = make([]int, m.g.Len())
	m.rates = make([][]float64, m.g.Len())
	for i, id := range m.g.Layers() {
		m.offsets[i] = -1
		if id == m.out {
			m.offsets[i] = 1
		}

		if id != m.in {
			m.rates[i] = make([]float64, net.Layer(id).Size())
			floats.AddConst(s.rate, m.rates[i])
		}
	}

	return m, nil
}

// predict runs the network forward on x, returning the (modulated) outputs
func (m *model) predict(x float64) ([]float64, error) {
	if err := m.net.SetActivations(m.in, []float64{x}); err != nil {
		return nil, err
	}

	if err := m.net.Forward(m.g); err != nil {
		return nil, err
	}

	return m.net.Output(m.out)
}

func (m *model) step(s sample) error {
	if _, err := m.predict(s.x); err != nil {
		return err
	}

	return m.net.Backward(m.g, s.flat(), m.offsets, m.rates)
}

// validate returns the average cost over the samples. Outputs are summed before being compared,
// so a split curve is measured the same way as a single one.
func (m *model) validate(data []sample, cost costfuncs.CostFunction) (float64, error) {
	var total float64
	for _, s := range data {
		outs, err := m.predict(s.x)
		if err != nil {
			return 0, err
		}

		total += cost.Cost([]float64{floats.Sum(outs)}, []float64{floats.Sum(s.targets)})
	}

	return total / float64(len(data)), nil
}

// train runs until the number of epochs is exhausted or the validation error starts climbing,
// returning the number of epochs run and the last validation error
func (m *model) train(trainData, testData []sample, s settings) (int, float64, error) {
	errMin := math.Inf(1)
	var errAgg, errNow float64

	for epoch := 0; epoch < s.epochs; epoch++ {
		for i, smp := range trainData {
			if s.verbose && epoch == 0 && i == 1 {
				log.Printf("Item: %v", smp.flat())
				for _, l := range m.net.Layers() {
					if err := l.Print(os.Stderr); err != nil {
						return epoch, 0, err
					}
				}
			}

			if err := m.step(smp); err != nil {
				return epoch, 0, errors.Wrapf(err, "Training failed at epoch %d, sample %d", epoch, i)
			}
		}

		var err error
		if errNow, err = m.validate(testData, s.cost); err != nil {
			return epoch, 0, errors.Wrapf(err, "Validation failed at epoch %d", epoch)
		}

		errMin = math.Min(errMin, errNow)
		if epoch%statusFrequency == 0 {
			log.Printf("avg %s (%d epochs) = %v", s.cost.TypeString(), epoch, errNow)
		}

		errAgg = (errAgg*3 + errNow) / 4
		if epoch > minEpochs && errNow > errAgg && errNow > errMin+tolerance {
			log.Printf("Stopping early at epoch %d: error %v, best %v", epoch, errNow, errMin)
			return epoch + 1, errNow, nil
		}
	}

	return s.epochs, errNow, nil
}
