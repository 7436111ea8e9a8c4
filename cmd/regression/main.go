// Command regression trains a small network to fit the curve
//	1 - (x^2 + 0.2*sin(10x))
// on [0, 1), stopping early once the error on held-out samples starts to climb, and writes every
// sample along with the network's outputs as CSV.
//
// With -multi, the curve is split into thirds between three outputs.
package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	neural "github.com/pvto/oh-neural"
	"github.com/pvto/oh-neural/activation"
	"github.com/pvto/oh-neural/costfuncs"
	"github.com/pvto/oh-neural/rng"
)

const (
	numSamples int = 300
	// the fraction of samples used for training; the rest are for validation
	trainFraction float64 = 0.7
)

func main() {
	var (
		epochs  = flag.Int("epochs", 32000, "maximum number of epochs")
		rate    = flag.Float64("rate", 0.01, "learning rate, for every node")
		hidden  = flag.Int("hidden", 25, "size of the hidden layer")
		act     = flag.String("activation", "sigmoid", "hidden activation, one of: "+strings.Join(activation.Names(), ", "))
		param   = flag.Float64("param", 3, "parameter of the hidden activation")
		cost    = flag.String("cost", "abs", "validation cost, one of: "+strings.Join(costfuncs.Names(), ", "))
		seed    = flag.Uint64("seed", 1, "random seed for the dataset and the weights")
		out     = flag.String("out", "", "file to write CSV to (default stdout)")
		multi   = flag.Bool("multi", false, "split the curve between three outputs")
		verbose = flag.Bool("v", false, "print the network before training")
	)
	flag.Parse()

	log.SetPrefix("regression: ")
	log.SetFlags(0)

	pair, err := activation.Lookup(*act, *param)
	if err != nil {
		log.Fatal(err)
	}

	cf, err := costfuncs.Get(*cost)
	if err != nil {
		log.Fatal(err)
	}

	s := settings{
		hidden:  *hidden,
		outputs: 1,
		act:     pair,
		rate:    *rate,
		epochs:  *epochs,
		cost:    cf,
		verbose: *verbose,
	}
	if *multi {
		s.outputs = 3
	}

	net := neural.New().Seed(*seed)
	m, err := build(net, s)
	if err != nil {
		log.Fatal(err)
	}

	data := makeDataset(numSamples, s.outputs, rng.New(*seed+1))
	split := int(float64(len(data)) * trainFraction)

	log.Printf("Training %d-%d-%d network with %v on %d samples", 1, s.hidden, s.outputs, pair.Transfer, split)
	n, final, err := m.train(data[:split], data[split:], s)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Done after %d epochs, avg %s = %v", n, cf.TypeString(), final)

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if err := writeCSV(w, m, data); err != nil {
		log.Fatal(err)
	}
}

// writeCSV writes one row per sample: the input, its targets, then the network's outputs
func writeCSV(w io.Writer, m *model, data []sample) error {
	cw := csv.NewWriter(w)

	outputs := len(data[0].targets)
	header := []string{"X"}
	for i := 1; i <= outputs; i++ {
		header = append(header, "T"+strconv.Itoa(i))
	}
	for i := 1; i <= outputs; i++ {
		header = append(header, "O"+strconv.Itoa(i))
	}

	if err := cw.Write(header); err != nil {
		return errors.Wrapf(err, "Writing CSV header failed")
	}

	format := func(f float64) string {
		return strconv.FormatFloat(f, 'f', 3, 64)
	}

	for i, s := range data {
		outs, err := m.predict(s.x)
		if err != nil {
			return errors.Wrapf(err, "Evaluating sample %d failed", i)
		}

		row := []string{format(s.x)}
		for _, t := range s.targets {
			row = append(row, format(t))
		}
		for _, o := range outs {
			row = append(row, format(o))
		}

		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "Writing CSV row %d failed", i)
		}
	}

	cw.Flush()
	return errors.Wrapf(cw.Error(), "Writing CSV failed")
}
