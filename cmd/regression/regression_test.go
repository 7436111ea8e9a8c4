package main

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	neural "github.com/pvto/oh-neural"
	"github.com/pvto/oh-neural/activation"
	"github.com/pvto/oh-neural/costfuncs"
	"github.com/pvto/oh-neural/rng"
)

func TestMakeDataset(t *testing.T) {
	data := makeDataset(50, 3, rng.New(1))
	require.Len(t, data, 50)

	for _, s := range data {
		assert.True(t, s.x >= 0 && s.x < 1)
		require.Len(t, s.targets, 3)

		for i, v := range s.targets {
			if i == thirds(s.x) {
				assert.InDelta(t, curve(s.x), v, 1e-12)
			} else {
				assert.Zero(t, v)
			}
		}
	}

	single := makeDataset(1, 1, rng.Sequence(0.5))
	assert.Equal(t, []float64{0.5, curve(0.5)}, single[0].flat())
}

func testSettings(t *testing.T, outputs int) settings {
	pair, err := activation.Lookup("tanh", 1)
	require.NoError(t, err)

	return settings{
		hidden:  8,
		outputs: outputs,
		act:     pair,
		rate:    0.05,
		epochs:  200,
		cost:    costfuncs.Abs(),
	}
}

func TestTrainReducesError(t *testing.T) {
	s := testSettings(t, 1)
	m, err := build(neural.New().Seed(3), s)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, 1}, m.offsets)
	assert.Nil(t, m.rates[0])

	data := makeDataset(100, 1, rng.New(4))
	before, err := m.validate(data[70:], s.cost)
	require.NoError(t, err)

	n, after, err := m.train(data[:70], data[70:], s)
	require.NoError(t, err)
	assert.True(t, n > 0 && n <= s.epochs)
	assert.Less(t, after, before)
}

func TestWriteCSV(t *testing.T) {
	s := testSettings(t, 3)
	m, err := build(neural.New().Seed(5), s)
	require.NoError(t, err)

	data := makeDataset(4, 3, rng.New(6))

	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, m, data))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"X", "T1", "T2", "T3", "O1", "O2", "O3"}, rows[0])
	for _, r := range rows[1:] {
		assert.Len(t, r, 7)
	}
}
