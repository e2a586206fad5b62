package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridlife/pkg/sims/life"
)

func smallBoard() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	return cfg
}

func TestRunSoupEmptyBoardSettlesImmediately(t *testing.T) {
	res := runSoup(smallBoard(), soup{seed: 1, density: 0}, 10)
	require.True(t, res.settled)
	require.Equal(t, uint64(0), res.settleGen)
	require.Equal(t, uint64(1), res.period)
	require.Zero(t, res.population)
}

func TestRunSoupRespectsStepLimit(t *testing.T) {
	res := runSoup(smallBoard(), soup{seed: 7, density: 0.4}, 0)
	require.False(t, res.settled)
	require.Equal(t, res.peak, res.population)
}

func TestSweepIsDeterministic(t *testing.T) {
	soups := []soup{{1, 0.3}, {2, 0.3}, {3, 0.5}}
	byWorkers := func(workers int) map[soup]soupResult {
		out := map[soup]soupResult{}
		for _, res := range sweep(smallBoard(), soups, 200, workers) {
			out[res.soup] = res
		}
		return out
	}
	one := byWorkers(1)
	require.Len(t, one, len(soups))
	require.Equal(t, one, byWorkers(3))
}

func TestParseDensities(t *testing.T) {
	got, err := parseDensities(" 0.1, 0.5 ,,1")
	require.NoError(t, err)
	require.Equal(t, []float64{0.1, 0.5, 1}, got)

	_, err = parseDensities("0.2,1.5")
	require.Error(t, err)
	_, err = parseDensities(" , ")
	require.Error(t, err)
}
