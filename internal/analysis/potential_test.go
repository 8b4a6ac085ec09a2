package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePotentialStats(t *testing.T) {
	prices := []float64{10, 20, 30, 40}
	p := ComputePotential(prices, 1)

	assert.Equal(t, 4, p.Steps)
	assert.Equal(t, 10.0, p.MinPrice)
	assert.Equal(t, 40.0, p.MaxPrice)
	assert.InDelta(t, 25.0, p.MeanPrice, 1e-9)
	assert.InDelta(t, 11.5, p.P05Price, 1e-9)
	assert.InDelta(t, 38.5, p.P95Price, 1e-9)
	assert.InDelta(t, 27.0, p.SpreadP95P05, 1e-9)
}

func TestComputePotentialOracle(t *testing.T) {
	// Two prices, hourly steps: the canonical battery starts full (0.5 kWh
	// rounds up on the single-step grid) and its best move is to sell the
	// whole kWh at the higher price.
	p := ComputePotential([]float64{10, 30}, 1)
	assert.InDelta(t, 30.0, p.OracleProfit, 1e-9)

	// Monotonically falling prices: sell immediately.
	p = ComputePotential([]float64{30, 20, 10}, 1)
	assert.InDelta(t, 30.0, p.OracleProfit, 1e-9)
}

func TestComputePotentialHalfHourSteps(t *testing.T) {
	// 0.5 kWh per move, 2 states either side of the half-full start.
	prices := []float64{10, 10, 40, 40}
	p := ComputePotential(prices, 0.5)
	// Buy 0.5 kWh at 10 twice is impossible (starts at 0.5 of 1.0), so:
	// buy 0.5 at 10, then sell 0.5 at 40 twice = -5 + 20 + 20? Only 1.0 kWh
	// stored: buy 0.5 (cost 5), sell 0.5+0.5 (earn 20+20) = 35.
	assert.InDelta(t, 35.0, p.OracleProfit, 1e-9)
}

func TestComputePotentialEmpty(t *testing.T) {
	p := ComputePotential(nil, 1)
	assert.Equal(t, 0, p.Steps)
	assert.Equal(t, 0.0, p.OracleProfit)
}
