// Package analysis offers quick, battery-independent indicators of whether a
// tariff rewards storage at all, before running a full optimization.
package analysis

import (
	"math"
	"sort"
)

// TariffPotential summarizes the arbitrage headroom of an import tariff.
// It combines raw price statistics with the profit of a canonical
// 1 kW / 1 kWh lossless battery that knows the prices in advance.
type TariffPotential struct {
	Steps int

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
	P05Price  float64
	P95Price  float64

	SpreadP95P05 float64

	// OracleProfit is the profit (p) of the canonical battery:
	// 1 kW power, 1 kWh energy, no losses, initial energy 0.5 kWh,
	// choices {-1, 0, +1} kW each timestep.
	OracleProfit float64
}

// ComputePotential summarizes the given import tariff. stepHours is the
// timestep duration in hours.
func ComputePotential(prices []float64, stepHours float64) TariffPotential {
	p := TariffPotential{}
	if len(prices) == 0 || stepHours <= 0 {
		return p
	}
	p.Steps = len(prices)

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	sorted := make([]float64, 0, len(prices))
	for _, v := range prices {
		sorted = append(sorted, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(sorted)
	p.MinPrice = minv
	p.MaxPrice = maxv
	p.MeanPrice = sum / float64(len(sorted))
	p.P05Price = percentileSorted(sorted, 0.05)
	p.P95Price = percentileSorted(sorted, 0.95)
	p.SpreadP95P05 = p.P95Price - p.P05Price

	p.OracleProfit = oracleProfitCanonical(prices, stepHours)
	return p
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// oracleProfitCanonical runs a small DP over a stored-energy grid with step
// stepHours kWh (1 kW for one timestep).
func oracleProfitCanonical(prices []float64, stepHours float64) float64 {
	stepEnergy := stepHours
	steps := int(math.Round(1.0 / stepEnergy))
	if steps < 1 {
		steps = 1
	}
	nStates := steps + 1
	negInf := -1e100
	dp := make([]float64, nStates)
	next := make([]float64, nStates)
	for i := range dp {
		dp[i] = negInf
	}
	init := int(math.Round(0.5 * float64(steps)))
	dp[init] = 0

	for _, price := range prices {
		for i := range next {
			next[i] = negInf
		}
		for state := 0; state <= steps; state++ {
			if dp[state] <= negInf/2 {
				continue
			}

			// Idle
			if dp[state] > next[state] {
				next[state] = dp[state]
			}

			// Charge 1 kW: buy stepHours kWh.
			if state < steps {
				v := dp[state] - price*stepHours
				if v > next[state+1] {
					next[state+1] = v
				}
			}

			// Discharge 1 kW: sell stepHours kWh.
			if state > 0 {
				v := dp[state] + price*stepHours
				if v > next[state-1] {
					next[state-1] = v
				}
			}
		}
		dp, next = next, dp
	}

	best := negInf
	for _, v := range dp {
		if v > best {
			best = v
		}
	}
	if best <= negInf/2 {
		return 0
	}
	return best
}
