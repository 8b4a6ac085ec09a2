// Package heuristic provides a fast greedy alternative to the LP optimizer:
// it fills the battery at the best-scoring timesteps and discharges at the
// worst, checking state-of-charge feasibility move by move. It does not find
// the true optimum but needs no solver and is useful as a cross-check.
package heuristic

import (
	"sort"

	"battery-scheduler/internal/model"
)

// ScoreMode picks the series timesteps are ranked by.
type ScoreMode string

const (
	ScoreCost     ScoreMode = "cost"
	ScoreCarbon   ScoreMode = "carbon"
	ScoreWeighted ScoreMode = "weighted"
)

// socEpsilon absorbs float drift when walking state-of-charge bounds.
const socEpsilon = 1e-9

// Scores ranks timesteps for greedy planning. In weighted mode alpha is the
// weight on (normalized) import price, 1-alpha on (normalized) carbon.
func Scores(p model.Profile, mode ScoreMode, alpha float64) ([]float64, error) {
	switch mode {
	case ScoreCost:
		return append([]float64(nil), p.ImportTariff...), nil
	case ScoreCarbon:
		return append([]float64(nil), p.CarbonIntensity...), nil
	case ScoreWeighted:
		if alpha < 0 || alpha > 1 {
			return nil, &model.InvalidInputError{Field: "alpha", Reason: "must be in [0, 1]"}
		}
		imp := normalize(p.ImportTariff)
		carbon := normalize(p.CarbonIntensity)
		scores := make([]float64, len(imp))
		for i := range scores {
			scores[i] = alpha*imp[i] + (1-alpha)*carbon[i]
		}
		return scores, nil
	default:
		return nil, &model.InvalidInputError{Field: "score_mode", Reason: "must be cost, carbon or weighted"}
	}
}

// GreedySchedule builds a signed power plan in kW (+charge, -discharge).
// dischargeProfile is the energy (kWh) wanted from the battery at each
// timestep; nil means charge-only planning. The plan tracks stored energy
// without the charging loss; Simulate applies the loss when replaying it.
func GreedySchedule(p model.Profile, spec model.BatterySpec, mode ScoreMode, alpha float64, dischargeProfile []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	n := p.Steps()
	if dischargeProfile == nil {
		dischargeProfile = make([]float64, n)
	}
	if len(dischargeProfile) != n {
		return nil, &model.InvalidInputError{Field: "discharge_profile", Reason: "length does not match the horizon"}
	}

	scores, err := Scores(p, mode, alpha)
	if err != nil {
		return nil, err
	}

	dt := p.StepHours
	plan := make([]float64, n)
	remaining := append([]float64(nil), dischargeProfile...)

	chargeOrder := orderBy(scores, true)
	dischargeOrder := orderBy(scores, false)

	for changed := true; changed; {
		changed = false

		for _, t := range chargeOrder {
			if plan[t] != 0 {
				continue
			}
			soc := socBefore(plan, t, spec.InitialEnergyKWh, dt)
			avail := min2(spec.MaxChargeKW*dt, spec.CapacityKWh-soc)
			if avail <= 0 {
				continue
			}
			if wouldBreakSoC(plan, t, avail/dt, spec, dt) {
				continue
			}
			plan[t] += avail / dt
			changed = true
		}

		for _, t := range dischargeOrder {
			if plan[t] != 0 {
				continue
			}
			soc := socBefore(plan, t, spec.InitialEnergyKWh, dt)
			avail := min2(min2(spec.MaxDischargeKW*dt, soc), remaining[t])
			if avail <= 0 {
				continue
			}
			if wouldBreakSoC(plan, t, -avail/dt, spec, dt) {
				continue
			}
			plan[t] -= avail / dt
			remaining[t] -= avail
			changed = true
		}
	}

	return plan, nil
}

// socBefore walks the plan up to (not including) timestep t.
func socBefore(plan []float64, t int, initial, dt float64) float64 {
	soc := initial
	for i := 0; i < t; i++ {
		soc += plan[i] * dt
	}
	return soc
}

// wouldBreakSoC reports whether adding deltaKW at timestep t pushes the
// stored energy outside [0, capacity] anywhere in the plan.
func wouldBreakSoC(plan []float64, t int, deltaKW float64, spec model.BatterySpec, dt float64) bool {
	soc := spec.InitialEnergyKWh
	for i, power := range plan {
		if i == t {
			power += deltaKW
		}
		soc += power * dt
		if soc < -socEpsilon || soc > spec.CapacityKWh+socEpsilon {
			return true
		}
	}
	return false
}

func orderBy(scores []float64, ascending bool) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if ascending {
			return scores[order[a]] < scores[order[b]]
		}
		return scores[order[a]] > scores[order[b]]
	})
	return order
}

func normalize(values []float64) []float64 {
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	out := make([]float64, len(values))
	if hi == lo {
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
