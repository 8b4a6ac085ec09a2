package optimizer

import "battery-scheduler/internal/model"

// Schedule is the optimal flow plan extracted from a solved model.
// The four flow series have length N; EnergyKWh has length N+1, where
// EnergyKWh[t] is the energy stored at the start of timestep t.
// A Schedule is created once per run and never mutated afterwards.
type Schedule struct {
	ChargeKW        []float64
	DischargeHomeKW []float64
	DischargeGridKW []float64
	GridHomeKW      []float64
	EnergyKWh       []float64
}

// Steps returns the number of timesteps covered by the schedule.
func (s Schedule) Steps() int { return len(s.ChargeKW) }

// Action labels timestep t by its net battery flow.
func (s Schedule) Action(t int) model.Action {
	return model.ActionForFlows(s.ChargeKW[t], s.DischargeHomeKW[t]+s.DischargeGridKW[t])
}

// SavingsReport compares the optimized schedule against the no-battery
// baseline where the home draws its whole demand from the grid. Costs are in
// the tariff's currency unit (p), carbon in gCO2. Negative savings are
// legitimate: a run optimized for one metric can be worse than the baseline
// on the other.
type SavingsReport struct {
	BaselineCost    float64
	OptimizedCost   float64
	CostSavings     float64
	BaselineCarbon  float64
	OptimizedCarbon float64
	CarbonSavings   float64
}

// Totals aggregates schedule-level energy figures for reporting.
type Totals struct {
	EnergyChargedKWh    float64 // grid-side energy drawn to charge
	EnergyDischargedKWh float64 // energy delivered from the battery
	EnergyExportedKWh   float64 // battery energy sold to the grid
	FinalEnergyKWh      float64
}

// Result is the full outcome of one optimization run.
type Result struct {
	Mode      model.Mode
	Objective float64
	Schedule  Schedule
	Savings   SavingsReport
	Totals    Totals
}
