package optimizer

import "battery-scheduler/internal/model"

// ComputeSavings evaluates both metrics for the schedule and for the
// no-battery baseline (charge = discharge = 0, grid_home = demand).
// The baseline depends only on demand and the tariffs, never on the battery.
func ComputeSavings(p model.Profile, s Schedule) SavingsReport {
	dt := p.StepHours
	var r SavingsReport
	for t := 0; t < p.Steps(); t++ {
		r.BaselineCost += dt * p.Demand[t] * p.ImportTariff[t]
		r.OptimizedCost += dt * ((s.ChargeKW[t]+s.GridHomeKW[t])*p.ImportTariff[t] - s.DischargeGridKW[t]*p.ExportTariff[t])

		// Carbon is production-side only: no credit for exports, in either
		// the baseline or the optimized total.
		r.BaselineCarbon += dt * p.Demand[t] * p.CarbonIntensity[t]
		r.OptimizedCarbon += dt * (s.ChargeKW[t] + s.GridHomeKW[t]) * p.CarbonIntensity[t]
	}
	r.CostSavings = r.BaselineCost - r.OptimizedCost
	r.CarbonSavings = r.BaselineCarbon - r.OptimizedCarbon
	return r
}
