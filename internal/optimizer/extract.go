package optimizer

import (
	"battery-scheduler/internal/lp"
	"battery-scheduler/internal/model"
)

// extractSchedule reads the four flow series from the solution and recomputes
// the energy series with the same recurrence the model was built from.
// Recomputing instead of reading the solver's energy variables guards against
// drift between solver-internal and reported precision. Values are not
// rounded; display precision is the consumer's call.
func extractSchedule(sol *lp.Solution, v *variables, p model.Profile, spec model.BatterySpec) Schedule {
	n := p.Steps()
	s := Schedule{
		ChargeKW:        make([]float64, n),
		DischargeHomeKW: make([]float64, n),
		DischargeGridKW: make([]float64, n),
		GridHomeKW:      make([]float64, n),
		EnergyKWh:       make([]float64, n+1),
	}
	for t := 0; t < n; t++ {
		s.ChargeKW[t] = sol.Value(v.charge[t])
		s.DischargeHomeKW[t] = sol.Value(v.dischargeHome[t])
		s.DischargeGridKW[t] = sol.Value(v.dischargeGrid[t])
		s.GridHomeKW[t] = sol.Value(v.gridHome[t])
	}
	s.EnergyKWh[0] = spec.InitialEnergyKWh
	for t := 0; t < n; t++ {
		s.EnergyKWh[t+1] = s.EnergyKWh[t] + p.StepHours*(spec.RoundTripEfficiency*s.ChargeKW[t]-s.DischargeHomeKW[t]-s.DischargeGridKW[t])
	}
	return s
}

func computeTotals(p model.Profile, s Schedule) Totals {
	dt := p.StepHours
	var tot Totals
	for t := 0; t < s.Steps(); t++ {
		tot.EnergyChargedKWh += dt * s.ChargeKW[t]
		tot.EnergyDischargedKWh += dt * (s.DischargeHomeKW[t] + s.DischargeGridKW[t])
		tot.EnergyExportedKWh += dt * s.DischargeGridKW[t]
	}
	tot.FinalEnergyKWh = s.EnergyKWh[len(s.EnergyKWh)-1]
	return tot
}
