package optimizer

import (
	"math"

	"battery-scheduler/internal/lp"
	"battery-scheduler/internal/model"
)

// variables maps the optimizer's decision variables onto LP model variables.
// Four non-negative flows per timestep plus N+1 energy states.
type variables struct {
	charge        []lp.Var // grid -> battery, kW
	dischargeHome []lp.Var // battery -> home, kW
	dischargeGrid []lp.Var // battery -> grid, kW
	gridHome      []lp.Var // grid -> home, kW
	energy        []lp.Var // stored energy entering timestep t, kWh
}

// buildModel translates the profile and battery spec into an LP. The feasible
// region does not depend on the mode; only the objective does.
func buildModel(p model.Profile, spec model.BatterySpec, mode model.Mode) (*lp.Model, *variables) {
	n := p.Steps()
	dt := p.StepHours
	m := lp.NewModel()

	v := &variables{
		charge:        make([]lp.Var, n),
		dischargeHome: make([]lp.Var, n),
		dischargeGrid: make([]lp.Var, n),
		gridHome:      make([]lp.Var, n),
		energy:        make([]lp.Var, n+1),
	}
	for t := 0; t < n; t++ {
		v.charge[t] = m.AddVar(0, spec.MaxChargeKW)
		v.dischargeHome[t] = m.AddVar(0, math.Inf(1))
		v.dischargeGrid[t] = m.AddVar(0, math.Inf(1))
		// Grid supply to the home is unbounded above: demand can always be
		// met directly from the grid.
		v.gridHome[t] = m.AddVar(0, math.Inf(1))
	}
	for t := 0; t <= n; t++ {
		v.energy[t] = m.AddVar(0, spec.CapacityKWh)
	}

	m.AddEq([]lp.Term{{Var: v.energy[0], Coeff: 1}}, spec.InitialEnergyKWh)

	for t := 0; t < n; t++ {
		// Stored energy after the step equals the previous state plus charged
		// energy net of efficiency, minus everything discharged.
		m.AddEq([]lp.Term{
			{Var: v.energy[t+1], Coeff: 1},
			{Var: v.energy[t], Coeff: -1},
			{Var: v.charge[t], Coeff: -spec.RoundTripEfficiency * dt},
			{Var: v.dischargeHome[t], Coeff: dt},
			{Var: v.dischargeGrid[t], Coeff: dt},
		}, 0)

		// Home demand is met exactly, from the grid and/or the battery.
		// An inequality here would let the solver under-serve the home at
		// zero cost.
		m.AddEq([]lp.Term{
			{Var: v.gridHome[t], Coeff: 1},
			{Var: v.dischargeHome[t], Coeff: 1},
		}, p.Demand[t])

		// Combined discharge cannot exceed the rated discharge power.
		m.AddLe([]lp.Term{
			{Var: v.dischargeHome[t], Coeff: 1},
			{Var: v.dischargeGrid[t], Coeff: 1},
		}, spec.MaxDischargeKW)
	}

	if spec.MinFinalEnergyKWh != nil {
		m.AddLe([]lp.Term{{Var: v.energy[n], Coeff: -1}}, -*spec.MinFinalEnergyKWh)
	}
	if spec.MaxFinalEnergyKWh != nil {
		m.AddLe([]lp.Term{{Var: v.energy[n], Coeff: 1}}, *spec.MaxFinalEnergyKWh)
	}

	m.SetObjective(objectiveTerms(p, mode, v))
	return m, v
}

// objectiveTerms builds the linear objective for the chosen mode.
//
// Cost mode: everything imported (home use or charging) is paid at the import
// tariff and exports earn the export tariff.
//
// Carbon mode: emissions are accounted on the production side only, so
// exported energy earns no negative-carbon credit. The asymmetry with cost
// mode is intentional and must stay.
func objectiveTerms(p model.Profile, mode model.Mode, v *variables) []lp.Term {
	n := p.Steps()
	dt := p.StepHours
	terms := make([]lp.Term, 0, 3*n)
	for t := 0; t < n; t++ {
		if mode == model.ModeCarbon {
			terms = append(terms,
				lp.Term{Var: v.gridHome[t], Coeff: dt * p.CarbonIntensity[t]},
				lp.Term{Var: v.charge[t], Coeff: dt * p.CarbonIntensity[t]},
			)
			continue
		}
		terms = append(terms,
			lp.Term{Var: v.gridHome[t], Coeff: dt * p.ImportTariff[t]},
			lp.Term{Var: v.charge[t], Coeff: dt * p.ImportTariff[t]},
			lp.Term{Var: v.dischargeGrid[t], Coeff: -dt * p.ExportTariff[t]},
		)
	}
	return terms
}
