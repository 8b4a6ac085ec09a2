package heuristic

import "battery-scheduler/internal/model"

// SimStep records what actually happened in one timestep of a simulation.
type SimStep struct {
	RequestedKW float64
	PowerKW     float64 // realized power after rate and energy clipping
	EnergyKWh   float64 // stored energy at the end of the step
}

// Simulate replays a signed power plan (+charge, -discharge) against the
// battery's physical limits. Requested power is clipped to the rated rates,
// the charging loss is applied, and moves that would push the stored energy
// outside [0, capacity] are scaled back.
func Simulate(p model.Profile, spec model.BatterySpec, plan []float64) ([]SimStep, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if len(plan) != p.Steps() {
		return nil, &model.InvalidInputError{Field: "plan", Reason: "length does not match the horizon"}
	}

	dt := p.StepHours
	soc := spec.InitialEnergyKWh
	steps := make([]SimStep, len(plan))

	for t, requested := range plan {
		power := requested
		if power > spec.MaxChargeKW {
			power = spec.MaxChargeKW
		}
		if power < -spec.MaxDischargeKW {
			power = -spec.MaxDischargeKW
		}

		var socChange float64
		if power > 0 {
			socChange = power * dt * spec.RoundTripEfficiency
		} else {
			socChange = power * dt
		}

		newSoC := soc + socChange
		if newSoC > spec.CapacityKWh {
			socChange = spec.CapacityKWh - soc
			power = socChange / dt / spec.RoundTripEfficiency
			newSoC = spec.CapacityKWh
		} else if newSoC < 0 {
			socChange = -soc
			power = socChange / dt
			newSoC = 0
		}

		steps[t] = SimStep{RequestedKW: requested, PowerKW: power, EnergyKWh: newSoC}
		soc = newSoC
	}

	return steps, nil
}
