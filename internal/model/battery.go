package model

// BatterySpec defines the physical parameters of the home battery.
// Units:
// - CapacityKWh: kWh of usable storage
// - MaxChargeKW / MaxDischargeKW: kW
// - RoundTripEfficiency: 0..1, applied on the charging leg only; discharging
//   delivers stored energy at face value
// - InitialEnergyKWh: kWh stored at the start of the horizon
type BatterySpec struct {
	CapacityKWh         float64
	MaxChargeKW         float64
	MaxDischargeKW      float64
	RoundTripEfficiency float64
	InitialEnergyKWh    float64

	// Optional bounds on the state of charge at the end of the horizon.
	// Nil means no constraint beyond [0, CapacityKWh].
	MinFinalEnergyKWh *float64
	MaxFinalEnergyKWh *float64
}

func (s BatterySpec) Validate() error {
	if s.CapacityKWh < 0 {
		return invalid("capacity_kwh", "must be >= 0, got %g", s.CapacityKWh)
	}
	if s.MaxChargeKW < 0 {
		return invalid("max_charge_kw", "must be >= 0, got %g", s.MaxChargeKW)
	}
	if s.MaxDischargeKW < 0 {
		return invalid("max_discharge_kw", "must be >= 0, got %g", s.MaxDischargeKW)
	}
	if s.RoundTripEfficiency <= 0 || s.RoundTripEfficiency > 1 {
		return invalid("round_trip_efficiency", "must be in (0, 1], got %g", s.RoundTripEfficiency)
	}
	if s.InitialEnergyKWh < 0 || s.InitialEnergyKWh > s.CapacityKWh {
		return invalid("initial_energy_kwh", "must be in [0, %g], got %g", s.CapacityKWh, s.InitialEnergyKWh)
	}
	if s.MinFinalEnergyKWh != nil {
		if *s.MinFinalEnergyKWh < 0 || *s.MinFinalEnergyKWh > s.CapacityKWh {
			return invalid("min_final_energy_kwh", "must be in [0, %g], got %g", s.CapacityKWh, *s.MinFinalEnergyKWh)
		}
	}
	if s.MaxFinalEnergyKWh != nil {
		if *s.MaxFinalEnergyKWh < 0 || *s.MaxFinalEnergyKWh > s.CapacityKWh {
			return invalid("max_final_energy_kwh", "must be in [0, %g], got %g", s.CapacityKWh, *s.MaxFinalEnergyKWh)
		}
		if s.MinFinalEnergyKWh != nil && *s.MinFinalEnergyKWh > *s.MaxFinalEnergyKWh {
			return invalid("min_final_energy_kwh", "must be <= max_final_energy_kwh (%g), got %g", *s.MaxFinalEnergyKWh, *s.MinFinalEnergyKWh)
		}
	}
	return nil
}
