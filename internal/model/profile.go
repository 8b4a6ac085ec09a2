package model

// Profile holds the per-timestep input series for one optimization run.
// All four series must have the same length; the length defines the horizon.
// Units:
// - ImportTariff / ExportTariff: p/kWh
// - Demand: kW drawn by the home
// - CarbonIntensity: gCO2/kWh
// - StepHours: duration of one timestep in hours (1.0 for hourly steps)
type Profile struct {
	ImportTariff    []float64
	ExportTariff    []float64
	Demand          []float64
	CarbonIntensity []float64
	StepHours       float64
}

// Steps returns the number of timesteps in the horizon.
func (p Profile) Steps() int { return len(p.Demand) }

func (p Profile) Validate() error {
	n := len(p.ImportTariff)
	if n < 1 {
		return invalid("import_tariff", "horizon must have at least 1 timestep")
	}
	if len(p.ExportTariff) != n {
		return invalid("export_tariff", "length %d does not match import_tariff length %d", len(p.ExportTariff), n)
	}
	if len(p.Demand) != n {
		return invalid("demand", "length %d does not match import_tariff length %d", len(p.Demand), n)
	}
	if len(p.CarbonIntensity) != n {
		return invalid("carbon_intensity", "length %d does not match import_tariff length %d", len(p.CarbonIntensity), n)
	}
	if p.StepHours <= 0 {
		return invalid("step_hours", "must be > 0, got %g", p.StepHours)
	}
	for t, v := range p.ImportTariff {
		if v < 0 {
			return invalid("import_tariff", "must be >= 0, got %g at timestep %d", v, t)
		}
	}
	for t, v := range p.ExportTariff {
		if v < 0 {
			return invalid("export_tariff", "must be >= 0, got %g at timestep %d", v, t)
		}
	}
	for t, v := range p.Demand {
		if v < 0 {
			return invalid("demand", "must be >= 0, got %g at timestep %d", v, t)
		}
	}
	for t, v := range p.CarbonIntensity {
		if v < 0 {
			return invalid("carbon_intensity", "must be >= 0, got %g at timestep %d", v, t)
		}
	}
	return nil
}
