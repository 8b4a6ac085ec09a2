package models

// OptimizeRequest is the body of POST /api/v1/optimize
type OptimizeRequest struct {
	Mode    string          `json:"mode"` // "cost" or "carbon"; default "cost"
	Battery BatteryPayload  `json:"battery"`
	Profile ProfilePayload  `json:"profile"`
	Options OptimizeOptions `json:"options"`
}

// BatteryPayload carries the battery parameters inline
type BatteryPayload struct {
	CapacityKWh         float64  `json:"capacity_kwh"`
	MaxChargeKW         float64  `json:"max_charge_kw"`
	MaxDischargeKW      float64  `json:"max_discharge_kw"`
	RoundTripEfficiency float64  `json:"round_trip_efficiency"`
	InitialEnergyKWh    float64  `json:"initial_energy_kwh"`
	MinFinalEnergyKWh   *float64 `json:"min_final_energy_kwh,omitempty"`
	MaxFinalEnergyKWh   *float64 `json:"max_final_energy_kwh,omitempty"`
}

// ProfilePayload carries the four aligned input series
type ProfilePayload struct {
	StepHours       float64   `json:"step_hours"` // default 1
	ImportTariff    []float64 `json:"import_tariff"`
	ExportTariff    []float64 `json:"export_tariff"`
	Demand          []float64 `json:"demand"`
	CarbonIntensity []float64 `json:"carbon_intensity"`
}

// OptimizeOptions controls the response shape
type OptimizeOptions struct {
	IncludeSchedule bool `json:"include_schedule"`
}

// PotentialRequest is the body of POST /api/v1/potential
type PotentialRequest struct {
	StepHours    float64   `json:"step_hours"`
	ImportTariff []float64 `json:"import_tariff"`
}
