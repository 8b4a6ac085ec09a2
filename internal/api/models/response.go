package models

// OptimizeResponse represents the response from an optimization run
type OptimizeResponse struct {
	Status   string          `json:"status"`
	Mode     string          `json:"mode"`
	Summary  OptimizeSummary `json:"summary"`
	Schedule []ScheduleRow   `json:"schedule,omitempty"`
}

// OptimizeSummary contains aggregated optimization results
type OptimizeSummary struct {
	Objective           float64 `json:"objective"`
	BaselineCost        float64 `json:"baseline_cost"`
	OptimizedCost       float64 `json:"optimized_cost"`
	CostSavings         float64 `json:"cost_savings"`
	BaselineCarbon      float64 `json:"baseline_carbon"`
	OptimizedCarbon     float64 `json:"optimized_carbon"`
	CarbonSavings       float64 `json:"carbon_savings"`
	EnergyChargedKWh    float64 `json:"energy_charged_kwh"`
	EnergyDischargedKWh float64 `json:"energy_discharged_kwh"`
	EnergyExportedKWh   float64 `json:"energy_exported_kwh"`
	FinalEnergyKWh      float64 `json:"final_energy_kwh"`
	TotalSteps          int     `json:"total_steps"`
}

// ScheduleRow represents one timestep of the optimized schedule
type ScheduleRow struct {
	Index           int     `json:"index"`
	ChargeKW        float64 `json:"charge_kw"`
	DischargeHomeKW float64 `json:"discharge_home_kw"`
	DischargeGridKW float64 `json:"discharge_grid_kw"`
	GridHomeKW      float64 `json:"grid_home_kw"`
	EnergyStartKWh  float64 `json:"energy_start_kwh"`
	EnergyEndKWh    float64 `json:"energy_end_kwh"`
	Action          string  `json:"action"` // "CHARGING", "DISCHARGING", "IDLE"
}

// PotentialResponse represents the response from a tariff potential analysis
type PotentialResponse struct {
	Steps        int     `json:"steps"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	MeanPrice    float64 `json:"mean_price"`
	P05Price     float64 `json:"p05_price"`
	P95Price     float64 `json:"p95_price"`
	SpreadP95P05 float64 `json:"spread_p95_p05"`
	OracleProfit float64 `json:"oracle_profit"`
}

// PresetInfo describes one built-in profile preset
type PresetInfo struct {
	Series      string `json:"series"` // which series the preset applies to
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PresetsResponse lists the built-in profile presets
type PresetsResponse struct {
	Presets []PresetInfo `json:"presets"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
