package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"battery-scheduler/internal/model"
	"battery-scheduler/internal/profiles"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load battery parameters from a separate YAML file.
	// If both BatteryFile and Battery are provided, Battery overrides BatteryFile.
	BatteryFile string        `yaml:"battery_file"`
	Battery     BatteryConfig `yaml:"battery"`
	Mode        string        `yaml:"mode"`
	Profile     ProfileConfig `yaml:"profile"`
}

type BatteryConfig struct {
	Name                string   `yaml:"name"`
	CapacityKWh         float64  `yaml:"capacity_kwh"`
	MaxChargeKW         float64  `yaml:"max_charge_kw"`
	MaxDischargeKW      float64  `yaml:"max_discharge_kw"`
	RoundTripEfficiency float64  `yaml:"round_trip_efficiency"`
	InitialEnergyKWh    float64  `yaml:"initial_energy_kwh"`
	MinFinalEnergyKWh   *float64 `yaml:"min_final_energy_kwh"`
	MaxFinalEnergyKWh   *float64 `yaml:"max_final_energy_kwh"`
}

// ProfileConfig describes how to assemble the four input series.
type ProfileConfig struct {
	Start     string       `yaml:"start"`      // RFC3339; default: today at midnight UTC
	StepHours float64      `yaml:"step_hours"` // default: 1
	Steps     int          `yaml:"steps"`      // default: 24
	Import    SeriesConfig `yaml:"import"`
	Export    SeriesConfig `yaml:"export"`
	Demand    SeriesConfig `yaml:"demand"`
	Carbon    SeriesConfig `yaml:"carbon"`
}

// SeriesConfig selects one preset per series. Supported presets:
//   - import: flat, peak_offpeak, tou, csv, values
//   - export: flat, values
//   - demand: flat, evening_peak, values
//   - carbon: flat, api, values
type SeriesConfig struct {
	Preset  string          `yaml:"preset"`
	Value   float64         `yaml:"value"`
	Values  []float64       `yaml:"values"`
	CSVPath string          `yaml:"csv_path"`
	TOU     []TOUBandConfig `yaml:"tou"`
}

type TOUBandConfig struct {
	StartHour int     `yaml:"start_hour"`
	EndHour   int     `yaml:"end_hour"`
	Price     float64 `yaml:"price"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.BatteryFile != "" {
		batteryPath := c.BatteryFile
		if !filepath.IsAbs(batteryPath) {
			// Prefer paths relative to the config file directory, falling
			// back to the path as given (relative to cwd).
			cand := filepath.Join(filepath.Dir(path), batteryPath)
			if _, err := os.Stat(cand); err == nil {
				batteryPath = cand
			}
		}
		loaded, err := loadBatteryFile(batteryPath)
		if err != nil {
			return nil, err
		}
		c.Battery = MergeBattery(loaded, c.Battery)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Mode == "" {
		c.Mode = string(model.ModeCost)
	}
	if c.Profile.StepHours == 0 {
		c.Profile.StepHours = 1
	}
	if c.Profile.Steps == 0 {
		c.Profile.Steps = 24
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := model.Mode(c.Mode).Validate(); err != nil {
		return fmt.Errorf("mode invalid: %w", err)
	}
	if err := c.Battery.ToSpec().Validate(); err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	if c.Profile.Steps < 1 {
		return errors.New("profile.steps must be >= 1")
	}
	if c.Profile.StepHours <= 0 {
		return errors.New("profile.step_hours must be > 0")
	}
	return nil
}

func (b BatteryConfig) ToSpec() model.BatterySpec {
	return model.BatterySpec{
		CapacityKWh:         b.CapacityKWh,
		MaxChargeKW:         b.MaxChargeKW,
		MaxDischargeKW:      b.MaxDischargeKW,
		RoundTripEfficiency: b.RoundTripEfficiency,
		InitialEnergyKWh:    b.InitialEnergyKWh,
		MinFinalEnergyKWh:   b.MinFinalEnergyKWh,
		MaxFinalEnergyKWh:   b.MaxFinalEnergyKWh,
	}
}

// BuildProfile assembles the four input series from the presets.
// carbon may be nil when the carbon series does not use the "api" preset.
func (c *Config) BuildProfile(carbon *profiles.CarbonClient) (model.Profile, error) {
	start, err := c.profileStart()
	if err != nil {
		return model.Profile{}, err
	}
	n := c.Profile.Steps
	step := time.Duration(c.Profile.StepHours * float64(time.Hour))
	times := profiles.TimeIndex(start, n, step)

	imports, err := buildImportSeries(c.Profile.Import, times, n)
	if err != nil {
		return model.Profile{}, fmt.Errorf("import series: %w", err)
	}
	exports, err := buildValueSeries(c.Profile.Export, n)
	if err != nil {
		return model.Profile{}, fmt.Errorf("export series: %w", err)
	}
	demand, err := buildDemandSeries(c.Profile.Demand, times, n)
	if err != nil {
		return model.Profile{}, fmt.Errorf("demand series: %w", err)
	}
	carbonSeries, err := buildCarbonSeries(c.Profile.Carbon, times, n, carbon)
	if err != nil {
		return model.Profile{}, fmt.Errorf("carbon series: %w", err)
	}

	p := model.Profile{
		ImportTariff:    imports,
		ExportTariff:    exports,
		Demand:          demand,
		CarbonIntensity: carbonSeries,
		StepHours:       c.Profile.StepHours,
	}
	if err := p.Validate(); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func (c *Config) profileStart() (time.Time, error) {
	if c.Profile.Start == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	start, err := time.Parse(time.RFC3339, c.Profile.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("profile.start: %w", err)
	}
	return start, nil
}

func buildImportSeries(s SeriesConfig, times []time.Time, n int) ([]float64, error) {
	switch s.Preset {
	case "", "flat":
		return profiles.Flat(n, s.Value), nil
	case "peak_offpeak":
		return profiles.PeakOffPeakImport(times, 30, 10), nil
	case "tou":
		bands := make([]profiles.TOUPeriod, len(s.TOU))
		for i, b := range s.TOU {
			bands[i] = profiles.TOUPeriod{StartHour: b.StartHour, EndHour: b.EndHour, Price: b.Price}
		}
		return profiles.TOUImport(times, bands)
	case "csv":
		points, err := profiles.LoadPriceCSV(s.CSVPath)
		if err != nil {
			return nil, err
		}
		return profiles.MapPricesToTimes(points, times)
	case "values":
		return explicitValues(s, n)
	default:
		return nil, fmt.Errorf("unknown preset %q", s.Preset)
	}
}

func buildDemandSeries(s SeriesConfig, times []time.Time, n int) ([]float64, error) {
	switch s.Preset {
	case "", "flat":
		return profiles.Flat(n, s.Value), nil
	case "evening_peak":
		return profiles.EveningPeakDemand(times, 2.0, 0.5), nil
	case "values":
		return explicitValues(s, n)
	default:
		return nil, fmt.Errorf("unknown preset %q", s.Preset)
	}
}

func buildCarbonSeries(s SeriesConfig, times []time.Time, n int, carbon *profiles.CarbonClient) ([]float64, error) {
	switch s.Preset {
	case "", "flat":
		return profiles.Flat(n, s.Value), nil
	case "api":
		if carbon == nil {
			return nil, errors.New("carbon preset \"api\" needs a carbon intensity client")
		}
		return carbon.ForTimes(times)
	case "values":
		return explicitValues(s, n)
	default:
		return nil, fmt.Errorf("unknown preset %q", s.Preset)
	}
}

func buildValueSeries(s SeriesConfig, n int) ([]float64, error) {
	switch s.Preset {
	case "", "flat":
		return profiles.Flat(n, s.Value), nil
	case "values":
		return explicitValues(s, n)
	default:
		return nil, fmt.Errorf("unknown preset %q", s.Preset)
	}
}

func explicitValues(s SeriesConfig, n int) ([]float64, error) {
	if len(s.Values) != n {
		return nil, fmt.Errorf("values length %d does not match profile.steps %d", len(s.Values), n)
	}
	return append([]float64(nil), s.Values...), nil
}

type batteryFileWrapper struct {
	Battery BatteryConfig `yaml:"battery"`
}

func loadBatteryFile(path string) (BatteryConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BatteryConfig{}, err
	}
	var w batteryFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BatteryConfig{}, err
	}
	return w.Battery, nil
}

// MergeBattery overlays non-zero fields from override onto base.
func MergeBattery(base, override BatteryConfig) BatteryConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityKWh != 0 {
		out.CapacityKWh = override.CapacityKWh
	}
	if override.MaxChargeKW != 0 {
		out.MaxChargeKW = override.MaxChargeKW
	}
	if override.MaxDischargeKW != 0 {
		out.MaxDischargeKW = override.MaxDischargeKW
	}
	if override.RoundTripEfficiency != 0 {
		out.RoundTripEfficiency = override.RoundTripEfficiency
	}
	if override.InitialEnergyKWh != 0 {
		out.InitialEnergyKWh = override.InitialEnergyKWh
	}
	if override.MinFinalEnergyKWh != nil {
		out.MinFinalEnergyKWh = override.MinFinalEnergyKWh
	}
	if override.MaxFinalEnergyKWh != nil {
		out.MaxFinalEnergyKWh = override.MaxFinalEnergyKWh
	}
	return out
}
