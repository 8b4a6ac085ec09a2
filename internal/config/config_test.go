package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 0.9
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cost", c.Mode)
	assert.Equal(t, 24, c.Profile.Steps)
	assert.Equal(t, 1.0, c.Profile.StepHours)
	assert.Equal(t, 10.0, c.Battery.CapacityKWh)
}

func TestLoadBatteryFileMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "battery.yaml", `
battery:
  name: powerwall
  capacity_kwh: 13.5
  max_charge_kw: 5
  max_discharge_kw: 5
  round_trip_efficiency: 0.9
  initial_energy_kwh: 2
`)
	path := writeFile(t, dir, "scenario.yaml", `
battery_file: battery.yaml
battery:
  max_charge_kw: 3.3
mode: carbon
`)

	c, err := Load(path)
	require.NoError(t, err)
	// Inline fields override the battery file; everything else comes through.
	assert.Equal(t, "powerwall", c.Battery.Name)
	assert.Equal(t, 13.5, c.Battery.CapacityKWh)
	assert.Equal(t, 3.3, c.Battery.MaxChargeKW)
	assert.Equal(t, 5.0, c.Battery.MaxDischargeKW)
	assert.Equal(t, 2.0, c.Battery.InitialEnergyKWh)
	assert.Equal(t, "carbon", c.Mode)
}

func TestLoadRejectsInvalidMode(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 0.9
mode: fastest
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")
}

func TestLoadRejectsInvalidBattery(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 1.4
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "battery")
}

func TestBuildProfilePresets(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 0.9
profile:
  start: "2025-06-01T00:00:00Z"
  steps: 24
  step_hours: 1
  import:
    preset: peak_offpeak
  export:
    preset: flat
    value: 5
  demand:
    preset: evening_peak
  carbon:
    preset: flat
    value: 200
`)

	c, err := Load(path)
	require.NoError(t, err)

	p, err := c.BuildProfile(nil)
	require.NoError(t, err)
	require.Equal(t, 24, p.Steps())
	assert.Equal(t, 10.0, p.ImportTariff[0])
	assert.Equal(t, 30.0, p.ImportTariff[17])
	assert.Equal(t, 5.0, p.ExportTariff[12])
	assert.Equal(t, 0.5, p.Demand[3])
	assert.Equal(t, 2.0, p.Demand[18])
	assert.Equal(t, 200.0, p.CarbonIntensity[0])
}

func TestBuildProfileExplicitValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 0.9
profile:
  steps: 2
  import:
    preset: values
    values: [0.10, 0.30]
  demand:
    preset: values
    values: [5, 5]
`)

	c, err := Load(path)
	require.NoError(t, err)

	p, err := c.BuildProfile(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.10, 0.30}, p.ImportTariff)
	assert.Equal(t, []float64{5, 5}, p.Demand)
	assert.Equal(t, []float64{0, 0}, p.ExportTariff)
}

func TestBuildProfileValuesLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 0.9
profile:
  steps: 3
  import:
    preset: values
    values: [1, 2]
`)

	c, err := Load(path)
	require.NoError(t, err)

	_, err = c.BuildProfile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import series")
}

func TestBuildProfileCarbonAPINeedsClient(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
battery:
  capacity_kwh: 10
  max_charge_kw: 3
  max_discharge_kw: 3
  round_trip_efficiency: 0.9
profile:
  steps: 2
  carbon:
    preset: api
`)

	c, err := Load(path)
	require.NoError(t, err)

	_, err = c.BuildProfile(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carbon")
}

func TestMergeBatteryZeroOverrideKeepsBase(t *testing.T) {
	min := 2.0
	base := BatteryConfig{CapacityKWh: 13.5, MaxChargeKW: 5, MinFinalEnergyKWh: &min}
	out := MergeBattery(base, BatteryConfig{})
	assert.Equal(t, base, out)
}
