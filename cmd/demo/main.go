package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"battery-scheduler/internal/config"
	"battery-scheduler/internal/heuristic"
	"battery-scheduler/internal/model"
	"battery-scheduler/internal/optimizer"
	"battery-scheduler/internal/profiles"
)

// Demo:
// - Build a 24h peak/off-peak scenario with built-in presets (no network)
// - Solve it in cost mode and carbon mode
// - Run the greedy planner on the same inputs for comparison
func main() {
	cfgPath := flag.String("config", "", "Path to YAML scenario (optional)")
	outCSV := flag.String("out", "", "Optional path to write the cost-mode schedule CSV")
	flag.Parse()

	// Defaults (can be overridden via --config).
	spec := model.BatterySpec{
		CapacityKWh:         13.5,
		MaxChargeKW:         5,
		MaxDischargeKW:      5,
		RoundTripEfficiency: 0.9,
		InitialEnergyKWh:    2,
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	times := profiles.TimeIndex(start, 24, time.Hour)
	profile := model.Profile{
		ImportTariff:    profiles.PeakOffPeakImport(times, 0.30, 0.10),
		ExportTariff:    profiles.Flat(24, 0.05),
		Demand:          profiles.EveningPeakDemand(times, 2.0, 0.5),
		CarbonIntensity: profiles.Flat(24, 200),
		StepHours:       1,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		spec = cfg.Battery.ToSpec()
		profile, err = cfg.BuildProfile(nil)
		if err != nil {
			panic(err)
		}
	}

	fmt.Printf("Horizon: %d steps of %.1fh, battery %.1f kWh / %.1f kW\n\n",
		profile.Steps(), profile.StepHours, spec.CapacityKWh, spec.MaxChargeKW)

	for _, mode := range []model.Mode{model.ModeCost, model.ModeCarbon} {
		result, err := optimizer.Run(profile, spec, mode)
		if err != nil {
			panic(err)
		}
		fmt.Printf("=== %s mode ===\n", mode)
		fmt.Printf("objective           %.4f\n", result.Objective)
		fmt.Printf("cost                %.4f -> %.4f (savings %.4f)\n",
			result.Savings.BaselineCost, result.Savings.OptimizedCost, result.Savings.CostSavings)
		fmt.Printf("carbon              %.1f -> %.1f (savings %.1f)\n",
			result.Savings.BaselineCarbon, result.Savings.OptimizedCarbon, result.Savings.CarbonSavings)
		fmt.Printf("charged/discharged  %.2f / %.2f kWh, final %.2f kWh\n\n",
			result.Totals.EnergyChargedKWh, result.Totals.EnergyDischargedKWh, result.Totals.FinalEnergyKWh)

		if mode == model.ModeCost && *outCSV != "" {
			if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
				panic(err)
			}
			if err := optimizer.WriteScheduleCSV(*outCSV, profile, result.Schedule); err != nil {
				panic(err)
			}
			fmt.Printf("Wrote schedule CSV to %s\n\n", *outCSV)
		}
	}

	// Greedy cross-check: ask the battery to cover demand, charging at the
	// cheapest hours.
	dischargeProfile := make([]float64, profile.Steps())
	for t, demand := range profile.Demand {
		dischargeProfile[t] = demand * profile.StepHours
	}
	plan, err := heuristic.GreedySchedule(profile, spec, heuristic.ScoreCost, 0.5, dischargeProfile)
	if err != nil {
		panic(err)
	}
	steps, err := heuristic.Simulate(profile, spec, plan)
	if err != nil {
		panic(err)
	}

	greedyCost := 0.0
	for t, step := range steps {
		// Battery discharge offsets grid import up to demand; charging adds.
		gridKW := profile.Demand[t]
		if step.PowerKW < 0 {
			gridKW += step.PowerKW
			if gridKW < 0 {
				gridKW = 0
			}
		} else {
			gridKW += step.PowerKW
		}
		greedyCost += gridKW * profile.StepHours * profile.ImportTariff[t]
	}
	fmt.Printf("=== greedy cross-check ===\n")
	fmt.Printf("approximate cost    %.4f (LP is the reference; greedy should be close but never better)\n", greedyCost)
}
