package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"battery-scheduler/internal/analysis"
	"battery-scheduler/internal/config"
	"battery-scheduler/internal/heuristic"
	"battery-scheduler/internal/model"
	"battery-scheduler/internal/optimizer"
	"battery-scheduler/internal/profiles"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "greedy":
		cmdGreedy(os.Args[2:])
	case "potential":
		cmdPotential(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --config examples/scenario.yaml --out results/schedule.csv")
	fmt.Println("  cli greedy --config examples/scenario.yaml")
	fmt.Println("  cli potential --config examples/scenario.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - optimize solves the LP and writes the schedule CSV with action=CHARGING/IDLE/DISCHARGING")
	fmt.Println("  - greedy runs the fast heuristic planner for a cross-check (no solver)")
	fmt.Println("  - potential scores the import tariff's arbitrage headroom")
}

func loadScenario(cfgPath string) (*config.Config, model.Profile) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	carbonClient := profiles.NewCarbonClient(os.Getenv("CARBON_API_URL"))
	profile, err := cfg.BuildProfile(carbonClient)
	if err != nil {
		panic(err)
	}
	return cfg, profile
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	modeFlag := fs.String("mode", "", "Override optimization mode (cost|carbon)")
	_ = fs.Parse(args)

	cfg, profile := loadScenario(*cfgPath)

	mode := model.Mode(cfg.Mode)
	if *modeFlag != "" {
		mode = model.Mode(*modeFlag)
	}

	result, err := optimizer.Run(profile, cfg.Battery.ToSpec(), mode)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := optimizer.WriteScheduleCSV(*outPath, profile, result.Schedule); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", result.Schedule.Steps(), *outPath)
	fmt.Printf("Mode=%s Objective=%.4f\n", result.Mode, result.Objective)
	fmt.Printf("Cost: baseline=%.4f optimized=%.4f savings=%.4f\n",
		result.Savings.BaselineCost, result.Savings.OptimizedCost, result.Savings.CostSavings)
	fmt.Printf("Carbon: baseline=%.1f optimized=%.1f savings=%.1f\n",
		result.Savings.BaselineCarbon, result.Savings.OptimizedCarbon, result.Savings.CarbonSavings)
	fmt.Printf("Charged=%.2fkWh Discharged=%.2fkWh Exported=%.2fkWh Final=%.2fkWh\n",
		result.Totals.EnergyChargedKWh, result.Totals.EnergyDischargedKWh,
		result.Totals.EnergyExportedKWh, result.Totals.FinalEnergyKWh)
}

func cmdGreedy(args []string) {
	fs := flag.NewFlagSet("greedy", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	alpha := fs.Float64("alpha", 0.5, "Weight on price in weighted mode (0=carbon only, 1=price only)")
	scoreMode := fs.String("score", "", "Ranking series (cost|carbon|weighted); defaults to the scenario mode")
	_ = fs.Parse(args)

	cfg, profile := loadScenario(*cfgPath)

	mode := heuristic.ScoreMode(cfg.Mode)
	if *scoreMode != "" {
		mode = heuristic.ScoreMode(*scoreMode)
	}

	dt := profile.StepHours
	dischargeProfile := make([]float64, profile.Steps())
	for t, demand := range profile.Demand {
		dischargeProfile[t] = demand * dt
	}

	plan, err := heuristic.GreedySchedule(profile, cfg.Battery.ToSpec(), mode, *alpha, dischargeProfile)
	if err != nil {
		panic(err)
	}
	steps, err := heuristic.Simulate(profile, cfg.Battery.ToSpec(), plan)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-5s %-10s %-10s %-10s %s\n", "step", "import", "plan_kw", "power_kw", "soc_kwh")
	for t, step := range steps {
		fmt.Printf("%-5d %-10.4f %-10.2f %-10.2f %.3f\n",
			t, profile.ImportTariff[t], step.RequestedKW, step.PowerKW, step.EnergyKWh)
	}
}

func cmdPotential(args []string) {
	fs := flag.NewFlagSet("potential", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	_ = fs.Parse(args)

	_, profile := loadScenario(*cfgPath)

	p := analysis.ComputePotential(profile.ImportTariff, profile.StepHours)
	fmt.Printf("steps=%d min=%.4f max=%.4f mean=%.4f\n", p.Steps, p.MinPrice, p.MaxPrice, p.MeanPrice)
	fmt.Printf("p05=%.4f p95=%.4f spread=%.4f\n", p.P05Price, p.P95Price, p.SpreadP95P05)
	fmt.Printf("oracle_profit=%.4f (1 kW / 1 kWh lossless reference battery)\n", p.OracleProfit)
}
