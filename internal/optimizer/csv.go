package optimizer

import (
	"encoding/csv"
	"os"
	"strconv"

	"battery-scheduler/internal/model"
)

// WriteScheduleCSV writes one row per timestep: the input series, the four
// optimized flows, the battery energy entering and leaving the step and an
// action label.
func WriteScheduleCSV(path string, p model.Profile, s Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"import_price_p_per_kwh",
		"export_price_p_per_kwh",
		"demand_kw",
		"carbon_intensity_g_per_kwh",
		"charge_kw",
		"discharge_home_kw",
		"discharge_grid_kw",
		"grid_home_kw",
		"energy_start_kwh",
		"energy_end_kwh",
		"action",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for t := 0; t < s.Steps(); t++ {
		row := []string{
			strconv.Itoa(t),
			fmtFloat(p.ImportTariff[t]),
			fmtFloat(p.ExportTariff[t]),
			fmtFloat(p.Demand[t]),
			fmtFloat(p.CarbonIntensity[t]),
			fmtFloat(s.ChargeKW[t]),
			fmtFloat(s.DischargeHomeKW[t]),
			fmtFloat(s.DischargeGridKW[t]),
			fmtFloat(s.GridHomeKW[t]),
			fmtFloat(s.EnergyKWh[t]),
			fmtFloat(s.EnergyKWh[t+1]),
			string(s.Action(t)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
