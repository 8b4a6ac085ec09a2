package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battery-scheduler/internal/model"
)

func TestComputeSavingsHandWorked(t *testing.T) {
	p := model.Profile{
		ImportTariff:    []float64{10, 30},
		ExportTariff:    []float64{5, 5},
		Demand:          []float64{2, 2},
		CarbonIntensity: []float64{100, 300},
		StepHours:       0.5,
	}
	s := Schedule{
		ChargeKW:        []float64{4, 0},
		DischargeHomeKW: []float64{0, 2},
		DischargeGridKW: []float64{0, 1},
		GridHomeKW:      []float64{2, 0},
		EnergyKWh:       []float64{0, 2, 0.5},
	}

	r := ComputeSavings(p, s)

	// Baseline: 0.5*(2*10 + 2*30) = 40p, 0.5*(2*100 + 2*300) = 400g.
	assert.InDelta(t, 40, r.BaselineCost, tol)
	assert.InDelta(t, 400, r.BaselineCarbon, tol)
	// Optimized cost: 0.5*((4+2)*10 - 0*5) + 0.5*(0*30 - 1*5) = 30 - 2.5.
	assert.InDelta(t, 27.5, r.OptimizedCost, tol)
	assert.InDelta(t, 12.5, r.CostSavings, tol)
	// Optimized carbon: 0.5*(4+2)*100 + 0 = 300g; exports earn no credit.
	assert.InDelta(t, 300, r.OptimizedCarbon, tol)
	assert.InDelta(t, 100, r.CarbonSavings, tol)
}

func TestBaselineIndependentOfBattery(t *testing.T) {
	p := flatProfile(24, 12, 4, 1.2, 180, 1)
	p.ImportTariff[6] = 40
	small := model.BatterySpec{
		CapacityKWh:         2,
		MaxChargeKW:         1,
		MaxDischargeKW:      1,
		RoundTripEfficiency: 0.8,
		InitialEnergyKWh:    0,
	}
	large := model.BatterySpec{
		CapacityKWh:         20,
		MaxChargeKW:         10,
		MaxDischargeKW:      10,
		RoundTripEfficiency: 1.0,
		InitialEnergyKWh:    15,
	}

	smallRes, err := Run(p, small, model.ModeCost)
	require.NoError(t, err)
	largeRes, err := Run(p, large, model.ModeCost)
	require.NoError(t, err)

	assert.InDelta(t, smallRes.Savings.BaselineCost, largeRes.Savings.BaselineCost, tol)
	assert.InDelta(t, smallRes.Savings.BaselineCarbon, largeRes.Savings.BaselineCarbon, tol)
}
