package handlers

import (
	"errors"
	"log"
	"net/http"

	"battery-scheduler/internal/api/models"
	"battery-scheduler/internal/model"
	"battery-scheduler/internal/optimizer"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler handles schedule optimization requests
type OptimizeHandler struct{}

func NewOptimizeHandler() *OptimizeHandler {
	return &OptimizeHandler{}
}

// RunOptimize handles POST /api/v1/optimize
func (h *OptimizeHandler) RunOptimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	mode := model.Mode(req.Mode)
	if req.Mode == "" {
		mode = model.ModeCost
	}

	spec := toBatterySpec(req.Battery)
	profile := toProfile(req.Profile)

	result, err := optimizer.Run(profile, spec, mode)
	if err != nil {
		writeOptimizeError(c, err)
		return
	}

	log.Printf("[API] optimize mode=%s steps=%d objective=%.4f", mode, profile.Steps(), result.Objective)
	c.JSON(http.StatusOK, buildOptimizeResponse(result, req.Options.IncludeSchedule))
}

func writeOptimizeError(c *gin.Context, err error) {
	var invalid *model.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: invalid.Error(),
				Details: map[string]interface{}{"field": invalid.Field},
			},
		})
		return
	}
	if errors.Is(err, optimizer.ErrInfeasibleModel) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INFEASIBLE",
				Message: "no schedule satisfies the battery and demand constraints",
			},
		})
		return
	}
	if errors.Is(err, optimizer.ErrUnboundedModel) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNBOUNDED",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "SOLVER_ERROR",
			Message: err.Error(),
		},
	})
}

func toBatterySpec(b models.BatteryPayload) model.BatterySpec {
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

func toProfile(p models.ProfilePayload) model.Profile {
	stepHours := p.StepHours
	if stepHours == 0 {
		stepHours = 1
	}
	n := len(p.ImportTariff)
	carbon := p.CarbonIntensity
	if carbon == nil {
		carbon = make([]float64, n)
	}
	exports := p.ExportTariff
	if exports == nil {
		exports = make([]float64, n)
	}
	return model.Profile{
		ImportTariff:    p.ImportTariff,
		ExportTariff:    exports,
		Demand:          p.Demand,
		CarbonIntensity: carbon,
		StepHours:       stepHours,
	}
}

func buildOptimizeResponse(result *optimizer.Result, includeSchedule bool) models.OptimizeResponse {
	resp := models.OptimizeResponse{
		Status: "completed",
		Mode:   string(result.Mode),
		Summary: models.OptimizeSummary{
			Objective:           result.Objective,
			BaselineCost:        result.Savings.BaselineCost,
			OptimizedCost:       result.Savings.OptimizedCost,
			CostSavings:         result.Savings.CostSavings,
			BaselineCarbon:      result.Savings.BaselineCarbon,
			OptimizedCarbon:     result.Savings.OptimizedCarbon,
			CarbonSavings:       result.Savings.CarbonSavings,
			EnergyChargedKWh:    result.Totals.EnergyChargedKWh,
			EnergyDischargedKWh: result.Totals.EnergyDischargedKWh,
			EnergyExportedKWh:   result.Totals.EnergyExportedKWh,
			FinalEnergyKWh:      result.Totals.FinalEnergyKWh,
			TotalSteps:          result.Schedule.Steps(),
		},
	}
	if includeSchedule {
		resp.Schedule = convertSchedule(result.Schedule)
	}
	return resp
}

func convertSchedule(s optimizer.Schedule) []models.ScheduleRow {
	rows := make([]models.ScheduleRow, s.Steps())
	for t := range rows {
		rows[t] = models.ScheduleRow{
			Index:           t,
			ChargeKW:        s.ChargeKW[t],
			DischargeHomeKW: s.DischargeHomeKW[t],
			DischargeGridKW: s.DischargeGridKW[t],
			GridHomeKW:      s.GridHomeKW[t],
			EnergyStartKWh:  s.EnergyKWh[t],
			EnergyEndKWh:    s.EnergyKWh[t+1],
			Action:          string(s.Action(t)),
		}
	}
	return rows
}
