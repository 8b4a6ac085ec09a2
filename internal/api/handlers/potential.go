package handlers

import (
	"net/http"

	"battery-scheduler/internal/analysis"
	"battery-scheduler/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PotentialHandler handles tariff potential analysis requests
type PotentialHandler struct{}

func NewPotentialHandler() *PotentialHandler {
	return &PotentialHandler{}
}

// AnalyzePotential handles POST /api/v1/potential
func (h *PotentialHandler) AnalyzePotential(c *gin.Context) {
	var req models.PotentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if len(req.ImportTariff) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: "import_tariff must not be empty",
			},
		})
		return
	}
	stepHours := req.StepHours
	if stepHours == 0 {
		stepHours = 1
	}

	p := analysis.ComputePotential(req.ImportTariff, stepHours)
	c.JSON(http.StatusOK, models.PotentialResponse{
		Steps:        p.Steps,
		MinPrice:     p.MinPrice,
		MaxPrice:     p.MaxPrice,
		MeanPrice:    p.MeanPrice,
		P05Price:     p.P05Price,
		P95Price:     p.P95Price,
		SpreadP95P05: p.SpreadP95P05,
		OracleProfit: p.OracleProfit,
	})
}
