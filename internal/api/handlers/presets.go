package handlers

import (
	"net/http"

	"battery-scheduler/internal/api/models"

	"github.com/gin-gonic/gin"
)

// PresetHandler lists the built-in profile presets
type PresetHandler struct{}

func NewPresetHandler() *PresetHandler {
	return &PresetHandler{}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{
		{Series: "import", Name: "flat", Description: "Constant import price at the given value"},
		{Series: "import", Name: "peak_offpeak", Description: "30 during 16:00-20:00, 10 otherwise"},
		{Series: "import", Name: "tou", Description: "Time-of-use bands covering the whole day"},
		{Series: "import", Name: "csv", Description: "Prices loaded from a time,price CSV file"},
		{Series: "export", Name: "flat", Description: "Constant export price at the given value"},
		{Series: "demand", Name: "flat", Description: "Constant household demand at the given value"},
		{Series: "demand", Name: "evening_peak", Description: "2.0 kW during 17:00-21:00, 0.5 kW otherwise"},
		{Series: "carbon", Name: "flat", Description: "Constant grid carbon intensity at the given value"},
		{Series: "carbon", Name: "api", Description: "Half-hourly forecast from the national carbon intensity API"},
	}
	c.JSON(http.StatusOK, models.PresetsResponse{Presets: presets})
}
