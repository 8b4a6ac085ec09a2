package handlers

import (
	"errors"
	"net/http"
	"time"

	"battery-scheduler/internal/api/models"
	"battery-scheduler/internal/profiles"

	"github.com/gin-gonic/gin"
)

// CarbonHandler proxies grid carbon intensity lookups
type CarbonHandler struct {
	client *profiles.CarbonClient
}

func NewCarbonHandler(client *profiles.CarbonClient) *CarbonHandler {
	return &CarbonHandler{client: client}
}

// GetIntensity handles GET /api/v1/carbon?from=RFC3339&to=RFC3339
func (h *CarbonHandler) GetIntensity(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "from must be an RFC3339 timestamp",
			},
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "to must be an RFC3339 timestamp",
			},
		})
		return
	}

	periods, err := h.client.GetIntensity(from, to)
	if err != nil {
		var apiErr *profiles.CarbonAPIError
		if errors.As(err, &apiErr) {
			status := http.StatusBadGateway
			if apiErr.StatusCode == http.StatusTooManyRequests {
				status = http.StatusTooManyRequests
			}
			c.JSON(status, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "CARBON_API_ERROR",
					Message: apiErr.Message,
					Details: map[string]interface{}{"status_code": apiErr.StatusCode},
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CARBON_API_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": periods})
}
