package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-mess/internal/models"
	"hostel-mess/internal/responses"
)

type StatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

type StatsHandler struct {
	statsService StatsService
}

func NewStatsHandler(statsService StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		serverError(c, "get stats", err)
		return
	}

	responses.Data(c, http.StatusOK, stats)
}
