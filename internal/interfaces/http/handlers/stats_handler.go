package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pay-chain.backend/internal/domain/entities"
	"pay-chain.backend/internal/interfaces/http/response"
	"pay-chain.backend/internal/usecases"
)

type statsService interface {
	GlobalStats(ctx context.Context) (*entities.GlobalStats, error)
}

// StatsHandler serves the collection dashboard counters
type StatsHandler struct {
	statsUsecase statsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUsecase *usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// GetStats returns the global collection stats
// GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsUsecase.GlobalStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
