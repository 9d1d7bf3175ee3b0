package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"justice-airdrop.backend/internal/domain/entities"
	"justice-airdrop.backend/internal/interfaces/http/response"
	"justice-airdrop.backend/internal/usecases"
)

type statsService interface {
	Stats(ctx context.Context) (*entities.Stats, error)
	Summary(ctx context.Context) (*entities.StatsSummary, error)
	Series(ctx context.Context, minutes, interval int) (*entities.TimeSeries, error)
}

// StatsHandler handles dashboard statistics
type StatsHandler struct {
	statsUsecase statsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUsecase *usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{statsUsecase: statsUsecase}
}

// Stats returns the headline counters
// GET /api/v1/admin/stats
func (h *StatsHandler) Stats(c *gin.Context) {
	stats, err := h.statsUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Summary returns counters broken down by status
// GET /api/v1/admin/stats/summary
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.statsUsecase.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}

// Series returns approved submissions bucketed over a trailing window
// GET /api/v1/admin/stats/series?minutes=60&interval=60
func (h *StatsHandler) Series(c *gin.Context) {
	minutes := queryInt(c, "minutes", usecases.DefaultSeriesMinutes)
	interval := queryInt(c, "interval", usecases.DefaultSeriesInterval)

	series, err := h.statsUsecase.Series(c.Request.Context(), minutes, interval)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, series)
}
