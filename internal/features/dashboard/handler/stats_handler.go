package handler

import (
	"net/http"

	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/features/dashboard/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler handles HTTP requests for dashboard aggregates.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// Get handles GET /dashboard/stats.
// @Summary Dashboard stats
// @Description Returns totals and per-estado counts for pedidos and envíos.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.Stats
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.service.Get(c.Context())
	if err != nil {
		logger.Get().Error("Failed to compute dashboard stats", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(stats)
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
