package handler

import (
	"bytes"
	"errors"
	"net/http"

	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/features/orders/ports"
	"pedidos-tracker/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for the pedidos dashboard.
type OrderHandler struct {
	service *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s *service.OrderService) *OrderHandler {
	return &OrderHandler{
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

// BulkDeleteRequest is the body for bulk order deletion.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// List handles GET /pedidos.
// @Summary List pedidos
// @Description Lists orders with optional search (id/nombre substring) and estado facet filtering.
// @Tags Pedidos
// @Produce json
// @Param search query string false "Substring matched against id and nombre"
// @Param estado query string false "Exact estado filter, case-insensitive"
// @Success 200 {array} service.OrderView
// @Failure 500 {object} ErrorResponse
// @Router /pedidos [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	q := ports.OrderQuery{
		Search: c.Query("search"),
		Status: c.Query("estado"),
	}

	views, err := h.service.List(c.Context(), q)
	if err != nil {
		logger.Get().Error("Failed to list pedidos", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(views)
}

// Delete handles DELETE /pedidos/:id.
// @Summary Delete a pedido
// @Tags Pedidos
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pedidos/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Pedido not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to delete pedido",
			zap.String("id", id),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Pedido deleted",
	})
}

// BulkDelete handles POST /pedidos/delete.
// @Summary Delete several pedidos at once
// @Tags Pedidos
// @Accept json
// @Produce json
// @Param ids body BulkDeleteRequest true "Order IDs to delete"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /pedidos/delete [post]
func (h *OrderHandler) BulkDelete(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}
	if len(req.IDs) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "ids is required",
			RayID:   rayID(c),
		})
	}

	removed, err := h.service.DeleteMany(c.Context(), req.IDs)
	if err != nil {
		logger.Get().Error("Failed to bulk delete pedidos", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"deleted": removed,
	})
}

// Export handles GET /pedidos/export.
// @Summary Export pedidos as CSV
// @Description Downloads the filtered order list as a CSV file.
// @Tags Pedidos
// @Produce text/csv
// @Param search query string false "Substring matched against id and nombre"
// @Param estado query string false "Exact estado filter, case-insensitive"
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} ErrorResponse
// @Router /pedidos/export [get]
func (h *OrderHandler) Export(c *fiber.Ctx) error {
	q := ports.OrderQuery{
		Search: c.Query("search"),
		Status: c.Query("estado"),
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Context(), q, &buf); err != nil {
		logger.Get().Error("Failed to export pedidos", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedidos.csv"`)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
