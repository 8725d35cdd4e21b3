package handler

import (
	"bytes"
	"errors"
	"net/http"

	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/features/shipments/ports"
	"pedidos-tracker/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShipmentHandler handles HTTP requests for the envíos dashboard.
type ShipmentHandler struct {
	service *service.ShipmentService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(s *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{
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

// BulkDeleteRequest is the body for bulk shipment deletion.
type BulkDeleteRequest struct {
	Expeditions []string `json:"expediciones"`
}

// List handles GET /envios.
// @Summary List envíos
// @Description Lists shipments with optional search (expedicion/destinatario/pedido_id substring) and estado facet filtering.
// @Tags Envios
// @Produce json
// @Param search query string false "Substring matched against expedicion, destinatario and pedido_id"
// @Param estado query string false "Exact estado filter, case-insensitive"
// @Success 200 {array} service.ShipmentView
// @Failure 500 {object} ErrorResponse
// @Router /envios [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	q := ports.ShipmentQuery{
		Search: c.Query("search"),
		Status: c.Query("estado"),
	}

	views, err := h.service.List(c.Context(), q)
	if err != nil {
		logger.Get().Error("Failed to list envíos", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(views)
}

// Delete handles DELETE /envios/:expedicion.
// @Summary Delete an envío
// @Tags Envios
// @Produce json
// @Param expedicion path string true "Expedition number"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /envios/{expedicion} [delete]
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	expedition := c.Params("expedicion")

	if err := h.service.Delete(c.Context(), expedition); err != nil {
		if errors.Is(err, service.ErrShipmentNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Envío not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to delete envío",
			zap.String("expedicion", expedition),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Envío deleted",
	})
}

// BulkDelete handles POST /envios/delete.
// @Summary Delete several envíos at once
// @Tags Envios
// @Accept json
// @Produce json
// @Param expediciones body BulkDeleteRequest true "Expedition numbers to delete"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /envios/delete [post]
func (h *ShipmentHandler) BulkDelete(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}
	if len(req.Expeditions) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "expediciones is required",
			RayID:   rayID(c),
		})
	}

	removed, err := h.service.DeleteMany(c.Context(), req.Expeditions)
	if err != nil {
		logger.Get().Error("Failed to bulk delete envíos", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"deleted": removed,
	})
}

// Export handles GET /envios/export.
// @Summary Export envíos as CSV
// @Description Downloads the filtered shipment list as a CSV file.
// @Tags Envios
// @Produce text/csv
// @Param search query string false "Substring matched against expedicion, destinatario and pedido_id"
// @Param estado query string false "Exact estado filter, case-insensitive"
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} ErrorResponse
// @Router /envios/export [get]
func (h *ShipmentHandler) Export(c *fiber.Ctx) error {
	q := ports.ShipmentQuery{
		Search: c.Query("search"),
		Status: c.Query("estado"),
	}

	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Context(), q, &buf); err != nil {
		logger.Get().Error("Failed to export envíos", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="envios.csv"`)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
