package handler

import (
	"errors"
	"net/http"
	"time"

	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/features/ingest/domain"
	"pedidos-tracker/internal/features/ingest/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WebhookHandler handles batch deliveries from the external automation tool.
type WebhookHandler struct {
	service *service.Service
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(s *service.Service) *WebhookHandler {
	return &WebhookHandler{
		service: s,
	}
}

// WebhookResponse is the success envelope returned to the automation tool.
type WebhookResponse struct {
	Success bool `json:"success"`
	// Message is a human-readable confirmation.
	Message string `json:"message"`
	// PedidosInsertados counts newly created orders (updates excluded).
	PedidosInsertados int `json:"pedidos_insertados"`
	// EnviosInsertados counts newly created shipments (updates excluded).
	EnviosInsertados int `json:"envios_insertados"`
	// Timestamp is the processing time in RFC 3339.
	Timestamp string `json:"timestamp"`
}

// WebhookErrorResponse is the error envelope.
type WebhookErrorResponse struct {
	Success bool `json:"success"`
	// Error identifies the failure.
	Error string `json:"error"`
	// Details carries parse diagnostics when available.
	Details string `json:"details,omitempty"`
	// Timestamp is the failure time in RFC 3339.
	Timestamp string `json:"timestamp"`
}

// Handle processes POST /webhook/pedidos.
// @Summary Ingest a batch of pedidos and envíos
// @Description Receives order/shipment batches pushed by the automation tool and reconciles them idempotently by natural key.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param batch body object true "Canonical batch {pedidos, envios} or a single shipment object"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} WebhookErrorResponse
// @Failure 500 {object} WebhookErrorResponse
// @Router /webhook/pedidos [post]
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	l := logger.Get()
	body := c.Body()

	l.Info("Webhook received",
		zap.Int("body_bytes", len(body)),
		zap.String("ray_id", rayID(c)),
	)

	payload, err := domain.ClassifyPayload(body)
	if err != nil {
		l.Warn("Webhook body is not valid JSON", zap.Error(err))
		return c.Status(http.StatusBadRequest).JSON(WebhookErrorResponse{
			Success:   false,
			Error:     "Invalid JSON format",
			Details:   err.Error(),
			Timestamp: timestamp(),
		})
	}

	if payload.Kind == domain.PayloadUnrecognized {
		l.Warn("Webhook payload shape not recognized")
		return c.Status(http.StatusBadRequest).JSON(WebhookErrorResponse{
			Success:   false,
			Error:     "Formato de datos no válido",
			Timestamp: timestamp(),
		})
	}

	result, err := h.service.Process(c.Context(), payload)
	if err != nil {
		// Classified payloads only fail wholesale (cancelled context,
		// programmer error); per-record problems were already skipped.
		if !errors.Is(err, service.ErrUnrecognizedPayload) {
			l.Error("Webhook processing failed", zap.Error(err))
		}
		return c.Status(http.StatusInternalServerError).JSON(WebhookErrorResponse{
			Success:   false,
			Error:     err.Error(),
			Timestamp: timestamp(),
		})
	}

	return c.Status(http.StatusOK).JSON(WebhookResponse{
		Success:           true,
		Message:           "Datos procesados correctamente",
		PedidosInsertados: result.OrdersInserted,
		EnviosInsertados:  result.ShipmentsInserted,
		Timestamp:         timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
