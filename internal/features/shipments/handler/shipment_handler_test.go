package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"pedidos-tracker/internal/features/shipments/domain"
	"pedidos-tracker/internal/features/shipments/ports"
	"pedidos-tracker/internal/features/shipments/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockShipmentRepo struct {
	shipments []domain.Shipment
}

func (m *mockShipmentRepo) Upsert(_ context.Context, _ *domain.Shipment) (bool, error) {
	return false, nil
}

func (m *mockShipmentRepo) List(_ context.Context, _ ports.ShipmentQuery) ([]domain.Shipment, error) {
	return m.shipments, nil
}

func (m *mockShipmentRepo) Delete(_ context.Context, expedition string) (bool, error) {
	for _, s := range m.shipments {
		if s.Expedition == expedition {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockShipmentRepo) DeleteMany(_ context.Context, expeditions []string) (int64, error) {
	return int64(len(expeditions)), nil
}

func (m *mockShipmentRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	return nil, nil
}

func newTestApp(repo *mockShipmentRepo) *fiber.App {
	svc := service.NewShipmentService(repo)
	h := NewShipmentHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/envios", h.List)
	app.Get("/envios/export", h.Export)
	app.Post("/envios/delete", h.BulkDelete)
	app.Delete("/envios/:expedicion", h.Delete)
	return app
}

func TestShipmentHandler_List(t *testing.T) {
	app := newTestApp(&mockShipmentRepo{shipments: []domain.Shipment{
		{Expedition: "900123", Status: "ENTREGADO", Observation: "Entregado en mano"},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/envios", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var views []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, "900123", views[0]["expedicion"])
	assert.Equal(t, true, views[0]["entregado"])
	assert.Equal(t, "ENTREGADO", views[0]["categoria"])
}

func TestShipmentHandler_DeleteNotFound(t *testing.T) {
	app := newTestApp(&mockShipmentRepo{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/envios/900999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "test-ray-id", body["ray_id"])
}

func TestShipmentHandler_BulkDeleteRequiresExpeditions(t *testing.T) {
	app := newTestApp(&mockShipmentRepo{})

	req := httptest.NewRequest("POST", "/envios/delete", strings.NewReader(`{"expediciones":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestShipmentHandler_Export(t *testing.T) {
	app := newTestApp(&mockShipmentRepo{shipments: []domain.Shipment{
		{Expedition: "900123", Date: "2025-01-05", Status: "EN TRANSITO"},
	}})

	resp, err := app.Test(httptest.NewRequest("GET", "/envios/export", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "envios.csv")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "900123,2025-01-05")
}
