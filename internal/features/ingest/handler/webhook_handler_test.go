package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"pedidos-tracker/internal/features/ingest/service"
	ordersdomain "pedidos-tracker/internal/features/orders/domain"
	shipmentsdomain "pedidos-tracker/internal/features/shipments/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderStore records upserts so tests can assert no persistence happened.
type mockOrderStore struct {
	existing map[string]bool
	calls    int
}

func (m *mockOrderStore) Upsert(_ context.Context, order *ordersdomain.Order) (bool, error) {
	m.calls++
	if m.existing[order.ID] {
		return false, nil
	}
	if m.existing == nil {
		m.existing = map[string]bool{}
	}
	m.existing[order.ID] = true
	return true, nil
}

type mockShipmentStore struct {
	existing map[string]bool
	calls    int
}

func (m *mockShipmentStore) Upsert(_ context.Context, shipment *shipmentsdomain.Shipment) (bool, error) {
	m.calls++
	if m.existing[shipment.Expedition] {
		return false, nil
	}
	if m.existing == nil {
		m.existing = map[string]bool{}
	}
	m.existing[shipment.Expedition] = true
	return true, nil
}

func newTestApp(orders *mockOrderStore, shipments *mockShipmentStore) *fiber.App {
	svc := service.NewService(orders, shipments, nil)
	h := NewWebhookHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/webhook/pedidos", h.Handle)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/webhook/pedidos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestWebhookHandler_CanonicalBatch(t *testing.T) {
	orders := &mockOrderStore{}
	shipments := &mockShipmentStore{}
	app := newTestApp(orders, shipments)

	status, body := postJSON(t, app, `{
		"pedidos": [{"id": "IFSES_Matri_17697", "nombre": "Alba Chueca"}],
		"envios": [{"expedicion": "1167644726", "fecha": "01/09/2025"}]
	}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Datos procesados correctamente", body["message"])
	assert.Equal(t, float64(1), body["pedidos_insertados"])
	assert.Equal(t, float64(1), body["envios_insertados"])
	assert.NotEmpty(t, body["timestamp"])
}

// TestWebhookHandler_SingleShipmentShape verifies a bare shipment object is
// treated as one shipment and zero orders.
func TestWebhookHandler_SingleShipmentShape(t *testing.T) {
	orders := &mockOrderStore{}
	shipments := &mockShipmentStore{}
	app := newTestApp(orders, shipments)

	status, body := postJSON(t, app, `{"expedicion": "X1", "fecha": "01/01/2025"}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["pedidos_insertados"])
	assert.Equal(t, float64(1), body["envios_insertados"])
	assert.Zero(t, orders.calls)
	assert.Equal(t, 1, shipments.calls)
}

// TestWebhookHandler_Idempotent verifies resubmitting a batch reports zero
// new inserts the second time.
func TestWebhookHandler_Idempotent(t *testing.T) {
	app := newTestApp(&mockOrderStore{}, &mockShipmentStore{})
	payload := `{"envios": [{"expedicion": "X1", "fecha": "01/01/2025"}]}`

	status, body := postJSON(t, app, payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["envios_insertados"])

	status, body = postJSON(t, app, payload)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), body["envios_insertados"])
}

// TestWebhookHandler_MalformedBody verifies a non-JSON body yields 400 with
// parse diagnostics and makes no persistence calls.
func TestWebhookHandler_MalformedBody(t *testing.T) {
	orders := &mockOrderStore{}
	shipments := &mockShipmentStore{}
	app := newTestApp(orders, shipments)

	status, body := postJSON(t, app, `this is not json`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid JSON format", body["error"])
	assert.NotEmpty(t, body["details"])
	assert.Zero(t, orders.calls)
	assert.Zero(t, shipments.calls)
}

// TestWebhookHandler_UnrecognizedShape verifies parseable JSON of unknown
// shape yields the Spanish-format 400 with no processing.
func TestWebhookHandler_UnrecognizedShape(t *testing.T) {
	orders := &mockOrderStore{}
	shipments := &mockShipmentStore{}
	app := newTestApp(orders, shipments)

	status, body := postJSON(t, app, `{"foo": "bar"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Formato de datos no válido", body["error"])
	assert.Zero(t, orders.calls)
	assert.Zero(t, shipments.calls)
}

// TestWebhookHandler_NonObjectBody verifies valid JSON whose top-level value
// is not an object lands in the unrecognized-shape branch, not the parse
// error one.
func TestWebhookHandler_NonObjectBody(t *testing.T) {
	orders := &mockOrderStore{}
	shipments := &mockShipmentStore{}
	app := newTestApp(orders, shipments)

	for _, payload := range []string{`[]`, `42`, `"pedidos"`} {
		status, body := postJSON(t, app, payload)

		assert.Equal(t, fiber.StatusBadRequest, status, payload)
		assert.Equal(t, "Formato de datos no válido", body["error"], payload)
	}
	assert.Zero(t, orders.calls)
	assert.Zero(t, shipments.calls)
}
