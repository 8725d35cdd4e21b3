package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"pedidos-tracker/internal/core/cache"
	"pedidos-tracker/internal/features/dashboard/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter map[string]int64

func (s stubCounter) CountByStatus(_ context.Context) (map[string]int64, error) {
	return s, nil
}

func TestStatsHandler_Get(t *testing.T) {
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	svc := service.NewStatsService(
		stubCounter{"PENDIENTE": 2, "ENTREGADO": 1},
		stubCounter{"EN TRANSITO": 4},
		adapter,
		time.Minute,
	)
	h := NewStatsHandler(svc)

	app := fiber.New()
	app.Get("/dashboard/stats", h.Get)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(3), body["total_pedidos"])
	assert.Equal(t, float64(4), body["total_envios"])
}
