package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pedidos-tracker/internal/core/cache"
	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/features/dashboard/domain"
	"pedidos-tracker/internal/features/dashboard/ports"

	"go.uber.org/zap"
)

// statsCacheKey is the single Redis entry holding the serialized stats.
const statsCacheKey = "dashboard:stats"

// StatsService computes dashboard aggregates, memoized in the cache.
// Cache failures degrade to direct queries; they are logged, never surfaced.
type StatsService struct {
	orders    ports.StatusCounter
	shipments ports.StatusCounter
	cache     cache.Cache
	ttl       time.Duration
}

// NewStatsService creates a new StatsService.
func NewStatsService(orders, shipments ports.StatusCounter, c cache.Cache, ttl time.Duration) *StatsService {
	return &StatsService{
		orders:    orders,
		shipments: shipments,
		cache:     c,
		ttl:       ttl,
	}
}

// Get returns the dashboard stats, from cache when a fresh entry exists.
func (s *StatsService) Get(ctx context.Context) (*domain.Stats, error) {
	if raw, err := s.cache.Get(ctx, statsCacheKey); err == nil {
		var stats domain.Stats
		if err := json.Unmarshal(raw, &stats); err == nil {
			return &stats, nil
		}
		logger.Get().Warn("Discarding corrupt cached stats entry", zap.Error(err))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Get().Warn("Stats cache read failed", zap.Error(err))
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, statsCacheKey, raw, s.ttl); err != nil {
			logger.Get().Warn("Stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}

// Invalidate drops the cached entry so the next Get recomputes.
func (s *StatsService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, statsCacheKey)
}

func (s *StatsService) compute(ctx context.Context) (*domain.Stats, error) {
	ordersByStatus, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count pedidos: %w", err)
	}
	shipmentsByStatus, err := s.shipments.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to count envíos: %w", err)
	}

	stats := &domain.Stats{
		OrdersByStatus:    ordersByStatus,
		ShipmentsByStatus: shipmentsByStatus,
	}
	for _, n := range ordersByStatus {
		stats.TotalOrders += n
	}
	for _, n := range shipmentsByStatus {
		stats.TotalShipments += n
	}
	return stats, nil
}
