package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pedidos-tracker/internal/core/logger"
	"pedidos-tracker/internal/features/ingest/domain"
	"pedidos-tracker/internal/features/ingest/ports"
	ordersdomain "pedidos-tracker/internal/features/orders/domain"
	shipmentsdomain "pedidos-tracker/internal/features/shipments/domain"

	"go.uber.org/zap"
)

// ErrUnrecognizedPayload is returned when Process is handed a payload the
// classifier could not match to a known shape.
var ErrUnrecognizedPayload = errors.New("unrecognized payload shape")

// Result summarizes a processed batch. Pure updates are not counted: the
// caller only learns how many new rows each table gained.
type Result struct {
	// OrdersInserted is the number of newly created pedidos.
	OrdersInserted int
	// ShipmentsInserted is the number of newly created envíos.
	ShipmentsInserted int
}

// Service reconciles webhook batches into the orders and shipments stores.
type Service struct {
	orders    ports.OrderStore
	shipments ports.ShipmentStore
	stats     ports.StatsInvalidator
	now       func() time.Time
}

// NewService creates a new ingestion Service. stats may be nil when no
// derived figures need invalidating (e.g., in tests).
func NewService(orders ports.OrderStore, shipments ports.ShipmentStore, stats ports.StatsInvalidator) *Service {
	return &Service{
		orders:    orders,
		shipments: shipments,
		stats:     stats,
		now:       time.Now,
	}
}

// Process reconciles every record of the payload sequentially. A failing
// record is logged and skipped; the batch always runs to completion unless
// the request context is cancelled.
func (s *Service) Process(ctx context.Context, p domain.Payload) (Result, error) {
	if p.Kind == domain.PayloadUnrecognized {
		return Result{}, ErrUnrecognizedPayload
	}

	l := logger.Get()
	var res Result

	for _, in := range p.Orders {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		inserted, err := s.reconcileOrder(ctx, in)
		if err != nil {
			l.Warn("Pedido skipped",
				zap.String("id", in.ID),
				zap.Error(err),
			)
			continue
		}
		if inserted {
			res.OrdersInserted++
			l.Info("Pedido inserted", zap.String("id", in.ID))
		} else {
			l.Debug("Pedido updated", zap.String("id", in.ID))
		}
	}

	for _, in := range p.Shipments {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		inserted, err := s.reconcileShipment(ctx, in)
		if err != nil {
			l.Warn("Envío skipped",
				zap.String("expedicion", in.Expedition),
				zap.Error(err),
			)
			continue
		}
		if inserted {
			res.ShipmentsInserted++
			l.Info("Envío inserted", zap.String("expedicion", in.Expedition))
		} else {
			l.Debug("Envío updated", zap.String("expedicion", in.Expedition))
		}
	}

	if s.stats != nil && len(p.Orders)+len(p.Shipments) > 0 {
		if err := s.stats.Invalidate(ctx); err != nil {
			l.Warn("Failed to invalidate dashboard stats", zap.Error(err))
		}
	}

	l.Info("Batch processed",
		zap.Int("pedidos_insertados", res.OrdersInserted),
		zap.Int("envios_insertados", res.ShipmentsInserted),
		zap.Int("pedidos_recibidos", len(p.Orders)),
		zap.Int("envios_recibidos", len(p.Shipments)),
	)

	return res, nil
}

// reconcileOrder normalizes one order record and upserts it by id.
func (s *Service) reconcileOrder(ctx context.Context, in domain.OrderInput) (bool, error) {
	id := domain.CleanText(in.ID)
	if id == "" {
		return false, errors.New("pedido has no id")
	}

	status := domain.CleanText(in.Status)
	if status == "" {
		status = ordersdomain.StatusPending
	}

	date := domain.CleanText(in.Date)
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	order := &ordersdomain.Order{
		ID:      id,
		Status:  status,
		Date:    date,
		Name:    domain.CleanText(in.Name),
		Address: domain.CleanText(in.Address),
		City:    domain.CleanText(in.City),
		Course:  domain.CleanText(in.Course),
		Email:   domain.CleanText(in.Email),
	}

	return s.orders.Upsert(ctx, order)
}

// reconcileShipment normalizes one shipment record and upserts it by
// expedition number.
func (s *Service) reconcileShipment(ctx context.Context, in domain.ShipmentInput) (bool, error) {
	expedition := domain.CleanText(in.Expedition)
	if expedition == "" {
		return false, errors.New("envío has no expedición")
	}

	date, err := domain.ParseDate(domain.CleanText(in.Date))
	if err != nil {
		return false, fmt.Errorf("bad fecha: %w", err)
	}

	updatedDate, err := domain.ParseOptionalDate(domain.CleanText(in.UpdatedDate))
	if err != nil {
		return false, fmt.Errorf("bad fechaActualizacion: %w", err)
	}

	packages, err := domain.ParseOptionalInt(string(in.Packages))
	if err != nil {
		return false, fmt.Errorf("bad bultos: %w", err)
	}

	weight, err := domain.ParseOptionalFloat(string(in.Weight))
	if err != nil {
		return false, fmt.Errorf("bad kgs: %w", err)
	}

	status := domain.CleanText(in.Status)
	if status == "" {
		status = shipmentsdomain.StatusPending
	}

	shipment := &shipmentsdomain.Shipment{
		Expedition:  expedition,
		Date:        date,
		Recipient:   domain.CleanText(in.Recipient),
		Address:     domain.CleanText(in.Address),
		Locality:    domain.CleanText(in.Locality),
		Status:      status,
		OrderID:     domain.NormalizeOrderRef(in.OrderID),
		Tracking:    domain.CleanText(in.Tracking),
		Packages:    packages,
		Weight:      weight,
		OriginZip:   domain.CleanText(in.OriginZip),
		DestZip:     domain.CleanText(in.DestZip),
		Observation: domain.CleanText(in.Observation),
		UpdatedDate: updatedDate,
	}

	return s.shipments.Upsert(ctx, shipment)
}
