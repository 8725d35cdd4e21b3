package ports

import (
	"context"

	"pedidos-tracker/internal/features/shipments/domain"
)

// ShipmentQuery carries the dashboard list filters.
type ShipmentQuery struct {
	// Search matches expedicion, destinatario and pedido_id as a
	// case-insensitive substring.
	Search string
	// Status filters on estado, case-insensitively. Empty means all.
	Status string
}

// ShipmentRepository defines the secondary port for shipment storage.
type ShipmentRepository interface {
	// Upsert inserts the shipment or, when the expedition already exists,
	// overwrites every mutable field. It reports whether a new row was
	// created. The implementation must be atomic on the natural key.
	Upsert(ctx context.Context, shipment *domain.Shipment) (inserted bool, err error)

	// List returns shipments matching the query, newest first.
	List(ctx context.Context, q ShipmentQuery) ([]domain.Shipment, error)

	// Delete removes one shipment and reports whether it existed.
	Delete(ctx context.Context, expedition string) (found bool, err error)

	// DeleteMany removes a set of shipments and returns how many were removed.
	DeleteMany(ctx context.Context, expeditions []string) (int64, error)

	// CountByStatus returns per-estado row counts.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
