package ports

import (
	"context"

	"pedidos-tracker/internal/features/orders/domain"
)

// OrderQuery carries the dashboard list filters.
type OrderQuery struct {
	// Search matches id and nombre as a case-insensitive substring.
	Search string
	// Status filters on estado, case-insensitively. Empty means all.
	Status string
}

// OrderRepository defines the secondary port for order storage.
type OrderRepository interface {
	// Upsert inserts the order or, when the id already exists, overwrites
	// every mutable field. It reports whether a new row was created. The
	// implementation must be atomic on the natural key.
	Upsert(ctx context.Context, order *domain.Order) (inserted bool, err error)

	// List returns orders matching the query, newest first.
	List(ctx context.Context, q OrderQuery) ([]domain.Order, error)

	// Delete removes one order and reports whether it existed.
	Delete(ctx context.Context, id string) (found bool, err error)

	// DeleteMany removes a set of orders and returns how many were removed.
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// CountByStatus returns per-estado row counts.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// ShipmentStatusReader resolves the statuses of shipments linked to orders.
// Implemented by the shipments repository; the weak pedido_id reference means
// an order may map to zero, one or several shipment statuses.
type ShipmentStatusReader interface {
	StatusesByOrderID(ctx context.Context, orderIDs []string) (map[string][]string, error)
}
