package ports

import (
	"context"

	ordersdomain "pedidos-tracker/internal/features/orders/domain"
	shipmentsdomain "pedidos-tracker/internal/features/shipments/domain"
)

// OrderStore is the slice of order persistence the reconciler needs.
type OrderStore interface {
	Upsert(ctx context.Context, order *ordersdomain.Order) (inserted bool, err error)
}

// ShipmentStore is the slice of shipment persistence the reconciler needs.
type ShipmentStore interface {
	Upsert(ctx context.Context, shipment *shipmentsdomain.Shipment) (inserted bool, err error)
}

// StatsInvalidator drops derived dashboard figures after a batch mutates the
// store. Invalidation failures are logged, never surfaced to the caller.
type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}
