package domain

// Stats aggregates the dashboard headline figures for both tables.
type Stats struct {
	// TotalOrders is the pedidos row count.
	TotalOrders int64 `json:"total_pedidos"`
	// TotalShipments is the envíos row count.
	TotalShipments int64 `json:"total_envios"`
	// OrdersByStatus holds pedidos counts keyed by estado.
	OrdersByStatus map[string]int64 `json:"pedidos_por_estado"`
	// ShipmentsByStatus holds envíos counts keyed by estado.
	ShipmentsByStatus map[string]int64 `json:"envios_por_estado"`
}
