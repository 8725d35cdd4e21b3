package domain

import (
	"strings"
	"time"
)

// StatusPending is the status assigned to shipments that arrive without one.
const StatusPending = "PENDIENTE"

// Shipment represents a carrier-tracked physical delivery ("envío GLS"),
// keyed by the carrier expedition number and optionally linked to an order.
type Shipment struct {
	// Expedition is the natural key: the carrier expedition number.
	Expedition string `json:"expedicion"`
	// Date is the shipping date as an ISO YYYY-MM-DD string.
	Date string `json:"fecha"`
	// Recipient is the delivery addressee.
	Recipient string `json:"destinatario"`
	// Address is the delivery address.
	Address string `json:"direccion"`
	// Locality is the delivery town.
	Locality string `json:"localidad"`
	// Status is a free-form carrier state label.
	Status string `json:"estado"`
	// OrderID is a weak back-reference to Order.ID. Not enforced: orphan
	// references are tolerated and rendered as unresolved rows.
	OrderID string `json:"pedido_id,omitempty"`
	// Tracking is the carrier tracking URL.
	Tracking string `json:"tracking,omitempty"`
	// Packages is the package count ("bultos"); nil when unknown.
	Packages *int `json:"bultos,omitempty"`
	// Weight is the shipment weight in kg; nil when unknown.
	Weight *float64 `json:"kgs,omitempty"`
	// OriginZip is the origin postal code.
	OriginZip string `json:"cp_org,omitempty"`
	// DestZip is the destination postal code.
	DestZip string `json:"cp_dst,omitempty"`
	// Observation is a free-text note from the carrier export, used
	// downstream as an ad-hoc classification signal.
	Observation string `json:"observacion,omitempty"`
	// UpdatedDate is the carrier's "last update" date (ISO); nil when the
	// export carried the "-" sentinel or was blank.
	UpdatedDate *string `json:"fecha_actualizacion,omitempty"`
	// UpdatedAt is refreshed on every re-ingestion of the same expedition.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDelivered reports whether the shipment status contains "entregado",
// case-insensitively.
func (s Shipment) IsDelivered() bool {
	return strings.Contains(strings.ToLower(s.Status), "entregado")
}
