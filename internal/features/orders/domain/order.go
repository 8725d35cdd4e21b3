package domain

import (
	"strings"
	"time"
)

// StatusPending is the status assigned to records that arrive without one.
const StatusPending = "PENDIENTE"

// deliveredNeedle is matched case-insensitively as a substring, because the
// upstream sheet carries free-text variants ("ENTREGADO", "Entregado OK").
const deliveredNeedle = "entregado"

// Order represents a customer's purchase record ("pedido"), tracked
// independently of its physical shipment.
type Order struct {
	// ID is the natural key, e.g. "IFSES_Matri_17697".
	ID string `json:"id"`
	// Status is a free-form state label (PENDIENTE, ENTREGADO, EN REPARTO...).
	Status string `json:"estado"`
	// Date is the order date as an ISO YYYY-MM-DD string.
	Date string `json:"fecha"`
	// Name is the customer's full name.
	Name string `json:"nombre"`
	// Address is the delivery address.
	Address string `json:"direccion"`
	// City is the customer's town ("población").
	City string `json:"poblacion"`
	// Course is the course/program label the order belongs to.
	Course string `json:"curso"`
	// Email is the customer's contact address.
	Email string `json:"email"`
	// ShipmentStatus is a denormalized copy of the linked shipment's status,
	// when one has been recorded.
	ShipmentStatus string `json:"estado_envio,omitempty"`
	// CreatedAt is when the record was first ingested.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is refreshed on every re-ingestion of the same ID.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDelivered reports whether the order counts as delivered: the needle is
// looked for in the order's own status, its denormalized shipment status, or
// the status of any linked shipment.
func (o Order) IsDelivered(linkedShipmentStatuses ...string) bool {
	if containsDelivered(o.Status) || containsDelivered(o.ShipmentStatus) {
		return true
	}
	for _, s := range linkedShipmentStatuses {
		if containsDelivered(s) {
			return true
		}
	}
	return false
}

func containsDelivered(status string) bool {
	return strings.Contains(strings.ToLower(status), deliveredNeedle)
}
