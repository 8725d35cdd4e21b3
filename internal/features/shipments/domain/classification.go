package domain

import "strings"

// Category is the coarse state derived from a shipment's free-text
// observation field.
type Category string

const (
	// CategoryDelivered means the note indicates a completed delivery.
	CategoryDelivered Category = "ENTREGADO"
	// CategoryOutForDelivery means the shipment is out with the courier.
	CategoryOutForDelivery Category = "EN_REPARTO"
	// CategoryIncidence means the note reports a delivery problem.
	CategoryIncidence Category = "INCIDENCIA"
	// CategoryReturned means the shipment went back to the sender.
	CategoryReturned Category = "DEVUELTO"
	// CategoryAbsent means the recipient was not home.
	CategoryAbsent Category = "AUSENTE"
	// CategoryUnclassified is the explicit fallback for notes matching no rule.
	CategoryUnclassified Category = "SIN_CLASIFICAR"
)

// observationRules maps normalized substrings to categories. Order matters:
// the first match wins, so the more specific incidence terms come before the
// generic ones.
var observationRules = []struct {
	needle   string
	category Category
}{
	{"entregado", CategoryDelivered},
	{"entrega ok", CategoryDelivered},
	{"devuelto", CategoryReturned},
	{"devolucion", CategoryReturned},
	{"retorno", CategoryReturned},
	{"ausente", CategoryAbsent},
	{"en reparto", CategoryOutForDelivery},
	{"reparto", CategoryOutForDelivery},
	{"incidencia", CategoryIncidence},
	{"falta expedicion", CategoryIncidence},
	{"dañado", CategoryIncidence},
	{"rehusado", CategoryIncidence},
}

// ClassifyObservation derives a Category from a free-text observation.
// Matching is case-insensitive substring search over an explicit rule table;
// unmatched or empty input yields CategoryUnclassified rather than nothing.
func ClassifyObservation(observation string) Category {
	normalized := strings.ToLower(strings.TrimSpace(observation))
	if normalized == "" {
		return CategoryUnclassified
	}

	for _, rule := range observationRules {
		if strings.Contains(normalized, rule.needle) {
			return rule.category
		}
	}
	return CategoryUnclassified
}
