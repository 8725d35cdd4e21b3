package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// FlexString unmarshals from either a JSON string or a JSON number, because
// the automation tool is not consistent about quoting spreadsheet cells.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(data)
	return nil
}

// OrderInput is one order record as delivered by the automation tool.
type OrderInput struct {
	ID      string `json:"id"`
	Status  string `json:"estado"`
	Date    string `json:"fecha"`
	Name    string `json:"nombre"`
	Address string `json:"direccion"`
	City    string `json:"poblacion"`
	Course  string `json:"curso"`
	Email   string `json:"email"`
}

// ShipmentInput is one shipment record as delivered by the automation tool.
// Dates are in d/m/yyyy form; bultos and kgs may arrive as strings, numbers,
// blanks or the "-" sentinel.
type ShipmentInput struct {
	Expedition  string     `json:"expedicion"`
	Date        string     `json:"fecha"`
	Recipient   string     `json:"destinatario"`
	Address     string     `json:"direccion"`
	Locality    string     `json:"localidad"`
	Status      string     `json:"estado"`
	OrderID     string     `json:"pedido_id"`
	Tracking    string     `json:"tracking"`
	Packages    FlexString `json:"bultos"`
	Weight      FlexString `json:"kgs"`
	OriginZip   string     `json:"cp_org"`
	DestZip     string     `json:"cp_dst"`
	Observation string     `json:"observacion"`
	UpdatedDate string     `json:"fechaActualizacion"`
}

// PayloadKind tags the recognized webhook payload shapes.
type PayloadKind int

const (
	// PayloadUnrecognized is parseable JSON matching neither known shape.
	PayloadUnrecognized PayloadKind = iota
	// PayloadCanonical is the batch shape: {"pedidos": [...], "envios": [...]}.
	PayloadCanonical
	// PayloadSingleShipment is a bare shipment object, detected by the
	// presence of both "expedicion" and "fecha".
	PayloadSingleShipment
)

// Payload is the decoded webhook body, normalized so that a single shipment
// becomes a one-element shipment batch with zero orders.
type Payload struct {
	Kind      PayloadKind
	Orders    []OrderInput
	Shipments []ShipmentInput
}

// ClassifyPayload decodes the request body and classifies its shape. A
// non-JSON body (or JSON whose pedidos/envios members are not valid record
// arrays) returns an error; parseable JSON of an unknown shape returns a
// Payload with Kind PayloadUnrecognized and a nil error.
func ClassifyPayload(body []byte) (Payload, error) {
	var probe struct {
		Pedidos    json.RawMessage `json:"pedidos"`
		Envios     json.RawMessage `json:"envios"`
		Expedition string          `json:"expedicion"`
		Date       string          `json:"fecha"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		// Parseable JSON of the wrong top-level type (array, number,
		// string) is an unrecognized shape, not a malformed body.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Payload{Kind: PayloadUnrecognized}, nil
		}
		return Payload{}, fmt.Errorf("body is not valid JSON: %w", err)
	}

	if probe.Pedidos != nil || probe.Envios != nil {
		p := Payload{Kind: PayloadCanonical}
		if probe.Pedidos != nil {
			if err := json.Unmarshal(probe.Pedidos, &p.Orders); err != nil {
				return Payload{}, fmt.Errorf("pedidos is not an array of records: %w", err)
			}
		}
		if probe.Envios != nil {
			if err := json.Unmarshal(probe.Envios, &p.Shipments); err != nil {
				return Payload{}, fmt.Errorf("envios is not an array of records: %w", err)
			}
		}
		return p, nil
	}

	if probe.Expedition != "" && probe.Date != "" {
		var single ShipmentInput
		if err := json.Unmarshal(body, &single); err != nil {
			return Payload{}, fmt.Errorf("body is not a shipment record: %w", err)
		}
		return Payload{
			Kind:      PayloadSingleShipment,
			Shipments: []ShipmentInput{single},
		}, nil
	}

	return Payload{Kind: PayloadUnrecognized}, nil
}
