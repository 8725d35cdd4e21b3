package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"pedidos-tracker/internal/features/shipments/domain"
	"pedidos-tracker/internal/features/shipments/ports"
)

// ErrShipmentNotFound is returned when the shipment does not exist.
var ErrShipmentNotFound = errors.New("shipment not found")

// ShipmentView is a list row: the shipment plus its derived fields.
type ShipmentView struct {
	domain.Shipment
	// Delivered is true when the carrier status reads as delivered.
	Delivered bool `json:"entregado"`
	// Category is derived from the free-text observation field.
	Category domain.Category `json:"categoria"`
}

// ShipmentService handles the dashboard's shipment operations.
type ShipmentService struct {
	repo ports.ShipmentRepository
}

// NewShipmentService creates a new ShipmentService.
func NewShipmentService(repo ports.ShipmentRepository) *ShipmentService {
	return &ShipmentService{
		repo: repo,
	}
}

// List returns the filtered shipments with their derived classification.
func (s *ShipmentService) List(ctx context.Context, q ports.ShipmentQuery) ([]ShipmentView, error) {
	shipments, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list envíos: %w", err)
	}

	views := make([]ShipmentView, len(shipments))
	for i, shipment := range shipments {
		views[i] = ShipmentView{
			Shipment:  shipment,
			Delivered: shipment.IsDelivered(),
			Category:  domain.ClassifyObservation(shipment.Observation),
		}
	}
	return views, nil
}

// Delete removes one shipment.
func (s *ShipmentService) Delete(ctx context.Context, expedition string) error {
	found, err := s.repo.Delete(ctx, expedition)
	if err != nil {
		return fmt.Errorf("service: failed to delete envío: %w", err)
	}
	if !found {
		return ErrShipmentNotFound
	}
	return nil
}

// DeleteMany removes a set of shipments and returns how many existed.
func (s *ShipmentService) DeleteMany(ctx context.Context, expeditions []string) (int64, error) {
	removed, err := s.repo.DeleteMany(ctx, expeditions)
	if err != nil {
		return 0, fmt.Errorf("service: failed to bulk delete envíos: %w", err)
	}
	return removed, nil
}

// ExportCSV writes the filtered shipment list as CSV.
func (s *ShipmentService) ExportCSV(ctx context.Context, q ports.ShipmentQuery, w io.Writer) error {
	views, err := s.List(ctx, q)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"expedicion", "fecha", "destinatario", "direccion", "localidad", "estado",
		"pedido_id", "tracking", "bultos", "kgs", "cp_org", "cp_dst",
		"observacion", "fecha_actualizacion", "categoria",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("service: failed to write CSV header: %w", err)
	}

	for _, v := range views {
		row := []string{
			v.Expedition, v.Date, v.Recipient, v.Address, v.Locality, v.Status,
			v.OrderID, v.Tracking, optionalInt(v.Packages), optionalFloat(v.Weight),
			v.OriginZip, v.DestZip, v.Observation, optionalString(v.UpdatedDate),
			string(v.Category),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("service: failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func optionalInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func optionalFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
