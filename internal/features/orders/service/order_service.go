package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"pedidos-tracker/internal/features/orders/domain"
	"pedidos-tracker/internal/features/orders/ports"
)

// ErrOrderNotFound is returned when the order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderView is a list row: the order plus its derived delivered flag.
type OrderView struct {
	domain.Order
	// Delivered is true when the order, its denormalized shipment status or
	// any linked shipment reads as delivered.
	Delivered bool `json:"entregado"`
}

// OrderService handles the dashboard's order operations.
type OrderService struct {
	repo      ports.OrderRepository
	shipments ports.ShipmentStatusReader
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo ports.OrderRepository, shipments ports.ShipmentStatusReader) *OrderService {
	return &OrderService{
		repo:      repo,
		shipments: shipments,
	}
}

// List returns the filtered orders with their delivered classification.
func (s *OrderService) List(ctx context.Context, q ports.OrderQuery) ([]OrderView, error) {
	orders, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pedidos: %w", err)
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}

	linked, err := s.shipments.StatusesByOrderID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve linked envíos: %w", err)
	}

	views := make([]OrderView, len(orders))
	for i, order := range orders {
		views[i] = OrderView{
			Order:     order,
			Delivered: order.IsDelivered(linked[order.ID]...),
		}
	}
	return views, nil
}

// Delete removes one order.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to delete pedido: %w", err)
	}
	if !found {
		return ErrOrderNotFound
	}
	return nil
}

// DeleteMany removes a set of orders and returns how many existed.
func (s *OrderService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	removed, err := s.repo.DeleteMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("service: failed to bulk delete pedidos: %w", err)
	}
	return removed, nil
}

// ExportCSV writes the filtered order list as CSV, the dashboard's download
// format for spreadsheet use.
func (s *OrderService) ExportCSV(ctx context.Context, q ports.OrderQuery, w io.Writer) error {
	views, err := s.List(ctx, q)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "estado", "fecha", "nombre", "direccion", "poblacion", "curso", "email", "entregado"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("service: failed to write CSV header: %w", err)
	}

	for _, v := range views {
		delivered := "NO"
		if v.Delivered {
			delivered = "SI"
		}
		row := []string{v.ID, v.Status, v.Date, v.Name, v.Address, v.City, v.Course, v.Email, delivered}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("service: failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
