package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pedidos-tracker/internal/features/shipments/domain"
	"pedidos-tracker/internal/features/shipments/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShipmentModel is the GORM model for the envios_gls table. PedidoID is a
// weak reference to pedidos.id: no foreign key is declared on purpose.
type ShipmentModel struct {
	Expedicion         string    `gorm:"column:expedicion;primaryKey"`
	Fecha              string    `gorm:"column:fecha"`
	Destinatario       string    `gorm:"column:destinatario"`
	Direccion          string    `gorm:"column:direccion"`
	Localidad          string    `gorm:"column:localidad"`
	Estado             string    `gorm:"column:estado;not null"`
	PedidoID           string    `gorm:"column:pedido_id"`
	Tracking           string    `gorm:"column:tracking"`
	Bultos             *int      `gorm:"column:bultos"`
	Kgs                *float64  `gorm:"column:kgs"`
	CpOrg              string    `gorm:"column:cp_org"`
	CpDst              string    `gorm:"column:cp_dst"`
	Observacion        string    `gorm:"column:observacion"`
	FechaActualizacion *string   `gorm:"column:fecha_actualizacion"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the model.
func (ShipmentModel) TableName() string {
	return "envios_gls"
}

// ToEntity converts the model to a domain entity.
func (m *ShipmentModel) ToEntity() domain.Shipment {
	return domain.Shipment{
		Expedition:  m.Expedicion,
		Date:        m.Fecha,
		Recipient:   m.Destinatario,
		Address:     m.Direccion,
		Locality:    m.Localidad,
		Status:      m.Estado,
		OrderID:     m.PedidoID,
		Tracking:    m.Tracking,
		Packages:    m.Bultos,
		Weight:      m.Kgs,
		OriginZip:   m.CpOrg,
		DestZip:     m.CpDst,
		Observation: m.Observacion,
		UpdatedDate: m.FechaActualizacion,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ShipmentModelFromEntity creates a model from a domain entity.
func ShipmentModelFromEntity(e *domain.Shipment) *ShipmentModel {
	return &ShipmentModel{
		Expedicion:         e.Expedition,
		Fecha:              e.Date,
		Destinatario:       e.Recipient,
		Direccion:          e.Address,
		Localidad:          e.Locality,
		Estado:             e.Status,
		PedidoID:           e.OrderID,
		Tracking:           e.Tracking,
		Bultos:             e.Packages,
		Kgs:                e.Weight,
		CpOrg:              e.OriginZip,
		CpDst:              e.DestZip,
		Observacion:        e.Observation,
		FechaActualizacion: e.UpdatedDate,
	}
}

// GormShipmentRepository implements ports.ShipmentRepository on GORM. It also
// satisfies the orders feature's ShipmentStatusReader port.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Upsert inserts the shipment or overwrites the existing row with the same
// expedition number. The insert is a single conflict-clause statement, so
// concurrent submissions of the same expedition can never create a duplicate.
func (r *GormShipmentRepository) Upsert(ctx context.Context, shipment *domain.Shipment) (bool, error) {
	model := ShipmentModelFromEntity(shipment)

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "expedicion"}},
		DoNothing: true,
	}).Create(model)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert envío %s: %w", shipment.Expedition, res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	err := r.db.WithContext(ctx).Model(&ShipmentModel{}).
		Where("expedicion = ?", shipment.Expedition).
		Updates(map[string]interface{}{
			"fecha":               shipment.Date,
			"destinatario":        shipment.Recipient,
			"direccion":           shipment.Address,
			"localidad":           shipment.Locality,
			"estado":              shipment.Status,
			"pedido_id":           shipment.OrderID,
			"tracking":            shipment.Tracking,
			"bultos":              shipment.Packages,
			"kgs":                 shipment.Weight,
			"cp_org":              shipment.OriginZip,
			"cp_dst":              shipment.DestZip,
			"observacion":         shipment.Observation,
			"fecha_actualizacion": shipment.UpdatedDate,
			"updated_at":          time.Now().UTC(),
		}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update envío %s: %w", shipment.Expedition, err)
	}
	return false, nil
}

// List returns shipments matching the query, newest first.
func (r *GormShipmentRepository) List(ctx context.Context, q ports.ShipmentQuery) ([]domain.Shipment, error) {
	tx := r.db.WithContext(ctx).Model(&ShipmentModel{})

	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where(
			"LOWER(expedicion) LIKE ? OR LOWER(destinatario) LIKE ? OR LOWER(pedido_id) LIKE ?",
			needle, needle, needle,
		)
	}
	if q.Status != "" {
		tx = tx.Where("LOWER(estado) = ?", strings.ToLower(q.Status))
	}

	var models []ShipmentModel
	if err := tx.Order("fecha DESC, expedicion").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list envíos: %w", err)
	}

	shipments := make([]domain.Shipment, len(models))
	for i := range models {
		shipments[i] = models[i].ToEntity()
	}
	return shipments, nil
}

// Delete removes one shipment and reports whether it existed.
func (r *GormShipmentRepository) Delete(ctx context.Context, expedition string) (bool, error) {
	res := r.db.WithContext(ctx).Where("expedicion = ?", expedition).Delete(&ShipmentModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete envío %s: %w", expedition, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteMany removes a set of shipments and returns how many rows went away.
func (r *GormShipmentRepository) DeleteMany(ctx context.Context, expeditions []string) (int64, error) {
	if len(expeditions) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("expedicion IN ?", expeditions).Delete(&ShipmentModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to bulk delete envíos: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CountByStatus returns per-estado row counts.
func (r *GormShipmentRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&ShipmentModel{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count envíos by estado: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Estado] = row.Total
	}
	return counts, nil
}

// StatusesByOrderID returns the statuses of all shipments whose pedido_id is
// in orderIDs. Orphan references simply produce no entry.
func (r *GormShipmentRepository) StatusesByOrderID(ctx context.Context, orderIDs []string) (map[string][]string, error) {
	if len(orderIDs) == 0 {
		return map[string][]string{}, nil
	}

	var rows []struct {
		PedidoID string
		Estado   string
	}
	err := r.db.WithContext(ctx).Model(&ShipmentModel{}).
		Select("pedido_id, estado").
		Where("pedido_id IN ?", orderIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve envío statuses: %w", err)
	}

	statuses := make(map[string][]string, len(rows))
	for _, row := range rows {
		statuses[row.PedidoID] = append(statuses[row.PedidoID], row.Estado)
	}
	return statuses, nil
}
