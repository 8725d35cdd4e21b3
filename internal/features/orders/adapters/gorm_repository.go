package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pedidos-tracker/internal/features/orders/domain"
	"pedidos-tracker/internal/features/orders/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderModel is the GORM model for the pedidos table.
type OrderModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Estado      string    `gorm:"column:estado;not null"`
	Fecha       string    `gorm:"column:fecha"`
	Nombre      string    `gorm:"column:nombre"`
	Direccion   string    `gorm:"column:direccion"`
	Poblacion   string    `gorm:"column:poblacion"`
	Curso       string    `gorm:"column:curso"`
	Email       string    `gorm:"column:email"`
	EstadoEnvio string    `gorm:"column:estado_envio"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for the model.
func (OrderModel) TableName() string {
	return "pedidos"
}

// ToEntity converts the model to a domain entity.
func (m *OrderModel) ToEntity() domain.Order {
	return domain.Order{
		ID:             m.ID,
		Status:         m.Estado,
		Date:           m.Fecha,
		Name:           m.Nombre,
		Address:        m.Direccion,
		City:           m.Poblacion,
		Course:         m.Curso,
		Email:          m.Email,
		ShipmentStatus: m.EstadoEnvio,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// OrderModelFromEntity creates a model from a domain entity.
func OrderModelFromEntity(e *domain.Order) *OrderModel {
	return &OrderModel{
		ID:          e.ID,
		Estado:      e.Status,
		Fecha:       e.Date,
		Nombre:      e.Name,
		Direccion:   e.Address,
		Poblacion:   e.City,
		Curso:       e.Course,
		Email:       e.Email,
		EstadoEnvio: e.ShipmentStatus,
	}
}

// GormOrderRepository implements ports.OrderRepository on GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Upsert inserts the order or overwrites the existing row with the same id.
// The insert is a single conflict-clause statement, so concurrent
// submissions of the same id can never create a duplicate row.
func (r *GormOrderRepository) Upsert(ctx context.Context, order *domain.Order) (bool, error) {
	model := OrderModelFromEntity(order)

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(model)
	if res.Error != nil {
		return false, fmt.Errorf("failed to insert pedido %s: %w", order.ID, res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// The id already exists: last-write-wins overwrite of the webhook-owned
	// fields, keyed update so the row cannot go stale mid-flight.
	// estado_envio is deliberately absent: it is denormalized from the envíos
	// side and must survive re-ingestion of the order.
	err := r.db.WithContext(ctx).Model(&OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"estado":     order.Status,
			"fecha":      order.Date,
			"nombre":     order.Name,
			"direccion":  order.Address,
			"poblacion":  order.City,
			"curso":      order.Course,
			"email":      order.Email,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return false, fmt.Errorf("failed to update pedido %s: %w", order.ID, err)
	}
	return false, nil
}

// List returns orders matching the query, newest first.
func (r *GormOrderRepository) List(ctx context.Context, q ports.OrderQuery) ([]domain.Order, error) {
	tx := r.db.WithContext(ctx).Model(&OrderModel{})

	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(id) LIKE ? OR LOWER(nombre) LIKE ?", needle, needle)
	}
	if q.Status != "" {
		tx = tx.Where("LOWER(estado) = ?", strings.ToLower(q.Status))
	}

	var models []OrderModel
	if err := tx.Order("fecha DESC, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list pedidos: %w", err)
	}

	orders := make([]domain.Order, len(models))
	for i := range models {
		orders[i] = models[i].ToEntity()
	}
	return orders, nil
}

// Delete removes one order and reports whether it existed.
func (r *GormOrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderModel{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete pedido %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteMany removes a set of orders and returns how many rows went away.
func (r *GormOrderRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&OrderModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to bulk delete pedidos: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// CountByStatus returns per-estado row counts.
func (r *GormOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Estado string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&OrderModel{}).
		Select("estado, COUNT(*) AS total").
		Group("estado").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pedidos by estado: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Estado] = row.Total
	}
	return counts, nil
}
