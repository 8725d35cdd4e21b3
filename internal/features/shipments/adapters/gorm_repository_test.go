package adapters

import (
	"context"
	"testing"

	"pedidos-tracker/internal/features/shipments/domain"
	"pedidos-tracker/internal/features/shipments/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupShipmentTestDB creates an in-memory SQLite database with the
// envios_gls table. pedido_id deliberately has no foreign key.
func setupShipmentTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE envios_gls (
			expedicion TEXT PRIMARY KEY,
			fecha TEXT,
			destinatario TEXT,
			direccion TEXT,
			localidad TEXT,
			estado TEXT NOT NULL,
			pedido_id TEXT,
			tracking TEXT,
			bultos INTEGER,
			kgs REAL,
			cp_org TEXT,
			cp_dst TEXT,
			observacion TEXT,
			fecha_actualizacion TEXT,
			created_at DATETIME,
			updated_at DATETIME
		)
	`).Error
	require.NoError(t, err)

	return db
}

func sampleShipment(expedition string) *domain.Shipment {
	return &domain.Shipment{
		Expedition: expedition,
		Date:       "2025-09-01",
		Recipient:  "LAURA REINA PLA",
		Address:    "Paseo Ezequiel González 32",
		Locality:   "SEGOVIA",
		Status:     domain.StatusPending,
		OrderID:    "IFSES_Matri_17750",
		Tracking:   "https://mygls.gls-spain.es/e/11013600011564/40002",
	}
}

func TestGormShipmentRepository_Upsert_InsertThenUpdate(t *testing.T) {
	repo := NewGormShipmentRepository(setupShipmentTestDB(t))
	ctx := context.Background()

	inserted, err := repo.Upsert(ctx, sampleShipment("1167644726"))
	require.NoError(t, err)
	assert.True(t, inserted)

	changed := sampleShipment("1167644726")
	changed.Status = "ENTREGADO"
	bultos := 2
	kgs := 1.5
	changed.Packages = &bultos
	changed.Weight = &kgs
	inserted, err = repo.Upsert(ctx, changed)
	require.NoError(t, err)
	assert.False(t, inserted)

	shipments, err := repo.List(ctx, ports.ShipmentQuery{})
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "ENTREGADO", shipments[0].Status)
	require.NotNil(t, shipments[0].Packages)
	assert.Equal(t, 2, *shipments[0].Packages)
	require.NotNil(t, shipments[0].Weight)
	assert.Equal(t, 1.5, *shipments[0].Weight)
}

func TestGormShipmentRepository_Upsert_NullableFields(t *testing.T) {
	repo := NewGormShipmentRepository(setupShipmentTestDB(t))
	ctx := context.Background()

	s := sampleShipment("1168811831")
	s.Packages = nil
	s.Weight = nil
	s.UpdatedDate = nil
	_, err := repo.Upsert(ctx, s)
	require.NoError(t, err)

	shipments, err := repo.List(ctx, ports.ShipmentQuery{})
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Nil(t, shipments[0].Packages)
	assert.Nil(t, shipments[0].Weight)
	assert.Nil(t, shipments[0].UpdatedDate)

	// A later revision carries real values; they must land.
	updated := "2025-09-03"
	s.UpdatedDate = &updated
	_, err = repo.Upsert(ctx, s)
	require.NoError(t, err)

	shipments, err = repo.List(ctx, ports.ShipmentQuery{})
	require.NoError(t, err)
	require.NotNil(t, shipments[0].UpdatedDate)
	assert.Equal(t, "2025-09-03", *shipments[0].UpdatedDate)
}

func TestGormShipmentRepository_List_Filters(t *testing.T) {
	repo := NewGormShipmentRepository(setupShipmentTestDB(t))
	ctx := context.Background()

	a := sampleShipment("1167644726")
	b := sampleShipment("1168811831")
	b.Recipient = "MARÍA JOSÉ MARTÍN FRAILE"
	b.OrderID = "IFSES_Matri_17864"
	b.Status = "EN REPARTO"
	for _, s := range []*domain.Shipment{a, b} {
		_, err := repo.Upsert(ctx, s)
		require.NoError(t, err)
	}

	shipments, err := repo.List(ctx, ports.ShipmentQuery{Search: "maría"})
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "1168811831", shipments[0].Expedition)

	shipments, err = repo.List(ctx, ports.ShipmentQuery{Search: "17750"})
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "1167644726", shipments[0].Expedition)

	shipments, err = repo.List(ctx, ports.ShipmentQuery{Status: "en reparto"})
	require.NoError(t, err)
	require.Len(t, shipments, 1)
}

func TestGormShipmentRepository_DeleteAndDeleteMany(t *testing.T) {
	repo := NewGormShipmentRepository(setupShipmentTestDB(t))
	ctx := context.Background()

	for _, exp := range []string{"E1", "E2", "E3"} {
		_, err := repo.Upsert(ctx, sampleShipment(exp))
		require.NoError(t, err)
	}

	found, err := repo.Delete(ctx, "E1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, "E1")
	require.NoError(t, err)
	assert.False(t, found)

	removed, err := repo.DeleteMany(ctx, []string{"E2", "E3", "missing"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestGormShipmentRepository_StatusesByOrderID(t *testing.T) {
	repo := NewGormShipmentRepository(setupShipmentTestDB(t))
	ctx := context.Background()

	a := sampleShipment("E1")
	a.OrderID = "P1"
	a.Status = "ENTREGADO"
	b := sampleShipment("E2")
	b.OrderID = "P1"
	b.Status = "EN REPARTO"
	c := sampleShipment("E3")
	c.OrderID = "P2"
	for _, s := range []*domain.Shipment{a, b, c} {
		_, err := repo.Upsert(ctx, s)
		require.NoError(t, err)
	}

	statuses, err := repo.StatusesByOrderID(ctx, []string{"P1", "orphan"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ENTREGADO", "EN REPARTO"}, statuses["P1"])
	assert.NotContains(t, statuses, "P2")
	assert.NotContains(t, statuses, "orphan")

	statuses, err = repo.StatusesByOrderID(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}

func TestGormShipmentRepository_CountByStatus(t *testing.T) {
	repo := NewGormShipmentRepository(setupShipmentTestDB(t))
	ctx := context.Background()

	a := sampleShipment("E1")
	b := sampleShipment("E2")
	b.Status = "ENTREGADO"
	for _, s := range []*domain.Shipment{a, b} {
		_, err := repo.Upsert(ctx, s)
		require.NoError(t, err)
	}

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.StatusPending])
	assert.Equal(t, int64(1), counts["ENTREGADO"])
}
