package service

import (
	"testing"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/infra"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps the in-memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func seedVendor(t *testing.T, db *gorm.DB, name string) *model.Vendor {
	t.Helper()
	v := &model.Vendor{Name: name, VendorType: "quarry", IsActive: true}
	require.NoError(t, db.Create(v).Error)
	return v
}

func seedLocation(t *testing.T, db *gorm.DB, vendorID uint, name string, active bool) *model.VendorLocation {
	t.Helper()
	l := &model.VendorLocation{VendorID: vendorID, Name: name, IsActive: active}
	require.NoError(t, db.Create(l).Error)
	return l
}

func seedProduct(t *testing.T, db *gorm.DB, locationID uint, name string, active bool) *model.VendorProduct {
	t.Helper()
	p := &model.VendorProduct{VendorLocationID: locationID, Name: name, Price: decimal.NewFromInt(30), Unit: "ton", IsActive: active}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedRoute(t *testing.T, db *gorm.DB, locationID uint, dest string, active bool) *model.FreightRoute {
	t.Helper()
	r := &model.FreightRoute{VendorLocationID: locationID, Destination: dest, FreightCost: decimal.NewFromInt(85), IsActive: active}
	require.NoError(t, db.Create(r).Error)
	return r
}

// flags is the (is_active, deactivated_by_parent) pair of a row.
type flags struct{ active, cascaded bool }

func productFlags(t *testing.T, db *gorm.DB, id uint) flags {
	t.Helper()
	var p model.VendorProduct
	require.NoError(t, db.First(&p, id).Error)
	return flags{p.IsActive, p.DeactivatedByParent}
}

func routeFlags(t *testing.T, db *gorm.DB, id uint) flags {
	t.Helper()
	var r model.FreightRoute
	require.NoError(t, db.First(&r, id).Error)
	return flags{r.IsActive, r.DeactivatedByParent}
}

func locationFlags(t *testing.T, db *gorm.DB, id uint) flags {
	t.Helper()
	var l model.VendorLocation
	require.NoError(t, db.First(&l, id).Error)
	return flags{l.IsActive, l.DeactivatedByParent}
}

func vendorActive(t *testing.T, db *gorm.DB, id uint) bool {
	t.Helper()
	var v model.Vendor
	require.NoError(t, db.First(&v, id).Error)
	return v.IsActive
}
