package infra

import (
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection, migrates the models and applies
// the Postgres-only schema patches.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates every table. Parents are listed before the
// tables that reference them.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Vendor{},
		&model.VendorLocation{},
		&model.VendorProduct{},
		&model.FreightRoute{},
		&model.Driver{},
		&model.Workday{},
		&model.Haul{},
		&model.Notice{},
		&model.Contact{},
	)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// The partial indexes back the reactivation reads, which only ever look at
// rows a cascade marked.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"idx_vendor_products_cascaded", `
CREATE INDEX IF NOT EXISTS idx_vendor_products_cascaded
    ON vendor_products (vendor_location_id)
    WHERE deactivated_by_parent`},
		{"idx_freight_routes_cascaded", `
CREATE INDEX IF NOT EXISTS idx_freight_routes_cascaded
    ON freight_routes (vendor_location_id)
    WHERE deactivated_by_parent`},
		{"idx_vendor_locations_cascaded", `
CREATE INDEX IF NOT EXISTS idx_vendor_locations_cascaded
    ON vendor_locations (vendor_id)
    WHERE deactivated_by_parent`},
		{"chk_vendor_products_cascade", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_vendor_products_cascade') THEN
    ALTER TABLE vendor_products
      ADD CONSTRAINT chk_vendor_products_cascade CHECK (NOT (deactivated_by_parent AND is_active));
  END IF;
END $$`},
		{"chk_freight_routes_cascade", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_freight_routes_cascade') THEN
    ALTER TABLE freight_routes
      ADD CONSTRAINT chk_freight_routes_cascade CHECK (NOT (deactivated_by_parent AND is_active));
  END IF;
END $$`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
