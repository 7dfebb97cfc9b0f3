//go:build integration

package service

// Runs the cascade against a real Postgres so the partial indexes and the
// cascade CHECK constraints are in play.
// Run with: go test -tags integration ./internal/service/... -v

import (
	"context"
	"testing"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/infra"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("chlm_test"),
		tcPostgres.WithUsername("chlm"),
		tcPostgres.WithPassword("chlm"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	return db
}

func TestPostgres_VendorCascadeRoundTrip(t *testing.T) {
	db := newPostgresDB(t)
	svc := NewActivationService(repository.NewUnitOfWork(db))
	ctx := context.Background()

	v := seedVendor(t, db, "Hill Country Stone")
	open := seedLocation(t, db, v.ID, "Marble Falls Yard", true)
	closed := seedLocation(t, db, v.ID, "Burnet Pit", false)
	a := seedProduct(t, db, open.ID, "Limestone Base", true)
	b := seedProduct(t, db, open.ID, "Flagstone", false)
	r := seedRoute(t, db, open.ID, "Austin", true)
	c := seedProduct(t, db, closed.ID, "Granite", false)

	require.NoError(t, svc.CascadeDeactivateVendor(ctx, v.ID))

	assert.False(t, vendorActive(t, db, v.ID))
	assert.Equal(t, flags{false, true}, locationFlags(t, db, open.ID))
	assert.Equal(t, flags{false, false}, locationFlags(t, db, closed.ID))
	assert.Equal(t, flags{false, true}, productFlags(t, db, a.ID))
	assert.Equal(t, flags{false, false}, productFlags(t, db, b.ID))
	assert.Equal(t, flags{false, true}, routeFlags(t, db, r.ID))

	require.NoError(t, svc.CascadeReactivateVendor(ctx, v.ID))

	assert.True(t, vendorActive(t, db, v.ID))
	assert.Equal(t, flags{true, false}, locationFlags(t, db, open.ID))
	assert.Equal(t, flags{false, false}, locationFlags(t, db, closed.ID))
	assert.Equal(t, flags{true, false}, productFlags(t, db, a.ID))
	assert.Equal(t, flags{false, false}, productFlags(t, db, b.ID))
	assert.Equal(t, flags{true, false}, routeFlags(t, db, r.ID))
	assert.Equal(t, flags{false, false}, productFlags(t, db, c.ID))
}

func TestPostgres_CheckConstraintRejectsActiveCascadedRow(t *testing.T) {
	db := newPostgresDB(t)

	v := seedVendor(t, db, "Check Co")
	l := seedLocation(t, db, v.ID, "Main", true)
	p := seedProduct(t, db, l.ID, "Mulch", true)

	// UpdateColumns skips the BeforeSave hook, so only the database can refuse this.
	err := db.Model(&model.VendorProduct{}).Where("id = ?", p.ID).
		UpdateColumns(map[string]any{"is_active": true, "deactivated_by_parent": true}).Error
	require.Error(t, err)
	assert.Equal(t, flags{true, false}, productFlags(t, db, p.ID))
}
