package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type haulFixture struct {
	db       *gorm.DB
	drivers  DriverService
	workdays WorkdayService
	hauls    HaulService
}

func newHaulFixture(t *testing.T) haulFixture {
	t.Helper()
	db := newTestDB(t)
	driverRepo := repository.NewDriverRepository(db)
	workdayRepo := repository.NewWorkdayRepository(db)
	return haulFixture{
		db:       db,
		drivers:  NewDriverService(driverRepo),
		workdays: NewWorkdayService(workdayRepo, driverRepo, t.TempDir()),
		hauls: NewHaulService(
			repository.NewHaulRepository(db),
			workdayRepo,
			repository.NewFreightRouteRepository(db),
			repository.NewVendorProductRepository(db),
		),
	}
}

func TestDriverService_CreateAndUpdate(t *testing.T) {
	f := newHaulFixture(t)
	ctx := context.Background()

	d, err := f.drivers.Create(ctx, dto.CreateDriverRequest{
		FirstName:   "jose",
		LastName:    "de la cruz",
		Email:       strPtr(" Jose@Example.COM "),
		TruckNumber: strPtr("t-12"),
		DateHired:   strPtr("2023-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jose", d.FirstName)
	assert.Equal(t, "De La Cruz", d.LastName)
	assert.Equal(t, "jose@example.com", *d.Email)
	assert.Equal(t, "T-12", *d.TruckNumber)
	assert.Equal(t, "2023-04-01", *d.DateHired)
	assert.True(t, d.IsActive)

	got, err := f.drivers.Update(ctx, d.ID, dto.UpdateDriverRequest{IsActive: boolPtr(false), DateHired: strPtr("")})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Nil(t, got.DateHired)

	_, err = f.drivers.Create(ctx, dto.CreateDriverRequest{FirstName: "A", LastName: "B", DateHired: strPtr("04/01/2023")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorkdayService_OnePerDriverAndDay(t *testing.T) {
	f := newHaulFixture(t)
	ctx := context.Background()

	d, err := f.drivers.Create(ctx, dto.CreateDriverRequest{FirstName: "Sam", LastName: "Hall"})
	require.NoError(t, err)

	w, err := f.workdays.Create(ctx, dto.CreateWorkdayRequest{
		DriverID: d.ID, Date: "2025-03-04", CHHours: decimal.RequireFromString("8.5"), Notes: strPtr("rain delay"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", w.Date)
	assert.Equal(t, "Rain delay", *w.Notes)
	assert.Equal(t, 0, w.HaulCount)

	_, err = f.workdays.Create(ctx, dto.CreateWorkdayRequest{DriverID: d.ID, Date: "2025-03-04"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.workdays.Create(ctx, dto.CreateWorkdayRequest{DriverID: 404, Date: "2025-03-05"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.workdays.Create(ctx, dto.CreateWorkdayRequest{DriverID: d.ID, Date: "2025-03-06", NCHours: decimal.NewFromInt(25)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHaulService_AmountsAndCounts(t *testing.T) {
	f := newHaulFixture(t)
	ctx := context.Background()

	d, err := f.drivers.Create(ctx, dto.CreateDriverRequest{FirstName: "Sam", LastName: "Hall"})
	require.NoError(t, err)
	w, err := f.workdays.Create(ctx, dto.CreateWorkdayRequest{DriverID: d.ID, Date: "2025-03-04"})
	require.NoError(t, err)

	v := seedVendor(t, f.db, "Quarry")
	l := seedLocation(t, f.db, v.ID, "Yard", true)
	route := seedRoute(t, f.db, l.ID, "Austin", true)

	at := time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC)
	h, err := f.hauls.Create(ctx, dto.CreateHaulRequest{
		WorkdayID:      w.ID,
		DateTime:       at,
		Customer:       "smith landscaping",
		InvoiceNumber:  strPtr("inv-100"),
		Material:       "river rock",
		LoadType:       "tons",
		Quantity:       decimal.RequireFromString("12.35"),
		Rate:           decimal.RequireFromString("9.5"),
		FreightRouteID: uintPtr(route.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, "Smith Landscaping", h.Customer)
	assert.Equal(t, "INV-100", *h.InvoiceNumber)
	assert.Equal(t, "117.33", h.Amount.String())
	assert.Equal(t, route.ID, *h.FreightRouteID)

	_, err = f.hauls.Create(ctx, dto.CreateHaulRequest{
		WorkdayID: w.ID, DateTime: at, Customer: "X", Material: "Y", LoadType: "yards",
		Quantity: decimal.NewFromInt(1), VendorProductID: uintPtr(404),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := f.workdays.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.HaulCount)

	list, err := f.workdays.List(ctx, dto.WorkdayFilter{DriverID: d.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].HaulCount)

	// Clearing the route with id 0.
	upd, err := f.hauls.Update(ctx, h.ID, dto.UpdateHaulRequest{FreightRouteID: uintPtr(0), Rate: decimalPtr("10")})
	require.NoError(t, err)
	assert.Nil(t, upd.FreightRouteID)
	assert.Equal(t, "123.5", upd.Amount.String())

	hauls, err := f.hauls.List(ctx, dto.HaulFilter{WorkdayID: w.ID})
	require.NoError(t, err)
	assert.Len(t, hauls, 1)
}

func TestWorkdayService_HaulSheet(t *testing.T) {
	f := newHaulFixture(t)
	ctx := context.Background()

	d, err := f.drivers.Create(ctx, dto.CreateDriverRequest{FirstName: "Sam", LastName: "Hall"})
	require.NoError(t, err)
	w, err := f.workdays.Create(ctx, dto.CreateWorkdayRequest{DriverID: d.ID, Date: "2025-03-04"})
	require.NoError(t, err)
	require.NoError(t, f.db.Create(&model.Haul{
		WorkdayID: w.ID, DateTime: time.Now(), Customer: "Smith", Material: "Mulch",
		LoadType: "yards", Quantity: decimal.NewFromInt(10), Rate: decimal.NewFromInt(35),
	}).Error)

	var buf bytes.Buffer
	require.NoError(t, f.workdays.WriteHaulSheet(ctx, w.ID, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	path, err := f.workdays.ArchiveHaulSheet(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "haul-sheet-1-2025-03-04.pdf", filepath.Base(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.ErrorIs(t, f.workdays.WriteHaulSheet(ctx, 404, &buf), ErrNotFound)
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
