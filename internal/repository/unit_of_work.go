package repository

import (
	"context"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

// BatchUpdate is one (entity type, id set, field updates) triple.
// Model is a pointer to the zero value of the entity, e.g. &model.VendorProduct{}.
type BatchUpdate struct {
	Model  any
	IDs    []uint
	Fields map[string]any
}

// UnitOfWork runs a function inside a single database transaction. Any error
// returned by fn, or any panic, rolls back every write made through tx.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormUnitOfWork struct{ db *gorm.DB }

func NewUnitOfWork(db *gorm.DB) UnitOfWork { return &gormUnitOfWork{db: db} }

func (u *gormUnitOfWork) Run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

// ApplyBatch applies the updates in order on tx and stops at the first
// failure. Updates with an empty id set are skipped.
func ApplyBatch(tx *gorm.DB, updates ...BatchUpdate) error {
	for _, u := range updates {
		if len(u.IDs) == 0 {
			continue
		}
		res := tx.Model(u.Model).Where("id IN ?", u.IDs).Updates(u.Fields)
		if res.Error != nil {
			return fmt.Errorf("batch update %s: %w", res.Statement.Table, res.Error)
		}
	}
	return nil
}

// ─── Transactional reads used by the activation cascade ─────────────────────

// Selection picks rows by their activation flags.
type Selection int

const (
	// SelectActive matches rows with is_active = true.
	SelectActive Selection = iota
	// SelectCascaded matches rows with deactivated_by_parent = true.
	SelectCascaded
)

func (s Selection) apply(q *gorm.DB) *gorm.DB {
	if s == SelectCascaded {
		return q.Where("deactivated_by_parent = ?", true)
	}
	return q.Where("is_active = ?", true)
}

// FindVendorTx loads a vendor inside tx.
func FindVendorTx(tx *gorm.DB, id uint) (*model.Vendor, error) {
	var v model.Vendor
	if err := tx.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// FindLocationTx loads a vendor location inside tx.
func FindLocationTx(tx *gorm.DB, id uint) (*model.VendorLocation, error) {
	var l model.VendorLocation
	if err := tx.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// LocationIDsTx returns the ids of the vendor's locations matching sel.
func LocationIDsTx(tx *gorm.DB, vendorID uint, sel Selection) ([]uint, error) {
	var ids []uint
	err := sel.apply(tx.Model(&model.VendorLocation{}).Where("vendor_id = ?", vendorID)).
		Order("id").Pluck("id", &ids).Error
	return ids, err
}

// DependentIDsTx returns the ids of rows of m (VendorProduct or FreightRoute)
// owned by any of locationIDs and matching sel.
func DependentIDsTx(tx *gorm.DB, m any, locationIDs []uint, sel Selection) ([]uint, error) {
	if len(locationIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := sel.apply(tx.Model(m).Where("vendor_location_id IN ?", locationIDs)).
		Order("id").Pluck("id", &ids).Error
	return ids, err
}
