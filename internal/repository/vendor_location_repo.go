package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type VendorLocationRepository interface {
	Create(ctx context.Context, l *model.VendorLocation) error
	FindByID(ctx context.Context, id uint) (*model.VendorLocation, error)
	List(ctx context.Context, filter dto.LocationFilter) ([]model.VendorLocation, error)
	Update(ctx context.Context, l *model.VendorLocation) error
	Delete(ctx context.Context, id uint) error
}

type vendorLocationRepo struct{ crud[model.VendorLocation] }

func NewVendorLocationRepository(db *gorm.DB) VendorLocationRepository {
	return &vendorLocationRepo{crud[model.VendorLocation]{db: db}}
}

func (r *vendorLocationRepo) List(ctx context.Context, filter dto.LocationFilter) ([]model.VendorLocation, error) {
	q := scopeActive(r.db.WithContext(ctx), filter.Active)
	if filter.VendorID != 0 {
		q = q.Where("vendor_id = ?", filter.VendorID)
	}
	var list []model.VendorLocation
	err := q.Order("name ASC").Find(&list).Error
	return list, err
}
