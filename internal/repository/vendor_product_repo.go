package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type VendorProductRepository interface {
	Create(ctx context.Context, p *model.VendorProduct) error
	FindByID(ctx context.Context, id uint) (*model.VendorProduct, error)
	List(ctx context.Context, filter dto.DependentFilter) ([]model.VendorProduct, error)
	Update(ctx context.Context, p *model.VendorProduct) error
	Delete(ctx context.Context, id uint) error
}

type vendorProductRepo struct{ crud[model.VendorProduct] }

func NewVendorProductRepository(db *gorm.DB) VendorProductRepository {
	return &vendorProductRepo{crud[model.VendorProduct]{db: db}}
}

func (r *vendorProductRepo) List(ctx context.Context, filter dto.DependentFilter) ([]model.VendorProduct, error) {
	q := scopeActive(r.db.WithContext(ctx), filter.Active)
	if filter.VendorLocationID != 0 {
		q = q.Where("vendor_location_id = ?", filter.VendorLocationID)
	}
	var list []model.VendorProduct
	err := q.Order("name ASC").Find(&list).Error
	return list, err
}
