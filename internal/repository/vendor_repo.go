package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) error
	FindByID(ctx context.Context, id uint) (*model.Vendor, error)
	FindByName(ctx context.Context, name string) (*model.Vendor, error)
	List(ctx context.Context, active string) ([]model.Vendor, error)
	Update(ctx context.Context, v *model.Vendor) error
	Delete(ctx context.Context, id uint) error
}

type vendorRepo struct{ crud[model.Vendor] }

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepo{crud[model.Vendor]{db: db}}
}

func (r *vendorRepo) FindByName(ctx context.Context, name string) (*model.Vendor, error) {
	var v model.Vendor
	if err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendorRepo) List(ctx context.Context, active string) ([]model.Vendor, error) {
	var list []model.Vendor
	err := scopeActive(r.db.WithContext(ctx), active).Order("name ASC").Find(&list).Error
	return list, err
}
