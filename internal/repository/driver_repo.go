package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type DriverRepository interface {
	Create(ctx context.Context, d *model.Driver) error
	FindByID(ctx context.Context, id uint) (*model.Driver, error)
	List(ctx context.Context, active string) ([]model.Driver, error)
	Update(ctx context.Context, d *model.Driver) error
	Delete(ctx context.Context, id uint) error
}

type driverRepo struct{ crud[model.Driver] }

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &driverRepo{crud[model.Driver]{db: db}}
}

func (r *driverRepo) List(ctx context.Context, active string) ([]model.Driver, error) {
	var list []model.Driver
	err := scopeActive(r.db.WithContext(ctx), active).Order("last_name ASC, first_name ASC").Find(&list).Error
	return list, err
}
