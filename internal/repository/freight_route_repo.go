package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type FreightRouteRepository interface {
	Create(ctx context.Context, r *model.FreightRoute) error
	FindByID(ctx context.Context, id uint) (*model.FreightRoute, error)
	List(ctx context.Context, filter dto.DependentFilter) ([]model.FreightRoute, error)
	Update(ctx context.Context, r *model.FreightRoute) error
	Delete(ctx context.Context, id uint) error
}

type freightRouteRepo struct{ crud[model.FreightRoute] }

func NewFreightRouteRepository(db *gorm.DB) FreightRouteRepository {
	return &freightRouteRepo{crud[model.FreightRoute]{db: db}}
}

func (r *freightRouteRepo) List(ctx context.Context, filter dto.DependentFilter) ([]model.FreightRoute, error) {
	q := scopeActive(r.db.WithContext(ctx), filter.Active)
	if filter.VendorLocationID != 0 {
		q = q.Where("vendor_location_id = ?", filter.VendorLocationID)
	}
	var list []model.FreightRoute
	err := q.Order("destination ASC").Find(&list).Error
	return list, err
}
