package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type HaulRepository interface {
	Create(ctx context.Context, h *model.Haul) error
	FindByID(ctx context.Context, id uint) (*model.Haul, error)
	List(ctx context.Context, filter dto.HaulFilter) ([]model.Haul, error)
	Update(ctx context.Context, h *model.Haul) error
	Delete(ctx context.Context, id uint) error
}

type haulRepo struct{ crud[model.Haul] }

func NewHaulRepository(db *gorm.DB) HaulRepository {
	return &haulRepo{crud[model.Haul]{db: db}}
}

func (r *haulRepo) List(ctx context.Context, filter dto.HaulFilter) ([]model.Haul, error) {
	q := r.db.WithContext(ctx)
	if filter.WorkdayID != 0 {
		q = q.Where("workday_id = ?", filter.WorkdayID)
	}
	var list []model.Haul
	err := q.Order("date_time ASC").Find(&list).Error
	return list, err
}
