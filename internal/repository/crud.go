package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"

	"gorm.io/gorm"
)

// crud is the GORM implementation shared by every entity repository.
// Lookups of missing rows return gorm.ErrRecordNotFound.
type crud[T any] struct{ db *gorm.DB }

func (r crud[T]) Create(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r crud[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var v T
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r crud[T]) Update(ctx context.Context, v *T) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r crud[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// scopeActive applies a dto.ActiveFilter value: "" and "true" keep active
// rows, "false" keeps inactive rows, "all" keeps both.
func scopeActive(q *gorm.DB, active string) *gorm.DB {
	switch active {
	case dto.InactiveOnly:
		return q.Where("is_active = ?", false)
	case dto.ActiveAll:
		return q
	default:
		return q.Where("is_active = ?", true)
	}
}
