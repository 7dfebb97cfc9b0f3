package repository

import (
	"context"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type NoticeRepository interface {
	Create(ctx context.Context, n *model.Notice) error
	FindByID(ctx context.Context, id uint) (*model.Notice, error)
	// List with the default filter hides expired notices as well as inactive ones.
	List(ctx context.Context, active string, now time.Time) ([]model.Notice, error)
	Update(ctx context.Context, n *model.Notice) error
	Delete(ctx context.Context, id uint) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type noticeRepo struct{ crud[model.Notice] }

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepo{crud[model.Notice]{db: db}}
}

func (r *noticeRepo) List(ctx context.Context, active string, now time.Time) ([]model.Notice, error) {
	q := scopeActive(r.db.WithContext(ctx), active)
	if active == "" || active == dto.ActiveOnly {
		q = q.Where("(expires_at IS NULL OR expires_at > ?)", now)
	}
	var list []model.Notice
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *noticeRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notice{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
