package repository

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	FindByID(ctx context.Context, id uint) (*model.Contact, error)
	List(ctx context.Context, filter dto.ContactFilter) ([]model.Contact, error)
	// ListEmailable returns contacts that have an email address.
	ListEmailable(ctx context.Context) ([]model.Contact, error)
	Update(ctx context.Context, c *model.Contact) error
	Delete(ctx context.Context, id uint) error
}

type contactRepo struct{ crud[model.Contact] }

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepo{crud[model.Contact]{db: db}}
}

func (r *contactRepo) List(ctx context.Context, filter dto.ContactFilter) ([]model.Contact, error) {
	q := r.db.WithContext(ctx)
	if filter.VendorID != 0 {
		q = q.Where("vendor_id = ?", filter.VendorID)
	}
	var list []model.Contact
	err := q.Order("first_name ASC").Find(&list).Error
	return list, err
}

func (r *contactRepo) ListEmailable(ctx context.Context) ([]model.Contact, error) {
	var list []model.Contact
	err := r.db.WithContext(ctx).Where("email IS NOT NULL AND email <> ''").Order("id ASC").Find(&list).Error
	return list, err
}
