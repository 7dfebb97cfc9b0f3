package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"

	"gorm.io/gorm"
)

type VendorService interface {
	Create(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error)
	Get(ctx context.Context, id uint) (*dto.VendorResponse, error)
	List(ctx context.Context, filter dto.ActiveFilter) ([]dto.VendorResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type vendorService struct {
	repo repository.VendorRepository
}

func NewVendorService(repo repository.VendorRepository) VendorService {
	return &vendorService{repo: repo}
}

func mapVendor(v model.Vendor) dto.VendorResponse {
	return dto.VendorResponse{
		ID:         v.ID,
		Name:       v.Name,
		ShortName:  v.ShortName,
		VendorType: v.VendorType,
		Notes:      v.Notes,
		IsActive:   v.IsActive,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// checkName rejects a name already used by another vendor (case-insensitive).
func (s *vendorService) checkName(ctx context.Context, name string, self uint) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil && existing.ID != self {
		return fmt.Errorf("vendor %q %w", name, ErrConflict)
	}
	return nil
}

func (s *vendorService) Create(ctx context.Context, req dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	name := textcase.Title(req.Name)
	if err := s.checkName(ctx, name, 0); err != nil {
		return nil, err
	}
	vendorType := req.VendorType
	if vendorType == "" {
		vendorType = "supplier"
	}
	v := &model.Vendor{
		Name:       name,
		ShortName:  textcase.Upper(req.ShortName),
		VendorType: vendorType,
		Notes:      textcase.Ptr(req.Notes, textcase.Sentence),
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := mapVendor(*v)
	return &resp, nil
}

func (s *vendorService) Get(ctx context.Context, id uint) (*dto.VendorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("vendor", id, err)
	}
	resp := mapVendor(*v)
	return &resp, nil
}

func (s *vendorService) List(ctx context.Context, filter dto.ActiveFilter) ([]dto.VendorResponse, error) {
	list, err := s.repo.List(ctx, filter.Active)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, mapVendor(v))
	}
	return out, nil
}

func (s *vendorService) Update(ctx context.Context, id uint, req dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("vendor", id, err)
	}
	if req.Name != nil {
		name := textcase.Title(*req.Name)
		if err := s.checkName(ctx, name, id); err != nil {
			return nil, err
		}
		v.Name = name
	}
	if req.ShortName != nil {
		v.ShortName = textcase.Upper(*req.ShortName)
	}
	if req.VendorType != nil {
		v.VendorType = *req.VendorType
	}
	if req.Notes != nil {
		v.Notes = textcase.Ptr(req.Notes, textcase.Sentence)
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := mapVendor(*v)
	return &resp, nil
}

func (s *vendorService) Delete(ctx context.Context, id uint) error {
	return lookupErr("vendor", id, s.repo.Delete(ctx, id))
}
