package service

import (
	"context"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
)

type VendorProductService interface {
	Create(ctx context.Context, req dto.CreateVendorProductRequest) (*dto.VendorProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.VendorProductResponse, error)
	List(ctx context.Context, filter dto.DependentFilter) ([]dto.VendorProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateVendorProductRequest) (*dto.VendorProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type vendorProductService struct {
	repo      repository.VendorProductRepository
	locations repository.VendorLocationRepository
}

func NewVendorProductService(repo repository.VendorProductRepository, locations repository.VendorLocationRepository) VendorProductService {
	return &vendorProductService{repo: repo, locations: locations}
}

func mapProduct(p model.VendorProduct) dto.VendorProductResponse {
	return dto.VendorProductResponse{
		ID:                  p.ID,
		VendorLocationID:    p.VendorLocationID,
		Name:                p.Name,
		Description:         p.Description,
		Price:               p.Price,
		Unit:                p.Unit,
		IsActive:            p.IsActive,
		DeactivatedByParent: p.DeactivatedByParent,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (s *vendorProductService) Create(ctx context.Context, req dto.CreateVendorProductRequest) (*dto.VendorProductResponse, error) {
	loc, err := s.locations.FindByID(ctx, req.VendorLocationID)
	if err != nil {
		return nil, refErr("vendor location", req.VendorLocationID, err)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	unit := req.Unit
	if unit == "" {
		unit = "ton"
	}
	p := &model.VendorProduct{
		VendorLocationID: loc.ID,
		Name:             textcase.Title(req.Name),
		Description:      textcase.Ptr(req.Description, textcase.Sentence),
		Price:            req.Price.Round(2),
		Unit:             unit,
	}
	p.IsActive, p.DeactivatedByParent = initialState(loc.IsActive, req.IsActive)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *vendorProductService) Get(ctx context.Context, id uint) (*dto.VendorProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("vendor product", id, err)
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *vendorProductService) List(ctx context.Context, filter dto.DependentFilter) ([]dto.VendorProductResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, mapProduct(p))
	}
	return out, nil
}

func (s *vendorProductService) Update(ctx context.Context, id uint, req dto.UpdateVendorProductRequest) (*dto.VendorProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("vendor product", id, err)
	}
	if req.Name != nil {
		p.Name = textcase.Title(*req.Name)
	}
	if req.Description != nil {
		p.Description = textcase.Ptr(req.Description, textcase.Sentence)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		p.Price = req.Price.Round(2)
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	applyActive(&p.IsActive, &p.DeactivatedByParent, req.IsActive)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *vendorProductService) Delete(ctx context.Context, id uint) error {
	return lookupErr("vendor product", id, s.repo.Delete(ctx, id))
}
