package service

import (
	"context"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
)

type VendorLocationService interface {
	Create(ctx context.Context, req dto.CreateVendorLocationRequest) (*dto.VendorLocationResponse, error)
	Get(ctx context.Context, id uint) (*dto.VendorLocationResponse, error)
	List(ctx context.Context, filter dto.LocationFilter) ([]dto.VendorLocationResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateVendorLocationRequest) (*dto.VendorLocationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type vendorLocationService struct {
	repo    repository.VendorLocationRepository
	vendors repository.VendorRepository
}

func NewVendorLocationService(repo repository.VendorLocationRepository, vendors repository.VendorRepository) VendorLocationService {
	return &vendorLocationService{repo: repo, vendors: vendors}
}

func mapLocation(l model.VendorLocation) dto.VendorLocationResponse {
	return dto.VendorLocationResponse{
		ID:                  l.ID,
		VendorID:            l.VendorID,
		Name:                l.Name,
		Address:             l.Address,
		City:                l.City,
		State:               l.State,
		Zip:                 l.Zip,
		Phone:               l.Phone,
		Notes:               l.Notes,
		IsActive:            l.IsActive,
		DeactivatedByParent: l.DeactivatedByParent,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
}

// Create adds a location. Under an inactive vendor the location starts in
// the vendor's cascade, so reactivating the vendor brings it up too.
func (s *vendorLocationService) Create(ctx context.Context, req dto.CreateVendorLocationRequest) (*dto.VendorLocationResponse, error) {
	vendor, err := s.vendors.FindByID(ctx, req.VendorID)
	if err != nil {
		return nil, refErr("vendor", req.VendorID, err)
	}
	l := &model.VendorLocation{
		VendorID:            vendor.ID,
		Name:                textcase.Title(req.Name),
		Address:             textcase.Ptr(req.Address, textcase.Title),
		City:                textcase.Ptr(req.City, textcase.Title),
		State:               textcase.Ptr(req.State, textcase.Upper),
		Zip:                 textcase.Ptr(req.Zip, textcase.Upper),
		Phone:               textcase.Ptr(req.Phone, textcase.Upper),
		Notes:               textcase.Ptr(req.Notes, textcase.Sentence),
		IsActive:            vendor.IsActive,
		DeactivatedByParent: !vendor.IsActive,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	resp := mapLocation(*l)
	return &resp, nil
}

func (s *vendorLocationService) Get(ctx context.Context, id uint) (*dto.VendorLocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("vendor location", id, err)
	}
	resp := mapLocation(*l)
	return &resp, nil
}

func (s *vendorLocationService) List(ctx context.Context, filter dto.LocationFilter) ([]dto.VendorLocationResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorLocationResponse, 0, len(list))
	for _, l := range list {
		out = append(out, mapLocation(l))
	}
	return out, nil
}

func (s *vendorLocationService) Update(ctx context.Context, id uint, req dto.UpdateVendorLocationRequest) (*dto.VendorLocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("vendor location", id, err)
	}
	if req.Name != nil {
		l.Name = textcase.Title(*req.Name)
	}
	if req.Address != nil {
		l.Address = textcase.Ptr(req.Address, textcase.Title)
	}
	if req.City != nil {
		l.City = textcase.Ptr(req.City, textcase.Title)
	}
	if req.State != nil {
		l.State = textcase.Ptr(req.State, textcase.Upper)
	}
	if req.Zip != nil {
		l.Zip = textcase.Ptr(req.Zip, textcase.Upper)
	}
	if req.Phone != nil {
		l.Phone = textcase.Ptr(req.Phone, textcase.Upper)
	}
	if req.Notes != nil {
		l.Notes = textcase.Ptr(req.Notes, textcase.Sentence)
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	resp := mapLocation(*l)
	return &resp, nil
}

func (s *vendorLocationService) Delete(ctx context.Context, id uint) error {
	return lookupErr("vendor location", id, s.repo.Delete(ctx, id))
}
