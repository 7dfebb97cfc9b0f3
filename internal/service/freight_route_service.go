package service

import (
	"context"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
)

type FreightRouteService interface {
	Create(ctx context.Context, req dto.CreateFreightRouteRequest) (*dto.FreightRouteResponse, error)
	Get(ctx context.Context, id uint) (*dto.FreightRouteResponse, error)
	List(ctx context.Context, filter dto.DependentFilter) ([]dto.FreightRouteResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateFreightRouteRequest) (*dto.FreightRouteResponse, error)
	Delete(ctx context.Context, id uint) error
}

type freightRouteService struct {
	repo      repository.FreightRouteRepository
	locations repository.VendorLocationRepository
}

func NewFreightRouteService(repo repository.FreightRouteRepository, locations repository.VendorLocationRepository) FreightRouteService {
	return &freightRouteService{repo: repo, locations: locations}
}

func mapRoute(r model.FreightRoute) dto.FreightRouteResponse {
	return dto.FreightRouteResponse{
		ID:                  r.ID,
		VendorLocationID:    r.VendorLocationID,
		Destination:         r.Destination,
		FreightCost:         r.FreightCost,
		Notes:               r.Notes,
		IsActive:            r.IsActive,
		DeactivatedByParent: r.DeactivatedByParent,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func (s *freightRouteService) Create(ctx context.Context, req dto.CreateFreightRouteRequest) (*dto.FreightRouteResponse, error) {
	loc, err := s.locations.FindByID(ctx, req.VendorLocationID)
	if err != nil {
		return nil, refErr("vendor location", req.VendorLocationID, err)
	}
	if req.FreightCost.IsNegative() {
		return nil, fmt.Errorf("%w: freight cost must not be negative", ErrInvalidInput)
	}
	r := &model.FreightRoute{
		VendorLocationID: loc.ID,
		Destination:      textcase.Title(req.Destination),
		FreightCost:      req.FreightCost.Round(2),
		Notes:            textcase.Ptr(req.Notes, textcase.Sentence),
	}
	r.IsActive, r.DeactivatedByParent = initialState(loc.IsActive, req.IsActive)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	resp := mapRoute(*r)
	return &resp, nil
}

func (s *freightRouteService) Get(ctx context.Context, id uint) (*dto.FreightRouteResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("freight route", id, err)
	}
	resp := mapRoute(*r)
	return &resp, nil
}

func (s *freightRouteService) List(ctx context.Context, filter dto.DependentFilter) ([]dto.FreightRouteResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FreightRouteResponse, 0, len(list))
	for _, r := range list {
		out = append(out, mapRoute(r))
	}
	return out, nil
}

func (s *freightRouteService) Update(ctx context.Context, id uint, req dto.UpdateFreightRouteRequest) (*dto.FreightRouteResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("freight route", id, err)
	}
	if req.Destination != nil {
		r.Destination = textcase.Title(*req.Destination)
	}
	if req.FreightCost != nil {
		if req.FreightCost.IsNegative() {
			return nil, fmt.Errorf("%w: freight cost must not be negative", ErrInvalidInput)
		}
		r.FreightCost = req.FreightCost.Round(2)
	}
	if req.Notes != nil {
		r.Notes = textcase.Ptr(req.Notes, textcase.Sentence)
	}
	applyActive(&r.IsActive, &r.DeactivatedByParent, req.IsActive)
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	resp := mapRoute(*r)
	return &resp, nil
}

func (s *freightRouteService) Delete(ctx context.Context, id uint) error {
	return lookupErr("freight route", id, s.repo.Delete(ctx, id))
}
