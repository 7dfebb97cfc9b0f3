package service

import (
	"context"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
)

type HaulService interface {
	Create(ctx context.Context, req dto.CreateHaulRequest) (*dto.HaulResponse, error)
	Get(ctx context.Context, id uint) (*dto.HaulResponse, error)
	List(ctx context.Context, filter dto.HaulFilter) ([]dto.HaulResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateHaulRequest) (*dto.HaulResponse, error)
	Delete(ctx context.Context, id uint) error
}

type haulService struct {
	repo     repository.HaulRepository
	workdays repository.WorkdayRepository
	routes   repository.FreightRouteRepository
	products repository.VendorProductRepository
}

func NewHaulService(
	repo repository.HaulRepository,
	workdays repository.WorkdayRepository,
	routes repository.FreightRouteRepository,
	products repository.VendorProductRepository,
) HaulService {
	return &haulService{repo: repo, workdays: workdays, routes: routes, products: products}
}

func mapHaul(h model.Haul) dto.HaulResponse {
	return dto.HaulResponse{
		ID:              h.ID,
		WorkdayID:       h.WorkdayID,
		DateTime:        h.DateTime,
		Customer:        h.Customer,
		InvoiceNumber:   h.InvoiceNumber,
		Material:        h.Material,
		LoadType:        h.LoadType,
		Quantity:        h.Quantity,
		Rate:            h.Rate,
		Amount:          h.Amount(),
		FreightRouteID:  h.FreightRouteID,
		VendorProductID: h.VendorProductID,
	}
}

// checkRefs verifies the optional route and product. Zero ids mean "unset".
func (s *haulService) checkRefs(ctx context.Context, routeID, productID *uint) (*uint, *uint, error) {
	if routeID != nil && *routeID == 0 {
		routeID = nil
	}
	if productID != nil && *productID == 0 {
		productID = nil
	}
	if routeID != nil {
		if _, err := s.routes.FindByID(ctx, *routeID); err != nil {
			return nil, nil, refErr("freight route", *routeID, err)
		}
	}
	if productID != nil {
		if _, err := s.products.FindByID(ctx, *productID); err != nil {
			return nil, nil, refErr("vendor product", *productID, err)
		}
	}
	return routeID, productID, nil
}

func (s *haulService) Create(ctx context.Context, req dto.CreateHaulRequest) (*dto.HaulResponse, error) {
	if _, err := s.workdays.FindByID(ctx, req.WorkdayID); err != nil {
		return nil, refErr("workday", req.WorkdayID, err)
	}
	if !req.Quantity.IsPositive() || req.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: quantity must be positive and rate not negative", ErrInvalidInput)
	}
	routeID, productID, err := s.checkRefs(ctx, req.FreightRouteID, req.VendorProductID)
	if err != nil {
		return nil, err
	}
	h := &model.Haul{
		WorkdayID:       req.WorkdayID,
		DateTime:        req.DateTime,
		Customer:        textcase.Title(req.Customer),
		InvoiceNumber:   textcase.Ptr(req.InvoiceNumber, textcase.Upper),
		Material:        textcase.Title(req.Material),
		LoadType:        req.LoadType,
		Quantity:        req.Quantity.Round(2),
		Rate:            req.Rate.Round(2),
		FreightRouteID:  routeID,
		VendorProductID: productID,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	resp := mapHaul(*h)
	return &resp, nil
}

func (s *haulService) Get(ctx context.Context, id uint) (*dto.HaulResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("haul", id, err)
	}
	resp := mapHaul(*h)
	return &resp, nil
}

func (s *haulService) List(ctx context.Context, filter dto.HaulFilter) ([]dto.HaulResponse, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HaulResponse, 0, len(list))
	for _, h := range list {
		out = append(out, mapHaul(h))
	}
	return out, nil
}

func (s *haulService) Update(ctx context.Context, id uint, req dto.UpdateHaulRequest) (*dto.HaulResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("haul", id, err)
	}
	if req.DateTime != nil {
		h.DateTime = *req.DateTime
	}
	if req.Customer != nil {
		h.Customer = textcase.Title(*req.Customer)
	}
	if req.InvoiceNumber != nil {
		h.InvoiceNumber = textcase.Ptr(req.InvoiceNumber, textcase.Upper)
	}
	if req.Material != nil {
		h.Material = textcase.Title(*req.Material)
	}
	if req.LoadType != nil {
		h.LoadType = *req.LoadType
	}
	if req.Quantity != nil {
		if !req.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		h.Quantity = req.Quantity.Round(2)
	}
	if req.Rate != nil {
		if req.Rate.IsNegative() {
			return nil, fmt.Errorf("%w: rate must not be negative", ErrInvalidInput)
		}
		h.Rate = req.Rate.Round(2)
	}
	if req.FreightRouteID != nil || req.VendorProductID != nil {
		routeID, productID, err := s.checkRefs(ctx, req.FreightRouteID, req.VendorProductID)
		if err != nil {
			return nil, err
		}
		if req.FreightRouteID != nil {
			h.FreightRouteID = routeID
		}
		if req.VendorProductID != nil {
			h.VendorProductID = productID
		}
	}
	// The loaded associations are nil, so Save writes only the haul row.
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	resp := mapHaul(*h)
	return &resp, nil
}

func (s *haulService) Delete(ctx context.Context, id uint) error {
	return lookupErr("haul", id, s.repo.Delete(ctx, id))
}
