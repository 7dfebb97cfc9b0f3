package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/textcase"
)

const dateLayout = "2006-01-02"

type DriverService interface {
	Create(ctx context.Context, req dto.CreateDriverRequest) (*dto.DriverResponse, error)
	Get(ctx context.Context, id uint) (*dto.DriverResponse, error)
	List(ctx context.Context, filter dto.ActiveFilter) ([]dto.DriverResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateDriverRequest) (*dto.DriverResponse, error)
	Delete(ctx context.Context, id uint) error
}

type driverService struct {
	repo repository.DriverRepository
}

func NewDriverService(repo repository.DriverRepository) DriverService {
	return &driverService{repo: repo}
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return t, nil
}

func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func mapDriver(d model.Driver) dto.DriverResponse {
	resp := dto.DriverResponse{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Phone:       d.Phone,
		Email:       d.Email,
		TruckNumber: d.TruckNumber,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}
	if d.DateHired != nil {
		s := d.DateHired.Format(dateLayout)
		resp.DateHired = &s
	}
	return resp
}

func (s *driverService) Create(ctx context.Context, req dto.CreateDriverRequest) (*dto.DriverResponse, error) {
	hired, err := parseOptionalDate("date_hired", req.DateHired)
	if err != nil {
		return nil, err
	}
	d := &model.Driver{
		FirstName:   textcase.Title(req.FirstName),
		LastName:    textcase.Title(req.LastName),
		Phone:       textcase.Ptr(req.Phone, textcase.Upper),
		Email:       textcase.Ptr(req.Email, textcase.Email),
		TruckNumber: textcase.Ptr(req.TruckNumber, textcase.Upper),
		DateHired:   hired,
		IsActive:    true,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	resp := mapDriver(*d)
	return &resp, nil
}

func (s *driverService) Get(ctx context.Context, id uint) (*dto.DriverResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("driver", id, err)
	}
	resp := mapDriver(*d)
	return &resp, nil
}

func (s *driverService) List(ctx context.Context, filter dto.ActiveFilter) ([]dto.DriverResponse, error) {
	list, err := s.repo.List(ctx, filter.Active)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DriverResponse, 0, len(list))
	for _, d := range list {
		out = append(out, mapDriver(d))
	}
	return out, nil
}

func (s *driverService) Update(ctx context.Context, id uint, req dto.UpdateDriverRequest) (*dto.DriverResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr("driver", id, err)
	}
	if req.FirstName != nil {
		d.FirstName = textcase.Title(*req.FirstName)
	}
	if req.LastName != nil {
		d.LastName = textcase.Title(*req.LastName)
	}
	if req.Phone != nil {
		d.Phone = textcase.Ptr(req.Phone, textcase.Upper)
	}
	if req.Email != nil {
		d.Email = textcase.Ptr(req.Email, textcase.Email)
	}
	if req.TruckNumber != nil {
		d.TruckNumber = textcase.Ptr(req.TruckNumber, textcase.Upper)
	}
	if req.DateHired != nil {
		if d.DateHired, err = parseOptionalDate("date_hired", req.DateHired); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	resp := mapDriver(*d)
	return &resp, nil
}

func (s *driverService) Delete(ctx context.Context, id uint) error {
	return lookupErr("driver", id, s.repo.Delete(ctx, id))
}
