package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/model"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ActivationService turns vendors and vendor locations on and off together
// with everything beneath them.
//
// Deactivating a parent marks each dependent that is active at that moment
// with is_active=false, deactivated_by_parent=true. Reactivating the parent
// brings back exactly the rows carrying that mark. Rows that were already
// inactive keep deactivated_by_parent=false and stay off.
//
// Each operation reads and writes inside one transaction; on any failure
// nothing is kept and the error wraps ErrCascadeWriteFailed. A missing
// parent yields ErrNotFound. Repeating an operation is a no-op.
type ActivationService interface {
	CascadeDeactivate(ctx context.Context, locationID uint) error
	CascadeReactivate(ctx context.Context, locationID uint) error
	CascadeDeactivateVendor(ctx context.Context, vendorID uint) error
	CascadeReactivateVendor(ctx context.Context, vendorID uint) error
}

type activationService struct {
	uow repository.UnitOfWork
}

func NewActivationService(uow repository.UnitOfWork) ActivationService {
	return &activationService{uow: uow}
}

var (
	cascadeOff = map[string]any{"is_active": false, "deactivated_by_parent": true}
	cascadeOn  = map[string]any{"is_active": true, "deactivated_by_parent": false}
)

// dependents holds the ids of the products and routes a cascade will touch.
type dependents struct {
	products []uint
	routes   []uint
}

func readDependents(tx *gorm.DB, locationIDs []uint, sel repository.Selection) (dependents, error) {
	var d dependents
	var err error
	if d.products, err = repository.DependentIDsTx(tx, &model.VendorProduct{}, locationIDs, sel); err != nil {
		return d, err
	}
	if d.routes, err = repository.DependentIDsTx(tx, &model.FreightRoute{}, locationIDs, sel); err != nil {
		return d, err
	}
	return d, nil
}

func (d dependents) updates(fields map[string]any) []repository.BatchUpdate {
	return []repository.BatchUpdate{
		{Model: &model.VendorProduct{}, IDs: d.products, Fields: fields},
		{Model: &model.FreightRoute{}, IDs: d.routes, Fields: fields},
	}
}

func (s *activationService) CascadeDeactivate(ctx context.Context, locationID uint) error {
	var d dependents
	err := s.run(ctx, func(tx *gorm.DB) error {
		if _, err := repository.FindLocationTx(tx, locationID); err != nil {
			return lookupErr("vendor location", locationID, err)
		}
		var err error
		if d, err = readDependents(tx, []uint{locationID}, repository.SelectActive); err != nil {
			return err
		}
		return repository.ApplyBatch(tx, append([]repository.BatchUpdate{
			{Model: &model.VendorLocation{}, IDs: []uint{locationID}, Fields: map[string]any{"is_active": false}},
		}, d.updates(cascadeOff)...)...)
	})
	if err != nil {
		return err
	}
	log.Info().
		Uint("vendor_location_id", locationID).
		Int("products", len(d.products)).
		Int("freight_routes", len(d.routes)).
		Msg("vendor location deactivated")
	return nil
}

func (s *activationService) CascadeReactivate(ctx context.Context, locationID uint) error {
	var d dependents
	err := s.run(ctx, func(tx *gorm.DB) error {
		if _, err := repository.FindLocationTx(tx, locationID); err != nil {
			return lookupErr("vendor location", locationID, err)
		}
		var err error
		if d, err = readDependents(tx, []uint{locationID}, repository.SelectCascaded); err != nil {
			return err
		}
		return repository.ApplyBatch(tx, append([]repository.BatchUpdate{
			{Model: &model.VendorLocation{}, IDs: []uint{locationID}, Fields: cascadeOn},
		}, d.updates(cascadeOn)...)...)
	})
	if err != nil {
		return err
	}
	log.Info().
		Uint("vendor_location_id", locationID).
		Int("products", len(d.products)).
		Int("freight_routes", len(d.routes)).
		Msg("vendor location reactivated")
	return nil
}

func (s *activationService) CascadeDeactivateVendor(ctx context.Context, vendorID uint) error {
	var locations []uint
	var d dependents
	err := s.run(ctx, func(tx *gorm.DB) error {
		if _, err := repository.FindVendorTx(tx, vendorID); err != nil {
			return lookupErr("vendor", vendorID, err)
		}
		var err error
		if locations, err = repository.LocationIDsTx(tx, vendorID, repository.SelectActive); err != nil {
			return err
		}
		if d, err = readDependents(tx, locations, repository.SelectActive); err != nil {
			return err
		}
		return repository.ApplyBatch(tx, append([]repository.BatchUpdate{
			{Model: &model.Vendor{}, IDs: []uint{vendorID}, Fields: map[string]any{"is_active": false}},
			{Model: &model.VendorLocation{}, IDs: locations, Fields: cascadeOff},
		}, d.updates(cascadeOff)...)...)
	})
	if err != nil {
		return err
	}
	log.Info().
		Uint("vendor_id", vendorID).
		Int("locations", len(locations)).
		Int("products", len(d.products)).
		Int("freight_routes", len(d.routes)).
		Msg("vendor deactivated")
	return nil
}

// CascadeReactivateVendor restores the cascade-marked locations and, below
// them, only the dependents the cascade marked. A location that was switched
// off on its own keeps its dependents as they are.
func (s *activationService) CascadeReactivateVendor(ctx context.Context, vendorID uint) error {
	var locations []uint
	var d dependents
	err := s.run(ctx, func(tx *gorm.DB) error {
		if _, err := repository.FindVendorTx(tx, vendorID); err != nil {
			return lookupErr("vendor", vendorID, err)
		}
		var err error
		if locations, err = repository.LocationIDsTx(tx, vendorID, repository.SelectCascaded); err != nil {
			return err
		}
		if d, err = readDependents(tx, locations, repository.SelectCascaded); err != nil {
			return err
		}
		return repository.ApplyBatch(tx, append([]repository.BatchUpdate{
			{Model: &model.Vendor{}, IDs: []uint{vendorID}, Fields: map[string]any{"is_active": true}},
			{Model: &model.VendorLocation{}, IDs: locations, Fields: cascadeOn},
		}, d.updates(cascadeOn)...)...)
	})
	if err != nil {
		return err
	}
	log.Info().
		Uint("vendor_id", vendorID).
		Int("locations", len(locations)).
		Int("products", len(d.products)).
		Int("freight_routes", len(d.routes)).
		Msg("vendor reactivated")
	return nil
}

func (s *activationService) run(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := s.uow.Run(ctx, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return err
	default:
		log.Error().Err(err).Msg("activation cascade rolled back")
		return fmt.Errorf("%w: %w", ErrCascadeWriteFailed, err)
	}
}
