package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creekriver/campground/internal/domain"
	"github.com/creekriver/campground/internal/repo"
)

// CampsiteService implements the administrative campsite operations.
// It holds the type and reservation repos because creating a campsite
// requires the referenced type to exist, and deleting one is blocked while
// reservations still reference it.
type CampsiteService struct {
	campsites    repo.CampsiteRepo
	types        repo.CampsiteTypeRepo
	reservations repo.ReservationRepo
}

// NewCampsiteService constructs a CampsiteService backed by the provided repos.
func NewCampsiteService(campsites repo.CampsiteRepo, types repo.CampsiteTypeRepo, reservations repo.ReservationRepo) *CampsiteService {
	return &CampsiteService{campsites: campsites, types: types, reservations: reservations}
}

// Create validates the campsite, verifies the referenced type exists, then
// persists. Returns domain.ErrValidation for invalid input and
// domain.ErrNotFound when the campsite type is unknown.
func (s *CampsiteService) Create(ctx context.Context, site domain.Campsite) (domain.Campsite, error) {
	if err := site.Validate(); err != nil {
		return domain.Campsite{}, err
	}
	if _, err := s.types.GetByID(ctx, site.CampsiteTypeID); err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.Create: campsite type: %w", err)
	}
	created, err := s.campsites.Create(ctx, site)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single campsite by ID.
func (s *CampsiteService) GetByID(ctx context.Context, id uuid.UUID) (domain.Campsite, error) {
	site, err := s.campsites.GetByID(ctx, id)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.GetByID: %w", err)
	}
	return site, nil
}

// List returns all campsites.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CampsiteService) List(ctx context.Context) ([]domain.Campsite, error) {
	sites, err := s.campsites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CampsiteService.List: %w", err)
	}
	if sites == nil {
		return []domain.Campsite{}, nil
	}
	return sites, nil
}

// Update validates and persists changes to an existing campsite.
func (s *CampsiteService) Update(ctx context.Context, site domain.Campsite) (domain.Campsite, error) {
	if err := site.Validate(); err != nil {
		return domain.Campsite{}, err
	}
	if _, err := s.types.GetByID(ctx, site.CampsiteTypeID); err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.Update: campsite type: %w", err)
	}
	updated, err := s.campsites.Update(ctx, site)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("service.CampsiteService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a campsite. Deletion is rejected with domain.ErrCampsiteInUse
// while active reservations reference the site; the database's RESTRICT
// foreign key backs this check up against concurrent bookings.
func (s *CampsiteService) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.reservations.CountForCampsite(ctx, id)
	if err != nil {
		return fmt.Errorf("service.CampsiteService.Delete: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("service.CampsiteService.Delete: %w", domain.ErrCampsiteInUse)
	}
	if err := s.campsites.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CampsiteService.Delete: %w", err)
	}
	return nil
}
