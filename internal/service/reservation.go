// Package service contains the business logic for the Campground API.
// Services validate inputs, enforce booking rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creekriver/campground/internal/domain"
	"github.com/creekriver/campground/internal/repo"
)

// ReservationService implements the booking workflow. It holds the user,
// campsite, and type repos because creating a reservation requires resolving
// all three before any write happens.
type ReservationService struct {
	users        repo.UserProfileRepo
	campsites    repo.CampsiteRepo
	types        repo.CampsiteTypeRepo
	reservations repo.ReservationRepo
}

// NewReservationService constructs a ReservationService backed by the provided repos.
func NewReservationService(
	users repo.UserProfileRepo,
	campsites repo.CampsiteRepo,
	types repo.CampsiteTypeRepo,
	reservations repo.ReservationRepo,
) *ReservationService {
	return &ReservationService{
		users:        users,
		campsites:    campsites,
		types:        types,
		reservations: reservations,
	}
}

// Create books a campsite for a user over the half-open [checkin, checkout)
// range. The pipeline, in order:
//
//  1. resolve the user, campsite, and campsite type (domain.ErrNotFound)
//  2. stay rules: date sanity, then max stay length
//  3. availability against the campsite's current active reservations
//  4. price the stay: nights × the type's fee, locked in at booking time
//  5. insert
//
// No persistence write occurs before every check has passed. The insert
// itself is guarded by the storage engine's no-overlap constraint, so a
// concurrent conflicting create cannot slip between steps 3 and 5 — the
// loser gets the same domain.ErrCampsiteUnavailable.
func (s *ReservationService) Create(ctx context.Context, userID, campsiteID uuid.UUID, checkin, checkout time.Time) (domain.Reservation, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: user: %w", err)
	}

	site, err := s.campsites.GetByID(ctx, campsiteID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: campsite: %w", err)
	}

	siteType, err := s.types.GetByID(ctx, site.CampsiteTypeID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: campsite type: %w", err)
	}

	if err := validateStay(checkin, checkout, siteType); err != nil {
		return domain.Reservation{}, err
	}

	existing, err := s.reservations.ListActiveForCampsite(ctx, site.ID)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	if conflict, found := findConflict(checkin, checkout, existing); found {
		return domain.Reservation{}, conflict
	}

	res := domain.Reservation{
		CampsiteID:    site.ID,
		UserProfileID: user.ID,
		Checkin:       checkin,
		Checkout:      checkout,
	}
	res.TotalCost = siteType.FeePerNight.Times(res.Nights())

	created, err := s.reservations.Create(ctx, res)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	return created, nil
}

// List returns reservations enriched with campsite, type, and user data,
// ordered by checkin ascending (id as stable secondary order).
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]domain.ReservationDetail, error) {
	details, err := s.reservations.ListDetailed(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.List: %w", err)
	}
	if details == nil {
		return []domain.ReservationDetail{}, nil
	}
	return details, nil
}

// Cancel removes a reservation from the active set; subsequent availability
// checks ignore it. Cancelling an unknown or already-cancelled reservation
// returns domain.ErrNotFound.
func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ReservationService.Cancel: %w", err)
	}
	return nil
}
