package service

import (
	"fmt"
	"time"

	"github.com/creekriver/campground/internal/domain"
)

// validateStay enforces the date-sanity and stay-length rules for a candidate
// reservation against the campsite type's limits. Checks run in order and the
// first failure wins:
//
//  1. checkout must be strictly after checkin → domain.ErrInvalidDateRange
//  2. the night count must not exceed the type's maximum → domain.ErrStayTooLong
//
// Pure function, no I/O.
func validateStay(checkin, checkout time.Time, t domain.CampsiteType) error {
	if !checkout.After(checkin) {
		return fmt.Errorf("%w: checkout must be after checkin", domain.ErrInvalidDateRange)
	}

	nights := int(checkout.Sub(checkin) / (24 * time.Hour))
	if nights > t.MaxReservationDays {
		return &domain.StayTooLongError{RequestedNights: nights, MaxNights: t.MaxReservationDays}
	}

	return nil
}
