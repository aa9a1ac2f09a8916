package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reservation binds a user to a campsite for a half-open date range
// [Checkin, Checkout): checkout day itself is not occupied, so a new party
// may check in on another's checkout day.
//
// TotalCost is computed once at booking time from the campsite type's fee and
// is never recomputed — later fee changes do not reprice existing bookings.
// Reservations are never updated in place; a date change is modeled as
// cancel + recreate.
type Reservation struct {
	ID            uuid.UUID
	CampsiteID    uuid.UUID
	UserProfileID uuid.UUID
	Checkin       time.Time
	Checkout      time.Time
	TotalCost     Cents
	CreatedAt     time.Time
}

// Nights returns the length of the stay as a whole day count.
// Both dates are calendar dates at UTC midnight, so the division is exact.
func (r Reservation) Nights() int {
	return int(r.Checkout.Sub(r.Checkin) / (24 * time.Hour))
}

// Overlaps reports whether two half-open date ranges intersect:
// [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2.
// Back-to-back checkout/checkin on the same day does not overlap.
func (r Reservation) Overlaps(checkin, checkout time.Time) bool {
	return r.Checkin.Before(checkout) && checkin.Before(r.Checkout)
}

// ReservationDetail is the enriched read model for reservation listings:
// the reservation row joined with its campsite, campsite type, and the
// booking user. Assembled by an explicit join in the repo layer.
type ReservationDetail struct {
	Reservation
	CampsiteNickname string
	CampsiteTypeName string
	UserFirstName    string
	UserLastName     string
	UserEmail        string
}

// ReservationFilter narrows ListReservations. Zero values mean "no filter".
type ReservationFilter struct {
	// CampsiteID restricts results to one campsite when set.
	CampsiteID uuid.UUID
	// UserProfileID restricts results to one user when set.
	UserProfileID uuid.UUID
}
