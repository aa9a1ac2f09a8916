package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource (campsite, campsite type, user profile, or reservation) does not
// exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing nickname, non-positive fee).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange is returned when a reservation's checkout date is not
// strictly after its checkin date.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrStayTooLong is the sentinel matched by errors.Is for StayTooLongError.
var ErrStayTooLong = errors.New("stay too long")

// ErrCampsiteUnavailable is the sentinel matched by errors.Is for
// UnavailableError. It covers both conflicts found by the availability check
// and inserts that lose a race against a concurrent conflicting commit.
// Handlers should map this to HTTP 409 Conflict.
var ErrCampsiteUnavailable = errors.New("campsite unavailable")

// ErrCampsiteInUse is returned when deleting a campsite that active
// reservations still reference.
// Handlers should map this to HTTP 409 Conflict.
var ErrCampsiteInUse = errors.New("campsite has active reservations")

// StayTooLongError reports a requested stay exceeding the campsite type's
// maximum. It unwraps to ErrStayTooLong so callers can match with errors.Is
// and inspect the night counts with errors.As.
type StayTooLongError struct {
	RequestedNights int
	MaxNights       int
}

func (e *StayTooLongError) Error() string {
	return fmt.Sprintf("stay too long: requested %d nights, maximum %d", e.RequestedNights, e.MaxNights)
}

func (e *StayTooLongError) Unwrap() error { return ErrStayTooLong }

// UnavailableError reports an availability conflict on a campsite.
// ConflictingReservationID names the existing reservation with the earliest
// checkin among all conflicts; it is uuid.Nil when the conflict was detected
// by the database constraint rather than the availability check.
type UnavailableError struct {
	ConflictingReservationID uuid.UUID
}

func (e *UnavailableError) Error() string {
	if e.ConflictingReservationID == uuid.Nil {
		return "campsite unavailable for the requested dates"
	}
	return fmt.Sprintf("campsite unavailable: conflicts with reservation %s", e.ConflictingReservationID)
}

func (e *UnavailableError) Unwrap() error { return ErrCampsiteUnavailable }
