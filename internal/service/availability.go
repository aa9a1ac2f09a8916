package service

import (
	"time"

	"github.com/creekriver/campground/internal/domain"
)

// findConflict scans the existing active reservations of a campsite for one
// that overlaps the candidate [checkin, checkout) range. Intervals are
// half-open, so a checkout on day D and a new checkin on day D do not
// conflict.
//
// When several reservations overlap the candidate, the one with the earliest
// checkin wins (id as tiebreaker), so the reported conflict is deterministic
// regardless of input order.
//
// The linear scan is fine at campground scale. If per-campsite volume ever
// grows, the natural upgrade is a binary search over the checkin-sorted slice
// that ListActiveForCampsite already returns.
//
// Pure function, no I/O: the caller supplies the reservation set, keeping
// this unit-testable without storage.
func findConflict(checkin, checkout time.Time, existing []domain.Reservation) (*domain.UnavailableError, bool) {
	var conflict *domain.Reservation
	for i := range existing {
		r := &existing[i]
		if !r.Overlaps(checkin, checkout) {
			continue
		}
		if conflict == nil ||
			r.Checkin.Before(conflict.Checkin) ||
			(r.Checkin.Equal(conflict.Checkin) && r.ID.String() < conflict.ID.String()) {
			conflict = r
		}
	}
	if conflict == nil {
		return nil, false
	}
	return &domain.UnavailableError{ConflictingReservationID: conflict.ID}, true
}
