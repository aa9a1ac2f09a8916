// Package domain contains the core data types for the Creek River Campground
// API. This package has no knowledge of HTTP or SQL and is imported by every
// other internal package (repo, service, handler, seed).
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// CampsiteType is a category of site (e.g. Tent, RV) defining the nightly fee
// and the maximum stay length. Types are immutable reference data: they are
// created by the startup seed and never modified by normal operations.
type CampsiteType struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	FeePerNight        Cents     `json:"fee_per_night"`
	MaxReservationDays int       `json:"max_reservation_days"`
}

// Validate enforces construction-time constraints. A CampsiteType that fails
// Validate must never be persisted.
func (t CampsiteType) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if t.FeePerNight <= 0 {
		return fmt.Errorf("%w: fee_per_night must be positive", ErrValidation)
	}
	if t.MaxReservationDays <= 0 {
		return fmt.Errorf("%w: max_reservation_days must be positive", ErrValidation)
	}
	return nil
}
