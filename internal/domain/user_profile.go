package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserProfile identifies the person a reservation is booked for.
type UserProfile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// Validate enforces construction-time constraints.
func (u UserProfile) Validate() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrValidation)
	}
	if strings.TrimSpace(u.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrValidation)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email must be a valid address", ErrValidation)
	}
	return nil
}
