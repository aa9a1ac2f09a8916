package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Campsite is an individual bookable site in the park. It references its
// CampsiteType by id only; callers that need the type data resolve it through
// the repo layer. No navigation pointers — keeping references one-directional
// avoids the cyclic serialization problem entirely.
type Campsite struct {
	ID             uuid.UUID `json:"id"`
	CampsiteTypeID uuid.UUID `json:"campsite_type_id"`
	Nickname       string    `json:"nickname"`
	ImageURL       string    `json:"image_url,omitempty"`
}

// Validate enforces construction-time constraints.
// Whitespace-only nicknames are rejected.
func (c Campsite) Validate() error {
	if strings.TrimSpace(c.Nickname) == "" {
		return fmt.Errorf("%w: nickname is required", ErrValidation)
	}
	if c.CampsiteTypeID == uuid.Nil {
		return fmt.Errorf("%w: campsite_type_id is required", ErrValidation)
	}
	return nil
}
