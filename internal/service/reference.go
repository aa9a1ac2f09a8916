package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creekriver/campground/internal/domain"
	"github.com/creekriver/campground/internal/repo"
)

// CampsiteTypeService exposes read access to the campsite type reference
// data. Types are seeded at startup and immutable afterwards, so there are
// no mutating operations here.
type CampsiteTypeService struct {
	types repo.CampsiteTypeRepo
}

// NewCampsiteTypeService constructs a CampsiteTypeService backed by the provided repo.
func NewCampsiteTypeService(types repo.CampsiteTypeRepo) *CampsiteTypeService {
	return &CampsiteTypeService{types: types}
}

// GetByID returns a single campsite type by ID.
func (s *CampsiteTypeService) GetByID(ctx context.Context, id uuid.UUID) (domain.CampsiteType, error) {
	t, err := s.types.GetByID(ctx, id)
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("service.CampsiteTypeService.GetByID: %w", err)
	}
	return t, nil
}

// List returns all campsite types ordered by name.
func (s *CampsiteTypeService) List(ctx context.Context) ([]domain.CampsiteType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CampsiteTypeService.List: %w", err)
	}
	if types == nil {
		return []domain.CampsiteType{}, nil
	}
	return types, nil
}

// UserProfileService exposes read access to user profiles.
type UserProfileService struct {
	users repo.UserProfileRepo
}

// NewUserProfileService constructs a UserProfileService backed by the provided repo.
func NewUserProfileService(users repo.UserProfileRepo) *UserProfileService {
	return &UserProfileService{users: users}
}

// GetByID returns a single user profile by ID.
func (s *UserProfileService) GetByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("service.UserProfileService.GetByID: %w", err)
	}
	return u, nil
}

// List returns all user profiles.
func (s *UserProfileService) List(ctx context.Context) ([]domain.UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserProfileService.List: %w", err)
	}
	if users == nil {
		return []domain.UserProfile{}, nil
	}
	return users, nil
}
