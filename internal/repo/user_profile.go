package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/creekriver/campground/internal/domain"
)

// UserProfileRepo defines the persistence operations for UserProfiles.
type UserProfileRepo interface {
	// Create inserts a new user profile and returns the persisted record.
	Create(ctx context.Context, u domain.UserProfile) (domain.UserProfile, error)

	// GetByID retrieves a single user profile by its UUID primary key.
	// Returns domain.ErrNotFound if no profile with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error)

	// List returns all user profiles ordered by last name, first name.
	List(ctx context.Context) ([]domain.UserProfile, error)
}

// pgUserProfileRepo is the Postgres implementation of UserProfileRepo.
type pgUserProfileRepo struct {
	db db
}

// NewUserProfileRepo constructs a UserProfileRepo backed by the provided db.
func NewUserProfileRepo(db db) UserProfileRepo {
	return &pgUserProfileRepo{db: db}
}

func (r *pgUserProfileRepo) Create(ctx context.Context, u domain.UserProfile) (domain.UserProfile, error) {
	const q = `
		INSERT INTO user_profiles (first_name, last_name, email)
		VALUES (@first_name, @last_name, @email)
		RETURNING id, first_name, last_name, email`

	args := pgx.NamedArgs{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanUserProfile(row)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("repo.UserProfileRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgUserProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.UserProfile, error) {
	const q = `
		SELECT id, first_name, last_name, email
		FROM user_profiles
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanUserProfile(row)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("repo.UserProfileRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserProfileRepo) List(ctx context.Context) ([]domain.UserProfile, error) {
	const q = `
		SELECT id, first_name, last_name, email
		FROM user_profiles
		ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UserProfileRepo.List: %w", err)
	}
	defer rows.Close()

	var users []domain.UserProfile
	for rows.Next() {
		u, err := scanUserProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UserProfileRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UserProfileRepo.List: rows: %w", err)
	}

	return users, nil
}

// scanUserProfile maps a single database row into a domain.UserProfile.
func scanUserProfile(s scanner) (domain.UserProfile, error) {
	var (
		u  domain.UserProfile
		id pgtype.UUID
	)

	err := s.Scan(&id, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserProfile{}, domain.ErrNotFound
		}
		return domain.UserProfile{}, err
	}

	u.ID = uuid.UUID(id.Bytes)
	return u, nil
}
