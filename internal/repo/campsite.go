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

// CampsiteRepo defines the persistence operations for Campsites.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CampsiteRepo interface {
	// Create inserts a new campsite and returns the persisted record
	// (with DB-generated id populated).
	Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error)

	// GetByID retrieves a single campsite by its UUID primary key.
	// Returns domain.ErrNotFound if no campsite with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Campsite, error)

	// List returns all campsites ordered by nickname.
	List(ctx context.Context) ([]domain.Campsite, error)

	// Update overwrites the mutable fields of an existing campsite and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error)

	// Delete removes a campsite by ID.
	// Returns domain.ErrNotFound if it does not exist, and
	// domain.ErrCampsiteInUse if reservations still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgCampsiteRepo is the Postgres implementation of CampsiteRepo.
type pgCampsiteRepo struct {
	db db
}

// NewCampsiteRepo constructs a CampsiteRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCampsiteRepo(db db) CampsiteRepo {
	return &pgCampsiteRepo{db: db}
}

func (r *pgCampsiteRepo) Create(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	const q = `
		INSERT INTO campsites (campsite_type_id, nickname, image_url)
		VALUES (@campsite_type_id, @nickname, @image_url)
		RETURNING id, campsite_type_id, nickname, image_url`

	args := pgx.NamedArgs{
		"campsite_type_id": c.CampsiteTypeID,
		"nickname":         c.Nickname,
		"image_url":        c.ImageURL,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCampsite(row)
	if err != nil {
		if pgErrCode(err, pgForeignKeyViolation) {
			// campsite_type_id does not reference an existing type
			return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Campsite, error) {
	const q = `
		SELECT id, campsite_type_id, nickname, image_url
		FROM campsites
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCampsite(row)
	if err != nil {
		return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteRepo) List(ctx context.Context) ([]domain.Campsite, error) {
	const q = `
		SELECT id, campsite_type_id, nickname, image_url
		FROM campsites
		ORDER BY nickname`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CampsiteRepo.List: %w", err)
	}
	defer rows.Close()

	var sites []domain.Campsite
	for rows.Next() {
		c, err := scanCampsite(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CampsiteRepo.List: scan: %w", err)
		}
		sites = append(sites, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CampsiteRepo.List: rows: %w", err)
	}

	return sites, nil
}

func (r *pgCampsiteRepo) Update(ctx context.Context, c domain.Campsite) (domain.Campsite, error) {
	const q = `
		UPDATE campsites
		SET campsite_type_id = @campsite_type_id,
		    nickname         = @nickname,
		    image_url        = @image_url
		WHERE id = @id
		RETURNING id, campsite_type_id, nickname, image_url`

	args := pgx.NamedArgs{
		"id":               c.ID,
		"campsite_type_id": c.CampsiteTypeID,
		"nickname":         c.Nickname,
		"image_url":        c.ImageURL,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCampsite(row)
	if err != nil {
		if pgErrCode(err, pgForeignKeyViolation) {
			return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.Update: %w", domain.ErrNotFound)
		}
		return domain.Campsite{}, fmt.Errorf("repo.CampsiteRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM campsites WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		if pgErrCode(err, pgForeignKeyViolation) {
			// ON DELETE RESTRICT: reservations still reference this campsite.
			return fmt.Errorf("repo.CampsiteRepo.Delete: %w", domain.ErrCampsiteInUse)
		}
		return fmt.Errorf("repo.CampsiteRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CampsiteRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanCampsite maps a single database row into a domain.Campsite.
func scanCampsite(s scanner) (domain.Campsite, error) {
	var (
		c      domain.Campsite
		id     pgtype.UUID
		typeID pgtype.UUID
	)

	err := s.Scan(&id, &typeID, &c.Nickname, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Campsite{}, domain.ErrNotFound
		}
		return domain.Campsite{}, err
	}

	c.ID = uuid.UUID(id.Bytes)
	c.CampsiteTypeID = uuid.UUID(typeID.Bytes)
	return c, nil
}
