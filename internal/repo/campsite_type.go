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

// CampsiteTypeRepo defines the persistence operations for CampsiteTypes.
// Types are immutable reference data: Create exists for the startup seed,
// there is no Update or Delete.
type CampsiteTypeRepo interface {
	// Create inserts a new campsite type and returns the persisted record.
	Create(ctx context.Context, t domain.CampsiteType) (domain.CampsiteType, error)

	// GetByID retrieves a single campsite type by its UUID primary key.
	// Returns domain.ErrNotFound if no type with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.CampsiteType, error)

	// List returns all campsite types ordered by name.
	List(ctx context.Context) ([]domain.CampsiteType, error)
}

// pgCampsiteTypeRepo is the Postgres implementation of CampsiteTypeRepo.
type pgCampsiteTypeRepo struct {
	db db
}

// NewCampsiteTypeRepo constructs a CampsiteTypeRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCampsiteTypeRepo(db db) CampsiteTypeRepo {
	return &pgCampsiteTypeRepo{db: db}
}

func (r *pgCampsiteTypeRepo) Create(ctx context.Context, t domain.CampsiteType) (domain.CampsiteType, error) {
	const q = `
		INSERT INTO campsite_types (name, fee_per_night_cents, max_reservation_days)
		VALUES (@name, @fee_per_night_cents, @max_reservation_days)
		RETURNING id, name, fee_per_night_cents, max_reservation_days`

	args := pgx.NamedArgs{
		"name":                 t.Name,
		"fee_per_night_cents":  int64(t.FeePerNight),
		"max_reservation_days": t.MaxReservationDays,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCampsiteType(row)
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("repo.CampsiteTypeRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.CampsiteType, error) {
	const q = `
		SELECT id, name, fee_per_night_cents, max_reservation_days
		FROM campsite_types
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCampsiteType(row)
	if err != nil {
		return domain.CampsiteType{}, fmt.Errorf("repo.CampsiteTypeRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgCampsiteTypeRepo) List(ctx context.Context) ([]domain.CampsiteType, error) {
	const q = `
		SELECT id, name, fee_per_night_cents, max_reservation_days
		FROM campsite_types
		ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CampsiteTypeRepo.List: %w", err)
	}
	defer rows.Close()

	var types []domain.CampsiteType
	for rows.Next() {
		t, err := scanCampsiteType(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CampsiteTypeRepo.List: scan: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CampsiteTypeRepo.List: rows: %w", err)
	}

	return types, nil
}

// scanCampsiteType maps a single database row into a domain.CampsiteType.
func scanCampsiteType(s scanner) (domain.CampsiteType, error) {
	var (
		t        domain.CampsiteType
		id       pgtype.UUID
		feeCents int64
	)

	err := s.Scan(&id, &t.Name, &feeCents, &t.MaxReservationDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CampsiteType{}, domain.ErrNotFound
		}
		return domain.CampsiteType{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.FeePerNight = domain.Cents(feeCents)
	return t, nil
}
