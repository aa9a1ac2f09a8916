package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/creekriver/campground/internal/domain"
)

// ReservationRepo defines the persistence operations for Reservations.
//
// Create relies on the reservations_no_overlap exclusion constraint as the
// concurrency backstop: when two overlapping inserts race, the storage engine
// rejects the loser and Create reports it as domain.ErrCampsiteUnavailable —
// the same outcome the availability check would have produced.
type ReservationRepo interface {
	// Create inserts a new reservation and returns the persisted record
	// (with DB-generated id and created_at populated).
	// Returns domain.ErrCampsiteUnavailable (as *domain.UnavailableError) when
	// the date range overlaps an existing reservation on the same campsite,
	// and domain.ErrNotFound when the campsite or user row is missing.
	Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error)

	// GetByID retrieves a single reservation by its UUID primary key.
	// Returns domain.ErrNotFound if no reservation with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error)

	// ListActiveForCampsite returns the active (non-cancelled) reservations
	// for one campsite ordered by checkin ascending, id ascending. This is the
	// input set for the availability check.
	ListActiveForCampsite(ctx context.Context, campsiteID uuid.UUID) ([]domain.Reservation, error)

	// ListDetailed returns reservations joined with campsite, campsite type,
	// and user profile data, ordered by checkin ascending with id as the
	// stable secondary order. The zero filter returns everything.
	ListDetailed(ctx context.Context, filter domain.ReservationFilter) ([]domain.ReservationDetail, error)

	// Delete cancels a reservation by removing its row, which takes it out of
	// all future availability checks. Returns domain.ErrNotFound if absent —
	// including when it was already cancelled.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountForCampsite returns the number of active reservations referencing
	// the given campsite. Used by the campsite-deletion guard.
	CountForCampsite(ctx context.Context, campsiteID uuid.UUID) (int64, error)
}

// pgReservationRepo is the Postgres implementation of ReservationRepo.
type pgReservationRepo struct {
	db db
}

// NewReservationRepo constructs a ReservationRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewReservationRepo(db db) ReservationRepo {
	return &pgReservationRepo{db: db}
}

func (r *pgReservationRepo) Create(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	const q = `
		INSERT INTO reservations (campsite_id, user_profile_id, checkin, checkout, total_cost_cents)
		VALUES (@campsite_id, @user_profile_id, @checkin, @checkout, @total_cost_cents)
		RETURNING id, campsite_id, user_profile_id, checkin, checkout, total_cost_cents, created_at`

	args := pgx.NamedArgs{
		"campsite_id":      res.CampsiteID,
		"user_profile_id":  res.UserProfileID,
		"checkin":          res.Checkin,
		"checkout":         res.Checkout,
		"total_cost_cents": int64(res.TotalCost),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanReservation(row)
	if err != nil {
		if pgErrCode(err, pgExclusionViolation) {
			// Lost a race against a concurrent conflicting commit. The
			// conflicting reservation id is unknown at this point.
			return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", &domain.UnavailableError{})
		}
		if pgErrCode(err, pgForeignKeyViolation) {
			return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Reservation, error) {
	const q = `
		SELECT id, campsite_id, user_profile_id, checkin, checkout, total_cost_cents, created_at
		FROM reservations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanReservation(row)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("repo.ReservationRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgReservationRepo) ListActiveForCampsite(ctx context.Context, campsiteID uuid.UUID) ([]domain.Reservation, error) {
	const q = `
		SELECT id, campsite_id, user_profile_id, checkin, checkout, total_cost_cents, created_at
		FROM reservations
		WHERE campsite_id = @campsite_id
		ORDER BY checkin, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"campsite_id": campsiteID})
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListActiveForCampsite: %w", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListActiveForCampsite: scan: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListActiveForCampsite: rows: %w", err)
	}

	return reservations, nil
}

func (r *pgReservationRepo) ListDetailed(ctx context.Context, filter domain.ReservationFilter) ([]domain.ReservationDetail, error) {
	q := `
		SELECT r.id, r.campsite_id, r.user_profile_id, r.checkin, r.checkout,
		       r.total_cost_cents, r.created_at,
		       c.nickname, t.name,
		       u.first_name, u.last_name, u.email
		FROM reservations r
		JOIN campsites c      ON c.id = r.campsite_id
		JOIN campsite_types t ON t.id = c.campsite_type_id
		JOIN user_profiles u  ON u.id = r.user_profile_id`

	args := pgx.NamedArgs{}
	var conds []string
	if filter.CampsiteID != uuid.Nil {
		conds = append(conds, "r.campsite_id = @campsite_id")
		args["campsite_id"] = filter.CampsiteID
	}
	if filter.UserProfileID != uuid.Nil {
		conds = append(conds, "r.user_profile_id = @user_profile_id")
		args["user_profile_id"] = filter.UserProfileID
	}
	if len(conds) > 0 {
		q += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	q += "\n\t\tORDER BY r.checkin, r.id"

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListDetailed: %w", err)
	}
	defer rows.Close()

	var details []domain.ReservationDetail
	for rows.Next() {
		d, err := scanReservationDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ReservationRepo.ListDetailed: scan: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ReservationRepo.ListDetailed: rows: %w", err)
	}

	return details, nil
}

func (r *pgReservationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReservationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgReservationRepo) CountForCampsite(ctx context.Context, campsiteID uuid.UUID) (int64, error) {
	const q = `SELECT count(*) FROM reservations WHERE campsite_id = @campsite_id`

	var n int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"campsite_id": campsiteID}).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.ReservationRepo.CountForCampsite: %w", err)
	}
	return n, nil
}

// scanReservation maps a single database row into a domain.Reservation.
// It handles the UUID and DATE column conversions; dates come back as
// UTC-midnight time.Time values.
func scanReservation(s scanner) (domain.Reservation, error) {
	var (
		res      domain.Reservation
		id       pgtype.UUID
		siteID   pgtype.UUID
		userID   pgtype.UUID
		checkin  pgtype.Date
		checkout pgtype.Date
		cents    int64
	)

	err := s.Scan(&id, &siteID, &userID, &checkin, &checkout, &cents, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Reservation{}, domain.ErrNotFound
		}
		return domain.Reservation{}, err
	}

	res.ID = uuid.UUID(id.Bytes)
	res.CampsiteID = uuid.UUID(siteID.Bytes)
	res.UserProfileID = uuid.UUID(userID.Bytes)
	res.Checkin = checkin.Time
	res.Checkout = checkout.Time
	res.TotalCost = domain.Cents(cents)
	return res, nil
}

// scanReservationDetail maps a joined row into a domain.ReservationDetail.
func scanReservationDetail(s scanner) (domain.ReservationDetail, error) {
	var (
		d        domain.ReservationDetail
		id       pgtype.UUID
		siteID   pgtype.UUID
		userID   pgtype.UUID
		checkin  pgtype.Date
		checkout pgtype.Date
		cents    int64
	)

	err := s.Scan(&id, &siteID, &userID, &checkin, &checkout, &cents, &d.CreatedAt,
		&d.CampsiteNickname, &d.CampsiteTypeName,
		&d.UserFirstName, &d.UserLastName, &d.UserEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ReservationDetail{}, domain.ErrNotFound
		}
		return domain.ReservationDetail{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.CampsiteID = uuid.UUID(siteID.Bytes)
	d.UserProfileID = uuid.UUID(userID.Bytes)
	d.Checkin = checkin.Time
	d.Checkout = checkout.Time
	d.TotalCost = domain.Cents(cents)
	return d, nil
}
