// README: Postgres persistence for volunteer pickups.
package pickup

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodbridge/internal/types"
)

var (
	ErrNotFound = errors.New("Pickup not found")
	ErrTaken    = errors.New("Donation is already assigned to another volunteer")
)

const uniqueViolation = "23505"

const pickupColumns = `id, donation_id, donor_id, volunteer_id, ngo_id, assigned_by,
	status, pickup_time, completion_time, notes, created_at, updated_at`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create inserts an assigned pickup. The partial unique index over
// non-cancelled rows turns a concurrent double-assign into ErrTaken.
func (s *Store) Create(ctx context.Context, p *Pickup) error {
	if p.ID == "" {
		p.ID = types.ID(uuid.NewString())
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.db.Exec(ctx, `
		INSERT INTO pickups (id, donation_id, donor_id, volunteer_id, ngo_id, assigned_by,
			status, pickup_time, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.DonationID, p.DonorID, p.VolunteerID, idOrNil(p.NgoID), idOrNil(p.AssignedBy),
		p.Status, p.PickupTime, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrTaken
		}
		return err
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Pickup, error) {
	row := s.db.QueryRow(ctx, `SELECT `+pickupColumns+` FROM pickups WHERE id = $1`, id)
	return scanPickup(row)
}

// ActiveByDonation returns the non-cancelled pickup for a donation.
func (s *Store) ActiveByDonation(ctx context.Context, donationID types.ID) (*Pickup, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+pickupColumns+`
		FROM pickups WHERE donation_id = $1 AND status <> $2`, donationID, StatusCancelled)
	return scanPickup(row)
}

// SetStatus updates a pickup's status; completion also stamps the
// completion time. Returns false when the pickup is already terminal.
func (s *Store) SetStatus(ctx context.Context, id types.ID, status Status, notes string) (bool, error) {
	var completion *time.Time
	if status == StatusCompleted {
		now := time.Now()
		completion = &now
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE pickups
		SET status = $1,
			completion_time = COALESCE($2, completion_time),
			notes = CASE WHEN $3 <> '' THEN $3 ELSE notes END,
			updated_at = NOW()
		WHERE id = $4 AND status NOT IN ($5, $6)`,
		status, completion, notes, id, StatusCompleted, StatusCancelled,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListByVolunteer returns a volunteer's pickups, newest first.
func (s *Store) ListByVolunteer(ctx context.Context, volunteerID types.ID) ([]*Pickup, error) {
	return s.list(ctx, `
		SELECT `+pickupColumns+`
		FROM pickups WHERE volunteer_id = $1 ORDER BY created_at DESC`, volunteerID)
}

func (s *Store) ListAll(ctx context.Context) ([]*Pickup, error) {
	return s.list(ctx, `SELECT `+pickupColumns+` FROM pickups ORDER BY created_at DESC`)
}

// DonationIDsByVolunteer returns the donations a volunteer has pickups for.
func (s *Store) DonationIDsByVolunteer(ctx context.Context, volunteerID types.ID) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
		SELECT donation_id FROM pickups WHERE volunteer_id = $1 ORDER BY created_at DESC`, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []types.ID{}
	for rows.Next() {
		var id types.ID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*Pickup, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pickups := []*Pickup{}
	for rows.Next() {
		p, err := scanPickup(rows)
		if err != nil {
			return nil, err
		}
		pickups = append(pickups, p)
	}
	return pickups, rows.Err()
}

func scanPickup(row pgx.Row) (*Pickup, error) {
	var p Pickup
	var ngoID, assignedBy, notes *string
	err := row.Scan(&p.ID, &p.DonationID, &p.DonorID, &p.VolunteerID, &ngoID, &assignedBy,
		&p.Status, &p.PickupTime, &p.CompletionTime, &notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ngoID != nil {
		id := types.ID(*ngoID)
		p.NgoID = &id
	}
	if assignedBy != nil {
		id := types.ID(*assignedBy)
		p.AssignedBy = &id
	}
	if notes != nil {
		p.Notes = *notes
	}
	return &p, nil
}

func idOrNil(id *types.ID) any {
	if id == nil {
		return nil
	}
	return *id
}
