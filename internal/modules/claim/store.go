// README: Postgres persistence for NGO claims.
package claim

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
	ErrNotFound  = errors.New("Claim not found")
	ErrDuplicate = errors.New("You have already claimed this donation")
)

const uniqueViolation = "23505"

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create inserts a pending claim. The unique index on (donation_id, ngo_id)
// turns a repeat claim into ErrDuplicate without a prior read.
func (s *Store) Create(ctx context.Context, donationID, ngoID types.ID) (*Claim, error) {
	now := time.Now()
	c := &Claim{
		ID:         types.ID(uuid.NewString()),
		DonationID: donationID,
		NgoID:      ngoID,
		Status:     StatusPending,
		ClaimedAt:  now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO claims (id, donation_id, ngo_id, status, claimed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.DonationID, c.NgoID, c.Status, c.ClaimedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a claim row outright, freeing the (donation, ngo) pair.
// Used to compensate a claim whose donation transition lost the race.
func (s *Store) Delete(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `DELETE FROM claims WHERE id = $1`, id)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Claim, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, donation_id, ngo_id, status, processed_by, notes, claimed_at, created_at, updated_at
		FROM claims WHERE id = $1`, id)
	return scanClaim(row)
}

// SetStatus moves a pending claim to approved or rejected, stamping the
// processing admin. Returns false when the claim was already processed.
func (s *Store) SetStatus(ctx context.Context, id types.ID, status Status, processedBy types.ID, notes string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE claims
		SET status = $1, processed_by = $2, notes = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5`,
		status, processedBy, notes, id, StatusPending,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// DonationIDs returns the donations an NGO has claimed, newest first.
func (s *Store) DonationIDs(ctx context.Context, ngoID types.ID) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
		SELECT donation_id FROM claims WHERE ngo_id = $1 ORDER BY created_at DESC`, ngoID)
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

// ListByNgo returns an NGO's claims, newest first.
func (s *Store) ListByNgo(ctx context.Context, ngoID types.ID) ([]*Claim, error) {
	return s.list(ctx, `
		SELECT id, donation_id, ngo_id, status, processed_by, notes, claimed_at, created_at, updated_at
		FROM claims WHERE ngo_id = $1 ORDER BY created_at DESC`, ngoID)
}

// ListPending returns unprocessed claims for the admin review queue.
func (s *Store) ListPending(ctx context.Context) ([]*Claim, error) {
	return s.list(ctx, `
		SELECT id, donation_id, ngo_id, status, processed_by, notes, claimed_at, created_at, updated_at
		FROM claims WHERE status = $1 ORDER BY created_at ASC`, StatusPending)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*Claim, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []*Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

func scanClaim(row pgx.Row) (*Claim, error) {
	var c Claim
	var processedBy *string
	var notes *string
	err := row.Scan(&c.ID, &c.DonationID, &c.NgoID, &c.Status, &processedBy, &notes, &c.ClaimedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if processedBy != nil {
		id := types.ID(*processedBy)
		c.ProcessedBy = &id
	}
	if notes != nil {
		c.Notes = *notes
	}
	return &c, nil
}
