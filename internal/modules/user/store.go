// README: Postgres persistence for user profiles.
package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodbridge/internal/types"
)

var ErrNotFound = errors.New("User account not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, role, status, organization,
			total_donations, meals_provided, is_verified, created_at, updated_at
		FROM users WHERE id = $1`, id)

	var p Profile
	var organization *string
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Role, &p.Status, &organization,
		&p.DonorInfo.TotalDonations, &p.DonorInfo.MealsProvided, &p.DonorInfo.IsVerified,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if organization != nil {
		p.Organization = *organization
	}
	p.DonorInfo.HasOrganization = p.Organization != ""
	return &p, nil
}

// RecordDonation bumps the donor's lifetime counters after a successful
// creation.
func (s *Store) RecordDonation(ctx context.Context, id types.ID, servings int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users
		SET total_donations = total_donations + 1,
			meals_provided = meals_provided + $1,
			updated_at = NOW()
		WHERE id = $2`, servings, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetVerified toggles the admin verification flag that gates the higher
// donor tiers.
func (s *Store) SetVerified(ctx context.Context, id types.ID, verified bool) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE users SET is_verified = $1, updated_at = NOW() WHERE id = $2`, verified, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByRole returns platform-wide user counts for the admin dashboard.
func (s *Store) CountByRole(ctx context.Context) (map[types.Role]int, error) {
	rows, err := s.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[types.Role]int{}
	for rows.Next() {
		var role types.Role
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}
	return counts, rows.Err()
}
