// README: Donation store backed by PostgreSQL; nested document fields live in JSONB columns.
package donation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodbridge/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const donationColumns = `
	id, donor_id, claimed_by, status, status_version, priority_score,
	food_items, pickup_address, pickup_time, pickup_window, food_safety,
	status_history, estimated_servings, notes, cancellation_reason,
	cancelled_by, created_at, updated_at`

func (s *Store) Create(ctx context.Context, d *Donation) error {
	foodItems, err := json.Marshal(d.FoodItems)
	if err != nil {
		return err
	}
	address, err := json.Marshal(d.PickupAddress)
	if err != nil {
		return err
	}
	history, err := json.Marshal(d.StatusHistory)
	if err != nil {
		return err
	}
	window, err := marshalOptional(d.PickupWindow)
	if err != nil {
		return err
	}
	safety, err := marshalOptional(d.FoodSafety)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO donations (
			id, donor_id, claimed_by, status, status_version, priority_score,
			food_items, pickup_address, pickup_time, pickup_window, food_safety,
			status_history, estimated_servings, notes, cancellation_reason,
			cancelled_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18
		)`,
		string(d.ID),
		string(d.DonorID),
		idPtr(d.ClaimedBy),
		string(d.Status),
		d.StatusVersion,
		d.PriorityScore,
		foodItems,
		address,
		d.PickupTime,
		window,
		safety,
		history,
		d.Impact.EstimatedServings,
		d.Notes,
		d.CancellationReason,
		idPtr(d.CancelledBy),
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Donation, error) {
	row := s.db.QueryRow(ctx, `SELECT `+donationColumns+` FROM donations WHERE id = $1`, string(id))
	d, err := scanDonation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

// TransitionUpdate is the write half of a status transition. History already
// includes the new entry; the whole log is rewritten under the version guard.
type TransitionUpdate struct {
	To                 Status
	PriorityScore      int
	History            []StatusEntry
	CancellationReason *string
	CancelledBy        *types.ID
	ClaimedBy          *types.ID
}

// ApplyTransition performs the compare-and-swap write for a transition: the
// update only lands if status and version still match what the caller read.
// A false return means a concurrent writer won.
func (s *Store) ApplyTransition(ctx context.Context, id types.ID, from Status, version int, upd TransitionUpdate) (bool, error) {
	history, err := json.Marshal(upd.History)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE donations
		SET status = $1,
		    status_version = status_version + 1,
		    priority_score = $2,
		    status_history = $3,
		    cancellation_reason = COALESCE($4, cancellation_reason),
		    cancelled_by = COALESCE($5, cancelled_by),
		    claimed_by = COALESCE($6, claimed_by),
		    updated_at = NOW()
		WHERE id = $7 AND status = $8 AND status_version = $9`,
		string(upd.To),
		upd.PriorityScore,
		history,
		upd.CancellationReason,
		idPtr(upd.CancelledBy),
		idPtr(upd.ClaimedBy),
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Filter scopes list and stats queries to a role's visible donations.
// Zero value means no scoping (admin).
type Filter struct {
	DonorID *types.ID
	IDs     []types.ID
}

func (f Filter) clause(args *[]any) string {
	if f.DonorID != nil {
		*args = append(*args, string(*f.DonorID))
		return fmt.Sprintf("donor_id = $%d", len(*args))
	}
	if f.IDs != nil {
		ids := make([]string, len(f.IDs))
		for i, id := range f.IDs {
			ids[i] = string(id)
		}
		*args = append(*args, ids)
		return fmt.Sprintf("id = ANY($%d)", len(*args))
	}
	return ""
}

func (s *Store) List(ctx context.Context, f Filter) ([]*Donation, error) {
	args := []any{}
	query := `SELECT ` + donationColumns + ` FROM donations`
	if cond := f.clause(&args); cond != "" {
		query += ` WHERE ` + cond
	}
	query += ` ORDER BY created_at DESC`
	return s.queryDonations(ctx, query, args...)
}

// ListPublicMap returns pending and claimed donations ordered for the public
// map: highest priority first, then soonest pickup, then newest.
func (s *Store) ListPublicMap(ctx context.Context, limit int) ([]*Donation, error) {
	return s.queryDonations(ctx, `
		SELECT `+donationColumns+`
		FROM donations
		WHERE status IN ('pending', 'claimed')
		ORDER BY priority_score DESC, pickup_time ASC, created_at DESC
		LIMIT $1`, limit)
}

// ListAvailable returns pending, unclaimed donations. byPriority selects the
// volunteer ordering (priority first); NGOs see soonest pickup first.
func (s *Store) ListAvailable(ctx context.Context, byPriority bool) ([]*Donation, error) {
	order := `pickup_time ASC, created_at ASC`
	if byPriority {
		order = `priority_score DESC, pickup_time ASC, created_at ASC`
	}
	return s.queryDonations(ctx, `
		SELECT `+donationColumns+`
		FROM donations
		WHERE status = 'pending' AND claimed_by IS NULL
		ORDER BY `+order)
}

// ListPendingByIDs returns the subset of ids that are still pending. Order
// is unspecified; callers re-sort.
func (s *Store) ListPendingByIDs(ctx context.Context, ids []types.ID) ([]*Donation, error) {
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = string(id)
	}
	return s.queryDonations(ctx, `
		SELECT `+donationColumns+`
		FROM donations
		WHERE id = ANY($1) AND status = 'pending'`, raw)
}

func (s *Store) CountCreatedBetween(ctx context.Context, donor types.ID, start, end time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM donations
		WHERE donor_id = $1 AND created_at >= $2 AND created_at < $3`,
		string(donor), start, end,
	).Scan(&n)
	return n, err
}

func (s *Store) CountPendingByDonor(ctx context.Context, donor types.ID) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM donations
		WHERE donor_id = $1 AND status = 'pending'`, string(donor),
	).Scan(&n)
	return n, err
}

func (s *Store) LastCreatedAt(ctx context.Context, donor types.ID) (*time.Time, error) {
	var t time.Time
	err := s.db.QueryRow(ctx, `
		SELECT created_at FROM donations
		WHERE donor_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, string(donor),
	).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ExpireOverdue bulk-transitions overdue pending donations to expired in a
// single statement. Deliberately does not touch status_history (see the
// sweeper notes); returns the ids of the rows expired so callers can prune
// derived indexes.
func (s *Store) ExpireOverdue(ctx context.Context, now time.Time) ([]types.ID, error) {
	rows, err := s.db.Query(ctx, `
		UPDATE donations
		SET status = 'expired',
		    priority_score = 0,
		    updated_at = NOW()
		WHERE pickup_time < $1 AND status = 'pending'
		RETURNING id`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []types.ID
	for rows.Next() {
		var id types.ID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// OverviewStats are the role-scoped totals behind /stats/overview. Servings
// and communities count only closed donations.
type OverviewStats struct {
	TotalDonations   int `json:"totalDonations"`
	TotalServings    int `json:"totalServings"`
	CommunitiesServed int `json:"communitiesServed"`
}

func (s *Store) Overview(ctx context.Context, f Filter) (OverviewStats, error) {
	var stats OverviewStats

	args := []any{}
	where := ""
	if cond := f.clause(&args); cond != "" {
		where = ` WHERE ` + cond
	}
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM donations`+where, args...).Scan(&stats.TotalDonations); err != nil {
		return stats, err
	}

	args = []any{}
	closed := `status = 'closed'`
	if cond := f.clause(&args); cond != "" {
		closed += ` AND ` + cond
	}
	if err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(estimated_servings), 0)
		FROM donations WHERE `+closed, args...,
	).Scan(&stats.TotalServings); err != nil {
		return stats, err
	}

	if err := s.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT LOWER(pickup_address->>'city'))
		FROM donations
		WHERE `+closed+` AND COALESCE(pickup_address->>'city', '') <> ''`, args...,
	).Scan(&stats.CommunitiesServed); err != nil {
		return stats, err
	}

	return stats, nil
}

type DailyCount struct {
	Day   string `json:"_id"`
	Count int    `json:"count"`
}

// WeeklyClosed returns per-day counts of closed donations created since the
// given cutoff, oldest day first.
func (s *Store) WeeklyClosed(ctx context.Context, f Filter, since time.Time) ([]DailyCount, error) {
	args := []any{since}
	cond := `status = 'closed' AND created_at >= $1`
	if extra := f.clause(&args); extra != "" {
		cond += ` AND ` + extra
	}
	rows, err := s.db.Query(ctx, `
		SELECT TO_CHAR(created_at, 'YYYY-MM-DD') AS day, COUNT(*)
		FROM donations
		WHERE `+cond+`
		GROUP BY day
		ORDER BY day ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (s *Store) CountsByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := s.db.Query(ctx, `SELECT status, COUNT(*) FROM donations GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[Status]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[Status(status)] = n
	}
	return counts, rows.Err()
}

func (s *Store) queryDonations(ctx context.Context, query string, args ...any) ([]*Donation, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func scanDonation(row pgx.Row) (*Donation, error) {
	var d Donation
	var claimedBy, cancelledBy sql.NullString
	var foodItems, address, history []byte
	var window, safety []byte

	err := row.Scan(
		&d.ID, &d.DonorID, &claimedBy, &d.Status, &d.StatusVersion, &d.PriorityScore,
		&foodItems, &address, &d.PickupTime, &window, &safety,
		&history, &d.Impact.EstimatedServings, &d.Notes, &d.CancellationReason,
		&cancelledBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(foodItems, &d.FoodItems); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(address, &d.PickupAddress); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(history, &d.StatusHistory); err != nil {
		return nil, err
	}
	if len(window) > 0 {
		if err := json.Unmarshal(window, &d.PickupWindow); err != nil {
			return nil, err
		}
	}
	if len(safety) > 0 {
		if err := json.Unmarshal(safety, &d.FoodSafety); err != nil {
			return nil, err
		}
	}
	if claimedBy.Valid {
		v := types.ID(claimedBy.String)
		d.ClaimedBy = &v
	}
	if cancelledBy.Valid {
		v := types.ID(cancelledBy.String)
		d.CancelledBy = &v
	}
	return &d, nil
}

func marshalOptional(v any) ([]byte, error) {
	switch t := v.(type) {
	case *PickupWindow:
		if t == nil {
			return nil, nil
		}
	case *FoodSafety:
		if t == nil {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
