// README: Postgres persistence for notifications.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodbridge/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = types.ID(uuid.NewString())
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	meta, err := json.Marshal(n.Meta)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO notifications (id, user_id, title, message, type, is_read, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.IsRead, meta, n.CreatedAt,
	)
	return err
}

// Latest returns a user's most recent notifications, capped.
func (s *Store) Latest(ctx context.Context, userID types.ID, limit int) ([]*Notification, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, message, type, is_read, meta, created_at
		FROM notifications WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Notification{}
	for rows.Next() {
		var n Notification
		var meta []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &meta, &n.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &n.Meta); err != nil {
				return nil, err
			}
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// MarkRead flags one of the user's notifications as read. Scoped to the
// owner so users cannot touch each other's notifications.
func (s *Store) MarkRead(ctx context.Context, userID, id types.ID) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) MarkAllRead(ctx context.Context, userID types.ID) (int64, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
