// README: Notification service — fire-and-forget delivery, owner-scoped reads.
package notify

import (
	"context"
	"errors"
	"log/slog"

	"foodbridge/internal/modules/donation"
	"foodbridge/internal/types"
)

var ErrNotFound = errors.New("Notification not found")

const latestLimit = 20

type Service struct {
	store  *Store
	logger *slog.Logger
}

func NewService(store *Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Push persists a notification for the donation lifecycle. Failures are
// logged and swallowed: notification delivery never fails a transition.
func (s *Service) Push(ctx context.Context, n donation.Notice) {
	err := s.store.Create(ctx, &Notification{
		UserID:  n.UserID,
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
		Meta:    Meta{DonationID: n.DonationID, Status: n.Status},
	})
	if err != nil {
		s.logger.Warn("notification delivery failed", "user", n.UserID, "title", n.Title, "error", err)
	}
}

func (s *Service) Latest(ctx context.Context, userID types.ID) ([]*Notification, error) {
	return s.store.Latest(ctx, userID, latestLimit)
}

func (s *Service) MarkRead(ctx context.Context, userID, id types.ID) error {
	ok, err := s.store.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID types.ID) (int64, error) {
	return s.store.MarkAllRead(ctx, userID)
}
