// README: Background sweeper that expires overdue pending donations.
package donation

import (
	"context"
	"time"
)

// RunAutoExpire periodically expires pending donations whose pickup time has
// passed. A short warmup sweep runs shortly after startup so a restart does
// not leave stale donations visible for a full interval. Blocks until ctx is
// cancelled; run it in its own goroutine.
func (s *Service) RunAutoExpire(ctx context.Context, interval, warmup time.Duration) {
	warmupTimer := time.NewTimer(warmup)
	defer warmupTimer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-warmupTimer.C:
		s.sweepOnce(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

// sweepOnce expires everything overdue in one bulk update. Expiry skips the
// per-donation history append on purpose: the sweep touches many rows and
// the expired state is self-describing.
func (s *Service) sweepOnce(ctx context.Context) {
	ids, err := s.store.ExpireOverdue(ctx, time.Now())
	if err != nil {
		s.logger.Error("auto-expire sweep failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	// Expired donations left pending, so they still sit in the geo index;
	// prune them or nearby queries fill up with dead entries.
	if s.geoIndex != nil {
		for _, id := range ids {
			if err := s.geoIndex.Remove(ctx, id); err != nil {
				s.logger.Error("geo index prune failed", "donation", id, "error", err)
			}
		}
	}
	if s.metrics != nil {
		s.metrics.DonationsExpired.Add(float64(len(ids)))
	}
	if s.broadcast != nil {
		s.broadcast.Publish(ctx, EventStatusUpdated, map[string]any{
			"status":  StatusExpired,
			"expired": len(ids),
		})
	}
	s.logger.Info("expired overdue donations", "count", len(ids))
}
