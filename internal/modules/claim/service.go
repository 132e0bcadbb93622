// README: Claim service — thin orchestration over the claim store.
package claim

import (
	"context"
	"errors"

	"foodbridge/internal/modules/donation"
	"foodbridge/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Create satisfies the donation service's claim ledger: the unique index
// arbitrates concurrent claims, surfaced to the lifecycle as an
// already-claimed failure.
func (s *Service) Create(ctx context.Context, donationID, ngoID types.ID) (types.ID, error) {
	c, err := s.store.Create(ctx, donationID, ngoID)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return "", donation.ErrAlreadyClaimed
		}
		return "", err
	}
	return c.ID, nil
}

// Discard drops a claim that never took effect, so it neither shows up in
// the admin queue nor blocks the NGO from claiming again.
func (s *Service) Discard(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}

func (s *Service) DonationIDs(ctx context.Context, ngoID types.ID) ([]types.ID, error) {
	return s.store.DonationIDs(ctx, ngoID)
}

func (s *Service) ListByNgo(ctx context.Context, ngoID types.ID) ([]*Claim, error) {
	return s.store.ListByNgo(ctx, ngoID)
}

func (s *Service) ListPending(ctx context.Context) ([]*Claim, error) {
	return s.store.ListPending(ctx)
}

type ProcessCommand struct {
	ClaimID types.ID
	Actor   types.Principal
	Approve bool
	Notes   string
}

var ErrAlreadyProcessed = errors.New("Claim has already been processed")

// Process approves or rejects a pending claim. A rejected claim stays on
// record: the NGO cannot re-claim the same donation.
func (s *Service) Process(ctx context.Context, cmd ProcessCommand) (*Claim, error) {
	status := StatusRejected
	if cmd.Approve {
		status = StatusApproved
	}
	ok, err := s.store.SetStatus(ctx, cmd.ClaimID, status, cmd.Actor.ID, cmd.Notes)
	if err != nil {
		return nil, err
	}
	if !ok {
		if _, err := s.store.Get(ctx, cmd.ClaimID); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyProcessed
	}
	return s.store.Get(ctx, cmd.ClaimID)
}
