// README: Pickup service — assignment, volunteer progress updates, donation linkage.
package pickup

import (
	"context"
	"errors"
	"time"

	"foodbridge/internal/modules/donation"
	"foodbridge/internal/types"
)

var (
	ErrNotOwnPickup  = errors.New("You are not assigned to this pickup")
	ErrInvalidStatus = errors.New("Invalid pickup status")
	ErrAlreadyFinal  = errors.New("Pickup has already been completed or cancelled")
)

// DonationLifecycle lets pickup operations move their donation without the
// pickup package importing the donation service.
type DonationLifecycle interface {
	ClaimFromAssignment(ctx context.Context, donationID, volunteerID types.ID) error
	CloseFromPickup(ctx context.Context, donationID, volunteerID types.ID) error
}

type Service struct {
	store     *Store
	donations DonationLifecycle
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// SetDonations wires the donation-side lifecycle hooks after both services
// exist; the dependency is circular at construction time only.
func (s *Service) SetDonations(donations DonationLifecycle) {
	s.donations = donations
}

// ActiveVolunteer reports which volunteer currently holds a donation's
// pickup, if any.
func (s *Service) ActiveVolunteer(ctx context.Context, donationID types.ID) (types.ID, bool, error) {
	p, err := s.store.ActiveByDonation(ctx, donationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return p.VolunteerID, true, nil
}

// Assign records a volunteer-initiated pickup. Used by the donation
// lifecycle when a volunteer accepts a pending donation.
func (s *Service) Assign(ctx context.Context, rec donation.PickupAssignment) error {
	err := s.store.Create(ctx, &Pickup{
		DonationID:  rec.DonationID,
		DonorID:     rec.DonorID,
		VolunteerID: rec.VolunteerID,
		Status:      StatusAssigned,
		PickupTime:  rec.PickupTime,
	})
	if errors.Is(err, ErrTaken) {
		return donation.ErrAlreadyAssigned
	}
	return err
}

// Complete marks the volunteer's pickup for a donation completed; false
// means this volunteer holds no live pickup for it.
func (s *Service) Complete(ctx context.Context, donationID, volunteerID types.ID) (bool, error) {
	p, err := s.store.ActiveByDonation(ctx, donationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if p.VolunteerID != volunteerID {
		return false, nil
	}
	return s.store.SetStatus(ctx, p.ID, StatusCompleted, "")
}

func (s *Service) DonationIDs(ctx context.Context, volunteerID types.ID) ([]types.ID, error) {
	return s.store.DonationIDsByVolunteer(ctx, volunteerID)
}

type AssignCommand struct {
	DonationID  types.ID
	DonorID     types.ID
	VolunteerID types.ID
	NgoID       *types.ID
	Actor       types.Principal
	PickupTime  time.Time
	Notes       string
}

// AdminAssign creates a pickup on behalf of a volunteer, stamping the
// assigning admin.
func (s *Service) AdminAssign(ctx context.Context, cmd AssignCommand) (*Pickup, error) {
	assignedBy := cmd.Actor.ID
	p := &Pickup{
		DonationID:  cmd.DonationID,
		DonorID:     cmd.DonorID,
		VolunteerID: cmd.VolunteerID,
		NgoID:       cmd.NgoID,
		AssignedBy:  &assignedBy,
		Status:      StatusAssigned,
		PickupTime:  cmd.PickupTime,
		Notes:       cmd.Notes,
	}
	if err := s.store.Create(ctx, p); err != nil {
		if errors.Is(err, ErrTaken) {
			return nil, donation.ErrAlreadyAssigned
		}
		return nil, err
	}

	// An assigned pickup means the donation is spoken for; move it to
	// claimed so other volunteers and NGOs see a consistent state. Roll the
	// pickup back if the donation refuses the transition.
	if s.donations != nil {
		if err := s.donations.ClaimFromAssignment(ctx, p.DonationID, p.VolunteerID); err != nil {
			if _, cerr := s.store.SetStatus(ctx, p.ID, StatusCancelled, "assignment rolled back"); cerr != nil {
				return nil, cerr
			}
			return nil, err
		}
	}
	return p, nil
}

type UpdateStatusCommand struct {
	PickupID types.ID
	Actor    types.Principal
	Status   string
	Notes    string
}

// UpdateStatus advances a volunteer's own pickup. Completing it also closes
// the underlying donation.
func (s *Service) UpdateStatus(ctx context.Context, cmd UpdateStatusCommand) (*Pickup, error) {
	target := Status(cmd.Status)
	if !target.IsValid() || target == StatusPendingAssignment {
		return nil, ErrInvalidStatus
	}

	p, err := s.store.Get(ctx, cmd.PickupID)
	if err != nil {
		return nil, err
	}
	if cmd.Actor.Role != types.RoleAdmin && p.VolunteerID != cmd.Actor.ID {
		return nil, ErrNotOwnPickup
	}

	// Close the donation before finalizing the pickup: a refused closure
	// leaves the pickup in its prior, still-drivable state instead of
	// wedging a completed pickup against an open donation.
	if target == StatusCompleted && s.donations != nil {
		if err := s.donations.CloseFromPickup(ctx, p.DonationID, p.VolunteerID); err != nil {
			return nil, err
		}
	}

	ok, err := s.store.SetStatus(ctx, p.ID, target, cmd.Notes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAlreadyFinal
	}

	return s.store.Get(ctx, p.ID)
}

func (s *Service) MyPickups(ctx context.Context, volunteerID types.ID) ([]*Pickup, error) {
	return s.store.ListByVolunteer(ctx, volunteerID)
}

func (s *Service) All(ctx context.Context) ([]*Pickup, error) {
	return s.store.ListAll(ctx)
}
