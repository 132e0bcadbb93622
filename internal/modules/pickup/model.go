// README: Volunteer pickup record and its status vocabulary.
package pickup

import (
	"time"

	"foodbridge/internal/types"
)

type Status string

const (
	StatusPendingAssignment Status = "pending_assignment"
	StatusAssigned          Status = "assigned"
	StatusInProgress        Status = "in_progress"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingAssignment, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Pickup tracks one volunteer's transport of one donation. A partial unique
// index on donation_id over non-cancelled rows guarantees at most one live
// pickup per donation.
type Pickup struct {
	ID             types.ID
	DonationID     types.ID
	DonorID        types.ID
	VolunteerID    types.ID
	NgoID          *types.ID
	AssignedBy     *types.ID
	Status         Status
	PickupTime     time.Time
	CompletionTime *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
