// README: NGO claim record — one row per (donation, ngo) for all time.
package claim

import (
	"time"

	"foodbridge/internal/types"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Claim links an NGO to a donation it wants routed to it. The unique
// (donation_id, ngo_id) constraint makes claim creation the arbitration
// point under concurrency.
type Claim struct {
	ID          types.ID
	DonationID  types.ID
	NgoID       types.ID
	Status      Status
	ProcessedBy *types.ID
	Notes       string
	ClaimedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
