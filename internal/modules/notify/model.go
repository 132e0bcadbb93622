// README: In-app notification record.
package notify

import (
	"time"

	"foodbridge/internal/types"
)

const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

// Meta carries the donation context a notification refers to, if any.
type Meta struct {
	DonationID types.ID `json:"donationId,omitempty"`
	Status     string   `json:"status,omitempty"`
}

type Notification struct {
	ID        types.ID  `json:"id"`
	UserID    types.ID  `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	Meta      Meta      `json:"meta"`
	CreatedAt time.Time `json:"createdAt"`
}
