// README: User profile as seen by the donation platform.
package user

import (
	"time"

	"foodbridge/internal/types"
)

// DonorInfo accumulates a donor's lifetime impact. Totals only grow; they
// feed tier classification, never authorization.
type DonorInfo struct {
	TotalDonations  int  `json:"totalDonations"`
	MealsProvided   int  `json:"mealsProvided"`
	IsVerified      bool `json:"isVerified"`
	HasOrganization bool `json:"hasOrganization"`
}

type Profile struct {
	ID           types.ID   `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         types.Role `json:"role"`
	Status       string     `json:"status"`
	Organization string     `json:"organization,omitempty"`
	DonorInfo    DonorInfo  `json:"donorInfo"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
