// README: Pickup endpoints — admin assignment, volunteer progress, listings.
package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/http/middleware"
	"foodbridge/internal/modules/donation"
	"foodbridge/internal/modules/pickup"
	"foodbridge/internal/types"
)

type PickupHandler struct {
	pickups   *pickup.Service
	donations *donation.Service
}

func NewPickupHandler(pickups *pickup.Service, donations *donation.Service) *PickupHandler {
	return &PickupHandler{pickups: pickups, donations: donations}
}

type assignPickupReq struct {
	DonationID  string `json:"donationId"`
	VolunteerID string `json:"volunteerId"`
	NgoID       string `json:"ngoId"`
	PickupTime  string `json:"pickupTime"`
	Notes       string `json:"notes"`
}

func (h *PickupHandler) Assign(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)

	var req assignPickupReq
	if err := c.ShouldBindJSON(&req); err != nil || req.DonationID == "" || req.VolunteerID == "" {
		writeError(c, http.StatusBadRequest, "donationId and volunteerId are required")
		return
	}

	d, err := h.donations.Get(c.Request.Context(), types.ID(req.DonationID))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	pickupTime := d.PickupTime
	if t, ok := parseTime(req.PickupTime); ok {
		pickupTime = t
	}

	cmd := pickup.AssignCommand{
		DonationID:  d.ID,
		DonorID:     d.DonorID,
		VolunteerID: types.ID(req.VolunteerID),
		Actor:       actor,
		PickupTime:  pickupTime,
		Notes:       req.Notes,
	}
	if req.NgoID != "" {
		ngo := types.ID(req.NgoID)
		cmd.NgoID = &ngo
	}

	p, err := h.pickups.AdminAssign(c.Request.Context(), cmd)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusCreated, "Pickup assigned", pickupView(p))
}

type pickupStatusReq struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *PickupHandler) UpdateStatus(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)

	var req pickupStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		writeError(c, http.StatusBadRequest, "Status is required")
		return
	}

	p, err := h.pickups.UpdateStatus(c.Request.Context(), pickup.UpdateStatusCommand{
		PickupID: types.ID(c.Param("id")),
		Actor:    actor,
		Status:   strings.TrimSpace(strings.ToLower(req.Status)),
		Notes:    req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Pickup status updated", pickupView(p))
}

func (h *PickupHandler) My(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	list, err := h.pickups.MyPickups(c.Request.Context(), actor.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, pickupViews(list), len(list))
}

func (h *PickupHandler) All(c *gin.Context) {
	list, err := h.pickups.All(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, pickupViews(list), len(list))
}

type pickupWire struct {
	ID             types.ID      `json:"id"`
	DonationID     types.ID      `json:"donationId"`
	DonorID        types.ID      `json:"donorId"`
	VolunteerID    types.ID      `json:"volunteerId"`
	NgoID          *types.ID     `json:"ngoId,omitempty"`
	AssignedBy     *types.ID     `json:"assignedBy,omitempty"`
	Status         pickup.Status `json:"status"`
	PickupTime     time.Time     `json:"pickupTime"`
	CompletionTime *time.Time    `json:"completionTime,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func pickupView(p *pickup.Pickup) pickupWire {
	return pickupWire{
		ID:             p.ID,
		DonationID:     p.DonationID,
		DonorID:        p.DonorID,
		VolunteerID:    p.VolunteerID,
		NgoID:          p.NgoID,
		AssignedBy:     p.AssignedBy,
		Status:         p.Status,
		PickupTime:     p.PickupTime,
		CompletionTime: p.CompletionTime,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func pickupViews(list []*pickup.Pickup) []pickupWire {
	out := make([]pickupWire, 0, len(list))
	for _, p := range list {
		out = append(out, pickupView(p))
	}
	return out
}
