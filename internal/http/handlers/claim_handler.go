// README: Claim endpoints — NGO claim listings and admin processing.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/http/middleware"
	"foodbridge/internal/modules/claim"
	"foodbridge/internal/types"
)

type ClaimHandler struct {
	claims *claim.Service
}

func NewClaimHandler(svc *claim.Service) *ClaimHandler {
	return &ClaimHandler{claims: svc}
}

func (h *ClaimHandler) My(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)
	list, err := h.claims.ListByNgo(c.Request.Context(), actor.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, claimViews(list), len(list))
}

func (h *ClaimHandler) Pending(c *gin.Context) {
	list, err := h.claims.ListPending(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeList(c, claimViews(list), len(list))
}

type processClaimReq struct {
	Approve bool   `json:"approve"`
	Notes   string `json:"notes"`
}

func (h *ClaimHandler) Process(c *gin.Context) {
	actor, _ := middleware.CallerPrincipal(c)

	var req processClaimReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	processed, err := h.claims.Process(c.Request.Context(), claim.ProcessCommand{
		ClaimID: types.ID(c.Param("id")),
		Actor:   actor,
		Approve: req.Approve,
		Notes:   req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeMessage(c, http.StatusOK, "Claim processed", claimView(processed))
}

type claimWire struct {
	ID          types.ID     `json:"id"`
	DonationID  types.ID     `json:"donationId"`
	NgoID       types.ID     `json:"ngoId"`
	Status      claim.Status `json:"status"`
	ProcessedBy *types.ID    `json:"processedBy,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	ClaimedAt   time.Time    `json:"claimedAt"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func claimView(cl *claim.Claim) claimWire {
	return claimWire{
		ID:          cl.ID,
		DonationID:  cl.DonationID,
		NgoID:       cl.NgoID,
		Status:      cl.Status,
		ProcessedBy: cl.ProcessedBy,
		Notes:       cl.Notes,
		ClaimedAt:   cl.ClaimedAt,
		CreatedAt:   cl.CreatedAt,
		UpdatedAt:   cl.UpdatedAt,
	}
}

func claimViews(list []*claim.Claim) []claimWire {
	out := make([]claimWire, 0, len(list))
	for _, cl := range list {
		out = append(out, claimView(cl))
	}
	return out
}
