// README: Shared response envelope and domain error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodbridge/internal/modules/claim"
	"foodbridge/internal/modules/donation"
	"foodbridge/internal/modules/notify"
	"foodbridge/internal/modules/pickup"
)

// envelope is the uniform response body every endpoint returns.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Code    string `json:"code,omitempty"`
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func writeMessage(c *gin.Context, status int, msg string, data any) {
	c.JSON(status, envelope{Success: true, Message: msg, Data: data})
}

// writeList always includes a count so clients can paginate-by-eye.
func writeList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{Success: false, Message: msg})
}

// policyLimitCode marks donor-tier quota rejections so clients can render
// the quota card instead of a generic error toast.
const policyLimitCode = "DONOR_POLICY_LIMIT"

type policyDetails struct {
	Policy            donation.Policy `json:"policy"`
	EstimatedServings *int            `json:"estimatedServings,omitempty"`
	NextAllowedAt     *string         `json:"nextAllowedAt,omitempty"`
}

// writeDomainError maps domain failures onto HTTP statuses. Sentinels keep
// their user-facing messages; anything unrecognized is a 500.
func writeDomainError(c *gin.Context, err error) {
	var verr *donation.ValidationError
	if errors.As(err, &verr) {
		writeError(c, http.StatusBadRequest, verr.Message)
		return
	}

	var perr *donation.PolicyError
	if errors.As(err, &perr) {
		v := perr.Violation
		details := policyDetails{Policy: v.Policy}
		if v.EstimatedServings > 0 {
			details.EstimatedServings = &v.EstimatedServings
		}
		if v.NextAllowedAt != nil {
			s := v.NextAllowedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
			details.NextAllowedAt = &s
		}
		c.JSON(http.StatusTooManyRequests, envelope{
			Success: false,
			Message: v.Message,
			Code:    policyLimitCode,
			Data:    details,
		})
		return
	}

	switch {
	case errors.Is(err, donation.ErrNotFound),
		errors.Is(err, donation.ErrUserNotFound),
		errors.Is(err, pickup.ErrNotFound),
		errors.Is(err, claim.ErrNotFound),
		errors.Is(err, notify.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, donation.ErrInvalidStatus),
		errors.Is(err, donation.ErrInvalidState),
		errors.Is(err, donation.ErrNotPending),
		errors.Is(err, donation.ErrNotClaimable),
		errors.Is(err, pickup.ErrInvalidStatus):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, donation.ErrNotOwner),
		errors.Is(err, donation.ErrDonorCancelOnly),
		errors.Is(err, donation.ErrVolunteerAction),
		errors.Is(err, donation.ErrNgoAction),
		errors.Is(err, donation.ErrNotAssigned),
		errors.Is(err, pickup.ErrNotOwnPickup):
		writeError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, donation.ErrAlreadyAssigned),
		errors.Is(err, donation.ErrAlreadyClaimed),
		errors.Is(err, donation.ErrConflict),
		errors.Is(err, pickup.ErrAlreadyFinal),
		errors.Is(err, claim.ErrAlreadyProcessed):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "Internal server error")
	}
}
