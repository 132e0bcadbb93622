// README: Sentinel errors for the donation lifecycle, mapped to HTTP codes at the transport layer.
package donation

import "errors"

var (
	ErrNotFound        = errors.New("Donation not found")
	ErrUserNotFound    = errors.New("User account not found")
	ErrInvalidStatus   = errors.New("Invalid status update request")
	ErrInvalidState    = errors.New("Invalid status transition for the current donation state")
	ErrConflict        = errors.New("Donation was updated concurrently, please retry")
	ErrNotOwner        = errors.New("Not authorized to update this donation")
	ErrDonorCancelOnly = errors.New("Donors can only cancel their donation")
	ErrVolunteerAction = errors.New("Volunteer status update is not allowed for this action")
	ErrNgoAction       = errors.New("NGO status update is not allowed for this action")
	ErrNotPending      = errors.New("Only pending donations can be accepted")
	ErrNotClaimable    = errors.New("Only pending donations can be claimed")
	ErrAlreadyAssigned = errors.New("Donation is already assigned to another volunteer")
	ErrNotAssigned     = errors.New("You are not assigned to this pickup")
	ErrAlreadyClaimed  = errors.New("Donation already claimed")
)

// ValidationError marks malformed or missing input; always recoverable by
// the caller resubmitting corrected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }

// PolicyError wraps a donor-tier quota breach. The transport layer surfaces
// it with the DONOR_POLICY_LIMIT code and enough structure for the client to
// explain why and when retry might succeed.
type PolicyError struct {
	Violation *PolicyViolation
}

func (e *PolicyError) Error() string { return e.Violation.Message }
