// README: Donor policy engine — tier classification and per-tier creation quotas.
package donation

import (
	"fmt"
	"time"
)

type Tier string

const (
	TierStarter  Tier = "starter"
	TierGrowing  Tier = "growing"
	TierVerified Tier = "verified"
	TierTrusted  Tier = "trusted"
)

// Policy is the quota set attached to a donor tier.
type Policy struct {
	Tier                Tier `json:"tier"`
	MaxDailyDonations   int  `json:"maxDailyDonations"`
	MinIntervalMinutes  int  `json:"minIntervalMinutes"`
	MaxItems            int  `json:"maxItems"`
	MaxServings         int  `json:"maxServings"`
	MaxPendingDonations int  `json:"maxPendingDonations"`
}

var donorPolicies = map[Tier]Policy{
	TierStarter:  {Tier: TierStarter, MaxDailyDonations: 2, MinIntervalMinutes: 180, MaxItems: 5, MaxServings: 150, MaxPendingDonations: 3},
	TierGrowing:  {Tier: TierGrowing, MaxDailyDonations: 4, MinIntervalMinutes: 90, MaxItems: 10, MaxServings: 350, MaxPendingDonations: 6},
	TierVerified: {Tier: TierVerified, MaxDailyDonations: 10, MinIntervalMinutes: 30, MaxItems: 20, MaxServings: 1000, MaxPendingDonations: 12},
	TierTrusted:  {Tier: TierTrusted, MaxDailyDonations: 25, MinIntervalMinutes: 0, MaxItems: 40, MaxServings: 3000, MaxPendingDonations: 30},
}

// PolicyFor returns the quota set for a tier, defaulting to starter.
func PolicyFor(tier Tier) Policy {
	if p, ok := donorPolicies[tier]; ok {
		return p
	}
	return donorPolicies[TierStarter]
}

// DonorProfile is the behavioral snapshot tier classification works from.
type DonorProfile struct {
	Role            string
	TotalDonations  int
	MealsProvided   int
	IsVerified      bool
	HasOrganization bool
}

// ClassifyTier maps a donor profile to exactly one tier. Precedence order
// matters: first match wins.
func ClassifyTier(p DonorProfile) Tier {
	if p.IsVerified && (p.HasOrganization || p.TotalDonations >= 50) {
		return TierTrusted
	}
	if p.IsVerified {
		return TierVerified
	}
	if p.TotalDonations >= 10 {
		return TierGrowing
	}
	return TierStarter
}

// CreationSnapshot holds the donor's recent activity counts read immediately
// before the quota check. Two near-simultaneous creations can both pass the
// check before either commits; this is an accepted soft limit.
type CreationSnapshot struct {
	DonationsToday   int
	PendingDonations int
	LastDonationAt   *time.Time
}

// PolicyViolation is the structured rejection a quota breach produces.
type PolicyViolation struct {
	Reason            string
	Message           string
	Policy            Policy
	EstimatedServings int
	NextAllowedAt     *time.Time
}

const (
	ViolationMaxItems     = "max_items"
	ViolationMaxServings  = "max_servings"
	ViolationDailyLimit   = "daily_limit"
	ViolationPendingLimit = "pending_limit"
	ViolationMinInterval  = "min_interval"
)

// CheckPolicy evaluates the tier quotas against a proposed donation. Checks
// are independent; the first failing check short-circuits. A nil return
// means the creation may proceed.
func CheckPolicy(policy Policy, itemCount, estimatedServings int, snap CreationSnapshot, now time.Time) *PolicyViolation {
	if itemCount > policy.MaxItems {
		return &PolicyViolation{
			Reason:  ViolationMaxItems,
			Message: fmt.Sprintf("This donor tier supports up to %d items per donation.", policy.MaxItems),
			Policy:  policy,
		}
	}

	if estimatedServings > policy.MaxServings {
		return &PolicyViolation{
			Reason:            ViolationMaxServings,
			Message:           fmt.Sprintf("This donation exceeds your current estimated serving limit of %d. Verify your donor profile to unlock larger donations.", policy.MaxServings),
			Policy:            policy,
			EstimatedServings: estimatedServings,
		}
	}

	if snap.DonationsToday >= policy.MaxDailyDonations {
		return &PolicyViolation{
			Reason:  ViolationDailyLimit,
			Message: fmt.Sprintf("Daily limit reached. You can create up to %d donations per day at your current tier.", policy.MaxDailyDonations),
			Policy:  policy,
		}
	}

	if snap.PendingDonations >= policy.MaxPendingDonations {
		return &PolicyViolation{
			Reason:  ViolationPendingLimit,
			Message: fmt.Sprintf("You already have %d pending donations. Please wait for assignment before adding more.", snap.PendingDonations),
			Policy:  policy,
		}
	}

	if policy.MinIntervalMinutes > 0 && snap.LastDonationAt != nil {
		nextAllowedAt := snap.LastDonationAt.Add(time.Duration(policy.MinIntervalMinutes) * time.Minute)
		if nextAllowedAt.After(now) {
			return &PolicyViolation{
				Reason:        ViolationMinInterval,
				Message:       "Please wait a little before creating another donation.",
				Policy:        policy,
				NextAllowedAt: &nextAllowedAt,
			}
		}
	}

	return nil
}

// DayRange returns the local midnight-to-midnight window containing the
// reference time, used for the daily donation count.
func DayRange(reference time.Time) (time.Time, time.Time) {
	start := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())
	return start, start.AddDate(0, 0, 1)
}
