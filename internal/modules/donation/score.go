// README: Priority scorer ordering pending donations for pickup and claim queues.
package donation

import "time"

// PriorityScore computes the urgency score for a donation at a reference
// time. Pure function; recomputed (never cached) at creation and on every
// transition into or out of pending.
//
// Overdue donations score 0 — they are the sweeper's problem, not the
// queue's.
func PriorityScore(d *Donation, now time.Time) int {
	if d == nil || d.PickupTime.IsZero() {
		return 0
	}

	hoursLeft := d.PickupTime.Sub(now).Hours()
	if hoursLeft <= 0 {
		return 0
	}

	score := 0

	// Urgency boost
	if hoursLeft < 6 {
		score += 50
	} else if hoursLeft < 24 {
		score += 30
	}

	// High serving boost
	servings := d.Impact.EstimatedServings
	if servings > 100 {
		score += 40
	} else if servings > 50 {
		score += 20
	}

	// Pending boost
	if d.Status == StatusPending {
		score += 20
	}

	return score
}
