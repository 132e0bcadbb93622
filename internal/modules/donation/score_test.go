package donation

import (
	"testing"
	"time"
)

func scoredDonation(pickupIn time.Duration, servings int, status Status) (*Donation, time.Time) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return &Donation{
		Status:     status,
		PickupTime: now.Add(pickupIn),
		Impact:     Impact{EstimatedServings: servings},
	}, now
}

func TestPriorityScoreBuckets(t *testing.T) {
	cases := []struct {
		name     string
		pickupIn time.Duration
		servings int
		status   Status
		want     int
	}{
		{"urgent large pending", 3 * time.Hour, 120, StatusPending, 110},
		{"soon medium pending", 10 * time.Hour, 60, StatusPending, 70},
		{"urgent small pending", 2 * time.Hour, 10, StatusPending, 70},
		{"distant small pending", 48 * time.Hour, 10, StatusPending, 20},
		{"soon boundary servings", 12 * time.Hour, 50, StatusPending, 50},
		{"boundary six hours", 6 * time.Hour, 10, StatusPending, 50},
		{"urgent large claimed", 3 * time.Hour, 120, StatusClaimed, 90},
		{"overdue", -1 * time.Hour, 500, StatusPending, 0},
		{"pickup right now", 0, 500, StatusPending, 0},
	}
	for _, c := range cases {
		d, now := scoredDonation(c.pickupIn, c.servings, c.status)
		if got := PriorityScore(d, now); got != c.want {
			t.Errorf("%s: PriorityScore = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestPriorityScoreDegenerate(t *testing.T) {
	if got := PriorityScore(nil, time.Now()); got != 0 {
		t.Errorf("nil donation should score 0, got %d", got)
	}
	if got := PriorityScore(&Donation{Status: StatusPending}, time.Now()); got != 0 {
		t.Errorf("zero pickup time should score 0, got %d", got)
	}
}
