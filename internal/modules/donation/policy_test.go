package donation

import (
	"testing"
	"time"
)

func TestClassifyTier(t *testing.T) {
	cases := []struct {
		name    string
		profile DonorProfile
		want    Tier
	}{
		{"brand new donor", DonorProfile{}, TierStarter},
		{"nine donations", DonorProfile{TotalDonations: 9}, TierStarter},
		{"ten donations", DonorProfile{TotalDonations: 10}, TierGrowing},
		{"active unverified", DonorProfile{TotalDonations: 80}, TierGrowing},
		{"verified individual", DonorProfile{IsVerified: true}, TierVerified},
		{"verified active", DonorProfile{IsVerified: true, TotalDonations: 49}, TierVerified},
		{"verified org", DonorProfile{IsVerified: true, HasOrganization: true}, TierTrusted},
		{"verified veteran", DonorProfile{IsVerified: true, TotalDonations: 50}, TierTrusted},
		{"org without verification", DonorProfile{HasOrganization: true, TotalDonations: 200}, TierGrowing},
	}
	for _, c := range cases {
		if got := ClassifyTier(c.profile); got != c.want {
			t.Errorf("%s: ClassifyTier = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestPolicyForUnknownTierDefaultsToStarter(t *testing.T) {
	if got := PolicyFor(Tier("bogus")); got.Tier != TierStarter {
		t.Errorf("unknown tier should map to starter, got %s", got.Tier)
	}
}

func TestCheckPolicyQuotas(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	starter := PolicyFor(TierStarter)
	recent := now.Add(-30 * time.Minute)
	stale := now.Add(-4 * time.Hour)

	cases := []struct {
		name       string
		itemCount  int
		servings   int
		snap       CreationSnapshot
		wantReason string
	}{
		{"within quotas", 3, 100, CreationSnapshot{DonationsToday: 1, PendingDonations: 1, LastDonationAt: &stale}, ""},
		{"too many items", 6, 100, CreationSnapshot{}, ViolationMaxItems},
		{"too many servings", 3, 151, CreationSnapshot{}, ViolationMaxServings},
		{"servings at limit", 3, 150, CreationSnapshot{}, ""},
		{"daily limit hit", 3, 100, CreationSnapshot{DonationsToday: 2}, ViolationDailyLimit},
		{"pending backlog", 3, 100, CreationSnapshot{PendingDonations: 3}, ViolationPendingLimit},
		{"too soon after last", 3, 100, CreationSnapshot{LastDonationAt: &recent}, ViolationMinInterval},
		{"interval elapsed", 3, 100, CreationSnapshot{LastDonationAt: &stale}, ""},
		{"no prior donation", 3, 100, CreationSnapshot{}, ""},
	}
	for _, c := range cases {
		v := CheckPolicy(starter, c.itemCount, c.servings, c.snap, now)
		if c.wantReason == "" {
			if v != nil {
				t.Errorf("%s: unexpected violation %s", c.name, v.Reason)
			}
			continue
		}
		if v == nil {
			t.Errorf("%s: expected violation %s, got none", c.name, c.wantReason)
			continue
		}
		if v.Reason != c.wantReason {
			t.Errorf("%s: violation = %s, want %s", c.name, v.Reason, c.wantReason)
		}
		if v.Policy.Tier != TierStarter {
			t.Errorf("%s: violation should carry the policy snapshot", c.name)
		}
	}
}

func TestCheckPolicyShortCircuitOrder(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Minute)
	// Everything violated at once: the structural item check wins.
	v := CheckPolicy(PolicyFor(TierStarter), 50, 5000, CreationSnapshot{
		DonationsToday:   10,
		PendingDonations: 10,
		LastDonationAt:   &recent,
	}, now)
	if v == nil || v.Reason != ViolationMaxItems {
		t.Fatalf("expected max_items to win, got %+v", v)
	}
}

func TestCheckPolicyMinIntervalNextAllowedAt(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	last := now.Add(-time.Hour)
	v := CheckPolicy(PolicyFor(TierStarter), 1, 10, CreationSnapshot{LastDonationAt: &last}, now)
	if v == nil || v.Reason != ViolationMinInterval {
		t.Fatalf("expected min_interval violation, got %+v", v)
	}
	want := last.Add(180 * time.Minute)
	if v.NextAllowedAt == nil || !v.NextAllowedAt.Equal(want) {
		t.Errorf("NextAllowedAt = %v, want %v", v.NextAllowedAt, want)
	}
}

func TestCheckPolicyTrustedHasNoInterval(t *testing.T) {
	now := time.Now()
	justNow := now.Add(-time.Second)
	v := CheckPolicy(PolicyFor(TierTrusted), 1, 10, CreationSnapshot{LastDonationAt: &justNow}, now)
	if v != nil {
		t.Errorf("trusted tier should have no minimum interval, got %s", v.Reason)
	}
}

func TestDayRange(t *testing.T) {
	ref := time.Date(2026, 3, 14, 17, 45, 12, 0, time.UTC)
	start, end := DayRange(ref)
	if !start.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}
