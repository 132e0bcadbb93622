package donation

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"pending", StatusPending, true},
		{"claimed", StatusClaimed, true},
		{"accepted", StatusClaimed, true},
		{"picked_up", StatusClaimed, true},
		{"in_transit", StatusClaimed, true},
		{"closed", StatusClosed, true},
		{"delivered", StatusClosed, true},
		{"cancelled", StatusCancelled, true},
		{"expired", StatusExpired, true},
		{"  Delivered  ", StatusClosed, true},
		{"PENDING", StatusPending, true},
		{"canceled", "", false},
		{"unknown", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeStatus(c.raw)
		if ok != c.ok || got != c.want {
			t.Errorf("NormalizeStatus(%q) = (%q, %v), want (%q, %v)", c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusClaimed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusExpired, true},
		{StatusPending, StatusClosed, false},
		{StatusClaimed, StatusClosed, true},
		{StatusClaimed, StatusCancelled, true},
		{StatusClaimed, StatusPending, false},
		{StatusClaimed, StatusExpired, false},
		{StatusClosed, StatusPending, false},
		{StatusClosed, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusExpired, StatusClaimed, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusClosed, StatusCancelled, StatusExpired} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusClaimed} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		in   Status
		want string
	}{
		{StatusPending, "Pending"},
		{StatusClaimed, "Claimed"},
		{Status("picked_up"), "Picked Up"},
		{Status("in_transit"), "In Transit"},
	}
	for _, c := range cases {
		if got := StatusLabel(c.in); got != c.want {
			t.Errorf("StatusLabel(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
