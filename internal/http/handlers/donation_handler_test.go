// README: Payload normalization tests (address and coordinate aliases).
package handlers

import (
	"encoding/json"
	"testing"
)

func decodeRaw(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m
}

func TestParseAddressAliases(t *testing.T) {
	cases := []struct {
		name string
		body string
		want struct {
			street, zip string
		}
	}{
		{
			name: "canonical keys",
			body: `{"street":"12 MG Road","city":"Bangalore","state":"KA","zipCode":"560001"}`,
			want: struct{ street, zip string }{"12 MG Road", "560001"},
		},
		{
			name: "mobile client aliases",
			body: `{"addressLine1":"12 MG Road","city":"Bangalore","state":"KA","pincode":"560001"}`,
			want: struct{ street, zip string }{"12 MG Road", "560001"},
		},
		{
			name: "legacy keys",
			body: `{"address":"12 MG Road","city":"Bangalore","state":"KA","postalCode":"560001"}`,
			want: struct{ street, zip string }{"12 MG Road", "560001"},
		},
	}
	for _, c := range cases {
		addr := parseAddress(decodeRaw(t, c.body))
		if addr.Street != c.want.street || addr.ZipCode != c.want.zip {
			t.Errorf("%s: got street=%q zip=%q", c.name, addr.Street, addr.ZipCode)
		}
		if addr.City != "Bangalore" {
			t.Errorf("%s: city = %q", c.name, addr.City)
		}
	}
}

func TestParseAddressCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantLat  float64
		wantLng  float64
		wantNone bool
	}{
		{"coordinates object", `{"coordinates":{"lat":12.97,"lng":77.59}}`, 12.97, 77.59, false},
		{"latitude aliases", `{"coordinates":{"latitude":12.97,"longitude":77.59}}`, 12.97, 77.59, false},
		{"lon alias", `{"coordinates":{"lat":12.97,"lon":77.59}}`, 12.97, 77.59, false},
		{"top-level lat lng", `{"lat":12.97,"lng":77.59}`, 12.97, 77.59, false},
		{"numeric strings", `{"coordinates":{"lat":"12.97","lng":"77.59"}}`, 12.97, 77.59, false},
		{"geojson order", `{"location":{"type":"Point","coordinates":[77.59,12.97]}}`, 12.97, 77.59, false},
		{"out of range", `{"coordinates":{"lat":123.0,"lng":77.59}}`, 0, 0, true},
		{"missing", `{"city":"Bangalore"}`, 0, 0, true},
		{"garbage", `{"coordinates":"somewhere"}`, 0, 0, true},
	}
	for _, c := range cases {
		addr := parseAddress(decodeRaw(t, c.body))
		if c.wantNone {
			if addr.Coordinates != nil {
				t.Errorf("%s: expected no coordinates, got %+v", c.name, addr.Coordinates)
			}
			continue
		}
		if addr.Coordinates == nil {
			t.Errorf("%s: expected coordinates", c.name)
			continue
		}
		if addr.Coordinates.Lat != c.wantLat || addr.Coordinates.Lng != c.wantLng {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", c.name, addr.Coordinates.Lat, addr.Coordinates.Lng, c.wantLat, c.wantLng)
		}
	}
}

func TestParseTimeFormats(t *testing.T) {
	valid := []string{
		"2026-09-01T10:00:00Z",
		"2026-09-01T10:00:00+05:30",
		"2026-09-01T10:00:00",
		"2026-09-01 10:00:00",
		"2026-09-01",
	}
	for _, s := range valid {
		if _, ok := parseTime(s); !ok {
			t.Errorf("parseTime(%q) should succeed", s)
		}
	}
	for _, s := range []string{"", "tomorrow", "01/09/2026"} {
		if _, ok := parseTime(s); ok {
			t.Errorf("parseTime(%q) should fail", s)
		}
	}
}
