// README: Resolver fallback-chain tests with a stub geocoder.
package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"googlemaps.github.io/maps"

	"foodbridge/internal/config"
	"foodbridge/internal/types"
)

// stubGeocoder is a test double for the remote tier.
type stubGeocoder struct {
	results []maps.GeocodingResult
	err     error
	calls   int
}

func (s *stubGeocoder) Geocode(_ context.Context, _ *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	s.calls++
	return s.results, s.err
}

func testConfig(mode config.GeocodeMode) config.GeocodeConfig {
	return config.GeocodeConfig{
		Mode:           mode,
		DefaultCountry: "India",
		Timeout:        4500 * time.Millisecond,
	}
}

func TestResolvePayloadCoordinatesWin(t *testing.T) {
	stub := &stubGeocoder{err: errors.New("should not be called")}
	r := NewResolver(testConfig(config.GeocodeModeRemote), stub, nil)

	got := r.Resolve(context.Background(), Address{
		City:        "Bengaluru",
		Coordinates: &types.Point{Lat: 1.5, Lng: 2.5},
	})
	if got == nil || got.Lat != 1.5 || got.Lng != 2.5 {
		t.Fatalf("expected payload coordinates back, got %+v", got)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no remote call, got %d", stub.calls)
	}
}

func TestResolveCityFallbackWithoutRemote(t *testing.T) {
	r := NewResolver(testConfig(config.GeocodeModeFallback), nil, nil)

	cases := []struct {
		city string
		want *types.Point
	}{
		{"Bengaluru", &types.Point{Lat: 12.9716, Lng: 77.5946}},
		{"  bangalore ", &types.Point{Lat: 12.9716, Lng: 77.5946}},
		{"MYSURU", &types.Point{Lat: 12.2958, Lng: 76.6394}},
		{"Hubli-", &types.Point{Lat: 15.3647, Lng: 75.124}},
		{"Atlantis", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := r.Resolve(context.Background(), Address{City: tc.city})
		if tc.want == nil {
			if got != nil {
				t.Errorf("city %q: expected nil, got %+v", tc.city, got)
			}
			continue
		}
		if got == nil || got.Lat != tc.want.Lat || got.Lng != tc.want.Lng {
			t.Errorf("city %q: expected %+v, got %+v", tc.city, tc.want, got)
		}
	}
}

func TestResolveRemoteSuccess(t *testing.T) {
	stub := &stubGeocoder{results: []maps.GeocodingResult{
		{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 13.01, Lng: 77.55}}},
	}}
	r := NewResolver(testConfig(config.GeocodeModeRemote), stub, nil)

	got := r.Resolve(context.Background(), Address{Street: "1 MG Road", City: "Unknownville"})
	if got == nil || got.Lat != 13.01 || got.Lng != 77.55 {
		t.Fatalf("expected remote result, got %+v", got)
	}
	if stub.calls != 1 {
		t.Fatalf("expected 1 remote call, got %d", stub.calls)
	}
}

func TestResolveRemoteFailureFallsBackToCityTable(t *testing.T) {
	stub := &stubGeocoder{err: errors.New("timeout")}
	r := NewResolver(testConfig(config.GeocodeModeRemote), stub, nil)

	got := r.Resolve(context.Background(), Address{Street: "1 MG Road", City: "Mumbai"})
	if got == nil || got.Lat != 19.076 {
		t.Fatalf("expected Mumbai centroid fallback, got %+v", got)
	}
}

func TestResolveRemoteEmptyResultUnknownCityReturnsNil(t *testing.T) {
	stub := &stubGeocoder{}
	r := NewResolver(testConfig(config.GeocodeModeHybrid), stub, nil)

	got := r.Resolve(context.Background(), Address{Street: "nowhere", City: "Atlantis"})
	if got != nil {
		t.Fatalf("expected nil for unresolvable address, got %+v", got)
	}
}

func TestResolveMalformedAddressNeverFails(t *testing.T) {
	r := NewResolver(testConfig(config.GeocodeModeFallback), nil, nil)
	if got := r.Resolve(context.Background(), Address{}); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestNormalizeCityKey(t *testing.T) {
	cases := map[string]string{
		"Bengaluru":   "bengaluru",
		" Hubli - ":   "hubli",
		"MYSORE!":     "mysore",
		"Davanagere2": "davanagere",
		"":            "",
	}
	for in, want := range cases {
		if got := normalizeCityKey(in); got != want {
			t.Errorf("normalizeCityKey(%q) = %q, want %q", in, got, want)
		}
	}
}
