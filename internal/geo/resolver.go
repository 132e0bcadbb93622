// README: Coordinate resolver with a 3-tier fallback: payload coords, static city table, remote geocoder.
package geo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"googlemaps.github.io/maps"

	"foodbridge/internal/config"
	"foodbridge/internal/types"
)

// Address is a normalized pickup address. Coordinates is non-nil when the
// caller's payload already carried a usable lat/lng pair.
type Address struct {
	Street      string
	City        string
	State       string
	ZipCode     string
	Country     string
	Coordinates *types.Point
}

// Geocoder is the narrow slice of the Google Maps client the resolver needs.
type Geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGeocoder creates a Google Maps client usable as the remote tier.
func NewGeocoder(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}

// Resolver resolves a street address to coordinates. It never returns an
// error: every failure path degrades to the static fallback or nil.
type Resolver struct {
	cfg      config.GeocodeConfig
	geocoder Geocoder
	logger   *slog.Logger
}

// NewResolver builds a resolver. geocoder may be nil, in which case the
// remote tier is skipped regardless of the configured mode.
func NewResolver(cfg config.GeocodeConfig, geocoder Geocoder, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{cfg: cfg, geocoder: geocoder, logger: logger}
}

// Resolve walks the fallback chain: explicit payload coordinates, the static
// city centroid table, then (mode permitting) one bounded remote lookup.
// The static fallback remains the final safety net even under remote mode.
func (r *Resolver) Resolve(ctx context.Context, addr Address) *types.Point {
	if addr.Coordinates != nil {
		return addr.Coordinates
	}

	fallback := CityCentroid(addr.City)

	if !r.cfg.AllowRemote() || r.geocoder == nil {
		return fallback
	}

	query := r.buildQuery(addr)
	if query == "" {
		return fallback
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	results, err := r.geocoder.Geocode(lookupCtx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		r.logger.Warn("geocoding lookup failed", "city", addr.City, "error", err)
		return fallback
	}
	if len(results) == 0 {
		return fallback
	}

	loc := results[0].Geometry.Location
	return &types.Point{Lat: loc.Lat, Lng: loc.Lng}
}

// DefaultCountry is the country stamped onto addresses that omit one.
func (r *Resolver) DefaultCountry() string {
	return r.cfg.DefaultCountry
}

func (r *Resolver) buildQuery(addr Address) string {
	country := addr.Country
	if country == "" {
		country = r.cfg.DefaultCountry
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{addr.Street, addr.City, addr.State, addr.ZipCode, country} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
