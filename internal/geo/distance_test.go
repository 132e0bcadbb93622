package geo

import (
	"math"
	"testing"

	"foodbridge/internal/types"
)

func TestDistanceKmKnownDistances(t *testing.T) {
	bangalore := types.Point{Lat: 12.9716, Lng: 77.5946}
	mysore := types.Point{Lat: 12.2958, Lng: 76.6394}
	mumbai := types.Point{Lat: 19.0760, Lng: 72.8777}

	cases := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{"same point", bangalore, bangalore, 0, 0.001},
		{"Bangalore to Mysore (~128km)", bangalore, mysore, 128, 5},
		{"Bangalore to Mumbai (~840km)", bangalore, mumbai, 840, 15},
	}
	for _, c := range cases {
		got := DistanceKm(c.a, c.b)
		if math.Abs(got-c.wantKm) > c.tolerance {
			t.Errorf("%s: DistanceKm = %.2f, want %.0f +/- %.0f", c.name, got, c.wantKm, c.tolerance)
		}
	}
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := types.Point{Lat: 12.9716, Lng: 77.5946}
	b := types.Point{Lat: 12.2958, Lng: 76.6394}
	if d1, d2 := DistanceKm(a, b), DistanceKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d1, d2)
	}
}
