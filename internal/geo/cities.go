// README: Static city centroid table used as the offline geocoding fallback.
package geo

import (
	"strings"

	"foodbridge/internal/types"
)

// cityCentroids maps normalized city names to their approximate centroids.
// Spelling variants share an entry so diacritic or renaming differences
// (Bangalore/Bengaluru, Mysore/Mysuru) still resolve.
var cityCentroids = map[string]types.Point{
	"bangalore":  {Lat: 12.9716, Lng: 77.5946},
	"bengaluru":  {Lat: 12.9716, Lng: 77.5946},
	"bangaluru":  {Lat: 12.9716, Lng: 77.5946},
	"mysore":     {Lat: 12.2958, Lng: 76.6394},
	"mysuru":     {Lat: 12.2958, Lng: 76.6394},
	"hubli":      {Lat: 15.3647, Lng: 75.124},
	"dharwad":    {Lat: 15.4589, Lng: 75.0078},
	"mangalore":  {Lat: 12.9141, Lng: 74.856},
	"mangaluru":  {Lat: 12.9141, Lng: 74.856},
	"belgaum":    {Lat: 15.8497, Lng: 74.4977},
	"belagavi":   {Lat: 15.8497, Lng: 74.4977},
	"kalaburagi": {Lat: 17.3297, Lng: 76.8343},
	"gulbarga":   {Lat: 17.3297, Lng: 76.8343},
	"davanagere": {Lat: 14.4644, Lng: 75.9218},
	"shivamogga": {Lat: 13.9299, Lng: 75.5681},
	"shimoga":    {Lat: 13.9299, Lng: 75.5681},
	"mumbai":     {Lat: 19.076, Lng: 72.8777},
}

// CityCentroid returns the static centroid for a known city, or nil.
func CityCentroid(city string) *types.Point {
	key := normalizeCityKey(city)
	if key == "" {
		return nil
	}
	if p, ok := cityCentroids[key]; ok {
		return &p
	}
	return nil
}

// normalizeCityKey lower-cases and strips everything but ASCII letters, so
// punctuation and spacing variants collapse to one key.
func normalizeCityKey(city string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(strings.TrimSpace(city)) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
