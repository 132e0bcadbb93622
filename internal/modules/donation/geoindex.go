// README: Redis GEO index over pending donations for nearby lookups.
package donation

import (
	"context"

	"github.com/redis/go-redis/v9"

	"foodbridge/internal/types"
)

const donationGeoKey = "geo:donations"

// GeoIndex tracks pending donations with resolved coordinates so the public
// nearby query can be served without a table scan. Entries are removed as
// soon as a donation leaves pending.
type GeoIndex struct {
	redis *redis.Client
}

func NewGeoIndex(redis *redis.Client) *GeoIndex {
	return &GeoIndex{redis: redis}
}

func (g *GeoIndex) Add(ctx context.Context, id types.ID, p types.Point) error {
	return g.redis.GeoAdd(ctx, donationGeoKey, &redis.GeoLocation{
		Name:      string(id),
		Longitude: p.Lng,
		Latitude:  p.Lat,
	}).Err()
}

func (g *GeoIndex) Remove(ctx context.Context, id types.ID) error {
	return g.redis.ZRem(ctx, donationGeoKey, string(id)).Err()
}

// Nearby returns donation ids within radiusKm of p, closest first.
func (g *GeoIndex) Nearby(ctx context.Context, p types.Point, radiusKm float64, limit int) ([]types.ID, error) {
	results, err := g.redis.GeoSearch(ctx, donationGeoKey, &redis.GeoSearchQuery{
		Longitude:  p.Lng,
		Latitude:   p.Lat,
		Radius:     radiusKm,
		RadiusUnit: "km",
		Sort:       "ASC",
		Count:      limit,
	}).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]types.ID, len(results))
	for i, r := range results {
		ids[i] = types.ID(r)
	}
	return ids, nil
}
