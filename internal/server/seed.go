package server

import (
	"context"

	"github.com/geotrack/discovery/internal/geotrack"
	"github.com/geotrack/discovery/internal/reviews"
)

// DemoReviews is the starter content a fresh installation shows before
// anyone has written a review.
func DemoReviews() []geotrack.Review {
	return []geotrack.Review{
		{
			PlaceID:    1,
			UserID:     100,
			UserName:   "Alexander",
			UserAvatar: "A",
			Rating:     5,
			Comment:    "Stunning views, a must-see for anyone travelling through Mangystau.",
			Date:       "2024-03-15",
			Likes:      24,
		},
		{
			PlaceID:    2,
			UserID:     101,
			UserName:   "Maria",
			UserAvatar: "M",
			Rating:     5,
			Comment:    "The canyon is majestic at sunset. Bring water, the walk is long.",
			Date:       "2024-03-10",
			Likes:      18,
		},
		{
			PlaceID:    3,
			UserID:     102,
			UserName:   "Dmitry",
			UserAvatar: "D",
			Rating:     4,
			Comment:    "Fascinating petroglyphs, though the road there is rough.",
			Date:       "2024-03-05",
			Likes:      12,
		},
	}
}

// SeedDemoReviews populates the review table on first run. Safe to call
// on every startup.
func SeedDemoReviews(ctx context.Context, agg *reviews.Aggregate) error {
	return agg.Seed(ctx, DemoReviews())
}
