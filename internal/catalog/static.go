package catalog

import (
	"context"

	"github.com/geotrack/discovery/internal/geotrack"
)

// StaticLoader serves the built-in demo places until a remote catalog
// API exists.
type StaticLoader struct{}

func (StaticLoader) Load(_ context.Context) ([]geotrack.Place, error) {
	return []geotrack.Place{
		{
			ID:          1,
			Name:        "Bozzhyra",
			Region:      "Mangystau",
			Lat:         43.5,
			Lng:         52.0,
			Category:    geotrack.CategoryNature,
			Rating:      4.8,
			Description: "Unique limestone canyons resembling a lunar landscape.",
			Image:       "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?auto=format&fit=crop&w=800&q=80",
			Audio:       "audio/bozzhyra.mp3",
		},
		{
			ID:          2,
			Name:        "Charyn Canyon",
			Region:      "Almaty Region",
			Lat:         43.5,
			Lng:         79.2,
			Category:    geotrack.CategoryNature,
			Rating:      4.9,
			Description: "A majestic canyon on the Charyn river, about twelve million years old.",
			Image:       "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=800&q=80",
			Audio:       "audio/charyn.mp3",
		},
		{
			ID:          3,
			Name:        "Tamgaly Tas",
			Region:      "Zhambyl Region",
			Lat:         43.8,
			Lng:         75.5,
			Category:    geotrack.CategoryHistory,
			Rating:      4.7,
			Description: "Ancient petroglyphs and Buddhist inscriptions carved into the rocks.",
			Image:       "https://images.unsplash.com/photo-1540206395-68808572332f?auto=format&fit=crop&w=800&q=80",
			Audio:       "audio/tamgaly.mp3",
		},
		{
			ID:          4,
			Name:        "Baiterek",
			Region:      "Astana",
			Lat:         51.128,
			Lng:         71.430,
			Category:    geotrack.CategoryArchitecture,
			Rating:      4.6,
			Description: "Monument and observation tower, the symbol of Astana.",
			Image:       "https://images.unsplash.com/photo-1548013146-72479768bada?auto=format&fit=crop&w=800&q=80",
			Audio:       "audio/baiterek.mp3",
		},
		{
			ID:          5,
			Name:        "Singing Dune",
			Region:      "Almaty Region",
			Lat:         44.9,
			Lng:         78.2,
			Category:    geotrack.CategoryNature,
			Rating:      4.5,
			Description: "A rare dune that hums when the wind moves its sand.",
			Image:       "https://images.unsplash.com/photo-1505118380757-91f5f5632de0?auto=format&fit=crop&w=800&q=80",
			Audio:       "audio/singing_dune.mp3",
		},
	}, nil
}

// DemoRoutes returns the curated demo routes that reference the static
// places.
func DemoRoutes() []geotrack.Route {
	return []geotrack.Route{
		{
			ID:          1,
			Name:        "Mangystau: traces of ancient civilizations",
			Duration:    "3 days",
			Distance:    "450 km",
			Places:      []int{1, 5},
			Difficulty:  "medium",
			Description: "A route across the singular natural landmarks of the Mangystau region.",
		},
		{
			ID:          2,
			Name:        "Almaty and around",
			Duration:    "2 days",
			Distance:    "300 km",
			Places:      []int{2, 5},
			Difficulty:  "easy",
			Description: "The classic route through the highlights of the Almaty region.",
		},
	}
}
