// Package filter computes the visible subset of the catalog for a set
// of user criteria. One linear scan over the in-memory place list; at
// this data scale no index is warranted, and the contract is a
// deterministic pure function of its inputs.
package filter

import (
	"slices"
	"strings"

	"github.com/geotrack/discovery/internal/geotrack"
)

type Criteria struct {
	// Categories empty means all categories.
	Categories []geotrack.Category `json:"categories,omitempty"`
	// Region empty means all regions; otherwise exact match.
	Region string `json:"region,omitempty"`
	// MinRating is the inclusive lower bound, 0–5.
	MinRating int `json:"minRating,omitempty"`
	// Search is a case-insensitive substring matched against name,
	// region, and description.
	Search string `json:"search,omitempty"`
}

// Visible returns the ids of places matching every criterion, sorted
// ascending. Search composes with the structured filters: a non-empty
// term narrows whatever categories/region/rating already selected.
func Visible(places []geotrack.Place, c Criteria) []int {
	ids := []int{}
	for _, p := range places {
		if Matches(p, c) {
			ids = append(ids, p.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

func Matches(p geotrack.Place, c Criteria) bool {
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, p.Category) {
		return false
	}
	if c.Region != "" && p.Region != c.Region {
		return false
	}
	if p.Rating < float64(c.MinRating) {
		return false
	}
	if term := strings.ToLower(strings.TrimSpace(c.Search)); term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Region), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	return true
}
