package filter

import (
	"slices"
	"testing"

	"github.com/geotrack/discovery/internal/geotrack"
)

func testPlaces() []geotrack.Place {
	return []geotrack.Place{
		{ID: 1, Name: "Bozzhyra", Region: "A", Category: geotrack.CategoryNature, Rating: 4.8, Description: "limestone canyons"},
		{ID: 2, Name: "Old Fort", Region: "B", Category: geotrack.CategoryHistory, Rating: 4.0, Description: "ancient walls"},
		{ID: 3, Name: "Opera House", Region: "B", Category: geotrack.CategoryCulture, Rating: 3.2, Description: "city stage"},
		{ID: 4, Name: "Glass Tower", Region: "A", Category: geotrack.CategoryArchitecture, Rating: 2.5, Description: "modern canyon of glass"},
	}
}

func TestVisibleCategoryFilter(t *testing.T) {
	places := []geotrack.Place{
		{ID: 1, Category: geotrack.CategoryNature, Region: "A", Rating: 4.8},
		{ID: 2, Category: geotrack.CategoryHistory, Region: "B", Rating: 4.0},
	}
	c := Criteria{Categories: []geotrack.Category{geotrack.CategoryNature}}

	got := Visible(places, c)
	if !slices.Equal(got, []int{1}) {
		t.Errorf("visible = %v, want [1]", got)
	}
}

func TestVisibleDeterministic(t *testing.T) {
	places := testPlaces()
	c := Criteria{Region: "B", MinRating: 3, Search: "a"}

	first := Visible(places, c)
	second := Visible(places, c)
	if !slices.Equal(first, second) {
		t.Errorf("two calls differ: %v vs %v", first, second)
	}
}

func TestVisibleRatingMonotonic(t *testing.T) {
	places := testPlaces()

	prev := Visible(places, Criteria{MinRating: 0})
	for threshold := 1; threshold <= 5; threshold++ {
		cur := Visible(places, Criteria{MinRating: threshold})
		if len(cur) > len(prev) {
			t.Fatalf("raising threshold to %d grew the set: %v -> %v", threshold, prev, cur)
		}
		for _, id := range cur {
			if !slices.Contains(prev, id) {
				t.Fatalf("threshold %d surfaced id %d absent at lower threshold", threshold, id)
			}
		}
		prev = cur
	}
}

func TestEmptyCategoriesMeansAll(t *testing.T) {
	places := testPlaces()

	all := Visible(places, Criteria{})
	if len(all) != len(places) {
		t.Fatalf("empty criteria: expected all %d places, got %v", len(places), all)
	}

	// Adding a category to an empty set never grows the result.
	narrowed := Visible(places, Criteria{Categories: []geotrack.Category{geotrack.CategoryNature}})
	if len(narrowed) > len(all) {
		t.Errorf("category filter grew the set: %v", narrowed)
	}
}

func TestSearchComposesWithStructuredFilters(t *testing.T) {
	places := testPlaces()

	// "canyon" alone matches 1 (description) and 4 (description).
	bySearch := Visible(places, Criteria{Search: "CANYON"})
	if !slices.Equal(bySearch, []int{1, 4}) {
		t.Fatalf("search only: got %v, want [1 4]", bySearch)
	}

	// Combined with a rating floor, search narrows — it does not
	// replace the structured filters.
	composed := Visible(places, Criteria{Search: "canyon", MinRating: 4})
	if !slices.Equal(composed, []int{1}) {
		t.Errorf("composed: got %v, want [1]", composed)
	}
}

func TestRegionExactMatch(t *testing.T) {
	places := testPlaces()

	got := Visible(places, Criteria{Region: "A"})
	if !slices.Equal(got, []int{1, 4}) {
		t.Errorf("region A: got %v, want [1 4]", got)
	}

	// Substrings must not match.
	if got := Visible(places, Criteria{Region: "A "}); len(got) != 0 {
		t.Errorf("region %q matched %v, want none", "A ", got)
	}
}

func TestSearchMatchesNameRegionDescription(t *testing.T) {
	places := testPlaces()

	cases := []struct {
		term string
		want []int
	}{
		{"bozzhyra", []int{1}}, // name, case-insensitive
		{"b", []int{1, 2, 3}},  // region B plus Bozzhyra
		{"stage", []int{3}},    // description
		{"", []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		if got := Visible(places, Criteria{Search: tc.term}); !slices.Equal(got, tc.want) {
			t.Errorf("search %q: got %v, want %v", tc.term, got, tc.want)
		}
	}
}
