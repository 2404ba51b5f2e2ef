package server

import (
	"net/http"

	"github.com/geotrack/discovery/internal/filter"
	"github.com/geotrack/discovery/internal/geotrack"
	"github.com/geotrack/discovery/internal/markers"
)

// MapSyncRequest carries the marker ids the client currently shows,
// plus the active filter criteria.
type MapSyncRequest struct {
	Shown      []int               `json:"shown"`
	Categories []geotrack.Category `json:"categories"`
	Region     string              `json:"region"`
	MinRating  int                 `json:"minRating"`
	Search     string              `json:"search"`
}

type MapSyncResponse struct {
	markers.Diff
	markers.Stats
}

// handleMapSync computes the minimal marker delta: what the client must
// add and remove to show exactly the visible set. Markers already on
// screen are never touched.
func handleMapSync(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MapSyncRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		places := deps.Catalog.Places()
		visible := filter.Visible(places, filter.Criteria{
			Categories: req.Categories,
			Region:     req.Region,
			MinRating:  req.MinRating,
			Search:     req.Search,
		})

		writeJSON(w, http.StatusOK, MapSyncResponse{
			Diff:  markers.Reconcile(visible, req.Shown),
			Stats: markers.Stats{Visible: len(visible), Total: len(places)},
		})
	}
}
