package server

import (
	"net/http"

	"github.com/geotrack/discovery/internal/geotrack"
)

// ProfileResponse drives the profile page: the identity plus the
// counters shown under it.
type ProfileResponse struct {
	User      *geotrack.User `json:"user"`
	Favorites int            `json:"favorites"`
	Visited   int            `json:"visited"`
	Reviews   int            `json:"reviews"`
}

func handleProfile(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := ProfileResponse{
			User:      deps.Prefs.CurrentUser(),
			Favorites: len(deps.Prefs.Favorites()),
			Visited:   len(deps.Prefs.Visited()),
		}

		if resp.User != nil {
			n, err := deps.Reviews.CountByUser(r.Context(), resp.User.ID)
			if err != nil {
				writeDomainError(w, err)
				return
			}
			resp.Reviews = n
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
