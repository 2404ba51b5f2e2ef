package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type VisitedResponse struct {
	IDs    []int       `json:"ids"`
	Places []PlaceView `json:"places"`
}

// handleMarkVisited is the explicit "mark visited" command. Viewing a
// place does not mark it; the client calls this when the user confirms
// the visit. Idempotent.
func handleMarkVisited(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "placeID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		if err := deps.Prefs.AddVisited(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "place_visited", PlaceID: id})
		writeJSON(w, http.StatusOK, map[string]any{"placeId": id, "visited": true})
	}
}

func handleListVisited(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := deps.Prefs.Visited()
		if ids == nil {
			ids = []int{}
		}

		places := []PlaceView{}
		for _, id := range ids {
			if p, err := deps.Catalog.FindByID(id); err == nil {
				places = append(places, deps.placeView(p))
			}
		}

		writeJSON(w, http.StatusOK, VisitedResponse{IDs: ids, Places: places})
	}
}
