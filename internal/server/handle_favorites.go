package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type FavoriteToggleResponse struct {
	PlaceID  int  `json:"placeId"`
	Favorite bool `json:"favorite"`
}

type FavoritesResponse struct {
	IDs    []int       `json:"ids"`
	Places []PlaceView `json:"places"`
}

func handleToggleFavorite(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "placeID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		favorite, err := deps.Prefs.ToggleFavorite(r.Context(), id)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "favorite_toggled", PlaceID: id, Favorite: favorite})
		writeJSON(w, http.StatusOK, FavoriteToggleResponse{PlaceID: id, Favorite: favorite})
	}
}

func handleListFavorites(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids := deps.Prefs.Favorites()
		if ids == nil {
			ids = []int{}
		}

		// Ids pointing at places no longer in the catalog stay in the
		// preference but resolve to nothing here.
		places := []PlaceView{}
		for _, id := range ids {
			if p, err := deps.Catalog.FindByID(id); err == nil {
				places = append(places, deps.placeView(p))
			}
		}

		writeJSON(w, http.StatusOK, FavoritesResponse{IDs: ids, Places: places})
	}
}
