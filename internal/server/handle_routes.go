package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type RouteBoundsResponse struct {
	RouteID int          `json:"routeId"`
	Bounds  [][2]float64 `json:"bounds"`
}

func handleListRoutes(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Catalog.Routes())
	}
}

func handleRouteBounds(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "routeID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid route id")
			return
		}

		bounds, err := deps.Catalog.Bounds(id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, RouteBoundsResponse{RouteID: id, Bounds: bounds})
	}
}
