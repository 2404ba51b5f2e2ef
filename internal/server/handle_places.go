package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/geotrack/discovery/internal/filter"
	"github.com/geotrack/discovery/internal/geotrack"
)

// PlaceView is a place plus the viewer's relationship to it.
type PlaceView struct {
	geotrack.Place
	Favorite bool `json:"favorite"`
	Visited  bool `json:"visited"`
}

type PlacesResponse struct {
	Places  []PlaceView `json:"places"`
	Visible int         `json:"visible"`
	Total   int         `json:"total"`
}

// criteriaFromQuery decodes the filter criteria from query parameters:
// categories (comma-separated), region, minRating, q.
func criteriaFromQuery(q url.Values) filter.Criteria {
	var c filter.Criteria
	if raw := q.Get("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				c.Categories = append(c.Categories, geotrack.Category(part))
			}
		}
	}
	c.Region = q.Get("region")
	if n, err := strconv.Atoi(q.Get("minRating")); err == nil {
		c.MinRating = n
	}
	c.Search = q.Get("q")
	return c
}

func (d Deps) placeView(p geotrack.Place) PlaceView {
	return PlaceView{
		Place:    p,
		Favorite: d.Prefs.IsFavorite(p.ID),
		Visited:  d.Prefs.IsVisited(p.ID),
	}
}

func handleListPlaces(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		places := deps.Catalog.Places()
		crit := criteriaFromQuery(r.URL.Query())

		views := []PlaceView{}
		for _, p := range places {
			if filter.Matches(p, crit) {
				views = append(views, deps.placeView(p))
			}
		}

		writeJSON(w, http.StatusOK, PlacesResponse{
			Places:  views,
			Visible: len(views),
			Total:   len(places),
		})
	}
}

func handleGetPlace(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "placeID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid place id")
			return
		}

		p, err := deps.Catalog.FindByID(id)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deps.placeView(p))
	}
}

type CatalogReloadResponse struct {
	Count int `json:"count"`
}

func handleCatalogReload(logger *slog.Logger, deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Catalog.Load(r.Context(), deps.Loader); err != nil {
			logger.Warn("catalog reload failed", "error", err)
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "catalog_reloaded"})
		writeJSON(w, http.StatusOK, CatalogReloadResponse{Count: deps.Catalog.Len()})
	}
}
