package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/geotrack/discovery/internal/geotrack"
)

type ReviewRequest struct {
	PlaceID int    `json:"placeId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func handleListReviews(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			list []geotrack.Review
			err  error
		)
		if raw := r.URL.Query().Get("placeId"); raw != "" {
			placeID, convErr := strconv.Atoi(raw)
			if convErr != nil {
				writeError(w, http.StatusBadRequest, "invalid placeId")
				return
			}
			list, err = deps.Reviews.ListByPlace(r.Context(), placeID)
		} else {
			list, err = deps.Reviews.List(r.Context())
		}
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

func handleCreateReview(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReviewRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		review, err := deps.Reviews.Add(r.Context(), req.PlaceID, req.Rating, req.Comment)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "review_added", PlaceID: review.PlaceID, ReviewID: review.ID})
		writeJSON(w, http.StatusCreated, review)
	}
}

func handleLikeReview(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid review id")
			return
		}

		if err := deps.Reviews.Like(r.Context(), id); err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "review_liked", ReviewID: id})
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleReviewSummary(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := deps.Reviews.Summary(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
