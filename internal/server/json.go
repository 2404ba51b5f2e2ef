package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/geotrack/discovery/internal/audio"
	"github.com/geotrack/discovery/internal/catalog"
	"github.com/geotrack/discovery/internal/reviews"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps sentinel errors from the domain packages onto
// HTTP statuses. Anything unrecognized is an internal error and the
// message is not leaked to the client.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reviews.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, reviews.ErrAuthRequired):
		writeError(w, http.StatusUnauthorized, "sign in required")
	case errors.Is(err, reviews.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, catalog.ErrLoadInProgress):
		writeError(w, http.StatusConflict, "catalog load already in progress")
	case errors.Is(err, audio.ErrNoAudio):
		writeError(w, http.StatusConflict, "place has no audio guide")
	case errors.Is(err, audio.ErrNoTrack):
		writeError(w, http.StatusConflict, "no track loaded")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
