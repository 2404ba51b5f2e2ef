package server

import (
	"net/http"

	"github.com/geotrack/discovery/internal/geotrack"
	"github.com/geotrack/discovery/internal/prefs"
)

func handleGetSettings(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Prefs.Settings())
	}
}

// handleUpdateSettings merges a partial settings update. Fields absent
// from the body keep their current value.
func handleUpdateSettings(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch prefs.SettingsPatch
		if err := readJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if patch.Theme != nil && *patch.Theme != geotrack.ThemeLight && *patch.Theme != geotrack.ThemeDark {
			writeError(w, http.StatusBadRequest, "theme must be light or dark")
			return
		}

		settings, err := deps.Prefs.UpdateSettings(r.Context(), patch)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "settings_updated", Theme: settings.Theme})
		writeJSON(w, http.StatusOK, settings)
	}
}
