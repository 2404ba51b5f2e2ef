package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5cdn"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5cdn.New("GeoTrack API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps))
	r.Get("/ws/events", handleWSEvents(logger, broker))

	r.Route("/api", func(r chi.Router) {
		r.Get("/places", handleListPlaces(deps))
		r.Get("/places/{placeID}", handleGetPlace(deps))
		r.Post("/catalog/reload", handleCatalogReload(logger, deps, broker))

		r.Post("/map/sync", handleMapSync(deps))

		r.Get("/favorites", handleListFavorites(deps))
		r.Post("/favorites/{placeID}/toggle", handleToggleFavorite(deps, broker))

		r.Get("/visited", handleListVisited(deps))
		r.Post("/visited/{placeID}", handleMarkVisited(deps, broker))

		r.Get("/settings", handleGetSettings(deps))
		r.Put("/settings", handleUpdateSettings(deps, broker))

		r.Post("/auth/login", handleLogin(deps, broker))
		r.Post("/auth/register", handleRegister(deps, broker))
		r.Post("/auth/logout", handleLogout(deps, broker))
		r.Get("/auth/me", handleMe(deps))

		r.Get("/reviews", handleListReviews(deps))
		r.Post("/reviews", handleCreateReview(deps, broker))
		r.Post("/reviews/{reviewID}/like", handleLikeReview(deps, broker))
		r.Get("/reviews/summary", handleReviewSummary(deps))

		r.Get("/routes", handleListRoutes(deps))
		r.Get("/routes/{routeID}/bounds", handleRouteBounds(deps))

		r.Get("/audio/session", handleAudioSession(deps))
		r.Post("/audio/play", handleAudioPlay(deps))
		r.Post("/audio/toggle", handleAudioToggle(deps))
		r.Post("/audio/seek", handleAudioSeek(deps))
		r.Post("/audio/volume", handleAudioVolume(deps))
		r.Post("/audio/mute", handleAudioMute(deps))
		r.Post("/audio/stop", handleAudioStop(deps))
		r.Post("/audio/ended", handleAudioEnded(deps))

		r.Get("/profile", handleProfile(deps))

		r.Get("/events", handleEvents(broker))
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
