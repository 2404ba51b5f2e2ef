package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/geotrack/discovery/internal/audio"
	"github.com/geotrack/discovery/internal/geotrack"
	"github.com/geotrack/discovery/internal/reviews"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "GeoTrack API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the GeoTrack tourism discovery app.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/places
	listPlaces, _ := r.NewOperationContext(http.MethodGet, "/api/places")
	listPlaces.SetSummary("List places")
	listPlaces.SetDescription("Returns the places matching the filter criteria. All criteria are combined; search composes with the structured filters.")
	listPlaces.AddRespStructure(PlacesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listPlaces)

	// GET /api/places/{placeID}
	getPlace, _ := r.NewOperationContext(http.MethodGet, "/api/places/{placeID}")
	getPlace.SetSummary("Get place")
	getPlace.SetDescription("Returns one place with the viewer's favorite/visited flags. Viewing does not mark the place visited.")
	getPlace.AddRespStructure(PlaceView{}, openapi.WithHTTPStatus(http.StatusOK))
	getPlace.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getPlace)

	// POST /api/catalog/reload
	reload, _ := r.NewOperationContext(http.MethodPost, "/api/catalog/reload")
	reload.SetSummary("Reload catalog")
	reload.SetDescription("Re-runs the place loader. Concurrent reloads are rejected.")
	reload.AddRespStructure(CatalogReloadResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	reload.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(reload)

	// POST /api/map/sync
	mapSync, _ := r.NewOperationContext(http.MethodPost, "/api/map/sync")
	mapSync.SetSummary("Synchronize map markers")
	mapSync.SetDescription("Returns the minimal marker delta between what the client shows and what the filters make visible.")
	mapSync.AddReqStructure(MapSyncRequest{})
	mapSync.AddRespStructure(MapSyncResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	mapSync.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(mapSync)

	// GET /api/favorites
	listFavorites, _ := r.NewOperationContext(http.MethodGet, "/api/favorites")
	listFavorites.SetSummary("List favorites")
	listFavorites.AddRespStructure(FavoritesResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listFavorites)

	// POST /api/favorites/{placeID}/toggle
	toggleFavorite, _ := r.NewOperationContext(http.MethodPost, "/api/favorites/{placeID}/toggle")
	toggleFavorite.SetSummary("Toggle favorite")
	toggleFavorite.SetDescription("Flips the place's membership in the favorites set and persists it.")
	toggleFavorite.AddRespStructure(FavoriteToggleResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	toggleFavorite.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(toggleFavorite)

	// GET /api/visited
	listVisited, _ := r.NewOperationContext(http.MethodGet, "/api/visited")
	listVisited.SetSummary("List visited places")
	listVisited.AddRespStructure(VisitedResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listVisited)

	// POST /api/visited/{placeID}
	markVisited, _ := r.NewOperationContext(http.MethodPost, "/api/visited/{placeID}")
	markVisited.SetSummary("Mark place visited")
	markVisited.SetDescription("Idempotent. Once visited, a place stays visited.")
	markVisited.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	markVisited.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(markVisited)

	// GET /api/settings
	getSettings, _ := r.NewOperationContext(http.MethodGet, "/api/settings")
	getSettings.SetSummary("Get settings")
	getSettings.AddRespStructure(geotrack.Settings{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSettings)

	// PUT /api/settings
	putSettings, _ := r.NewOperationContext(http.MethodPut, "/api/settings")
	putSettings.SetSummary("Update settings")
	putSettings.SetDescription("Partial update. Fields absent from the body keep their current value.")
	putSettings.AddRespStructure(geotrack.Settings{}, openapi.WithHTTPStatus(http.StatusOK))
	putSettings.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putSettings)

	// POST /api/auth/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/auth/login")
	postLogin.SetSummary("Sign in")
	postLogin.SetDescription("Demo sign-in: accepts any non-empty email and password, derives the identity from the email.")
	postLogin.AddReqStructure(LoginRequest{})
	postLogin.AddRespStructure(geotrack.User{}, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postLogin)

	// POST /api/auth/register
	postRegister, _ := r.NewOperationContext(http.MethodPost, "/api/auth/register")
	postRegister.SetSummary("Sign up")
	postRegister.SetDescription("Demo sign-up: requires every field, the passwords must match, and the new identity is signed in immediately.")
	postRegister.AddReqStructure(RegisterRequest{})
	postRegister.AddRespStructure(geotrack.User{}, openapi.WithHTTPStatus(http.StatusCreated))
	postRegister.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postRegister)

	// POST /api/auth/logout
	postLogout, _ := r.NewOperationContext(http.MethodPost, "/api/auth/logout")
	postLogout.SetSummary("Sign out")
	postLogout.SetDescription("Clears the identity. Favorites, visited places, and settings survive.")
	postLogout.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	_ = r.AddOperation(postLogout)

	// GET /api/auth/me
	getMe, _ := r.NewOperationContext(http.MethodGet, "/api/auth/me")
	getMe.SetSummary("Current user")
	getMe.AddRespStructure(geotrack.User{}, openapi.WithHTTPStatus(http.StatusOK))
	getMe.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getMe)

	// GET /api/reviews
	listReviews, _ := r.NewOperationContext(http.MethodGet, "/api/reviews")
	listReviews.SetSummary("List reviews")
	listReviews.SetDescription("Most recent first. Pass placeId to filter to one place.")
	listReviews.AddRespStructure([]geotrack.Review{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listReviews)

	// POST /api/reviews
	createReview, _ := r.NewOperationContext(http.MethodPost, "/api/reviews")
	createReview.SetSummary("Create review")
	createReview.SetDescription("Requires a signed-in user. Rating must be 1-5 and the comment non-empty.")
	createReview.AddReqStructure(ReviewRequest{})
	createReview.AddRespStructure(geotrack.Review{}, openapi.WithHTTPStatus(http.StatusCreated))
	createReview.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	createReview.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(createReview)

	// POST /api/reviews/{reviewID}/like
	likeReview, _ := r.NewOperationContext(http.MethodPost, "/api/reviews/{reviewID}/like")
	likeReview.SetSummary("Like review")
	likeReview.SetDescription("Increments the like counter by one. Repeat likes are not de-duplicated.")
	likeReview.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	likeReview.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(likeReview)

	// GET /api/reviews/summary
	reviewSummary, _ := r.NewOperationContext(http.MethodGet, "/api/reviews/summary")
	reviewSummary.SetSummary("Review summary")
	reviewSummary.SetDescription("Count, mean rating rounded to two decimals, and per-star histogram.")
	reviewSummary.AddRespStructure(reviews.Summary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(reviewSummary)

	// GET /api/routes
	listRoutes, _ := r.NewOperationContext(http.MethodGet, "/api/routes")
	listRoutes.SetSummary("List routes")
	listRoutes.AddRespStructure([]geotrack.Route{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listRoutes)

	// GET /api/routes/{routeID}/bounds
	routeBounds, _ := r.NewOperationContext(http.MethodGet, "/api/routes/{routeID}/bounds")
	routeBounds.SetSummary("Route bounds")
	routeBounds.SetDescription("Resolves the route's places to coordinates for the map's fitBounds call. Stale place ids are skipped.")
	routeBounds.AddRespStructure(RouteBoundsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	routeBounds.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(routeBounds)

	// GET /api/audio/session
	audioSession, _ := r.NewOperationContext(http.MethodGet, "/api/audio/session")
	audioSession.SetSummary("Audio session state")
	audioSession.AddRespStructure(audio.State{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(audioSession)

	// POST /api/audio/play
	audioPlay, _ := r.NewOperationContext(http.MethodPost, "/api/audio/play")
	audioPlay.SetSummary("Play audio guide")
	audioPlay.SetDescription("Starts the place's audio guide from the beginning.")
	audioPlay.AddReqStructure(AudioPlayRequest{})
	audioPlay.AddRespStructure(audio.State{}, openapi.WithHTTPStatus(http.StatusOK))
	audioPlay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	audioPlay.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(audioPlay)

	// POST /api/audio/stop
	audioStop, _ := r.NewOperationContext(http.MethodPost, "/api/audio/stop")
	audioStop.SetSummary("Stop audio guide")
	audioStop.SetDescription("Pauses playback without discarding the current track.")
	audioStop.AddRespStructure(audio.State{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(audioStop)

	// GET /api/profile
	getProfile, _ := r.NewOperationContext(http.MethodGet, "/api/profile")
	getProfile.SetSummary("Profile")
	getProfile.SetDescription("The identity plus the favorite/visited/review counters for the profile page.")
	getProfile.AddRespStructure(ProfileResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getProfile)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream for real-time UI updates.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws/events
	getWSEvents, _ := r.NewOperationContext(http.MethodGet, "/ws/events")
	getWSEvents.SetSummary("WebSocket event stream")
	getWSEvents.SetDescription("Upgrades to a WebSocket that forwards the same events as /api/events.")
	getWSEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
