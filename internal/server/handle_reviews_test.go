package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geotrack/discovery/internal/geotrack"
)

func signIn(t *testing.T, r http.Handler) {
	t.Helper()
	body, _ := json.Marshal(LoginRequest{Email: "aigerim@example.com", Password: "demo"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegister(t *testing.T) {
	r, _ := newTestRouter(t)

	// Mismatched passwords are rejected before anything is stored.
	body, _ := json.Marshal(RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "a", ConfirmPassword: "b"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("mismatch: expected 400, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after failed register: expected 401, got %d", w.Code)
	}

	// A valid registration signs the new identity in immediately.
	body, _ = json.Marshal(RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "a", ConfirmPassword: "a"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	var me geotrack.User
	json.NewDecoder(w.Body).Decode(&me)
	if me.Name != "Dana" || me.ID == 0 {
		t.Errorf("me after register = %+v, want Dana with a non-zero id", me)
	}
}

func TestCreateReviewRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)

	body, _ := json.Marshal(ReviewRequest{PlaceID: 1, Rating: 5, Comment: "great"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body)))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCreateReviewFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	signIn(t, r)

	// Identity is derived from the email's local part.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	var me geotrack.User
	json.NewDecoder(w.Body).Decode(&me)
	if me.Name != "aigerim" {
		t.Errorf("user name = %q, want aigerim", me.Name)
	}

	body, _ := json.Marshal(ReviewRequest{PlaceID: 2, Rating: 4, Comment: "worth the drive"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created geotrack.Review
	json.NewDecoder(w.Body).Decode(&created)
	if created.UserName != "aigerim" || created.UserAvatar != "A" {
		t.Errorf("author snapshot = %q/%q, want aigerim/A", created.UserName, created.UserAvatar)
	}

	// Validation errors map to 400.
	body, _ = json.Marshal(ReviewRequest{PlaceID: 2, Rating: 9, Comment: "x"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad rating, got %d", w.Code)
	}
}

func TestLikeReviewNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews/9999/like", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestReviewSummary(t *testing.T) {
	r, _ := newTestRouter(t)
	signIn(t, r)

	for _, rating := range []int{5, 5, 4} {
		body, _ := json.Marshal(ReviewRequest{PlaceID: 1, Rating: rating, Comment: "r"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("create: expected 201, got %d", w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reviews/summary", nil))

	var summary struct {
		Count int     `json:"count"`
		Mean  float64 `json:"mean"`
	}
	json.NewDecoder(w.Body).Decode(&summary)
	if summary.Count != 3 || summary.Mean != 4.67 {
		t.Errorf("summary = %+v, want count 3 mean 4.67", summary)
	}
}

func TestProfileCounts(t *testing.T) {
	r, deps := newTestRouter(t)
	signIn(t, r)

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if _, err := deps.Prefs.ToggleFavorite(ctx, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := deps.Prefs.AddVisited(ctx, 2); err != nil {
		t.Fatalf("visited: %v", err)
	}

	body, _ := json.Marshal(ReviewRequest{PlaceID: 1, Rating: 5, Comment: "mine"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reviews", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	var profile ProfileResponse
	json.NewDecoder(w.Body).Decode(&profile)
	if profile.User == nil || profile.Favorites != 1 || profile.Visited != 1 || profile.Reviews != 1 {
		t.Errorf("profile = %+v, want 1/1/1 with a user", profile)
	}
}

func TestLogoutKeepsPreferences(t *testing.T) {
	r, deps := newTestRouter(t)
	signIn(t, r)

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if _, err := deps.Prefs.ToggleFavorite(ctx, 4); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", w.Code)
	}

	if got := deps.Prefs.Favorites(); len(got) != 1 {
		t.Errorf("favorites after logout = %v, want kept", got)
	}
}
