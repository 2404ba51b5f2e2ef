package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/geotrack/discovery/internal/geotrack"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin is the demo sign-in: any non-empty email and password
// pair is accepted and the identity is derived from the email's local
// part. The password is never checked or stored.
func handleLogin(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		name, _, _ := strings.Cut(req.Email, "@")
		user := geotrack.User{ID: 1, Name: name, Email: req.Email}

		if err := deps.Prefs.SaveUser(r.Context(), user); err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "user_changed"})
		broker.Publish(Event{Type: "notification", Message: "Signed in as " + user.Name})
		writeJSON(w, http.StatusOK, user)
	}
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// handleRegister is the demo sign-up: every field is required, the two
// passwords must match, and the new identity is signed in immediately.
// The id is the registration timestamp; nothing else is stored.
func handleRegister(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		if req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
			writeError(w, http.StatusBadRequest, "name, email, and both passwords are required")
			return
		}
		if req.Password != req.ConfirmPassword {
			writeError(w, http.StatusBadRequest, "passwords do not match")
			return
		}

		user := geotrack.User{
			ID:    int(time.Now().UnixMilli()),
			Name:  req.Name,
			Email: req.Email,
		}
		if err := deps.Prefs.SaveUser(r.Context(), user); err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "user_changed"})
		broker.Publish(Event{Type: "notification", Message: "Welcome, " + user.Name})
		writeJSON(w, http.StatusCreated, user)
	}
}

func handleLogout(deps Deps, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Prefs.Logout(r.Context()); err != nil {
			writeDomainError(w, err)
			return
		}

		broker.Publish(Event{Type: "user_changed"})
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleMe(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := deps.Prefs.CurrentUser()
		if user == nil {
			writeError(w, http.StatusUnauthorized, "not signed in")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
