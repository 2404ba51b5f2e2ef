// Package prefs owns the user's favorites, visited set, settings, and
// identity, with write-through persistence to a local key-value store.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/geotrack/discovery/internal/geotrack"
)

// Storage keys, one independent entry per preference field.
const (
	keyUser      = "geotrack_user"
	keyFavorites = "geotrack_favorites"
	keyVisited   = "geotrack_visited"
	keySettings  = "geotrack_settings"
)

type Store struct {
	mu        sync.Mutex
	kv        KV
	logger    *slog.Logger
	favorites []int
	visited   []int
	settings  geotrack.Settings
	user      *geotrack.User
}

// New hydrates the store from kv. Each entry is read independently: a
// missing or malformed entry falls back to that field's default
// without affecting the other three.
func New(ctx context.Context, kv KV, logger *slog.Logger) *Store {
	s := &Store{
		kv:       kv,
		logger:   logger,
		settings: geotrack.DefaultSettings(),
	}

	s.favorites = s.loadIDs(ctx, keyFavorites)
	s.visited = s.loadIDs(ctx, keyVisited)

	if raw, err := s.get(ctx, keySettings); raw != nil {
		var st geotrack.Settings
		if err := json.Unmarshal(raw, &st); err != nil {
			logger.Warn("corrupt preference entry, using default", "key", keySettings, "error", err)
		} else {
			s.settings = st
		}
	} else if err != nil {
		logger.Warn("reading preference entry", "key", keySettings, "error", err)
	}

	if raw, err := s.get(ctx, keyUser); raw != nil {
		var u geotrack.User
		if err := json.Unmarshal(raw, &u); err != nil {
			logger.Warn("corrupt preference entry, using default", "key", keyUser, "error", err)
		} else {
			s.user = &u
		}
	} else if err != nil {
		logger.Warn("reading preference entry", "key", keyUser, "error", err)
	}

	return s
}

// get normalizes "never written" to (nil, nil).
func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNoEntry) {
		return nil, nil
	}
	return raw, err
}

func (s *Store) loadIDs(ctx context.Context, key string) []int {
	raw, err := s.get(ctx, key)
	if err != nil {
		s.logger.Warn("reading preference entry", "key", key, "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Warn("corrupt preference entry, using default", "key", key, "error", err)
		return nil
	}
	return ids
}

func (s *Store) persistIDs(ctx context.Context, key string, ids []int) error {
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}

// ToggleFavorite flips placeID's membership in the favorites set and
// persists the whole collection before returning. The bool is true
// when the place is now a favorite. placeID need not exist in the
// catalog. On a write failure the in-memory set is left untouched, so
// memory and the persisted mirror never diverge.
func (s *Store) ToggleFavorite(ctx context.Context, placeID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.favorites, placeID)
	next := slices.Clone(s.favorites)
	if idx >= 0 {
		next = slices.Delete(next, idx, idx+1)
	} else {
		next = append(next, placeID)
	}
	if err := s.persistIDs(ctx, keyFavorites, next); err != nil {
		return false, err
	}
	s.favorites = next
	return idx < 0, nil
}

// AddVisited is idempotent: a place already marked visited triggers no
// write. Once visited, a place stays visited. Like ToggleFavorite, the
// in-memory set only advances when the write succeeds.
func (s *Store) AddVisited(ctx context.Context, placeID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.visited, placeID) {
		return nil
	}
	next := append(slices.Clone(s.visited), placeID)
	if err := s.persistIDs(ctx, keyVisited, next); err != nil {
		return err
	}
	s.visited = next
	return nil
}

// SettingsPatch is a partial settings update. Nil fields keep their
// current value.
type SettingsPatch struct {
	Theme         *string `json:"theme"`
	Notifications *bool   `json:"notifications"`
	AutoPlay      *bool   `json:"autoPlay"`
	OfflineMode   *bool   `json:"offlineMode"`
}

// UpdateSettings shallow-merges patch into the current settings and
// persists the merged record. The in-memory state only advances if the
// write succeeds.
func (s *Store) UpdateSettings(ctx context.Context, patch SettingsPatch) (geotrack.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	if patch.Theme != nil {
		next.Theme = *patch.Theme
	}
	if patch.Notifications != nil {
		next.Notifications = *patch.Notifications
	}
	if patch.AutoPlay != nil {
		next.AutoPlay = *patch.AutoPlay
	}
	if patch.OfflineMode != nil {
		next.OfflineMode = *patch.OfflineMode
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return s.settings, err
	}
	if err := s.kv.Set(ctx, keySettings, raw); err != nil {
		return s.settings, err
	}
	s.settings = next
	return next, nil
}

func (s *Store) SaveUser(ctx context.Context, u geotrack.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, keyUser, raw); err != nil {
		return err
	}
	s.user = &u
	return nil
}

// Logout clears the identity only; favorites, visited, and settings
// survive.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, keyUser); err != nil {
		return err
	}
	s.user = nil
	return nil
}

func (s *Store) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.favorites)
}

func (s *Store) Visited() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.visited)
}

func (s *Store) IsFavorite(placeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.favorites, placeID)
}

func (s *Store) IsVisited(placeID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.visited, placeID)
}

func (s *Store) Settings() geotrack.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// CurrentUser returns a copy of the signed-in user, or nil for guests.
func (s *Store) CurrentUser() *geotrack.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
