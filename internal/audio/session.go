// Package audio tracks the audio-guide session: which place is playing
// and where playback stands. The transport itself (the media element)
// lives in the client; the server only keeps session state so the UI
// can restore it across views.
package audio

import (
	"errors"
	"sync"

	"github.com/geotrack/discovery/internal/catalog"
	"github.com/geotrack/discovery/internal/geotrack"
)

var (
	ErrNoTrack = errors.New("no track loaded")
	ErrNoAudio = errors.New("place has no audio guide")
)

const defaultVolume = 0.8

// State is a snapshot of the session for the client.
type State struct {
	PlaceID  int     `json:"placeId,omitempty"`
	Title    string  `json:"title,omitempty"`
	Track    string  `json:"track,omitempty"`
	Playing  bool    `json:"playing"`
	Position float64 `json:"position"` // percent, 0–100
	Volume   float64 `json:"volume"`   // 0.0–1.0
}

type Session struct {
	mu         sync.Mutex
	catalog    *catalog.Catalog
	current    *geotrack.Place
	playing    bool
	position   float64
	volume     float64
	prevVolume float64
}

func NewSession(c *catalog.Catalog) *Session {
	return &Session{catalog: c, volume: defaultVolume, prevVolume: defaultVolume}
}

// Play starts the audio guide for placeID from the beginning. Fails
// with catalog.ErrNotFound for an unknown place and ErrNoAudio when
// the place carries no audio reference.
func (s *Session) Play(placeID int) (State, error) {
	p, err := s.catalog.FindByID(placeID)
	if err != nil {
		return State{}, err
	}
	if p.Audio == "" {
		return State{}, ErrNoAudio
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &p
	s.playing = true
	s.position = 0
	return s.snapshot(), nil
}

// Toggle flips between playing and paused.
func (s *Session) Toggle() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return State{}, ErrNoTrack
	}
	s.playing = !s.playing
	return s.snapshot(), nil
}

// Seek moves the position to a percentage of the track, clamped to
// 0–100.
func (s *Session) Seek(percent float64) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return State{}, ErrNoTrack
	}
	s.position = clamp(percent, 0, 100)
	return s.snapshot(), nil
}

// SetVolume clamps to 0.0–1.0. A non-zero volume is remembered so
// unmuting can restore it.
func (s *Session) SetVolume(v float64) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clamp(v, 0, 1)
	if s.volume > 0 {
		s.prevVolume = s.volume
	}
	return s.snapshot()
}

// ToggleMute drops the volume to zero, or restores the last non-zero
// volume.
func (s *Session) ToggleMute() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.volume > 0 {
		s.prevVolume = s.volume
		s.volume = 0
	} else {
		s.volume = s.prevVolume
		if s.volume == 0 {
			s.volume = defaultVolume
		}
	}
	return s.snapshot()
}

// Ended records the client's "ended" notification: playback stops at
// the end of the track.
func (s *Session) Ended() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.playing = false
		s.position = 100
	}
	return s.snapshot()
}

// Stop pauses playback without discarding the current track, matching
// the player being hidden.
func (s *Session) Stop() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	return s.snapshot()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() State {
	st := State{
		Playing:  s.playing,
		Position: s.position,
		Volume:   s.volume,
	}
	if s.current != nil {
		st.PlaceID = s.current.ID
		st.Title = s.current.Name
		st.Track = s.current.Audio
	}
	return st
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
