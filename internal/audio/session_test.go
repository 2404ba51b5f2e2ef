package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/geotrack/discovery/internal/catalog"
	"github.com/geotrack/discovery/internal/geotrack"
)

type twoPlaceLoader struct{}

func (twoPlaceLoader) Load(_ context.Context) ([]geotrack.Place, error) {
	return []geotrack.Place{
		{ID: 1, Name: "Bozzhyra", Audio: "audio/bozzhyra.mp3"},
		{ID: 2, Name: "Silent Hill", Audio: ""},
	}, nil
}

func testSession(t *testing.T) *Session {
	t.Helper()
	c := catalog.New()
	if err := c.Load(context.Background(), twoPlaceLoader{}); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewSession(c)
}

func TestPlay(t *testing.T) {
	s := testSession(t)

	st, err := s.Play(1)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !st.Playing || st.PlaceID != 1 || st.Track != "audio/bozzhyra.mp3" {
		t.Errorf("unexpected state: %+v", st)
	}
	if st.Volume != 0.8 {
		t.Errorf("volume = %v, want default 0.8", st.Volume)
	}
}

func TestPlayErrors(t *testing.T) {
	s := testSession(t)

	if _, err := s.Play(2); !errors.Is(err, ErrNoAudio) {
		t.Errorf("expected ErrNoAudio, got %v", err)
	}
	if _, err := s.Play(99); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected catalog.ErrNotFound, got %v", err)
	}
	if _, err := s.Toggle(); !errors.Is(err, ErrNoTrack) {
		t.Errorf("toggle without track: expected ErrNoTrack, got %v", err)
	}
}

func TestToggleAndEnded(t *testing.T) {
	s := testSession(t)
	if _, err := s.Play(1); err != nil {
		t.Fatalf("play: %v", err)
	}

	st, err := s.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if st.Playing {
		t.Error("expected paused after toggle")
	}

	st, err = s.Toggle()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !st.Playing {
		t.Error("expected playing after second toggle")
	}

	st = s.Ended()
	if st.Playing || st.Position != 100 {
		t.Errorf("after ended: %+v", st)
	}
}

func TestSeekClamps(t *testing.T) {
	s := testSession(t)
	if _, err := s.Play(1); err != nil {
		t.Fatalf("play: %v", err)
	}

	st, err := s.Seek(150)
	if err != nil {
		t.Fatalf("seek: %v", err)
	}
	if st.Position != 100 {
		t.Errorf("position = %v, want clamped to 100", st.Position)
	}

	st, _ = s.Seek(-5)
	if st.Position != 0 {
		t.Errorf("position = %v, want clamped to 0", st.Position)
	}
}

func TestMuteRestoresVolume(t *testing.T) {
	s := testSession(t)

	st := s.SetVolume(0.5)
	if st.Volume != 0.5 {
		t.Fatalf("volume = %v, want 0.5", st.Volume)
	}

	st = s.ToggleMute()
	if st.Volume != 0 {
		t.Errorf("muted volume = %v, want 0", st.Volume)
	}

	st = s.ToggleMute()
	if st.Volume != 0.5 {
		t.Errorf("restored volume = %v, want 0.5", st.Volume)
	}
}
