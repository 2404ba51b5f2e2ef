package server

import (
	"net/http"
)

type AudioPlayRequest struct {
	PlaceID int `json:"placeId"`
}

type AudioSeekRequest struct {
	Position float64 `json:"position"`
}

type AudioVolumeRequest struct {
	Volume float64 `json:"volume"`
}

func handleAudioSession(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Audio.State())
	}
}

func handleAudioPlay(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AudioPlayRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := deps.Audio.Play(req.PlaceID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func handleAudioToggle(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := deps.Audio.Toggle()
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func handleAudioSeek(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AudioSeekRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		state, err := deps.Audio.Seek(req.Position)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}

func handleAudioVolume(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AudioVolumeRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		writeJSON(w, http.StatusOK, deps.Audio.SetVolume(req.Volume))
	}
}

func handleAudioMute(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Audio.ToggleMute())
	}
}

// handleAudioStop pauses playback without discarding the track, for
// the client hiding its player.
func handleAudioStop(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Audio.Stop())
	}
}

func handleAudioEnded(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, deps.Audio.Ended())
	}
}
