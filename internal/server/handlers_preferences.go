package server

import (
	"encoding/json"
	"net/http"
)

// ThemePreference is the request/response body for the theme preference.
type ThemePreference struct {
	Theme string `json:"theme"`
}

// handleGetTheme returns the persisted theme, defaulting to light when the
// user has never toggled it.
func (s *Server) handleGetTheme(w http.ResponseWriter, _ *http.Request) {
	theme, err := s.store.GetTheme()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read theme: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ThemePreference{Theme: theme})
}

// handleSetTheme persists the theme on each toggle.
func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var pref ThemePreference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.store.SetTheme(pref.Theme); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, pref)
}
