package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-session-service/sessions"
)

const contentTypeJSON = "application/json; charset=utf-8"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type revokeResponse struct {
	Revoked bool `json:"revoked"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// LoginHandler exchanges credentials for a token pair. Unknown user and
// wrong password produce the same response body and status.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}

		pair, err := s.sessions.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			s.writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// RefreshHandler rotates a token pair. The access token may be expired; the
// refresh token must match the stored one.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request")
			return
		}

		pair, err := s.sessions.Refresh(r.Context(), req.AccessToken, req.RefreshToken)
		if err != nil {
			s.writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// RevokeHandler clears the caller's refresh session. RequireAuth has already
// established the caller's identity from a currently-valid access token.
func (s *Server) RevokeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := r.Context().Value(ContextKeyUsername).(string)
		if !ok || username == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := s.sessions.Revoke(r.Context(), username); err != nil {
			s.writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, revokeResponse{Revoked: true})
	}
}

// writeSessionError maps service errors onto HTTP statuses. Anything outside
// the session error taxonomy is a store or signing failure and surfaces as an
// internal error; the detail is logged, never returned to the client.
func (s *Server) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessions.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, sessions.ErrInvalidRefreshToken):
		writeError(w, http.StatusUnauthorized, "invalid_refresh_token")
	case errors.Is(err, sessions.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		log.Err(err).Msg("session operation failed")
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, errorResponse{Error: code})
}
