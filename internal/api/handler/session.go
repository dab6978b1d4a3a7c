package handler

import (
	"encoding/json"
	"net/http"

	"coopbingo/internal/api/apierr"
	"coopbingo/internal/api/middleware"
	"coopbingo/internal/api/request"
	"coopbingo/internal/api/response"
	"coopbingo/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	sessions *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Service) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	sess, token, err := h.sessions.Create(r.Context(), req.DisplayName, req.Passcode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	setSessionCookie(w, token)
	response.JSON(w, http.StatusCreated, response.AuthResponse{
		Session: response.SessionFromModel(sess),
		Token:   token,
	})
}

// Resume handles POST /api/v1/sessions/resume
func (h *SessionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	var req request.ResumeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.SessionID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("session_id is required"))
		return
	}

	sess, token, err := h.sessions.Resume(r.Context(), req.SessionID, req.Passcode)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	setSessionCookie(w, token)
	response.JSON(w, http.StatusOK, response.AuthResponse{
		Session: response.SessionFromModel(sess),
		Token:   token,
	})
}

// Me handles GET /api/v1/sessions/me
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	response.JSON(w, http.StatusOK, response.SessionFromModel(sess))
}

// setSessionCookie mirrors the bearer token into a cookie so EventSource
// clients, which cannot set headers, can authenticate the SSE endpoint.
func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
