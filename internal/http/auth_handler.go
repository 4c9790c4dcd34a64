package api

import (
	"encoding/json"
	"net/http"
	"time"

	"training-polls/internal/platform/apperr"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Role is the optional expected-role constraint from the role picker;
	// empty means any role is accepted.
	Role string `json:"role,omitempty"`
}

// @Summary     Log in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request  body      loginRequest  true  "Credentials with optional expected role"
// @Success     200      {object}  map[string]any
// @Failure     400      {object}  map[string]string  "invalid body"
// @Failure     401      {object}  map[string]string  "invalid credentials"
// @Failure     403      {object}  map[string]string  "role mismatch"
// @Router      /api/v1/auth/login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	sess, err := h.sessions.Login(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		errorResponse(w, err)
		return
	}

	token, err := h.jwtMgr.Generate(sess.Email, sess.Name, sess.Role, 24*time.Hour)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session": sess,
		"token":   token,
	})
}

// @Summary     Log out
// @Tags        auth
// @Security    BearerAuth
// @Success     204
// @Router      /api/v1/auth/logout [post]
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary     Current persisted session
// @Tags        auth
// @Security    BearerAuth
// @Produce     json
// @Success     200  {object}  session.Session
// @Failure     404  {object}  map[string]string  "no session"
// @Router      /api/v1/auth/session [get]
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Restore(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	if sess == nil {
		errorResponse(w, apperr.NotFound("no_session", "no active session", nil))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}
