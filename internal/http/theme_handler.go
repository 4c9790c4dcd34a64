package api

import (
	"encoding/json"
	"net/http"

	"training-polls/internal/platform/apperr"
)

type themeRequest struct {
	Theme string `json:"theme"`
}

// @Summary     Get the UI theme
// @Tags        theme
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      /api/v1/theme [get]
func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.prefs.Theme(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": theme})
}

// @Summary     Set the UI theme
// @Tags        theme
// @Accept      json
// @Param       request  body  themeRequest  true  "light or dark"
// @Success     204
// @Failure     400  {object}  map[string]string  "invalid theme"
// @Router      /api/v1/theme [put]
func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	if err := h.prefs.SetTheme(r.Context(), req.Theme); err != nil {
		errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
