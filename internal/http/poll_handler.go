package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"training-polls/internal/domain/poll"
	"training-polls/internal/domain/session"
	"training-polls/internal/platform/apperr"
)

type createPollRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TrainingDate string `json:"trainingDate"`
	TrainingTime string `json:"trainingTime"`
	Deadline     string `json:"deadline"`
	Location     string `json:"location"`
}

// @Summary     List polls
// @Description Active polls by default; ?all=true returns the full collection (admin only).
// @Tags        polls
// @Security    BearerAuth
// @Produce     json
// @Param       all  query     bool  false  "include expired polls"
// @Success     200  {array}   poll.Poll
// @Failure     403  {object}  map[string]string  "forbidden"
// @Router      /api/v1/polls [get]
func (h *Handler) handleListPolls(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("all") == "true" {
		if roleFromCtx(r) != session.RoleAdmin {
			errorResponse(w, apperr.Forbidden("forbidden", "insufficient permissions", nil))
			return
		}
		polls, err := h.polls.List(r.Context())
		if err != nil {
			errorResponse(w, err)
			return
		}
		writeJSON(w, http.StatusOK, polls)
		return
	}

	polls, err := h.polls.ListActive(r.Context(), time.Now())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, polls)
}

// @Summary     Get a poll
// @Tags        polls
// @Security    BearerAuth
// @Produce     json
// @Param       id   path      string  true  "Poll ID"
// @Success     200  {object}  poll.Poll
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /api/v1/polls/{id} [get]
func (h *Handler) handleGetPoll(w http.ResponseWriter, r *http.Request) {
	p, err := h.polls.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Create a poll
// @Tags        polls
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      createPollRequest  true  "Poll fields"
// @Success     201      {object}  poll.Poll
// @Failure     400      {object}  map[string]string  "invalid input"
// @Failure     403      {object}  map[string]string  "forbidden"
// @Router      /api/v1/polls [post]
func (h *Handler) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	p, err := h.polls.Create(r.Context(), poll.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		TrainingDate: req.TrainingDate,
		TrainingTime: req.TrainingTime,
		Deadline:     req.Deadline,
		Location:     req.Location,
		CreatedBy:    voterFromCtx(r).Email,
	})
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}
