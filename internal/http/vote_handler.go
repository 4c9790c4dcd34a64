package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"training-polls/internal/platform/apperr"
	"training-polls/internal/worker"
)

type castVoteRequest struct {
	Answer string `json:"answer"`
}

// @Summary     Cast a vote
// @Tags        votes
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id       path      string           true  "Poll ID"
// @Param       request  body      castVoteRequest  true  "yes or no"
// @Success     201      {object}  vote.Vote
// @Failure     400      {object}  map[string]string  "invalid answer"
// @Failure     404      {object}  map[string]string  "poll not found"
// @Failure     409      {object}  map[string]string  "already voted"
// @Router      /api/v1/polls/{id}/vote [post]
func (h *Handler) handleCastVote(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")

	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	voter := voterFromCtx(r)
	v, err := h.votes.Cast(r.Context(), pollID, voter, req.Answer)
	if err != nil {
		errorResponse(w, err)
		return
	}

	select {
	case h.voteCh <- worker.VoteEvent{PollID: pollID, UserEmail: voter.Email, Answer: v.Answer}:
	default:
	}

	writeJSON(w, http.StatusCreated, v)
}

// @Summary     Poll results
// @Tags        polls
// @Security    BearerAuth
// @Produce     json
// @Param       id   path      string  true  "Poll ID"
// @Success     200  {object}  map[string]any
// @Failure     404  {object}  map[string]string  "poll not found"
// @Router      /api/v1/polls/{id}/results [get]
func (h *Handler) handlePollResults(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")

	if _, err := h.polls.FindByID(r.Context(), pollID); err != nil {
		errorResponse(w, err)
		return
	}

	tally, err := h.votes.Tally(r.Context(), pollID)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pollId": pollID,
		"yes":    tally.Yes,
		"no":     tally.No,
		"total":  tally.Yes + tally.No,
	})
}

// @Summary     Vote history for the logged-in user
// @Tags        votes
// @Security    BearerAuth
// @Produce     json
// @Success     200  {array}  vote.Entry
// @Router      /api/v1/votes/history [get]
func (h *Handler) handleVoteHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.votes.HistoryFor(r.Context(), voterFromCtx(r).Email)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
