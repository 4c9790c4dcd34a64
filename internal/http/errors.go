package api

import (
	"errors"
	"net/http"

	"training-polls/internal/domain/poll"
	"training-polls/internal/domain/session"
	"training-polls/internal/domain/vote"
	"training-polls/internal/platform/apperr"
	"training-polls/internal/repository/kv"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	writeJSON(w, appErr.StatusCode(), map[string]string{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid email or password", err)
	case errors.Is(err, session.ErrRoleMismatch):
		return apperr.Forbidden("role_mismatch", "account is not registered under the requested role", err)
	case errors.Is(err, poll.ErrPollNotFound):
		return apperr.NotFound("poll_not_found", "poll not found", err)
	case errors.Is(err, poll.ErrTitleRequired):
		return apperr.BadRequest("invalid_input", "title is required", err)
	case errors.Is(err, poll.ErrInvalidDate):
		return apperr.BadRequest("invalid_input", "dates must use YYYY-MM-DD", err)
	case errors.Is(err, poll.ErrInvalidTime):
		return apperr.BadRequest("invalid_input", "training time must use HH:MM", err)
	case errors.Is(err, poll.ErrDeadlineTooLate):
		return apperr.BadRequest("invalid_input", "deadline must not be after the training date", err)
	case errors.Is(err, vote.ErrAlreadyVoted):
		return apperr.Conflict("already_voted", "you have already voted on this poll", err)
	case errors.Is(err, vote.ErrInvalidAnswer):
		return apperr.BadRequest("invalid_answer", "answer must be yes or no", err)
	case errors.Is(err, kv.ErrInvalidTheme):
		return apperr.BadRequest("invalid_theme", "theme must be light or dark", err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}
