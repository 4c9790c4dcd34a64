package poll

import (
	"context"
	"errors"
	"time"
)

// Derived display statuses. Active-ness is always recomputed from the
// deadline at query time; Status is stamped once at creation and is never
// consulted by any filter.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// DateLayout is the calendar-date format used for training dates and
// deadlines. Dates in this layout compare correctly as strings.
const DateLayout = "2006-01-02"

const timeLayout = "15:04"

var ErrPollNotFound = errors.New("poll not found")

// Poll is a training-session attendance question with a voting deadline.
// JSON field names follow the persisted-state contract.
type Poll struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TrainingDate string    `json:"trainingDate"`
	TrainingTime string    `json:"trainingTime"`
	Deadline     string    `json:"deadline"`
	Location     string    `json:"location,omitempty"`
	Status       string    `json:"status"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Repository reads and rewrites the whole poll collection; there are no
// per-record updates.
type Repository interface {
	List(ctx context.Context) ([]Poll, error)
	Replace(ctx context.Context, polls []Poll) error
}
