package vote

import (
	"context"
	"errors"
	"time"

	"training-polls/internal/domain/poll"
)

const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

var (
	ErrAlreadyVoted  = errors.New("user already voted on this poll")
	ErrInvalidAnswer = errors.New("answer must be yes or no")
)

// Vote is one user's yes/no answer to one poll. Votes are append-only; at
// most one exists per (pollId, userEmail), enforced by the ledger at write
// time rather than by any store-level index.
type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"pollId"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	Answer    string    `json:"answer"`
	VotedAt   time.Time `json:"votedAt"`
}

// Voter identifies who is casting a vote.
type Voter struct {
	Email string
	Name  string
}

// Tally is the aggregate yes/no count for a poll.
type Tally struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// Entry is a vote joined with its poll. Poll is nil when the poll no longer
// exists; the vote itself is kept.
type Entry struct {
	Vote Vote       `json:"vote"`
	Poll *poll.Poll `json:"poll,omitempty"`
}

// Repository reads and rewrites the whole vote collection.
type Repository interface {
	List(ctx context.Context) ([]Vote, error)
	Replace(ctx context.Context, votes []Vote) error
}

// PollFinder is the slice of the poll service the ledger needs.
type PollFinder interface {
	FindByID(ctx context.Context, id string) (*poll.Poll, error)
}
