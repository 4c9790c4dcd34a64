package vote

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"training-polls/internal/domain/poll"
)

// Service is the vote ledger. All checks run before the single write, so a
// rejected cast never mutates state.
type Service struct {
	repo  Repository
	polls PollFinder
	now   func() time.Time
}

func NewService(repo Repository, polls PollFinder) *Service {
	return &Service{repo: repo, polls: polls, now: time.Now}
}

// Cast records voter's answer on the poll. It fails with ErrAlreadyVoted when
// a vote for the same (poll, voter) pair exists, with poll.ErrPollNotFound
// when the poll does not, and with ErrInvalidAnswer for anything but yes/no.
func (s *Service) Cast(ctx context.Context, pollID string, voter Voter, answer string) (*Vote, error) {
	if answer != AnswerYes && answer != AnswerNo {
		return nil, ErrInvalidAnswer
	}

	if _, err := s.polls.FindByID(ctx, pollID); err != nil {
		return nil, err
	}

	votes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range votes {
		if votes[i].PollID == pollID && votes[i].UserEmail == voter.Email {
			return nil, ErrAlreadyVoted
		}
	}

	v := Vote{
		ID:        uuid.NewString(),
		PollID:    pollID,
		UserEmail: voter.Email,
		UserName:  voter.Name,
		Answer:    answer,
		VotedAt:   s.now().UTC(),
	}

	if err := s.repo.Replace(ctx, append(votes, v)); err != nil {
		return nil, err
	}
	return &v, nil
}

// Tally counts the poll's votes by answer. A poll with no votes tallies to
// the zero value.
func (s *Service) Tally(ctx context.Context, pollID string) (Tally, error) {
	votes, err := s.repo.List(ctx)
	if err != nil {
		return Tally{}, err
	}

	var t Tally
	for i := range votes {
		if votes[i].PollID != pollID {
			continue
		}
		switch votes[i].Answer {
		case AnswerYes:
			t.Yes++
		case AnswerNo:
			t.No++
		}
	}
	return t, nil
}

// HistoryFor returns the voter's votes joined with their polls, most recent
// first. Votes whose poll has disappeared keep a nil Poll.
func (s *Service) HistoryFor(ctx context.Context, userEmail string) ([]Entry, error) {
	votes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(votes))
	for i := range votes {
		if votes[i].UserEmail != userEmail {
			continue
		}
		p, err := s.polls.FindByID(ctx, votes[i].PollID)
		if err != nil {
			if !errors.Is(err, poll.ErrPollNotFound) {
				return nil, err
			}
			p = nil
		}
		entries = append(entries, Entry{Vote: votes[i], Poll: p})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Vote.VotedAt.After(entries[b].Vote.VotedAt)
	})
	return entries, nil
}
