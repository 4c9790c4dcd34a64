package kv

import (
	"context"

	"training-polls/internal/domain/poll"
	"training-polls/internal/store"
)

type PollRepo struct {
	s store.Store
}

func NewPollRepo(s store.Store) *PollRepo {
	return &PollRepo{s: s}
}

func (r *PollRepo) List(ctx context.Context) ([]poll.Poll, error) {
	var polls []poll.Poll
	ok, err := r.s.Get(ctx, store.KeyPolls, &polls)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []poll.Poll{}, nil
	}
	return polls, nil
}

func (r *PollRepo) Replace(ctx context.Context, polls []poll.Poll) error {
	return r.s.Put(ctx, store.KeyPolls, polls)
}
