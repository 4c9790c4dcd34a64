package kv

import (
	"context"

	"training-polls/internal/domain/vote"
	"training-polls/internal/store"
)

type VoteRepo struct {
	s store.Store
}

func NewVoteRepo(s store.Store) *VoteRepo {
	return &VoteRepo{s: s}
}

func (r *VoteRepo) List(ctx context.Context) ([]vote.Vote, error) {
	var votes []vote.Vote
	ok, err := r.s.Get(ctx, store.KeyVotes, &votes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []vote.Vote{}, nil
	}
	return votes, nil
}

func (r *VoteRepo) Replace(ctx context.Context, votes []vote.Vote) error {
	return r.s.Put(ctx, store.KeyVotes, votes)
}
