// Package kv implements the domain repositories on top of the key-value
// store: each repository materializes its records from a single store key on
// every read and rewrites the whole key on every mutation.
package kv

import (
	"context"

	"training-polls/internal/domain/session"
	"training-polls/internal/store"
)

type SessionRepo struct {
	s store.Store
}

func NewSessionRepo(s store.Store) *SessionRepo {
	return &SessionRepo{s: s}
}

// Get returns the persisted session, or nil when none (or an unreadable one)
// is stored.
func (r *SessionRepo) Get(ctx context.Context) (*session.Session, error) {
	var sess session.Session
	ok, err := r.s.Get(ctx, store.KeySession, &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

func (r *SessionRepo) Save(ctx context.Context, sess *session.Session) error {
	return r.s.Put(ctx, store.KeySession, sess)
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.s.Delete(ctx, store.KeySession)
}
