// Package store is the persistence layer: a small key-value contract over
// JSON-encoded records. Collections are whole values; callers read a full
// collection, transform it, and write it back. There are no partial updates,
// which keeps the single-writer semantics of the rest of the system simple.
package store

import "context"

// Keys of the persisted state. The layout matches the original client-side
// contract: one scalar session record, two record collections, one cosmetic
// theme scalar.
const (
	KeySession = "tsv_user"
	KeyPolls   = "tsv_polls"
	KeyVotes   = "tsv_votes"
	KeyTheme   = "tsv_theme"
)

// Store persists JSON-encoded values by key.
//
// Get decodes the value at key into v and reports whether a usable value was
// found. Absent keys and malformed stored data both yield (false, nil): the
// store fails open to "empty" and never surfaces decode errors to callers.
// Backend I/O failures are returned as errors.
//
// Put atomically overwrites the whole value at key. Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string, v any) (bool, error)
	Put(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
	Close() error
}
