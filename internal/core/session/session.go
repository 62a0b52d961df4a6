// Package session keeps the server-side registry of live login sessions. A
// session id maps to a user id until it expires or is deleted at logout.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Lookup for unknown, expired or deleted sessions.
var ErrNotFound = errors.New("session: not found")

type Store interface {
	Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error
	Lookup(ctx context.Context, sid string) (int64, error)
	Delete(ctx context.Context, sid string) error
}
