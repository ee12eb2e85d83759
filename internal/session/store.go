package session

import (
	"context"
)

// Store persists session records behind an opaque token handed to the browser.
//
// Load returns the unauthenticated default with a nil error when the token is
// unknown, expired or points to a malformed record. A non nil error means the
// store itself failed, the returned session is still the unauthenticated default.
//
//go:generate mockery --with-expecter --name Store
type Store interface {
	Load(ctx context.Context, token string) (Session, error)
	Save(ctx context.Context, s Session) (string, error)
	Delete(ctx context.Context, token string) error
}

// Purger is implemented by stores keeping expired records around.
//
//go:generate mockery --with-expecter --name Purger
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}
