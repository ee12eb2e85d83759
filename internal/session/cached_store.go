package session

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

type cachedEntry struct {
	session  Session
	loadedAt time.Time
}

// CachedStore is a read through cache in front of another store. Entries are
// kept at most maxAge so that records expired in the underlying store do not
// outlive it for long.
type CachedStore struct {
	inner  Store
	cache  *lru.Cache[string, cachedEntry]
	maxAge time.Duration
	now    func() time.Time
}

func NewCachedStore(inner Store, size int, maxAge time.Duration) (*CachedStore, error) {
	cache, err := lru.New[string, cachedEntry](size)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create session cache")
	}
	return &CachedStore{inner: inner, cache: cache, maxAge: maxAge, now: time.Now}, nil
}

func (s *CachedStore) Load(ctx context.Context, token string) (Session, error) {
	if entry, ok := s.cache.Get(token); ok {
		if s.now().Sub(entry.loadedAt) < s.maxAge {
			return entry.session, nil
		}
		s.cache.Remove(token)
	}
	sess, err := s.inner.Load(ctx, token)
	if err != nil {
		return sess, err
	}
	if sess.Authenticated {
		s.cache.Add(token, cachedEntry{session: sess, loadedAt: s.now()})
	}
	return sess, nil
}

func (s *CachedStore) Save(ctx context.Context, sess Session) (string, error) {
	token, err := s.inner.Save(ctx, sess)
	if err != nil {
		return "", err
	}
	s.cache.Add(token, cachedEntry{session: sess, loadedAt: s.now()})
	return token, nil
}

func (s *CachedStore) Delete(ctx context.Context, token string) error {
	s.cache.Remove(token)
	return s.inner.Delete(ctx, token)
}

// Purge forwards to the wrapped store when it keeps expired records.
func (s *CachedStore) Purge(ctx context.Context) (int64, error) {
	purger, ok := s.inner.(Purger)
	if !ok {
		return 0, nil
	}
	return purger.Purge(ctx)
}
