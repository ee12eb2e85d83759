package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/cache"
	"github.com/truvote/portal/internal/observability"
)

const redisKeyPrefix = "auth/"

type redisStore struct {
	client cache.RedisCommander
	ttl    time.Duration
}

func NewRedisStore(client cache.RedisCommander, ttl time.Duration) *redisStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Unauthenticated(), nil
	}
	span := observability.StartSpan(ctx, "session.load", map[string]any{"db.system": "redis"})
	data, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	observability.FinishSpan(span)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Unauthenticated(), nil
		}
		return Unauthenticated(), errors.Wrap(err, "unable to load session from redis")
	}
	sess, err := Decode(data)
	if err != nil {
		return Unauthenticated(), nil
	}
	return sess, nil
}

func (s *redisStore) Save(ctx context.Context, sess Session) (string, error) {
	data, err := Encode(sess)
	if err != nil {
		return "", err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate session token")
	}
	token := id.String()

	span := observability.StartSpan(ctx, "session.save", map[string]any{"db.system": "redis"})
	err = s.client.Set(ctx, redisKeyPrefix+token, data, s.ttl).Err()
	observability.FinishSpan(span)
	if err != nil {
		return "", errors.Wrap(err, "unable to save session to redis")
	}
	return token, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	span := observability.StartSpan(ctx, "session.delete", map[string]any{"db.system": "redis"})
	err := s.client.Del(ctx, redisKeyPrefix+token).Err()
	observability.FinishSpan(span)
	if err != nil {
		return errors.Wrap(err, "unable to delete session from redis")
	}
	return nil
}
