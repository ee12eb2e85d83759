package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cachemocks "github.com/truvote/portal/internal/cache/mocks"
	"github.com/truvote/portal/internal/session"
)

func TestRedisStore_Load(t *testing.T) {
	tests := []struct {
		name  string
		token string
		mock  func(*cachemocks.RedisCommander)
		want  session.Session
		err   string
	}{
		{
			name:  "empty token",
			token: "",
			want:  session.Unauthenticated(),
		},
		{
			name:  "admin record",
			token: "abc",
			mock: func(c *cachemocks.RedisCommander) {
				c.On("Get", mock.Anything, "auth/abc").Once().
					Return(redis.NewStringResult(`{"isAuthenticated":true,"role":"admin"}`, nil))
			},
			want: session.Admin(),
		},
		{
			name:  "missing record",
			token: "abc",
			mock: func(c *cachemocks.RedisCommander) {
				c.On("Get", mock.Anything, "auth/abc").Once().
					Return(redis.NewStringResult("", redis.Nil))
			},
			want: session.Unauthenticated(),
		},
		{
			name:  "malformed record",
			token: "abc",
			mock: func(c *cachemocks.RedisCommander) {
				c.On("Get", mock.Anything, "auth/abc").Once().
					Return(redis.NewStringResult(`{"isAuthenticated":true,"role":"god"}`, nil))
			},
			want: session.Unauthenticated(),
		},
		{
			name:  "redis down",
			token: "abc",
			mock: func(c *cachemocks.RedisCommander) {
				c.On("Get", mock.Anything, "auth/abc").Once().
					Return(redis.NewStringResult("", errors.New("connection refused")))
			},
			want: session.Unauthenticated(),
			err:  "unable to load session from redis: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := cachemocks.NewRedisCommander(t)
			if tt.mock != nil {
				tt.mock(client)
			}
			store := session.NewRedisStore(client, time.Hour)
			sess, err := store.Load(context.Background(), tt.token)
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, sess)
		})
	}
}

func TestRedisStore_Save(t *testing.T) {
	client := cachemocks.NewRedisCommander(t)
	var savedKey string
	var savedValue []byte
	client.On("Set", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "auth/")
	}), mock.Anything, time.Hour).
		Once().
		Run(func(args mock.Arguments) {
			savedKey = args.String(1)
			savedValue = args.Get(2).([]byte)
		}).
		Return(redis.NewStatusResult("OK", nil))

	store := session.NewRedisStore(client, time.Hour)
	token, err := store.Save(context.Background(), session.Voter("v-7"))
	require.NoError(t, err)
	require.Equal(t, "auth/"+token, savedKey)
	require.JSONEq(t, `{"isAuthenticated":true,"role":"voter","voterId":"v-7"}`, string(savedValue))
}

func TestRedisStore_SaveError(t *testing.T) {
	client := cachemocks.NewRedisCommander(t)
	client.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Hour).
		Once().
		Return(redis.NewStatusResult("", errors.New("readonly")))

	store := session.NewRedisStore(client, time.Hour)
	token, err := store.Save(context.Background(), session.Admin())
	require.EqualError(t, err, "unable to save session to redis: readonly")
	require.Empty(t, token)
}

func TestRedisStore_Delete(t *testing.T) {
	client := cachemocks.NewRedisCommander(t)
	client.On("Del", mock.Anything, "auth/abc").Once().Return(redis.NewIntResult(1, nil))

	store := session.NewRedisStore(client, time.Hour)
	require.NoError(t, store.Delete(context.Background(), "abc"))
	require.NoError(t, store.Delete(context.Background(), ""))
}
