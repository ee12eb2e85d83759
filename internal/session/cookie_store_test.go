package session_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/session"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

func TestCookieStore_RoundTrip(t *testing.T) {
	store := session.NewCookieStore(secret, time.Hour)

	for _, sess := range []session.Session{session.Admin(), session.Voter("v-3")} {
		token, err := store.Save(context.Background(), sess)
		require.NoError(t, err)
		loaded, err := store.Load(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, sess, loaded)
	}
}

func TestCookieStore_Rejected(t *testing.T) {
	store := session.NewCookieStore(secret, time.Hour)
	valid, err := store.Save(context.Background(), session.Admin())
	require.NoError(t, err)

	expired, err := session.NewCookieStore(secret, -time.Minute).Save(context.Background(), session.Admin())
	require.NoError(t, err)

	otherSecret, err := session.NewCookieStore([]byte("another secret of thirty two b!!"), time.Hour).
		Save(context.Background(), session.Admin())
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"isAuthenticated": true,
		"role":            "admin",
		"iss":             "truvote-portal",
		"exp":             time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	forgedRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"isAuthenticated": true,
		"role":            "root",
		"iss":             "truvote-portal",
		"exp":             time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	voter, err := store.Save(context.Background(), session.Voter("v-1"))
	require.NoError(t, err)
	validParts := strings.Split(valid, ".")
	voterParts := strings.Split(voter, ".")
	tampered := strings.Join([]string{validParts[0], voterParts[1], validParts[2]}, ".")

	tests := map[string]string{
		"tampered":     tampered,
		"expired":      expired,
		"other secret": otherSecret,
		"alg none":     unsigned,
		"unknown role": forgedRole,
		"not a jwt":    "definitely-not-a-token",
		"empty":        "",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			sess, err := store.Load(context.Background(), token)
			require.NoError(t, err)
			require.Equal(t, session.Unauthenticated(), sess)
		})
	}
}

func TestCookieStore_RefusesInvalidSession(t *testing.T) {
	store := session.NewCookieStore(secret, time.Hour)
	_, err := store.Save(context.Background(), session.Session{Authenticated: true})
	require.ErrorIs(t, err, session.ErrMalformedRecord)
	require.NoError(t, store.Delete(context.Background(), "whatever"))
}
