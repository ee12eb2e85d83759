package session

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const cookieIssuer = "truvote-portal"

type claims struct {
	IsAuthenticated *bool  `json:"isAuthenticated"`
	Role            string `json:"role"`
	VoterID         string `json:"voterId,omitempty"`
	jwt.RegisteredClaims
}

// cookieStore keeps the whole record inside the token, nothing is stored server side.
type cookieStore struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewCookieStore(secret []byte, ttl time.Duration) *cookieStore {
	return &cookieStore{secret: secret, ttl: ttl, now: time.Now}
}

func (s *cookieStore) Load(_ context.Context, token string) (Session, error) {
	if token == "" {
		return Unauthenticated(), nil
	}
	c := &claims{}
	_, err := jwt.ParseWithClaims(
		token,
		c,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Unauthenticated(), nil
	}
	sess, err := record{IsAuthenticated: c.IsAuthenticated, Role: c.Role, VoterID: c.VoterID}.session()
	if err != nil {
		return Unauthenticated(), nil
	}
	return sess, nil
}

func (s *cookieStore) Save(_ context.Context, sess Session) (string, error) {
	if _, err := Encode(sess); err != nil {
		return "", err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate session id")
	}
	rec := newRecord(sess)
	now := s.now()
	c := claims{
		IsAuthenticated: rec.IsAuthenticated,
		Role:            rec.Role,
		VoterID:         rec.VoterID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.String(),
			Issuer:    cookieIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "unable to sign session token")
	}
	return token, nil
}

// Delete has nothing to remove, the manager expires the cookie.
func (s *cookieStore) Delete(context.Context, string) error {
	return nil
}
