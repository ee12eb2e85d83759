package session

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrMalformedRecord = errors.New("malformed session record")

type Session struct {
	Authenticated bool
	Role          Role
	VoterID       string
}

func Unauthenticated() Session {
	return Session{Role: RoleNone}
}

func Admin() Session {
	return Session{Authenticated: true, Role: RoleAdmin}
}

func Voter(voterID string) Session {
	return Session{Authenticated: true, Role: RoleVoter, VoterID: voterID}
}

// EffectiveRole never reports a role for an unauthenticated session.
func (s Session) EffectiveRole() Role {
	if !s.Authenticated {
		return RoleNone
	}
	return s.Role
}

// record is the persisted shape of a session, shared with the original browser storage.
type record struct {
	IsAuthenticated *bool  `json:"isAuthenticated"`
	Role            string `json:"role"`
	VoterID         string `json:"voterId,omitempty"`
}

func (r record) session() (Session, error) {
	if r.IsAuthenticated == nil {
		return Unauthenticated(), errors.Wrap(ErrMalformedRecord, "isAuthenticated is missing")
	}
	if !*r.IsAuthenticated {
		return Unauthenticated(), nil
	}
	role, err := ParseRole(r.Role)
	if err != nil {
		return Unauthenticated(), errors.Wrap(ErrMalformedRecord, err.Error())
	}
	if role == RoleNone {
		return Unauthenticated(), errors.Wrap(ErrMalformedRecord, "authenticated session without role")
	}
	s := Session{Authenticated: true, Role: role}
	if role == RoleVoter {
		s.VoterID = r.VoterID
	}
	return s, nil
}

func newRecord(s Session) record {
	authenticated := s.Authenticated
	if !authenticated {
		return record{IsAuthenticated: &authenticated, Role: RoleNone.String()}
	}
	return record{IsAuthenticated: &authenticated, Role: s.Role.String(), VoterID: s.VoterID}
}

// Decode parses and validates a persisted record. Any error comes with the
// unauthenticated default so callers can fall back to it directly.
func Decode(data []byte) (Session, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return Unauthenticated(), errors.Wrap(ErrMalformedRecord, err.Error())
	}
	return r.session()
}

func Encode(s Session) ([]byte, error) {
	if s.Authenticated && (s.Role == RoleNone || !s.Role.Valid()) {
		return nil, errors.Wrap(ErrMalformedRecord, "authenticated session without role")
	}
	data, err := json.Marshal(newRecord(s))
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode session record")
	}
	return data, nil
}

type contextKey int

const contextSession contextKey = iota

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextSession, s)
}

// FromContext returns the session loaded for the current request, or the
// unauthenticated default outside of a guarded route.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(contextSession).(Session)
	if !ok {
		return Unauthenticated()
	}
	return s
}
