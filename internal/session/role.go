package session

import (
	"github.com/pkg/errors"
)

// Role is the closed set of roles a session can carry. RoleNone is both the
// role of an unauthenticated session and the required role of a public route.
type Role int

const (
	RoleNone Role = iota
	RoleAdmin
	RoleVoter
)

var ErrUnknownRole = errors.New("unknown role")

// Roles lists the roles able to authenticate.
func Roles() []Role {
	return []Role{RoleAdmin, RoleVoter}
}

func ParseRole(name string) (Role, error) {
	switch name {
	case "", "none":
		return RoleNone, nil
	case "admin":
		return RoleAdmin, nil
	case "voter":
		return RoleVoter, nil
	}
	return RoleNone, errors.Wrapf(ErrUnknownRole, "%q", name)
}

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleAdmin:
		return "admin"
	case RoleVoter:
		return "voter"
	}
	return "unknown"
}

// Valid is false for values outside of the enumeration.
func (r Role) Valid() bool {
	return r >= RoleNone && r <= RoleVoter
}
