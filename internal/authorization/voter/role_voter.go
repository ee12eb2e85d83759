package voter

import (
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

type roleVoter struct{}

func NewRoleVoter() *roleVoter {
	return &roleVoter{}
}

func (v *roleVoter) Supports(sess session.Session, rule routes.Rule) bool {
	return sess.Authenticated && !rule.Public()
}

func (v *roleVoter) Vote(sess session.Session, rule routes.Rule) decision {
	if !sess.Authenticated {
		return AccessDenied
	}
	role := sess.EffectiveRole()
	if role == session.RoleNone || !role.Valid() {
		return AccessDenied
	}
	if role != rule.RequiredRole {
		return AccessDenied
	}
	return AccessGranted
}
