package voter

import (
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

// publicRouteVoter grants every page that does not require a role, whoever asks.
type publicRouteVoter struct{}

func NewPublicRouteVoter() *publicRouteVoter {
	return &publicRouteVoter{}
}

func (v *publicRouteVoter) Supports(_ session.Session, rule routes.Rule) bool {
	return rule.Public()
}

func (v *publicRouteVoter) Vote(_ session.Session, rule routes.Rule) decision {
	if rule.Public() {
		return AccessGranted
	}
	return AccessDenied
}
