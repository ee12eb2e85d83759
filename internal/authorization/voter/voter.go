package voter

import (
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

type decision int

const (
	AccessDenied decision = iota
	AccessGranted
)

func (d decision) String() string {
	if d == AccessGranted {
		return "granted"
	}
	return "denied"
}

type Voter interface {
	Supports(session.Session, routes.Rule) bool
	Vote(session.Session, routes.Rule) decision
}
