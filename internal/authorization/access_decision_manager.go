package authorization

import (
	"github.com/truvote/portal/internal/authorization/voter"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

type AuthorizationChecker interface {
	IsGranted(session.Session, routes.Rule) bool
}

type voterAuthorizationChecker struct {
	voters []voter.Voter
}

func NewVoterAuthorizationChecker(voters []voter.Voter) *voterAuthorizationChecker {
	return &voterAuthorizationChecker{voters: voters}
}

func DefaultVoters() []voter.Voter {
	return []voter.Voter{voter.NewPublicRouteVoter(), voter.NewRoleVoter()}
}

// IsGranted denies unless one supporting voter grants access.
func (v *voterAuthorizationChecker) IsGranted(sess session.Session, rule routes.Rule) bool {
	for _, v := range v.voters {
		if !v.Supports(sess, rule) {
			continue
		}
		if v.Vote(sess, rule) == voter.AccessGranted {
			return true
		}
	}
	return false
}
