package authorization

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

func newGuard() *RouteGuard {
	return NewRouteGuard(routes.MustDefaultTable(), NewVoterAuthorizationChecker(DefaultVoters()))
}

func sessions() []session.Session {
	return []session.Session{
		session.Unauthenticated(),
		{Authenticated: false, Role: session.RoleAdmin},
		{Authenticated: false, Role: session.RoleVoter},
		session.Admin(),
		session.Voter("v-1"),
	}
}

func TestRouteGuard_PublicRoutesAlwaysAllowed(t *testing.T) {
	guard := newGuard()
	for _, rule := range guard.Table().Rules() {
		if !rule.Public() {
			continue
		}
		for _, sess := range sessions() {
			require.Equal(t, Decision{Kind: Allow}, guard.Authorize(sess, rule), "%s %+v", rule.Path, sess)
		}
	}
}

func TestRouteGuard_UnauthenticatedRedirectedToSignIn(t *testing.T) {
	guard := newGuard()
	for _, rule := range guard.Table().Rules() {
		if rule.Public() {
			continue
		}
		for _, sess := range sessions() {
			if sess.Authenticated {
				continue
			}
			require.Equal(t, Decision{Kind: RedirectToSignIn, Path: "/signin"}, guard.Authorize(sess, rule))
		}
	}
}

func TestRouteGuard_RoleMatrix(t *testing.T) {
	guard := newGuard()
	for _, rule := range guard.Table().Rules() {
		if rule.Public() {
			continue
		}
		for _, role := range session.Roles() {
			sess := session.Session{Authenticated: true, Role: role}
			t.Run(fmt.Sprintf("%s on %s", role, rule.Path), func(t *testing.T) {
				got := guard.Authorize(sess, rule)
				if role == rule.RequiredRole {
					require.Equal(t, Decision{Kind: Allow}, got)
					return
				}
				defaultPath, _ := guard.Table().DefaultPathFor(role)
				require.Equal(t, Decision{Kind: RedirectToRoleDefault, Path: defaultPath}, got)
			})
		}
	}
}

func TestRouteGuard_Idempotent(t *testing.T) {
	guard := newGuard()
	for _, rule := range guard.Table().Rules() {
		for _, sess := range sessions() {
			require.Equal(t, guard.Authorize(sess, rule), guard.Authorize(sess, rule))
		}
	}
}

func TestRouteGuard_Scenarios(t *testing.T) {
	guard := newGuard()
	overview, _ := guard.Table().RuleFor("/overview")
	voters, _ := guard.Table().RuleFor("/voter")

	tests := []struct {
		name    string
		session session.Session
		rule    routes.Rule
		want    Decision
	}{
		{
			name:    "voter on admin page goes to vote cast",
			session: session.Session{Authenticated: true, Role: session.RoleVoter},
			rule:    overview,
			want:    Decision{Kind: RedirectToRoleDefault, Path: "/votecast"},
		},
		{
			name:    "anonymous on voter management goes to sign in",
			session: session.Session{Authenticated: false},
			rule:    voters,
			want:    Decision{Kind: RedirectToSignIn, Path: "/signin"},
		},
		{
			name:    "admin on voter management",
			session: session.Session{Authenticated: true, Role: session.RoleAdmin},
			rule:    voters,
			want:    Decision{Kind: Allow},
		},
		{
			name:    "authenticated without usable role fails closed",
			session: session.Session{Authenticated: true, Role: session.RoleNone},
			rule:    voters,
			want:    Decision{Kind: RedirectToSignIn, Path: "/signin"},
		},
		{
			name:    "unknown role fails closed",
			session: session.Session{Authenticated: true, Role: session.Role(42)},
			rule:    overview,
			want:    Decision{Kind: RedirectToSignIn, Path: "/signin"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, guard.Authorize(tt.session, tt.rule))
		})
	}
}

func TestRouteGuard_AuthorizePath(t *testing.T) {
	guard := newGuard()
	require.Equal(t, Decision{Kind: Allow}, guard.AuthorizePath(session.Admin(), "/conduct"))
	require.Equal(t, Decision{Kind: RedirectToSignIn, Path: "/signin"}, guard.AuthorizePath(session.Admin(), "/nowhere"))
}

func TestDecisionKind_String(t *testing.T) {
	require.Equal(t, "allow", Allow.String())
	require.Equal(t, "redirect_signin", RedirectToSignIn.String())
	require.Equal(t, "redirect_role_default", RedirectToRoleDefault.String())
	require.Equal(t, "unknown", DecisionKind(9).String())
}
