package voter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

var (
	landing  = routes.Rule{Name: routes.LandingRoute, Path: "/", RequiredRole: session.RoleNone}
	overview = routes.Rule{Name: routes.OverviewRoute, Path: "/overview", RequiredRole: session.RoleAdmin}
	votecast = routes.Rule{Name: routes.VoteCastRoute, Path: "/votecast", RequiredRole: session.RoleVoter}
)

func Test_publicRouteVoter(t *testing.T) {
	tests := []struct {
		name     string
		session  session.Session
		rule     routes.Rule
		supports bool
		want     decision
	}{
		{name: "anonymous on public page", session: session.Unauthenticated(), rule: landing, supports: true, want: AccessGranted},
		{name: "admin on public page", session: session.Admin(), rule: landing, supports: true, want: AccessGranted},
		{name: "anonymous on admin page", session: session.Unauthenticated(), rule: overview, supports: false, want: AccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewPublicRouteVoter()
			require.Equal(t, tt.supports, v.Supports(tt.session, tt.rule))
			require.Equal(t, tt.want, v.Vote(tt.session, tt.rule))
		})
	}
}

func Test_roleVoter(t *testing.T) {
	tests := []struct {
		name     string
		session  session.Session
		rule     routes.Rule
		supports bool
		want     decision
	}{
		{name: "admin on admin page", session: session.Admin(), rule: overview, supports: true, want: AccessGranted},
		{name: "voter on voter page", session: session.Voter("v"), rule: votecast, supports: true, want: AccessGranted},
		{name: "voter on admin page", session: session.Voter("v"), rule: overview, supports: true, want: AccessDenied},
		{name: "admin on voter page", session: session.Admin(), rule: votecast, supports: true, want: AccessDenied},
		{
			name:     "stale role on signed out session",
			session:  session.Session{Authenticated: false, Role: session.RoleAdmin},
			rule:     overview,
			supports: false,
			want:     AccessDenied,
		},
		{
			name:     "unknown role",
			session:  session.Session{Authenticated: true, Role: session.Role(42)},
			rule:     overview,
			supports: true,
			want:     AccessDenied,
		},
		{name: "public page is not its business", session: session.Admin(), rule: landing, supports: false, want: AccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewRoleVoter()
			require.Equal(t, tt.supports, v.Supports(tt.session, tt.rule))
			require.Equal(t, tt.want, v.Vote(tt.session, tt.rule))
		})
	}
}
