package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	loggermocks "github.com/truvote/portal/internal/logger/mocks"
	metricsmocks "github.com/truvote/portal/internal/metrics/mocks"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
	sessionmocks "github.com/truvote/portal/internal/session/mocks"
)

func TestMiddleware_Protect(t *testing.T) {
	tests := []struct {
		name     string
		rule     string
		stored   session.Session
		decision string
		code     int
		location string
	}{
		{
			name:     "admin sees overview",
			rule:     routes.OverviewRoute,
			stored:   session.Admin(),
			decision: "allow",
			code:     http.StatusTeapot,
		},
		{
			name:     "anonymous sent to sign in",
			rule:     routes.OverviewRoute,
			stored:   session.Unauthenticated(),
			decision: "redirect_signin",
			code:     http.StatusFound,
			location: "/signin",
		},
		{
			name:     "voter sent to vote cast",
			rule:     routes.ConductRoute,
			stored:   session.Voter("v-1"),
			decision: "redirect_role_default",
			code:     http.StatusFound,
			location: "/votecast",
		},
		{
			name:     "admin sent to overview",
			rule:     routes.SuccessRoute,
			stored:   session.Admin(),
			decision: "redirect_role_default",
			code:     http.StatusFound,
			location: "/overview",
		},
		{
			name:     "anonymous on landing",
			rule:     routes.LandingRoute,
			stored:   session.Unauthenticated(),
			decision: "allow",
			code:     http.StatusTeapot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := sessionmocks.NewStore(t)
			store.On("Load", mock.Anything, "tok").Once().Return(tt.stored, nil)
			meter := metricsmocks.NewMeter(t)
			meter.On("RouteDecision", tt.decision).Once()
			log := loggermocks.NewNullLogger()

			m := NewMiddleware(
				newGuard(),
				session.NewManager(store, log, session.CookieOptions{}),
				meter,
				log,
			)
			var seen session.Session
			handler := m.Protect(tt.rule)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = session.FromContext(r.Context())
				w.WriteHeader(http.StatusTeapot)
			}))

			req := httptest.NewRequest(http.MethodGet, "/page", nil)
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.code, rec.Code)
			require.Equal(t, tt.location, rec.Header().Get("Location"))
			if tt.code == http.StatusTeapot {
				require.Equal(t, tt.stored, seen)
			}
		})
	}
}

func TestMiddleware_ProtectUnknownRule(t *testing.T) {
	log := loggermocks.NewNullLogger()
	m := NewMiddleware(newGuard(), session.NewManager(sessionmocks.NewStore(t), log, session.CookieOptions{}), metricsmocks.NewMeter(t), log)
	require.PanicsWithValue(t, "no route rule named nope", func() {
		m.Protect("nope")
	})
}
