package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/backend"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/domain"
	domainmocks "github.com/truvote/portal/internal/domain/mocks"
	"github.com/truvote/portal/internal/logger"
	loggermocks "github.com/truvote/portal/internal/logger/mocks"
	"github.com/truvote/portal/internal/session"
	"github.com/truvote/portal/internal/testutil"
	"github.com/truvote/portal/internal/worker/client"
)

func TestBuildContainer(t *testing.T) {
	dic.ResetContainer()
	testutil.BuildTestContainer(t)

	require.NotPanics(t, func() {
		dic.GetService[session.Store]()
		dic.GetService[*authorization.Middleware]()
		dic.GetService[backend.Client]()
		dic.GetService[domain.ElectionService]()
		dic.GetService[client.BackgroundWorkerClient]()
	})
	require.Equal(t, "/overview", mustDefault(t, session.RoleAdmin))
}

func mustDefault(t *testing.T, role session.Role) string {
	t.Helper()
	path, ok := dic.GetService[*authorization.RouteGuard]().Table().DefaultPathFor(role)
	require.True(t, ok)
	return path
}

func TestBuildContainer_SignInThenBrowse(t *testing.T) {
	dic.ResetContainer()
	auth := domainmocks.NewAuthService(t)
	auth.On("SignInAdmin", mock.Anything, "root", "secret").Return(session.Admin(), nil)
	elections := domainmocks.NewElectionService(t)
	elections.On("Results", mock.Anything, "e1").Return(&backend.Results{TotalVotes: 7}, nil)
	_ = dic.Register[domain.AuthService](auth)
	_ = dic.Register[domain.ElectionService](elections)
	testutil.BuildTestContainer(t)
	router := dic.GetService[*mux.Router]()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overview", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/signin", rec.Header().Get("Location"))

	form := url.Values{"username": {"root"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/signin/admin", strings.NewReader(form.Encode()))
	req.Header.Set("content-type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/overview", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req = httptest.NewRequest(http.MethodGet, "/overview", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Total votes: 7")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `truvote_route_decisions_total{decision="allow"} 2`)
}

func TestBuildContainer_BackendCallsAreLogged(t *testing.T) {
	dic.ResetContainer()
	backendServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer backendServer.Close()

	log := loggermocks.NewNullLogger()
	_ = dic.Register[logger.Logger](log)
	testutil.BuildTestContainer(t, testutil.Setting{Key: "backend_url", Value: backendServer.URL})

	voters, err := dic.GetService[backend.Client]().ListVoters(context.Background())
	require.NoError(t, err)
	require.Empty(t, voters)

	var logged bool
	for _, entry := range log.Hook.AllEntries() {
		if entry.Message == "backend call" {
			logged = true
			require.Equal(t, logrus.TraceLevel, entry.Level)
			require.Equal(t, http.StatusOK, entry.Data["status"])
			require.Equal(t, "/api/voters", entry.Data["url"])
		}
	}
	require.True(t, logged)
}
