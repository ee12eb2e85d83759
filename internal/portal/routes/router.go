package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/dic"
	internalerrors "github.com/truvote/portal/internal/errors"
	"github.com/truvote/portal/internal/portal/handlers"
	"github.com/truvote/portal/internal/router/routes"
)

type endpoint struct {
	name    string
	rule    string
	path    string
	method  string
	handler internalerrors.ErrorAwareHTTPHandler
}

// Pages take their path from the route table, actions are posted to the
// path of the page they belong to unless they have one of their own.
func endpoints() []endpoint {
	return []endpoint{
		{name: routes.LandingRoute, rule: routes.LandingRoute, method: http.MethodGet, handler: handlers.HandleLanding},
		{name: routes.SignInRoute, rule: routes.SignInRoute, method: http.MethodGet, handler: handlers.HandleSignIn},
		{name: routes.OverviewRoute, rule: routes.OverviewRoute, method: http.MethodGet, handler: handlers.HandleOverview},
		{name: routes.VotersRoute, rule: routes.VotersRoute, method: http.MethodGet, handler: handlers.HandleVoters},
		{name: routes.CandidatesRoute, rule: routes.CandidatesRoute, method: http.MethodGet, handler: handlers.HandleCandidates},
		{name: routes.ConductRoute, rule: routes.ConductRoute, method: http.MethodGet, handler: handlers.HandleConduct},
		{name: routes.VoteCastRoute, rule: routes.VoteCastRoute, method: http.MethodGet, handler: handlers.HandleVoteCast},
		{name: routes.SuccessRoute, rule: routes.SuccessRoute, method: http.MethodGet, handler: handlers.HandleSuccess},

		{
			name: routes.SignInVoterRoute, rule: routes.SignInRoute, path: "/signin/voter",
			method: http.MethodPost, handler: handlers.HandleSignInVoter,
		},
		{
			name: routes.SignInAdminRoute, rule: routes.SignInRoute, path: "/signin/admin",
			method: http.MethodPost, handler: handlers.HandleSignInAdmin,
		},
		{
			name: routes.SignUpAdminRoute, rule: routes.SignInRoute, path: "/signup/admin",
			method: http.MethodPost, handler: handlers.HandleSignUpAdmin,
		},
		{
			name: routes.SignOutRoute, rule: routes.SignInRoute, path: "/signout",
			method: http.MethodPost, handler: handlers.HandleSignOut,
		},
		{
			name: routes.AddVoterRoute, rule: routes.VotersRoute,
			method: http.MethodPost, handler: handlers.HandleAddVoter,
		},
		{
			name: routes.DeleteVoterRoute, rule: routes.VotersRoute, path: "/voter/delete",
			method: http.MethodPost, handler: handlers.HandleDeleteVoter,
		},
		{
			name: routes.AddCandidateRoute, rule: routes.CandidatesRoute,
			method: http.MethodPost, handler: handlers.HandleAddCandidate,
		},
		{
			name: routes.CreateElectionRoute, rule: routes.ConductRoute,
			method: http.MethodPost, handler: handlers.HandleCreateElection,
		},
		{
			name: routes.CastVoteRoute, rule: routes.VoteCastRoute,
			method: http.MethodPost, handler: handlers.HandleCastVote,
		},
	}
}

func Router(rootRouter *mux.Router) {
	guard := dic.GetService[*authorization.Middleware]()
	table := dic.GetService[*authorization.RouteGuard]().Table()
	for _, e := range endpoints() {
		path := e.path
		if path == "" {
			rule, ok := table.Rule(e.rule)
			if !ok {
				panic("no route rule named " + e.rule)
			}
			path = rule.Path
		}
		rootRouter.NewRoute().Name(e.name).
			Path(path).
			Methods(e.method).
			Handler(guard.Protect(e.rule)(http.HandlerFunc(internalerrors.HTTPErrorHandler(e.handler))))
	}
}
