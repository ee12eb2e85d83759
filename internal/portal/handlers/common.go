package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/backend"
	"github.com/truvote/portal/internal/config"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/domain"
	internalerrors "github.com/truvote/portal/internal/errors"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/portal/views"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/router/urlgenerator"
	"github.com/truvote/portal/internal/session"
)

type navEntry struct {
	rule  string
	label string
}

var navigation = []navEntry{ //nolint:gochecknoglobals
	{rule: routes.OverviewRoute, label: "Overview"},
	{rule: routes.VotersRoute, label: "Voters"},
	{rule: routes.CandidatesRoute, label: "Candidates"},
	{rule: routes.ConductRoute, label: "Conduct"},
	{rule: routes.VoteCastRoute, label: "Vote"},
	{rule: routes.SuccessRoute, label: "Receipt"},
}

// newPage fills what the layout needs, the sidebar only lists the pages the
// session is allowed to open.
func newPage(r *http.Request, title string, current string) views.Page {
	sess := session.FromContext(r.Context())
	table := dic.GetService[*authorization.RouteGuard]().Table()
	page := views.Page{
		Title:   title,
		Session: sess,
	}
	if !sess.Authenticated {
		return page
	}
	for _, entry := range navigation {
		rule, ok := table.Rule(entry.rule)
		if !ok || !table.IsPathAllowedFor(sess.EffectiveRole(), rule.Path) {
			continue
		}
		page.Nav = append(page.Nav, views.NavLink{
			Label:  entry.label,
			Path:   rule.Path,
			Active: entry.rule == current,
		})
	}
	return page
}

func render(w http.ResponseWriter, status int, name string, page views.Page) error {
	var buf bytes.Buffer
	if err := dic.GetService[views.Renderer]().Render(&buf, name, page); err != nil {
		return internalerrors.Wrap(err, http.StatusInternalServerError)
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

func redirect(w http.ResponseWriter, r *http.Request, routeName string, query url.Values) error {
	target, err := dic.GetService[urlgenerator.URLGenerator]().URL(routeName, nil, query)
	if err != nil {
		return internalerrors.Wrap(err, http.StatusInternalServerError)
	}
	http.Redirect(w, r, target.String(), http.StatusSeeOther)
	return nil
}

func electionID(r *http.Request) string {
	if id := strings.TrimSpace(r.FormValue("election")); id != "" {
		return id
	}
	return dic.GetService[config.Config]().DefaultElectionID
}

func electionQuery(id string) url.Values {
	if id == "" {
		return nil
	}
	return url.Values{"election": {id}}
}

// failure turns a service error into the status and the message displayed on
// the page. Backend errors are never retried.
func failure(r *http.Request, err error) (int, string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationErr.Message
	}
	dic.GetService[logger.Logger]().
		WithError(err).
		WithField("path", r.URL.Path).
		Warn("election backend call failed")
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		return apiErr.StatusCode, backend.UserMessage(err)
	}
	return http.StatusBadGateway, backend.UserMessage(err)
}
