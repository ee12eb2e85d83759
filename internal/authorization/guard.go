package authorization

import (
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/session"
)

// RouteGuard decides whether a session may see a page and where to send it
// otherwise. It holds no state besides the validated table, the same inputs
// always give the same decision.
type RouteGuard struct {
	table   *routes.Table
	checker AuthorizationChecker
}

func NewRouteGuard(table *routes.Table, checker AuthorizationChecker) *RouteGuard {
	return &RouteGuard{table: table, checker: checker}
}

func (g *RouteGuard) Table() *routes.Table {
	return g.table
}

func (g *RouteGuard) Authorize(sess session.Session, rule routes.Rule) Decision {
	if g.checker.IsGranted(sess, rule) {
		return Decision{Kind: Allow}
	}
	signIn := Decision{Kind: RedirectToSignIn, Path: g.table.SignInPath()}
	if !sess.Authenticated {
		return signIn
	}
	path, ok := g.table.DefaultPathFor(sess.EffectiveRole())
	if !ok {
		return signIn
	}
	return Decision{Kind: RedirectToRoleDefault, Path: path}
}

// AuthorizePath resolves the rule of a path first, unknown paths send to sign in.
func (g *RouteGuard) AuthorizePath(sess session.Session, path string) Decision {
	rule, ok := g.table.RuleFor(path)
	if !ok {
		return Decision{Kind: RedirectToSignIn, Path: g.table.SignInPath()}
	}
	return g.Authorize(sess, rule)
}
