package authorization

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/metrics"
	"github.com/truvote/portal/internal/session"
)

// Middleware runs the route guard in front of page handlers. The session is
// loaded once per request and handed to the page through the request context.
type Middleware struct {
	guard    *RouteGuard
	sessions *session.Manager
	meter    metrics.Meter
	log      logger.Logger
}

func NewMiddleware(
	guard *RouteGuard,
	sessions *session.Manager,
	meter metrics.Meter,
	log logger.Logger,
) *Middleware {
	return &Middleware{guard: guard, sessions: sessions, meter: meter, log: log}
}

// Protect guards a handler with the rule named ruleName. An unknown name is a
// wiring mistake and panics at startup.
func (m *Middleware) Protect(ruleName string) func(http.Handler) http.Handler {
	rule, ok := m.guard.Table().Rule(ruleName)
	if !ok {
		panic("no route rule named " + ruleName)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := m.sessions.Load(r)
			decision := m.guard.Authorize(sess, rule)
			m.meter.RouteDecision(decision.Kind.String())

			if !decision.Allowed() {
				m.log.WithFields(logrus.Fields{
					"path":     r.URL.Path,
					"role":     sess.EffectiveRole().String(),
					"decision": decision.Kind.String(),
					"location": decision.Path,
				}).Debug("route guarded")
				http.Redirect(w, r, decision.Path, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}
