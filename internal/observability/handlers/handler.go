package handlers

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"

	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/observability"
)

// ObservabilityMiddleware opens a sentry transaction named after the matched route
// and recovers panics escaping the handlers.
func ObservabilityMiddleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			defer func() {
				if err := recover(); err != nil {
					writer.WriteHeader(http.StatusInternalServerError)
					hub := sentry.GetHubFromContext(ctx)
					if hub != nil {
						hub.RecoverWithContext(ctx, err)
					}
					log.Error(err)
				}
			}()
			hub := sentry.GetHubFromContext(ctx)
			if hub == nil {
				hub = sentry.CurrentHub().Clone()
				ctx = sentry.SetHubOnContext(ctx, hub)
			}
			options := []sentry.SpanOption{
				sentry.OpName("http.server"),
				sentry.ContinueFromRequest(request),
				sentry.TransctionSource(sentry.SourceRoute),
			}
			transactionName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)
			data := map[string]any{}
			if route := mux.CurrentRoute(request); route != nil && route.GetName() != "" {
				transactionName = route.GetName()
				for k, v := range mux.Vars(request) {
					data[k] = v
				}
			}
			tx := observability.StartTransaction(ctx, transactionName, options...)
			tx.Data = data

			defer observability.FinishSpan(tx)
			request = request.WithContext(tx.Context()) //nolint:contextcheck
			hub.Scope().SetRequest(request)
			next.ServeHTTP(writer, request)
		})
	}
}
