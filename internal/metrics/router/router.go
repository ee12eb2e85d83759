package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/metrics"
	"github.com/truvote/portal/internal/router/routes"
)

func Router(rootRouter *mux.Router) {
	meter := dic.GetService[metrics.Meter]()
	reg := meter.GetRegistry()
	rootRouter.NewRoute().Name(routes.MetricsRoute).
		Path("/metrics").
		Methods(http.MethodGet).
		Handler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}
