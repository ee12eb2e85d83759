package router

import (
	"github.com/gorilla/mux"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
	metricsrouter "github.com/truvote/portal/internal/metrics/router"
	"github.com/truvote/portal/internal/observability/handlers"
	portalroutes "github.com/truvote/portal/internal/portal/routes"
)

func GetRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(handlers.ObservabilityMiddleware(dic.GetService[logger.Logger]()))
	portalroutes.Router(r)
	metricsrouter.Router(r)
	return r
}
