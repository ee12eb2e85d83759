package urlgenerator

import (
	"net/url"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type RouteParams []string

//go:generate mockery --with-expecter --name=URLGenerator
type URLGenerator interface {
	URL(routeName string, params RouteParams, query url.Values) (*url.URL, error)
}

type muxURLGenerator struct {
	router *mux.Router
}

func NewURLGenerator(router *mux.Router) *muxURLGenerator {
	return &muxURLGenerator{
		router: router,
	}
}

func (r *muxURLGenerator) URL(routeName string, params RouteParams, query url.Values) (*url.URL, error) {
	route := r.router.Get(routeName)
	if route == nil {
		return nil, errors.Errorf("no route named %q", routeName)
	}
	routeURL, err := route.URL(params...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate URL for route")
	}
	if len(query) > 0 {
		routeURL.RawQuery = query.Encode()
	}
	return routeURL, nil
}
