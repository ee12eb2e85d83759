package container

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/gorilla/mux"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/authorization"
	"github.com/truvote/portal/internal/backend"
	"github.com/truvote/portal/internal/cache"
	"github.com/truvote/portal/internal/config"
	"github.com/truvote/portal/internal/crypto"
	"github.com/truvote/portal/internal/database"
	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/domain"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/metrics"
	"github.com/truvote/portal/internal/portal/views"
	"github.com/truvote/portal/internal/router"
	"github.com/truvote/portal/internal/router/routes"
	"github.com/truvote/portal/internal/router/urlgenerator"
	"github.com/truvote/portal/internal/session"
	"github.com/truvote/portal/internal/worker/client"
)

// sessionCacheMaxAge bounds how long a session revoked in postgres by another
// instance can still be served from memory.
const sessionCacheMaxAge = time.Minute

func BuildContainer() error {
	loader := config.NewLoader()
	err := loader.Load()
	if err != nil {
		return errors.Wrap(err, "unable to load config")
	}
	conf := loader.Get()
	_ = dic.Register[config.Config](conf)
	_ = dic.Register[logger.Logger](logger.CreateLogger(&conf))
	_ = dic.Register[metrics.Meter](metrics.NewRegistry())

	redisClient := cache.NewRedisClient(&redis.Options{Addr: conf.RedisAddress})
	_ = dic.Register[cache.RedisClient](*redisClient)
	if conf.DBURL != nil {
		_ = dic.Register[database.Database](database.NewPostgres(
			conf.DBURL,
			dic.GetService[logger.Logger](),
		))
	}

	store, err := newSessionStore(conf, redisClient)
	if err != nil {
		return err
	}
	_ = dic.Register[session.Store](store)
	_ = dic.Register[*session.Manager](session.NewManager(
		dic.GetService[session.Store](),
		dic.GetService[logger.Logger](),
		session.CookieOptions{Secure: conf.CookieSecure, MaxAge: conf.SessionTTL},
	))

	table, err := routes.NewTable(routes.DefaultRules(), routes.DefaultRoleDefaults(), "/signin")
	if err != nil {
		return errors.Wrap(err, "unable to build the route table")
	}
	_ = dic.Register[authorization.AuthorizationChecker](authorization.NewVoterAuthorizationChecker(
		authorization.DefaultVoters(),
	))
	_ = dic.Register[*authorization.RouteGuard](authorization.NewRouteGuard(
		table,
		dic.GetService[authorization.AuthorizationChecker](),
	))
	_ = dic.Register[*authorization.Middleware](authorization.NewMiddleware(
		dic.GetService[*authorization.RouteGuard](),
		dic.GetService[*session.Manager](),
		dic.GetService[metrics.Meter](),
		dic.GetService[logger.Logger](),
	))

	_ = dic.Register[crypto.KeyManager](crypto.NewKeyManager(
		dic.GetService[logger.Logger](),
	))
	httpClient, err := newBackendHTTPClient(conf)
	if err != nil {
		return err
	}
	_ = dic.Register[backend.Client](backend.NewClient(
		httpClient,
		conf.BackendURL,
		dic.GetService[logger.Logger](),
	))
	_ = dic.Register[cache.Cache[[]backend.Candidate]](cache.CreateRedisCache[[]backend.Candidate](
		redisClient.Client(),
		"candidates/",
		cache.OptionDefaultTTL(conf.CandidateCacheTTL),
	))

	_ = dic.Register[domain.AuthService](domain.NewAuthService(
		dic.GetService[logger.Logger](),
		dic.GetService[backend.Client](),
	))
	_ = dic.Register[domain.ElectionService](domain.NewElectionService(
		dic.GetService[logger.Logger](),
		dic.GetService[backend.Client](),
		dic.GetService[cache.Cache[[]backend.Candidate]](),
	))
	_ = dic.Register[client.BackgroundWorkerClient](client.NewBackgroundWorkerClient(
		asynq.NewClient(asynq.RedisClientOpt{Addr: conf.RedisAddress}),
	))

	renderer, err := views.NewRenderer()
	if err != nil {
		return errors.Wrap(err, "unable to load templates")
	}
	_ = dic.Register[views.Renderer](renderer)
	_ = dic.Register[*mux.Router](router.GetRouter())
	_ = dic.Register[urlgenerator.URLGenerator](urlgenerator.NewURLGenerator(
		dic.GetService[*mux.Router](),
	))

	return nil
}

func newSessionStore(conf config.Config, redisClient *cache.RedisClient) (session.Store, error) {
	switch conf.SessionStore {
	case config.SessionStorePostgres:
		store, err := session.NewCachedStore(
			session.NewPostgresStore(dic.GetService[database.Database](), conf.SessionTTL),
			conf.SessionCacheSize,
			sessionCacheMaxAge,
		)
		if err != nil {
			return nil, errors.Wrap(err, "unable to create the session cache")
		}
		return store, nil
	case config.SessionStoreCookie:
		return session.NewCookieStore([]byte(conf.SessionSecret), conf.SessionTTL), nil
	default:
		return session.NewRedisStore(redisClient.Client(), conf.SessionTTL), nil
	}
}

// newBackendHTTPClient chains logging, metrics, throttling and, when a key
// is configured, request signing in front of the default transport.
func newBackendHTTPClient(conf config.Config) (*http.Client, error) {
	log := dic.GetService[logger.Logger]()
	var transport http.RoundTripper = http.DefaultTransport
	if conf.BackendSigningKeyFile != "" {
		key, err := dic.GetService[crypto.KeyManager]().LoadPrivateKey(conf.BackendSigningKeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load the backend signing key")
		}
		transport, err = backend.NewSigningTransport(transport, key, conf.BackendSigningKeyID)
		if err != nil {
			return nil, errors.Wrap(err, "unable to create the signing transport")
		}
	}
	transport = backend.NewThrottledTransport(transport, conf.BackendRateLimit, log)
	transport = backend.NewMetricsTransport(transport, dic.GetService[metrics.Meter]())
	transport = logger.GetResponseLogger(transport, log)
	return &http.Client{
		Transport: transport,
		Timeout:   conf.BackendTimeout,
	}, nil
}
