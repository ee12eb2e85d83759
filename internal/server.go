package internal

import (
	"context"
	"net"
	"net/http"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Address         string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	// OnListen is called once the portal accepts connections.
	OnListen func(addr net.Addr)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func accessLog(log logger.Logger, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, request *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, request)
		fields := logrus.Fields{
			"status":      recorder.status,
			"duration":    time.Since(start).String(),
			"querystring": request.URL.RawQuery,
		}
		if location := recorder.Header().Get("location"); location != "" {
			fields["location"] = location
		}
		log.WithFields(fields).Debugf("%s %s", request.Method, request.URL.Path)
	}
}

// StartServer serves the portal router until ctx is cancelled.
func StartServer(ctx context.Context, cfg Config) error {
	muxRouter := dic.GetService[*mux.Router]()
	log := dic.GetService[logger.Logger]()
	sentryHandler := sentryhttp.New(sentryhttp.Options{})

	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", cfg.Address)
	}

	srv := &http.Server{
		Handler:           sentryHandler.HandleFunc(accessLog(log, muxRouter)),
		WriteTimeout:      cfg.RequestTimeout,
		ReadTimeout:       cfg.RequestTimeout,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	log.WithField("address", listener.Addr().String()).Info("Starting portal http server")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()
	if cfg.OnListen != nil {
		cfg.OnListen(listener.Addr())
	}

	select {
	case err = <-serveErr:
		return errors.Wrap(err, "portal http server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while sending shutdown signal to http server")
	}
	if err = <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "portal http server failed")
	}
	log.Info("portal http server stopped")
	return nil
}
