package logger

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/truvote/portal/internal/config"
	"github.com/truvote/portal/internal/observability"
)

type contextKey int

const (
	tracelogQueryCtxKey contextKey = iota
)

type traceQueryData struct {
	startTime time.Time
	sql       string
	args      []any
	span      *sentry.Span
}

type Logger interface {
	logrus.FieldLogger
	pgx.QueryTracer
}

type logger struct {
	logrus.FieldLogger
}

func CreateLogger(config *config.Config) *logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		DisableQuote: true,
	}
	log.SetLevel(config.LogLevel)
	return &logger{
		FieldLogger: log,
	}
}

func (l *logger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, tracelogQueryCtxKey, &traceQueryData{
		startTime: time.Now(),
		sql:       data.SQL,
		args:      data.Args,
		span:      observability.StartSpan(ctx, "db", map[string]any{"db.system": "postgres", "db.query": data.SQL}),
	})
}

func (l *logger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	queryData, ok := ctx.Value(tracelogQueryCtxKey).(*traceQueryData)
	if !ok {
		return
	}
	observability.FinishSpan(queryData.span)
	fields := logrus.Fields{
		"duration": time.Since(queryData.startTime).String(),
		"query":    queryData.sql,
		// session records travel as query args, only their count is logged
		"args": len(queryData.args),
	}
	if data.Err != nil {
		l.WithFields(fields).WithError(data.Err).Debug("database query failed")
		return
	}
	l.WithFields(fields).Trace("database query")
}
