package observability

import (
	"context"

	"github.com/getsentry/sentry-go"
)

func StartTransaction(ctx context.Context, name string, options ...sentry.SpanOption) *sentry.Span {
	tx := sentry.StartTransaction(ctx, name, options...)
	tx.Op = name
	return tx
}

func GetTraceIDFromContext(ctx context.Context) string {
	tx := sentry.TransactionFromContext(ctx)
	if tx == nil {
		return ""
	}
	return tx.ToSentryTrace()
}

// StartSpan returns nil outside of a transaction, FinishSpan accepts it.
func StartSpan(ctx context.Context, name string, data map[string]any) *sentry.Span {
	transaction := sentry.TransactionFromContext(ctx)
	if transaction == nil {
		return nil
	}
	return transaction.StartChild(name, func(s *sentry.Span) {
		s.Data = data
	})
}

func FinishSpan(span *sentry.Span) {
	if span != nil {
		span.Finish()
	}
}

// SetTag attaches a tag to the hub bound to ctx, if any.
func SetTag(ctx context.Context, key, value string) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		return
	}
	hub.Scope().SetTag(key, value)
}
