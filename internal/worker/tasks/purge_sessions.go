package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/metrics"
	"github.com/truvote/portal/internal/observability"
	"github.com/truvote/portal/internal/session"
	taskerrors "github.com/truvote/portal/internal/worker/errors"
	"github.com/truvote/portal/internal/worker/queues"
)

type PurgeSessionsInput struct {
	TraceID string `json:"trace_id,omitempty"`
}

// PurgeSessionsOptions returns the task options. A positive unique window
// keeps a single pending purge per window across every scheduler.
func PurgeSessionsOptions(unique time.Duration) []asynq.Option {
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Queue(queues.QueueMaintenance),
		asynq.Retention(24 * time.Hour),
	}
	if unique > 0 {
		opts = append(opts, asynq.Unique(unique))
	}
	return opts
}

// NewPurgeSessionsTask builds an on-demand purge carrying the caller's trace.
func NewPurgeSessionsTask(ctx context.Context) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeSessionsInput{
		TraceID: observability.GetTraceIDFromContext(ctx),
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return asynq.NewTask(TypePurgeSessions, payload, PurgeSessionsOptions(0)...), nil
}

// NewScheduledPurgeSessionsTask builds the periodic purge. Its payload is the
// same on every instance so uniqueness holds between them.
func NewScheduledPurgeSessionsTask(interval time.Duration) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeSessionsInput{})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return asynq.NewTask(TypePurgeSessions, payload, PurgeSessionsOptions(interval)...), nil
}

// HandlePurgeSessions removes expired records from stores that keep them,
// redis and cookie sessions expire on their own.
func HandlePurgeSessions(ctx context.Context, task *asynq.Task) error {
	log := dic.GetService[logger.Logger]()
	store := dic.GetService[session.Store]()

	var input PurgeSessionsInput
	if err := json.Unmarshal(task.Payload(), &input); err != nil {
		return taskerrors.TaskError{
			SkipRetry: true,
			Err:       errors.Wrap(err, "unable to deserialize task input"),
		}
	}

	purger, ok := store.(session.Purger)
	if !ok {
		log.Debug("session store expires records by itself, nothing to purge")
		return nil
	}

	span := observability.StartSpan(ctx, "session.purge", nil)
	purged, err := purger.Purge(ctx)
	observability.FinishSpan(span)
	if err != nil {
		return errors.Wrap(err, "unable to purge expired sessions")
	}

	dic.GetService[metrics.Meter]().SessionsPurged(purged)
	log.WithField("count", purged).Info("expired sessions purged")
	return nil
}
