package worker

import (
	"context"
	"encoding/json"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/observability"
	taskerrors "github.com/truvote/portal/internal/worker/errors"
)

type TraceableTask struct {
	TraceID string `json:"trace_id"`
}
type TaskHandler func(ctx context.Context, t *asynq.Task) error

// ErrorHandler turns a TaskError asking for no retry into asynq.SkipRetry,
// logging and reporting is left to the server error handler.
func ErrorHandler(handler TaskHandler) TaskHandler {
	return func(ctx context.Context, task *asynq.Task) error {
		observability.SetTag(ctx, "task_type", task.Type())
		err := handler(ctx, task)
		if err == nil {
			return nil
		}
		var taskErr taskerrors.TaskError
		if errors.As(err, &taskErr) && taskErr.SkipRetry {
			return errors.Wrapf(asynq.SkipRetry, "%s", taskErr.Error())
		}
		return err
	}
}

func TracingHandler(handler TaskHandler) TaskHandler {
	return func(ctx context.Context, task *asynq.Task) error {
		traceTask := TraceableTask{}
		_ = json.Unmarshal(task.Payload(), &traceTask)
		opts := []sentry.SpanOption{
			sentry.OpName("worker"),
			sentry.ContinueFromTrace(traceTask.TraceID),
		}
		tx := observability.StartTransaction(ctx, task.Type(), opts...)
		err := handler(tx.Context(), task) //nolint:contextcheck
		observability.FinishSpan(tx)
		return err
	}
}
