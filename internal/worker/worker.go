package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/config"
	"github.com/truvote/portal/internal/dic"
	internalerrors "github.com/truvote/portal/internal/errors"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/worker/queues"
	"github.com/truvote/portal/internal/worker/tasks"
)

func NewServeMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePurgeSessions, TracingHandler(ErrorHandler(tasks.HandlePurgeSessions)))
	return mux
}

// StartBroker processes tasks until ctx is done.
func StartBroker(ctx context.Context) error {
	conf := dic.GetService[config.Config]()
	log := dic.GetService[logger.Logger]()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: conf.RedisAddress},
		asynq.Config{
			BaseContext:  func() context.Context { return ctx },
			LogLevel:     asynq.InfoLevel,
			Logger:       log,
			ErrorHandler: internalerrors.AsynqErrorHandler(),
			Queues: map[string]int{
				queues.QueueMaintenance: 1,
			},
			Concurrency: 2,
		},
	)

	log.Info("Starting worker")
	if err := srv.Start(NewServeMux()); err != nil {
		return errors.Wrap(err, "unable to start worker")
	}
	<-ctx.Done()
	srv.Shutdown()
	return nil
}

// StartScheduler enqueues a session purge every session_purge_interval until ctx is done.
func StartScheduler(ctx context.Context) error {
	conf := dic.GetService[config.Config]()
	log := dic.GetService[logger.Logger]()

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: conf.RedisAddress},
		&asynq.SchedulerOpts{
			Logger:   log,
			LogLevel: asynq.InfoLevel,
		},
	)
	task, err := tasks.NewScheduledPurgeSessionsTask(conf.SessionPurgeInterval)
	if err != nil {
		return errors.Wrap(err, "unable to create purge task")
	}
	entryID, err := scheduler.Register(fmt.Sprintf("@every %s", conf.SessionPurgeInterval), task)
	if err != nil {
		return errors.Wrap(err, "unable to schedule session purge")
	}
	log.WithField("entry", entryID).
		WithField("interval", conf.SessionPurgeInterval.String()).
		Info("Starting scheduler")

	if err := scheduler.Start(); err != nil {
		return errors.Wrap(err, "unable to start scheduler")
	}
	<-ctx.Done()
	scheduler.Shutdown()
	return nil
}
