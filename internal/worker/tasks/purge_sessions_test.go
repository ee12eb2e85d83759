package tasks_test

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
	loggermocks "github.com/truvote/portal/internal/logger/mocks"
	"github.com/truvote/portal/internal/metrics"
	metricsmocks "github.com/truvote/portal/internal/metrics/mocks"
	"github.com/truvote/portal/internal/session"
	sessionmocks "github.com/truvote/portal/internal/session/mocks"
	taskerrors "github.com/truvote/portal/internal/worker/errors"
	"github.com/truvote/portal/internal/worker/queues"
	"github.com/truvote/portal/internal/worker/tasks"
)

type purgingStore struct {
	*sessionmocks.Store
	*sessionmocks.Purger
}

func TestNewPurgeSessionsTask(t *testing.T) {
	task, err := tasks.NewPurgeSessionsTask(context.Background())
	require.NoError(t, err)
	require.Equal(t, tasks.TypePurgeSessions, task.Type())
	require.JSONEq(t, `{}`, string(task.Payload()))
	require.NotEmpty(t, queues.QueueMaintenance)
}

func TestNewScheduledPurgeSessionsTask_IsUniquePerInterval(t *testing.T) {
	first, err := tasks.NewScheduledPurgeSessionsTask(time.Hour)
	require.NoError(t, err)
	second, err := tasks.NewScheduledPurgeSessionsTask(time.Hour)
	require.NoError(t, err)
	require.Equal(t, first.Payload(), second.Payload())

	unique := findOption(tasks.PurgeSessionsOptions(time.Hour), asynq.UniqueOpt)
	require.NotNil(t, unique)
	require.Equal(t, time.Hour, unique.Value())
	queue := findOption(tasks.PurgeSessionsOptions(time.Hour), asynq.QueueOpt)
	require.NotNil(t, queue)
	require.Equal(t, queues.QueueMaintenance, queue.Value())

	require.Nil(t, findOption(tasks.PurgeSessionsOptions(0), asynq.UniqueOpt))
}

func findOption(opts []asynq.Option, optionType asynq.OptionType) asynq.Option {
	for _, opt := range opts {
		if opt.Type() == optionType {
			return opt
		}
	}
	return nil
}

func TestHandlePurgeSessions(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		mock    func(t *testing.T)
		err     string
	}{
		{
			name:    "invalid payload",
			payload: "{",
			mock: func(t *testing.T) {
				_ = dic.Register[session.Store](sessionmocks.NewStore(t))
			},
			err: "unable to deserialize task input: unexpected end of JSON input",
		},
		{
			name:    "store without expired records",
			payload: "{}",
			mock: func(t *testing.T) {
				_ = dic.Register[session.Store](sessionmocks.NewStore(t))
			},
		},
		{
			name:    "purge failure",
			payload: "{}",
			mock: func(t *testing.T) {
				purger := sessionmocks.NewPurger(t)
				purger.On("Purge", mock.Anything).Return(int64(0), errors.New("database is down"))
				_ = dic.Register[session.Store](purgingStore{Store: sessionmocks.NewStore(t), Purger: purger})
			},
			err: "unable to purge expired sessions: database is down",
		},
		{
			name:    "purged",
			payload: `{"trace_id":"abc"}`,
			mock: func(t *testing.T) {
				purger := sessionmocks.NewPurger(t)
				purger.On("Purge", mock.Anything).Return(int64(4), nil)
				meter := metricsmocks.NewMeter(t)
				meter.On("SessionsPurged", int64(4)).Once()
				_ = dic.Register[session.Store](purgingStore{Store: sessionmocks.NewStore(t), Purger: purger})
				_ = dic.Register[metrics.Meter](meter)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dic.ResetContainer()
			_ = dic.Register[logger.Logger](loggermocks.NewNullLogger())
			tt.mock(t)

			err := tasks.HandlePurgeSessions(context.Background(), asynq.NewTask(tasks.TypePurgeSessions, []byte(tt.payload)))
			if tt.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.err)
			if tt.name == "invalid payload" {
				var taskErr taskerrors.TaskError
				require.True(t, errors.As(err, &taskErr))
				require.True(t, taskErr.SkipRetry)
			}
		})
	}
}
