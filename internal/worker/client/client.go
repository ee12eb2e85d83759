package client

import (
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

//go:generate mockery --name BackgroundWorkerClient
type BackgroundWorkerClient interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

type asynQClient struct {
	client *asynq.Client
}

func NewBackgroundWorkerClient(client *asynq.Client) *asynQClient {
	return &asynQClient{client: client}
}

func (a *asynQClient) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	info, err := a.client.Enqueue(task, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to enqueue %s", task.Type())
	}
	return info, nil
}

func (a *asynQClient) Close() error {
	return a.client.Close() //nolint:wrapcheck
}
