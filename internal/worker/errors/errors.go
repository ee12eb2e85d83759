package errors

// TaskError lets a task decide whether asynq should try again.
type TaskError struct {
	SkipRetry bool
	Err       error
}

func (e TaskError) Error() string {
	return e.Cause().Error()
}

func (e TaskError) Cause() error {
	return e.Err
}

func (e TaskError) Unwrap() error {
	return e.Err
}
