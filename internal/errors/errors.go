package errors

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/logger"
)

type HandlerError struct {
	Cause       error
	UserMessage string
	HTTPCode    int
}

func New(message string, code int) HandlerError {
	return HandlerError{
		Cause:    errors.New(message),
		HTTPCode: code,
	}
}

func Wrap(err error, code int) HandlerError {
	return HandlerError{
		Cause:    err,
		HTTPCode: code,
	}
}

func (h HandlerError) WithUserMessage(message string) HandlerError {
	h.UserMessage = message
	return h
}

func (h HandlerError) Error() string {
	if h.UserMessage != "" {
		return h.UserMessage
	}
	if h.Cause != nil {
		return h.Cause.Error()
	}
	return http.StatusText(h.HTTPCode)
}

func (h HandlerError) Unwrap() error {
	return h.Cause
}

type ErrorAwareHTTPHandler func(w http.ResponseWriter, req *http.Request) error

func HTTPErrorHandler(handler ErrorAwareHTTPHandler) func(w http.ResponseWriter, req *http.Request) {
	log := dic.GetService[logger.Logger]()
	return func(responseWriter http.ResponseWriter, request *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetRequest(request)
					if err, isErr := recovered.(error); isErr {
						sentry.CaptureException(err)
						return
					}
					sentry.CurrentHub().Recover(recovered)
				})
				log.Errorf("panic: %s %s", recovered, debug.Stack())
				responseWriter.WriteHeader(http.StatusInternalServerError)
			}
		}()
		err := handler(responseWriter, request)
		if err == nil {
			return
		}
		var handlerError HandlerError
		if !errors.As(err, &handlerError) {
			handlerError = Wrap(err, http.StatusInternalServerError)
		}
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetRequest(request)
			if handlerError.Cause != nil {
				sentry.CaptureException(handlerError.Cause)
			} else {
				sentry.CaptureException(handlerError)
			}
		})
		log.WithError(err).Error("Error handling http request")
		var respBody []byte
		if handlerError.UserMessage != "" {
			responseWriter.Header().Add("content-type", "application/json")
			respBody, _ = json.Marshal(map[string]string{
				"error": handlerError.UserMessage,
			})
		}
		responseWriter.WriteHeader(handlerError.HTTPCode)
		_, _ = responseWriter.Write(respBody)
	}
}

func AsynqErrorHandler() asynq.ErrorHandlerFunc {
	log := dic.GetService[logger.Logger]()
	return func(ctx context.Context, task *asynq.Task, err error) {
		log.WithError(err).WithField("type", task.Type()).Error("Background task failed")
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("type", task.Type())
			scope.SetRequestBody(task.Payload())
			sentry.CaptureException(err)
		})
	}
}
