package logger

import (
	"net/http"

	"github.com/motemen/go-loghttp"
	"github.com/sirupsen/logrus"
)

// GetResponseLogger wraps next so every backend response is traced.
func GetResponseLogger(next http.RoundTripper, log Logger) *loghttp.Transport {
	return &loghttp.Transport{
		Transport:  next,
		LogRequest: func(req *http.Request) {},
		LogResponse: func(resp *http.Response) {
			log.WithFields(logrus.Fields{
				"host":   resp.Request.Host,
				"method": resp.Request.Method,
				"status": resp.StatusCode,
				"url":    resp.Request.URL.Path,
				"query":  resp.Request.URL.Query(),
			}).Trace("backend call")
		},
	}
}
