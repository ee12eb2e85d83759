package logger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/logger/mocks"
)

func TestGetResponseLogger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	log := mocks.NewNullLogger()
	client := &http.Client{Transport: logger.GetResponseLogger(http.DefaultTransport, log)}

	resp, err := client.Get(server.URL + "/api/candidates/1?page=2")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusTeapot, resp.StatusCode)
	entry := log.Hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.TraceLevel, entry.Level)
	require.Equal(t, "backend call", entry.Message)
	require.Equal(t, http.StatusTeapot, entry.Data["status"])
	require.Equal(t, "/api/candidates/1", entry.Data["url"])
	require.Equal(t, http.MethodGet, entry.Data["method"])
}
