package testutil

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/dic"
	"github.com/truvote/portal/internal/dic/container"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/logger/mocks"
)

type Setting struct {
	Key   string
	Value any
}

// BuildTestContainer builds the real container on top of a configuration
// that never reaches a real backend. Services registered before the call
// override the real ones, and settings are applied after the defaults.
func BuildTestContainer(t *testing.T, settings ...Setting) {
	t.Helper()
	viper.Reset()
	t.Setenv("TEST", "true")

	viper.Set("log_level", "debug")
	viper.Set("backend_url", "http://backend.invalid")
	viper.Set("redis_address", "redis.invalid:6379")
	viper.Set("session_store", "cookie")
	viper.Set("session_secret", "0123456789abcdef0123456789abcdef")
	viper.Set("default_election_id", "e1")
	for _, setting := range settings {
		viper.Set(setting.Key, setting.Value)
	}

	_ = dic.Register[logger.Logger](mocks.NewNullLogger())

	require.NoError(t, container.BuildContainer())
	t.Cleanup(dic.ResetContainer)
}
