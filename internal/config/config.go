package config

import (
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
	SessionStoreCookie   = "cookie"
)

type Config struct {
	Address               string        `mapstructure:"address"`
	LogLevel              logrus.Level  `mapstructure:"-"`
	BackendURL            *url.URL      `mapstructure:"-"`
	BackendTimeout        time.Duration `mapstructure:"-"`
	BackendRateLimit      float64       `mapstructure:"backend_rate_limit"`
	BackendSigningKeyFile string        `mapstructure:"backend_signing_key_file"`
	BackendSigningKeyID   string        `mapstructure:"backend_signing_key_id"`
	SessionStore          string        `mapstructure:"session_store"`
	SessionTTL            time.Duration `mapstructure:"-"`
	SessionSecret         string        `mapstructure:"session_secret"`
	SessionCacheSize      int           `mapstructure:"session_cache_size"`
	SessionPurgeInterval  time.Duration `mapstructure:"-"`
	CookieSecure          bool          `mapstructure:"cookie_secure"`
	RedisAddress          string        `mapstructure:"redis_address"`
	DBURL                 *url.URL      `mapstructure:"-"`
	RunMigrations         bool          `mapstructure:"run_migrations"`
	CandidateCacheTTL     time.Duration `mapstructure:"-"`
	DefaultElectionID     string        `mapstructure:"default_election_id"`
	DisableEmbedWorker    bool          `mapstructure:"disable_embed_worker"`
	SentryDSN             string        `mapstructure:"sentry_dsn"`
}

type Loader interface {
	Load() error
	Get() Config
}

type configLoader struct {
	conf Config
}

func NewLoader() *configLoader {
	return &configLoader{}
}

func (l *configLoader) Get() Config {
	return l.conf
}

var keys = []string{ //nolint:gochecknoglobals
	"address", "log_level", "backend_url", "backend_timeout", "backend_rate_limit",
	"backend_signing_key_file", "backend_signing_key_id", "session_store", "session_ttl",
	"session_secret", "session_cache_size", "session_purge_interval", "cookie_secure",
	"redis_address", "db_url", "run_migrations", "candidate_cache_ttl", "default_election_id",
	"disable_embed_worker", "sentry_dsn",
}

func setDefaults() {
	// Unmarshal only sees keys viper knows about, env-only values need an explicit binding.
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}

	viper.SetDefault("address", ":8080")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("backend_timeout", "10s")
	viper.SetDefault("backend_rate_limit", 20)
	viper.SetDefault("session_store", SessionStoreRedis)
	viper.SetDefault("session_ttl", "24h")
	viper.SetDefault("session_cache_size", 1024)
	viper.SetDefault("session_purge_interval", "1h")
	viper.SetDefault("candidate_cache_ttl", "30s")
}

func (l *configLoader) Load() error {
	conf := &Config{}

	viper.SetEnvPrefix("truvote")
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.SetConfigFile(".env")
	err := viper.ReadInConfig()
	if err != nil && os.Getenv("TEST") != "true" {
		return errors.New("unable to read default config from .env")
	}
	viper.SetConfigFile(".env.local")
	_ = viper.MergeInConfig()

	err = viper.Unmarshal(conf)
	if err != nil {
		return errors.Wrap(err, "unable to deserialize configuration")
	}

	conf.LogLevel, err = logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return errors.Wrap(err, "unable to parse log level")
	}

	backendURL := viper.GetString("backend_url")
	if backendURL == "" {
		return errors.New("You must define a backend URL")
	}
	conf.BackendURL, err = url.Parse(backendURL)
	if err != nil {
		return errors.Wrap(err, "unable to parse backend URL")
	}

	if conf.BackendTimeout, err = parseDuration("backend_timeout"); err != nil {
		return err
	}
	if conf.SessionTTL, err = parseDuration("session_ttl"); err != nil {
		return err
	}
	if conf.SessionPurgeInterval, err = parseDuration("session_purge_interval"); err != nil {
		return err
	}
	if conf.CandidateCacheTTL, err = parseDuration("candidate_cache_ttl"); err != nil {
		return err
	}

	switch conf.SessionStore {
	case SessionStoreRedis:
	case SessionStorePostgres:
	case SessionStoreCookie:
		if len(conf.SessionSecret) < 32 {
			return errors.New("cookie session store needs a session_secret of at least 32 bytes")
		}
	default:
		return errors.Errorf("unknown session store %q", conf.SessionStore)
	}

	if conf.RedisAddress == "" {
		return errors.New("You must define a redis address")
	}

	dbURL := viper.GetString("db_url")
	if dbURL == "" && conf.SessionStore == SessionStorePostgres {
		return errors.New("You must define a database URL to store sessions in postgres")
	}
	if dbURL != "" {
		conf.DBURL, err = url.Parse(dbURL)
		if err != nil {
			return errors.Wrap(err, "unable to parse database URL")
		}
	}

	if conf.BackendSigningKeyFile != "" && conf.BackendSigningKeyID == "" {
		return errors.New("backend_signing_key_id is required when a signing key is configured")
	}

	l.conf = *conf
	return nil
}

func parseDuration(key string) (time.Duration, error) {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return 0, errors.Wrapf(err, "unable to parse %s", key)
	}
	return d, nil
}
