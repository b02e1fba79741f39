package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	SessionBackendRedis  = "redis"
	SessionBackendCookie = "cookie"
)

type Config struct {
	Port      string   `env:"PORT,         default=5001"`
	Env       string   `env:"ENV,          default=development"`
	LogLevel  string   `env:"LOG_LEVEL,    default=info"`
	LogPretty bool     `env:"LOG_PRETTY,   default=false"`
	Origins   []string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	TMDB    TMDBConfig
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,    default=movie-social-network"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// SessionConfig selects the session backend. "cookie" keeps the session in a
// signed client-side cookie, which logout cannot revoke.
type SessionConfig struct {
	Backend    string        `env:"SESSION_BACKEND, default=redis"`
	Secret     string        `env:"SESSION_SECRET,  default=movie-sn-dev-secret-change-me"`
	CookieName string        `env:"SESSION_COOKIE,  default=connect.sid"`
	MaxAge     time.Duration `env:"SESSION_MAX_AGE, default=168h"`
}

type TMDBConfig struct {
	APIKey   string        `env:"TMDB_API_KEY"`
	BaseURL  string        `env:"TMDB_BASE_URL, default=https://api.themoviedb.org/3"`
	Language string        `env:"TMDB_LANGUAGE, default=en-US"`
	Timeout  time.Duration `env:"TMDB_TIMEOUT,  default=10s"`
}

// IsProduction reports whether cookies must be Secure with SameSite=None.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l. Tests pass an envconfig.MapLookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Backend {
	case SessionBackendRedis, SessionBackendCookie:
	default:
		return errors.New("config: SESSION_BACKEND must be redis or cookie")
	}
	if c.Session.MaxAge <= 0 {
		return errors.New("config: SESSION_MAX_AGE must be positive")
	}
	if c.IsProduction() && c.Session.Secret == "movie-sn-dev-secret-change-me" {
		return errors.New("config: SESSION_SECRET must be set in production")
	}
	return nil
}
