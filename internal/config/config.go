package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds runtime configuration for the trivia service.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	CORS     CORS
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	PoolSize int    `env:"PG_POOL_SIZE" envDefault:"10"`
}

// CORS holds Cross-Origin Resource Sharing configuration. The trivia API is
// consumed by a browser frontend, so these headers go on every response.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// ConnString renders the pgx connection string.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode, p.PoolSize)
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
