// Package web parses web command flags and composes the server entrypoint.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/studyabroad/internal/platform/cmd"
	"github.com/louisbranch/studyabroad/internal/services/web"
	"github.com/louisbranch/studyabroad/internal/services/web/integration/sessionstore"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr       string        `env:"STUDYABROAD_WEB_HTTP_ADDR"       envDefault:"localhost:8080"`
	BackendBaseURL string        `env:"STUDYABROAD_WEB_BACKEND_URL"     envDefault:"http://localhost:5000"`
	BackendTimeout time.Duration `env:"STUDYABROAD_WEB_BACKEND_TIMEOUT" envDefault:"10s"`

	SessionStore  string        `env:"STUDYABROAD_WEB_SESSION_STORE"  envDefault:"memory"`
	SQLitePath    string        `env:"STUDYABROAD_WEB_SQLITE_PATH"    envDefault:"data/web-sessions.db"`
	RedisAddr     string        `env:"STUDYABROAD_WEB_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string        `env:"STUDYABROAD_WEB_REDIS_PASSWORD"`
	RedisDB       int           `env:"STUDYABROAD_WEB_REDIS_DB"       envDefault:"0"`
	SessionTTL    time.Duration `env:"STUDYABROAD_WEB_SESSION_TTL"    envDefault:"168h"`

	SessionCheckWait    time.Duration `env:"STUDYABROAD_WEB_SESSION_CHECK_WAIT"    envDefault:"750ms"`
	IdleTTL             time.Duration `env:"STUDYABROAD_WEB_IDLE_TTL"              envDefault:"30m"`
	SweepInterval       time.Duration `env:"STUDYABROAD_WEB_SWEEP_INTERVAL"        envDefault:"1m"`
	TrustForwardedProto bool          `env:"STUDYABROAD_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendBaseURL, "backend-url", cfg.BackendBaseURL, "advisory backend base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "timeout for one backend request")
	fs.StringVar(&cfg.SessionStore, "session-store", cfg.SessionStore, "session store: memory, sqlite, or redis")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "sqlite session store path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "redis session store address")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "redis session store database")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "session cookie and record lifetime")
	fs.DurationVar(&cfg.SessionCheckWait, "session-check-wait", cfg.SessionCheckWait, "page load wait for the first session check")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto for cookie security")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := sessionstore.ParseKind(cfg.SessionStore); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:       cfg.HTTPAddr,
			BackendBaseURL: cfg.BackendBaseURL,
			BackendTimeout: cfg.BackendTimeout,
			SessionStore: sessionstore.Options{
				Kind:          cfg.SessionStore,
				SQLitePath:    cfg.SQLitePath,
				RedisAddr:     cfg.RedisAddr,
				RedisPassword: cfg.RedisPassword,
				RedisDB:       cfg.RedisDB,
				TTL:           cfg.SessionTTL,
			},
			CookieMaxAge:        cfg.SessionTTL,
			SessionCheckWait:    cfg.SessionCheckWait,
			IdleTTL:             cfg.IdleTTL,
			SweepInterval:       cfg.SweepInterval,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
