// Package sessionstore selects and opens the configured session record store.
package sessionstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	webstorage "github.com/louisbranch/studyabroad/internal/services/web/storage"
	"github.com/louisbranch/studyabroad/internal/services/web/storage/memory"
	webredis "github.com/louisbranch/studyabroad/internal/services/web/storage/redis"
	websqlite "github.com/louisbranch/studyabroad/internal/services/web/storage/sqlite"
)

// Kind names a session store backend.
type Kind string

const (
	KindMemory Kind = "memory"
	KindSQLite Kind = "sqlite"
	KindRedis  Kind = "redis"
)

// Options selects and configures the store.
type Options struct {
	Kind          string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// ParseKind validates a configured store kind. Empty selects memory.
func ParseKind(raw string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case "":
		return KindMemory, nil
	case KindMemory, KindSQLite, KindRedis:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown session store %q", raw)
	}
}

// Open returns the configured store.
func Open(ctx context.Context, opts Options) (webstorage.SessionStore, error) {
	kind, err := ParseKind(opts.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindSQLite:
		return openSQLite(opts.SQLitePath)
	case KindRedis:
		store, err := webredis.Open(ctx, webredis.Options{
			Addr:       opts.RedisAddr,
			Password:   opts.RedisPassword,
			DB:         opts.RedisDB,
			DefaultTTL: opts.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, nil
	default:
		return memory.New(), nil
	}
}

func openSQLite(path string) (webstorage.SessionStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite session store path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create session store dir: %w", err)
		}
	}
	store, err := websqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite session store: %w", err)
	}
	return store, nil
}
