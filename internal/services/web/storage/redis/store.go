// Package redis provides the session record store backed by Redis.
//
// Expiry is delegated to key TTLs, so expired records disappear without a
// sweep.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	webstorage "github.com/louisbranch/studyabroad/internal/services/web/storage"
)

const sessionKeyPrefix = "studyabroad:web:session:"

// client is the subset of the go-redis client the store issues.
type client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Close() error
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	// DefaultTTL bounds records that carry no expiry of their own.
	DefaultTTL time.Duration
}

// Store persists session records as JSON values under prefixed keys.
type Store struct {
	client     client
	defaultTTL time.Duration
	now        func() time.Time
}

type payload struct {
	Token     string `json:"token"`
	CreatedAt int64  `json:"created_at"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// Open connects to Redis and verifies the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newStore(rdb, opts.DefaultTTL), nil
}

func newStore(c client, defaultTTL time.Duration) *Store {
	return &Store{
		client:     c,
		defaultTTL: defaultTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Close releases the Redis connection pool.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// GetSession loads one session record.
func (s *Store) GetSession(ctx context.Context, id string) (webstorage.SessionRecord, bool, error) {
	if s == nil || s.client == nil {
		return webstorage.SessionRecord{}, false, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.SessionRecord{}, false, nil
	}
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return webstorage.SessionRecord{}, false, nil
	}
	if err != nil {
		return webstorage.SessionRecord{}, false, fmt.Errorf("get session: %w", err)
	}

	var value payload
	if err := json.Unmarshal(raw, &value); err != nil {
		return webstorage.SessionRecord{}, false, fmt.Errorf("decode session: %w", err)
	}
	record := webstorage.SessionRecord{
		ID:        id,
		Token:     value.Token,
		CreatedAt: unixMillisToTime(value.CreatedAt),
		ExpiresAt: unixMillisToTime(value.ExpiresAt),
	}
	if record.Expired(s.now()) {
		return webstorage.SessionRecord{}, false, nil
	}
	return record, true, nil
}

// PutSession stores a record with a TTL matching its expiry.
func (s *Store) PutSession(ctx context.Context, record webstorage.SessionRecord) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	record, err := record.Normalize()
	if err != nil {
		return err
	}

	ttl := s.defaultTTL
	if !record.ExpiresAt.IsZero() {
		ttl = record.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.DeleteSession(ctx, record.ID)
		}
	}

	raw, err := json.Marshal(payload{
		Token:     record.Token,
		CreatedAt: record.CreatedAt.UnixMilli(),
		ExpiresAt: timeToUnixMillis(record.ExpiresAt),
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+record.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// DeleteSession removes one record.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions is a no-op: Redis evicts records by TTL.
func (s *Store) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.SessionStore = (*Store)(nil)
