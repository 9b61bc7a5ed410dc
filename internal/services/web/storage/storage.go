package storage

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidRecord reports a record that cannot be persisted.
var ErrInvalidRecord = errors.New("invalid session record")

// SessionRecord binds one browser session id to a backend identity token.
type SessionRecord struct {
	ID        string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the record is past its expiry at now. Records
// without an expiry never expire.
func (r SessionRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

// Normalize trims identifiers and validates required fields.
func (r SessionRecord) Normalize() (SessionRecord, error) {
	r.ID = strings.TrimSpace(r.ID)
	r.Token = strings.TrimSpace(r.Token)
	if r.ID == "" {
		return SessionRecord{}, errors.Join(ErrInvalidRecord, errors.New("session id is required"))
	}
	if r.Token == "" {
		return SessionRecord{}, errors.Join(ErrInvalidRecord, errors.New("session token is required"))
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.CreatedAt = r.CreatedAt.UTC()
	if !r.ExpiresAt.IsZero() {
		r.ExpiresAt = r.ExpiresAt.UTC()
	}
	return r, nil
}

// SessionStore persists session records.
//
// GetSession returns found=false for missing and expired records.
type SessionStore interface {
	Close() error
	GetSession(ctx context.Context, id string) (SessionRecord, bool, error)
	PutSession(ctx context.Context, record SessionRecord) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
