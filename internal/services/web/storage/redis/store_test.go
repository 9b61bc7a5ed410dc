package redis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	webstorage "github.com/louisbranch/studyabroad/internal/services/web/storage"
)

type fakeClient struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	getErr  error
	closed  bool
	setKeys []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return goredis.NewStringResult("", f.getErr)
	}
	value, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(value, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	f.setKeys = append(f.setKeys, key)
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			removed++
		}
		delete(f.values, key)
		delete(f.ttls, key)
	}
	return goredis.NewIntResult(removed, nil)
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func TestOpenRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Options{}); err == nil {
		t.Fatalf("expected error for empty address")
	}
}

func TestPutAndGetSessionRoundTrip(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	store := newStore(fake, time.Hour)
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	record := webstorage.SessionRecord{ID: "s-1", Token: "tok", CreatedAt: now, ExpiresAt: now.Add(30 * time.Minute)}
	if err := store.PutSession(context.Background(), record); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	key := sessionKeyPrefix + "s-1"
	if got := fake.ttls[key]; got != 30*time.Minute {
		t.Fatalf("ttl = %v, want 30m", got)
	}
	if strings.Contains(fake.values[key], "s-1") {
		t.Fatalf("payload should not repeat the id: %s", fake.values[key])
	}

	got, found, err := store.GetSession(context.Background(), "s-1")
	if err != nil || !found {
		t.Fatalf("GetSession() found=%v err=%v", found, err)
	}
	if got.Token != "tok" || !got.ExpiresAt.Equal(record.ExpiresAt) || !got.CreatedAt.Equal(now) {
		t.Fatalf("GetSession() = %+v", got)
	}
}

func TestPutSessionWithoutExpiryUsesDefaultTTL(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	store := newStore(fake, 2*time.Hour)
	if err := store.PutSession(context.Background(), webstorage.SessionRecord{ID: "s-1", Token: "tok"}); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	if got := fake.ttls[sessionKeyPrefix+"s-1"]; got != 2*time.Hour {
		t.Fatalf("ttl = %v, want 2h", got)
	}
}

func TestPutSessionAlreadyExpiredDeletes(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	fake.values[sessionKeyPrefix+"s-1"] = `{"token":"old"}`
	store := newStore(fake, time.Hour)
	err := store.PutSession(context.Background(), webstorage.SessionRecord{ID: "s-1", Token: "tok", ExpiresAt: time.Now().Add(-time.Minute)})
	if err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	if _, ok := fake.values[sessionKeyPrefix+"s-1"]; ok {
		t.Fatalf("expired record should be removed")
	}
}

func TestGetSessionMissingAndErrors(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	store := newStore(fake, time.Hour)
	if _, found, err := store.GetSession(context.Background(), "missing"); err != nil || found {
		t.Fatalf("missing found=%v err=%v", found, err)
	}

	fake.values[sessionKeyPrefix+"bad"] = "not-json"
	if _, _, err := store.GetSession(context.Background(), "bad"); err == nil {
		t.Fatalf("expected decode error")
	}

	fake.getErr = errors.New("connection refused")
	if _, _, err := store.GetSession(context.Background(), "s-1"); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestDeleteSessionAndClose(t *testing.T) {
	t.Parallel()

	fake := newFakeClient()
	store := newStore(fake, time.Hour)
	_ = store.PutSession(context.Background(), webstorage.SessionRecord{ID: "s-1", Token: "tok"})
	if err := store.DeleteSession(context.Background(), "s-1"); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if _, found, _ := store.GetSession(context.Background(), "s-1"); found {
		t.Fatalf("record still present after delete")
	}
	if removed, err := store.DeleteExpiredSessions(context.Background(), time.Now()); err != nil || removed != 0 {
		t.Fatalf("DeleteExpiredSessions() = %d, %v", removed, err)
	}
	if err := store.Close(); err != nil || !fake.closed {
		t.Fatalf("Close() err=%v closed=%v", err, fake.closed)
	}
}
