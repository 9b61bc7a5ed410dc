package session

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/studyabroad/internal/services/web/storage"
	"github.com/louisbranch/studyabroad/internal/services/web/storage/memory"
)

func sequentialSessionIDs() func() (string, error) {
	var mu sync.Mutex
	next := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("sid-%d", next), nil
	}
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestResolveCreatesFreshClientForUnknownID(t *testing.T) {
	t.Parallel()

	m := NewManager(&fakeAuthenticator{}, memory.New(), WithIDGenerator(sequentialSessionIDs()))
	client, err := m.Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if client.ID != "sid-1" {
		t.Fatalf("ID = %q, want sid-1", client.ID)
	}
	if client.Session == nil || client.Notices == nil {
		t.Fatalf("client missing store or queue")
	}

	again, err := m.Resolve(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if again != client {
		t.Fatalf("Resolve() returned a different client for a live id")
	}

	forged, _ := m.Resolve(context.Background(), "forged-id")
	if forged.ID == "forged-id" {
		t.Fatalf("unknown id was adopted")
	}
}

func TestResolveRecoversPersistedToken(t *testing.T) {
	t.Parallel()

	records := memory.New()
	if err := records.PutSession(context.Background(), storage.SessionRecord{ID: "persisted", Token: "tok-1"}); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	auth := &fakeAuthenticator{currentUser: activeUser()}
	m := NewManager(auth, records, WithIDGenerator(sequentialSessionIDs()))

	client, err := m.Resolve(context.Background(), "persisted")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if client.ID != "persisted" {
		t.Fatalf("ID = %q, want persisted", client.ID)
	}
	_ = client.Session.Initialize(context.Background())
	if got := client.Session.Snapshot().Phase(); got != PhaseActive {
		t.Fatalf("phase = %q, want active", got)
	}
}

func TestRejectedRecoveredTokenDropsRecord(t *testing.T) {
	t.Parallel()

	records := memory.New()
	if err := records.PutSession(context.Background(), storage.SessionRecord{ID: "persisted", Token: "tok-dead"}); err != nil {
		t.Fatalf("PutSession() error = %v", err)
	}
	auth := &fakeAuthenticator{currentErr: statusErr(http.StatusUnauthorized)}
	m := NewManager(auth, records, WithIDGenerator(sequentialSessionIDs()))

	client, err := m.Resolve(context.Background(), "persisted")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	_ = client.Session.Initialize(context.Background())
	if got := client.Session.Snapshot().Phase(); got != PhaseAnonymous {
		t.Fatalf("phase = %q, want anonymous", got)
	}
	if _, found, _ := records.GetSession(context.Background(), "persisted"); found {
		t.Fatalf("rejected token kept in persistence")
	}
}

func TestTransientRecoveryFailureKeepsRecord(t *testing.T) {
	t.Parallel()

	records := memory.New()
	_ = records.PutSession(context.Background(), storage.SessionRecord{ID: "persisted", Token: "tok-1"})
	m := NewManager(&fakeAuthenticator{currentErr: errNetwork}, records)

	client, _ := m.Resolve(context.Background(), "persisted")
	_ = client.Session.Initialize(context.Background())
	if _, found, _ := records.GetSession(context.Background(), "persisted"); !found {
		t.Fatalf("record dropped on a transient failure")
	}
}

func TestRefreshRejectionDropsRotatedRecord(t *testing.T) {
	t.Parallel()

	records := memory.New()
	auth := &fakeAuthenticator{loginGrant: Grant{User: activeUser(), Token: "tok-login"}}
	m := NewManager(auth, records, WithIDGenerator(sequentialSessionIDs()))
	client, _ := m.Resolve(context.Background(), "")
	client, err := m.Login(context.Background(), client, Credentials{Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, found, _ := records.GetSession(context.Background(), client.ID); !found {
		t.Fatalf("login did not persist a record")
	}

	auth.setCurrent(User{}, statusErr(http.StatusUnauthorized))
	if err := client.Session.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if _, found, _ := records.GetSession(context.Background(), client.ID); found {
		t.Fatalf("rejected token kept in persistence after refresh")
	}
}

func TestLoginRotatesIDAndPersistsToken(t *testing.T) {
	t.Parallel()

	records := memory.New()
	now := time.Now().UTC().Truncate(time.Millisecond)
	auth := &fakeAuthenticator{loginGrant: Grant{User: activeUser(), Token: "tok-login"}}
	m := NewManager(auth, records,
		WithIDGenerator(sequentialSessionIDs()),
		WithClock(func() time.Time { return now }),
		WithRecordTTL(time.Hour),
		WithTokenExpiry(func(string) (time.Time, bool) { return now.Add(10 * time.Minute), true }),
	)
	client, _ := m.Resolve(context.Background(), "")
	oldID := client.ID

	rotated, err := m.Login(context.Background(), client, Credentials{Email: "ada@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if rotated.ID == oldID {
		t.Fatalf("session id was not rotated")
	}
	if rotated.Session != client.Session || rotated.Notices != client.Notices {
		t.Fatalf("rotation lost the client state")
	}
	if _, ok := m.Lookup(oldID); ok {
		t.Fatalf("old id still live")
	}
	record, found, err := records.GetSession(context.Background(), rotated.ID)
	if err != nil || !found {
		t.Fatalf("record found=%v err=%v", found, err)
	}
	if record.Token != "tok-login" {
		t.Fatalf("Token = %q, want tok-login", record.Token)
	}
	if want := now.Add(10 * time.Minute); !record.ExpiresAt.Equal(want) {
		t.Fatalf("ExpiresAt = %v, want token expiry %v", record.ExpiresAt, want)
	}
}

func TestLoginFailureKeepsID(t *testing.T) {
	t.Parallel()

	m := NewManager(&fakeAuthenticator{loginErr: statusErr(http.StatusUnauthorized)}, memory.New(), WithIDGenerator(sequentialSessionIDs()))
	client, _ := m.Resolve(context.Background(), "")
	same, err := m.Login(context.Background(), client, Credentials{})
	if err == nil {
		t.Fatalf("Login() error = nil")
	}
	if same.ID != client.ID {
		t.Fatalf("id rotated on failed login")
	}
}

func TestRecordExpiryIsCappedByTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	m := NewManager(&fakeAuthenticator{}, nil,
		WithClock(func() time.Time { return now }),
		WithRecordTTL(time.Hour),
		WithTokenExpiry(func(string) (time.Time, bool) { return now.Add(48 * time.Hour), true }),
	)
	if got := m.expiryFor("tok"); !got.Equal(now.Add(time.Hour)) {
		t.Fatalf("expiryFor() = %v, want capped %v", got, now.Add(time.Hour))
	}
}

func TestLogoutDiscardsClientAndRecord(t *testing.T) {
	t.Parallel()

	records := memory.New()
	auth := &fakeAuthenticator{registerGrant: Grant{User: User{ID: "u-2"}, Token: "tok-2"}}
	m := NewManager(auth, records, WithIDGenerator(sequentialSessionIDs()))
	client, _ := m.Resolve(context.Background(), "")
	client, err := m.Register(context.Background(), client, Registration{Email: "b@example.com"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	client.Notices.Info("pending")

	m.Logout(context.Background(), client)
	m.Logout(context.Background(), client)

	if _, ok := m.Lookup(client.ID); ok {
		t.Fatalf("client still live after logout")
	}
	if _, found, _ := records.GetSession(context.Background(), client.ID); found {
		t.Fatalf("record kept after logout")
	}
	if client.Session.Snapshot().User != nil {
		t.Fatalf("user kept after logout")
	}
	if _, logout := auth.calls(); logout != 1 {
		t.Fatalf("backend logout calls = %d, want 1", logout)
	}
}

func TestSweepEvictsIdleClients(t *testing.T) {
	t.Parallel()

	clock := &manualClock{now: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)}
	m := NewManager(&fakeAuthenticator{}, memory.New(),
		WithIDGenerator(sequentialSessionIDs()),
		WithClock(clock.Now),
		WithIdleTTL(time.Minute),
	)
	idle, _ := m.Resolve(context.Background(), "")
	clock.Advance(45 * time.Second)
	active, _ := m.Resolve(context.Background(), "")
	clock.Advance(30 * time.Second)

	if evicted := m.Sweep(context.Background()); evicted != 1 {
		t.Fatalf("Sweep() = %d, want 1", evicted)
	}
	if _, ok := m.Lookup(idle.ID); ok {
		t.Fatalf("idle client survived sweep")
	}
	if _, ok := m.Lookup(active.ID); !ok {
		t.Fatalf("active client evicted")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestRunStopsWhenContextDone(t *testing.T) {
	t.Parallel()

	m := NewManager(&fakeAuthenticator{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run() did not return after cancel")
	}
}

func TestPersistAnonymousRemovesRecord(t *testing.T) {
	t.Parallel()

	records := memory.New()
	_ = records.PutSession(context.Background(), storage.SessionRecord{ID: "s-1", Token: "tok"})
	m := NewManager(&fakeAuthenticator{}, records)
	client := &Client{ID: "s-1", Session: NewStore(&fakeAuthenticator{})}
	if err := m.Persist(context.Background(), client); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	if _, found, _ := records.GetSession(context.Background(), "s-1"); found {
		t.Fatalf("record kept for anonymous client")
	}
}
