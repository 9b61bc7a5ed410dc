package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/studyabroad/internal/services/web/notify"
	"github.com/louisbranch/studyabroad/internal/services/web/storage"
)

const (
	defaultRecordTTL = 24 * time.Hour
	defaultIdleTTL   = 30 * time.Minute
	sessionIDBytes   = 32
)

// Client is the per-browser state bundle bound to one session cookie.
type Client struct {
	ID      string
	Session *Store
	Notices *notify.Queue

	mu       sync.Mutex
	lastSeen time.Time
}

func (c *Client) touch(now time.Time) {
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
}

func (c *Client) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSeen
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRecordTTL bounds how long a persisted token is honored when the token
// itself carries no expiry.
func WithRecordTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		if ttl > 0 {
			m.recordTTL = ttl
		}
	}
}

// WithIdleTTL sets how long an unused client stays in memory.
func WithIdleTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		if ttl > 0 {
			m.idleTTL = ttl
		}
	}
}

// WithTokenExpiry sets the function reading a token's own expiry.
func WithTokenExpiry(expiry func(token string) (time.Time, bool)) ManagerOption {
	return func(m *Manager) {
		if expiry != nil {
			m.tokenExpiry = expiry
		}
	}
}

// WithQueueOptions configures every client's notification queue.
func WithQueueOptions(opts ...notify.Option) ManagerOption {
	return func(m *Manager) {
		m.queueOpts = append(m.queueOpts, opts...)
	}
}

// WithStoreOptions configures every client's session store.
func WithStoreOptions(opts ...StoreOption) ManagerOption {
	return func(m *Manager) {
		m.storeOpts = append(m.storeOpts, opts...)
	}
}

// WithClock replaces the wall clock used for idle tracking and expiry.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator replaces the session id source.
func WithIDGenerator(newID func() (string, error)) ManagerOption {
	return func(m *Manager) {
		if newID != nil {
			m.newID = newID
		}
	}
}

// Manager owns every live Client and persists identity tokens so sessions
// survive reloads and restarts.
type Manager struct {
	auth    Authenticator
	records storage.SessionStore

	recordTTL   time.Duration
	idleTTL     time.Duration
	tokenExpiry func(string) (time.Time, bool)
	queueOpts   []notify.Option
	storeOpts   []StoreOption
	now         func() time.Time
	newID       func() (string, error)

	mu      sync.Mutex
	clients map[string]*Client
}

// NewManager builds a manager over auth and optional record persistence.
func NewManager(auth Authenticator, records storage.SessionStore, opts ...ManagerOption) *Manager {
	m := &Manager{
		auth:        auth,
		records:     records,
		recordTTL:   defaultRecordTTL,
		idleTTL:     defaultIdleTTL,
		tokenExpiry: func(string) (time.Time, bool) { return time.Time{}, false },
		now:         func() time.Time { return time.Now().UTC() },
		newID:       randomID,
		clients:     make(map[string]*Client),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Resolve returns the client bound to id. Unknown ids are recovered from
// persistence; when nothing is found a fresh client with a new id is
// created. Callers compare the returned ID with id to decide whether the
// cookie must be reissued.
func (m *Manager) Resolve(ctx context.Context, id string) (*Client, error) {
	id = strings.TrimSpace(id)
	now := m.now()

	m.mu.Lock()
	if client, ok := m.clients[id]; ok && id != "" {
		m.mu.Unlock()
		client.touch(now)
		return client, nil
	}
	m.mu.Unlock()

	token := ""
	if id != "" && m.records != nil {
		record, found, err := m.records.GetSession(ctx, id)
		if err != nil {
			log.Printf("web: session record lookup failed session=%s err=%v", shortID(id), err)
		} else if found {
			token = record.Token
		}
	}
	if token == "" {
		newID, err := m.newID()
		if err != nil {
			return nil, fmt.Errorf("mint session id: %w", err)
		}
		id = newID
	}

	client := m.newClient(id, token)
	client.touch(now)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.clients[id]; ok {
		client.Notices.Close()
		existing.touch(now)
		return existing, nil
	}
	m.clients[id] = client
	return client, nil
}

// Lookup returns a live client without recovery or creation.
func (m *Manager) Lookup(id string) (*Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	client, ok := m.clients[strings.TrimSpace(id)]
	return client, ok
}

// Login signs client in and rotates its id so a pre-login cookie cannot
// be replayed. The returned client carries the new id.
func (m *Manager) Login(ctx context.Context, client *Client, credentials Credentials) (*Client, error) {
	if err := client.Session.Login(ctx, credentials); err != nil {
		return client, err
	}
	return m.rotate(ctx, client)
}

// Register creates an account for client and rotates its id.
func (m *Manager) Register(ctx context.Context, client *Client, registration Registration) (*Client, error) {
	if err := client.Session.Register(ctx, registration); err != nil {
		return client, err
	}
	return m.rotate(ctx, client)
}

// Persist saves the client's current token, or removes the record when the
// client is anonymous.
func (m *Manager) Persist(ctx context.Context, client *Client) error {
	if m.records == nil || client == nil {
		return nil
	}
	token := client.Session.Token()
	if token == "" {
		return m.records.DeleteSession(ctx, client.ID)
	}
	return m.records.PutSession(ctx, storage.SessionRecord{
		ID:        client.ID,
		Token:     token,
		CreatedAt: m.now(),
		ExpiresAt: m.expiryFor(token),
	})
}

// Logout signs client out and discards it. Later requests carrying the old
// id get a fresh anonymous client.
func (m *Manager) Logout(ctx context.Context, client *Client) {
	if client == nil {
		return
	}
	client.Session.Logout(ctx)
	m.Discard(ctx, client.ID)
}

// Discard drops a client from memory and persistence.
func (m *Manager) Discard(ctx context.Context, id string) {
	id = strings.TrimSpace(id)
	m.mu.Lock()
	client, ok := m.clients[id]
	delete(m.clients, id)
	m.mu.Unlock()
	if ok {
		client.Notices.Close()
	}
	if m.records != nil && id != "" {
		if err := m.records.DeleteSession(ctx, id); err != nil {
			log.Printf("web: session record delete failed session=%s err=%v", shortID(id), err)
		}
	}
}

// Len returns the number of live clients.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// Sweep evicts clients idle for longer than the idle TTL and prunes expired
// records. Evicted clients stay recoverable from persistence.
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.now()
	cutoff := now.Add(-m.idleTTL)

	m.mu.Lock()
	var evicted []*Client
	for id, client := range m.clients {
		if client.idleSince().Before(cutoff) {
			evicted = append(evicted, client)
			delete(m.clients, id)
		}
	}
	m.mu.Unlock()

	for _, client := range evicted {
		client.Notices.Close()
	}
	if m.records != nil {
		if _, err := m.records.DeleteExpiredSessions(ctx, now); err != nil {
			log.Printf("web: expired session prune failed err=%v", err)
		}
	}
	return len(evicted)
}

// Run sweeps on every interval tick until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := m.Sweep(ctx); evicted > 0 {
				log.Printf("web: evicted idle sessions count=%d", evicted)
			}
		}
	}
}

func (m *Manager) rotate(ctx context.Context, client *Client) (*Client, error) {
	newID, err := m.newID()
	if err != nil {
		return client, fmt.Errorf("mint session id: %w", err)
	}
	oldID := client.ID

	rotated := &Client{ID: newID, Session: client.Session, Notices: client.Notices}
	rotated.touch(m.now())

	m.mu.Lock()
	delete(m.clients, oldID)
	m.clients[newID] = rotated
	m.mu.Unlock()

	if m.records != nil {
		if err := m.records.DeleteSession(ctx, oldID); err != nil {
			log.Printf("web: session record delete failed session=%s err=%v", shortID(oldID), err)
		}
	}
	if err := m.Persist(ctx, rotated); err != nil {
		log.Printf("web: session record save failed session=%s err=%v", shortID(newID), err)
	}
	return rotated, nil
}

func (m *Manager) newClient(id string, token string) *Client {
	var store *Store
	storeOpts := append([]StoreOption{WithToken(token)}, m.storeOpts...)
	storeOpts = append(storeOpts, WithTokenRejected(func(ctx context.Context) {
		m.dropRecord(ctx, store)
	}))
	store = NewStore(m.auth, storeOpts...)
	return &Client{
		ID:      id,
		Session: store,
		Notices: notify.NewQueue(m.queueOpts...),
	}
}

// dropRecord removes the persisted token of the live client owning store so
// a restart does not recover a token the backend already rejected.
func (m *Manager) dropRecord(ctx context.Context, store *Store) {
	if m.records == nil || store == nil {
		return
	}
	id := ""
	m.mu.Lock()
	for clientID, client := range m.clients {
		if client.Session == store {
			id = clientID
			break
		}
	}
	m.mu.Unlock()
	if id == "" {
		return
	}
	if err := m.records.DeleteSession(ctx, id); err != nil {
		log.Printf("web: session record delete failed session=%s err=%v", shortID(id), err)
	}
}

func (m *Manager) expiryFor(token string) time.Time {
	fallback := m.now().Add(m.recordTTL)
	expiresAt, ok := m.tokenExpiry(token)
	if !ok || expiresAt.IsZero() || expiresAt.After(fallback) {
		return fallback
	}
	return expiresAt
}

func randomID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// shortID trims a session id for log lines.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
