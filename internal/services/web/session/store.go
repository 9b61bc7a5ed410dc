// Package session owns per-browser authentication state.
//
// A Store is the single source of truth for who is signed in and whether
// onboarding is complete. It is mutated only through its own operations and
// read by the route guard, the app chrome, and page modules. A Manager maps
// browser session ids to Stores and persists the identity token.
package session

import (
	"context"
	"log"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"

	"golang.org/x/net/publicsuffix"

	apperrors "github.com/louisbranch/studyabroad/internal/services/web/platform/errors"
	"github.com/louisbranch/studyabroad/internal/services/web/roles"
)

// Localization keys stored in State.Err after a failed auth action.
const (
	ErrKeyInvalidCredentials = "error.auth.invalid_credentials"
	ErrKeyEmailTaken         = "error.auth.email_taken"
	ErrKeyInvalidInput       = "error.auth.invalid_input"
	ErrKeyUnavailable        = "error.auth.unavailable"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithToken seeds the identity token recovered from persistence.
func WithToken(token string) StoreOption {
	return func(s *Store) {
		s.token = strings.TrimSpace(token)
	}
}

// WithJarFactory replaces the cookie jar constructor used for backend calls.
func WithJarFactory(newJar func() http.CookieJar) StoreOption {
	return func(s *Store) {
		if newJar != nil {
			s.newJar = newJar
		}
	}
}

// WithTokenRejected registers fn to run after the backend rejects the
// identity token and the store drops it.
func WithTokenRejected(fn func(ctx context.Context)) StoreOption {
	return func(s *Store) {
		s.onRejected = fn
	}
}

// Store holds one browser session's auth state and derived page caches.
type Store struct {
	auth       Authenticator
	newJar     func() http.CookieJar
	onRejected func(ctx context.Context)

	mu         sync.Mutex
	state      State
	token      string
	jar        http.CookieJar
	generation uint64
	started    bool
	ready      chan struct{}
	cache      map[string]any
}

// NewStore builds an uninitialized store.
func NewStore(auth Authenticator, opts ...StoreOption) *Store {
	s := &Store{
		auth:   auth,
		newJar: newCookieJar,
		ready:  make(chan struct{}),
		cache:  make(map[string]any),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.jar = s.newJar()
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Principal returns the credentials for backend calls made on behalf of
// this session.
func (s *Store) Principal() Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Principal{Token: s.token, Jar: s.jar}
}

// Token returns the current identity token.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Ready is closed once the first session check has resolved.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

// Start launches the first session check in the background if it has not
// run yet. The check outlives ctx cancellation.
func (s *Store) Start(ctx context.Context) {
	check, ok := s.begin()
	if !ok {
		return
	}
	go s.resolve(context.WithoutCancel(ctx), check)
}

// Initialize runs the first session check, or waits for the one already in
// flight. Failures, including a rejected token, leave the session anonymous.
// The returned error is only ever ctx.Err().
func (s *Store) Initialize(ctx context.Context) error {
	if check, ok := s.begin(); ok {
		s.resolve(ctx, check)
		return nil
	}
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pendingCheck captures the inputs of a session check at the moment it
// starts.
type pendingCheck struct {
	generation uint64
	principal  Principal
}

func (s *Store) begin() (pendingCheck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return pendingCheck{}, false
	}
	s.started = true
	s.state.Loading = true
	return pendingCheck{generation: s.generation, principal: Principal{Token: s.token, Jar: s.jar}}, true
}

func (s *Store) resolve(ctx context.Context, check pendingCheck) {
	var (
		user     User
		err      error
		rejected bool
	)
	if check.principal.Token != "" {
		user, err = s.auth.CurrentUser(ctx, check.principal)
	}
	defer func() {
		if rejected {
			s.tokenRejected(ctx)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	defer close(s.ready)
	s.state.Loading = false
	s.state.Initialized = true
	if s.generation != check.generation {
		return
	}
	if check.principal.Token == "" {
		s.state.User = nil
		return
	}
	if err != nil {
		rejected = apperrors.IsKind(err, apperrors.KindUnauthorized)
		if !rejected {
			log.Printf("web: session check failed err=%v", err)
		}
		s.state.User = nil
		s.token = ""
		return
	}
	s.state.User = cloneUser(user)
}

// Login authenticates with credentials. On failure the current user is kept
// and the returned error carries a localization key.
func (s *Store) Login(ctx context.Context, credentials Credentials) error {
	principal := s.Principal()
	grant, err := s.auth.Login(ctx, principal, credentials)
	if err != nil {
		return s.fail(authFailure(err, ErrKeyInvalidCredentials))
	}
	s.establish(grant)
	return nil
}

// Register creates an account and signs it in. New accounts start with
// onboarding incomplete unless the backend says otherwise.
func (s *Store) Register(ctx context.Context, registration Registration) error {
	principal := s.Principal()
	grant, err := s.auth.Register(ctx, principal, registration)
	if err != nil {
		return s.fail(authFailure(err, ErrKeyEmailTaken))
	}
	s.establish(grant)
	return nil
}

func (s *Store) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = apperrors.LocalizationKey(err)
	return err
}

func (s *Store) establish(grant Grant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.token = strings.TrimSpace(grant.Token)
	s.state.User = cloneUser(grant.User)
	s.state.Err = ""
	s.state.Loading = false
	s.state.Initialized = true
	s.cache = make(map[string]any)
	s.markStartedLocked()
}

// Logout invalidates the backend session when one is held, then clears the
// user, token, cookie jar, and every derived cache. Calling it repeatedly is
// safe.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	principal := Principal{Token: s.token, Jar: s.jar}
	signedIn := s.signedInLocked()
	s.mu.Unlock()
	if signedIn {
		if err := s.auth.Logout(ctx, principal); err != nil {
			log.Printf("web: backend logout failed err=%v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.token = ""
	s.jar = s.newJar()
	s.state = State{Initialized: true}
	s.cache = make(map[string]any)
	s.markStartedLocked()
}

// Refresh re-reads the current user from the backend. A rejected token
// demotes the session to anonymous; other failures keep the current user.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	generation := s.generation
	principal := Principal{Token: s.token, Jar: s.jar}
	signedIn := s.signedInLocked()
	s.mu.Unlock()
	if !signedIn {
		return nil
	}

	user, err := s.auth.CurrentUser(ctx, principal)

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		if !apperrors.IsKind(err, apperrors.KindUnauthorized) {
			s.mu.Unlock()
			return err
		}
		s.generation++
		s.token = ""
		s.state.User = nil
		s.cache = make(map[string]any)
		s.mu.Unlock()
		s.tokenRejected(ctx)
		return nil
	}
	s.generation++
	s.state.User = cloneUser(user)
	s.state.Initialized = true
	s.state.Loading = false
	s.mu.Unlock()
	return nil
}

func (s *Store) tokenRejected(ctx context.Context) {
	if s.onRejected != nil {
		s.onRejected(ctx)
	}
}

// Remember stores a derived page value under key until logout or an
// identity change.
func (s *Store) Remember(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = value
}

// Recall returns the derived value stored under key.
func (s *Store) Recall(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.cache[key]
	return value, ok
}

// Forget drops the derived value stored under key.
func (s *Store) Forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, key)
}

// RecallAs returns the derived value under key when it has type T.
func RecallAs[T any](s *Store, key string) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	value, ok := s.Recall(key)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	return typed, ok
}

// signedInLocked reports whether the backend holds a session for this
// store, through the token or the cookie jar that came with the user.
func (s *Store) signedInLocked() bool {
	return s.token != "" || s.state.User != nil
}

func (s *Store) markStartedLocked() {
	if s.started {
		return
	}
	s.started = true
	close(s.ready)
}

func (s *Store) snapshotLocked() State {
	state := s.state
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}
	return state
}

// authFailure turns a backend auth failure into an inline form error.
func authFailure(err error, conflictKey string) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthorized, apperrors.KindNotFound:
		return apperrors.EK(apperrors.KindUnauthorized, ErrKeyInvalidCredentials, "invalid email or password")
	case apperrors.KindConflict:
		return apperrors.EK(apperrors.KindConflict, conflictKey, "account already exists")
	case apperrors.KindInvalidInput:
		return apperrors.EK(apperrors.KindInvalidInput, ErrKeyInvalidInput, "check the form and try again")
	default:
		return apperrors.MapStatusError(err, apperrors.StatusMapping{
			FallbackKind:    apperrors.KindUnavailable,
			FallbackKey:     ErrKeyUnavailable,
			FallbackMessage: "sign in is temporarily unavailable",
		})
	}
}

func cloneUser(user User) *User {
	user.ID = strings.TrimSpace(user.ID)
	user.Role = roles.Normalize(string(user.Role))
	return &user
}

func newCookieJar() http.CookieJar {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Printf("web: cookie jar unavailable err=%v", err)
		return nil
	}
	return jar
}
