// Package notify provides the per-session queue of transient user-facing
// notifications.
//
// Pages enqueue notifications without knowing how they are displayed; the
// app shell renders the queue on the next page render. Each notification
// with a positive duration owns a single-shot timer keyed by its id that
// removes it on expiry.
package notify

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type classifies notification presentation.
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
)

// Default lifetimes per notification type.
const (
	DefaultSuccessDuration = 3 * time.Second
	DefaultInfoDuration    = 5 * time.Second
	DefaultErrorDuration   = 7 * time.Second
)

// Persistent marks a notification that stays until dismissed.
const Persistent time.Duration = -1

// Notification is one transient message shown to the user.
type Notification struct {
	ID        string        `json:"id"`
	Type      Type          `json:"type"`
	Title     string        `json:"title"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Persistent reports whether the notification waits for manual dismissal.
func (n Notification) Persistent() bool {
	return n.Duration <= 0
}

// AddOption customizes one Add call.
type AddOption func(*draft)

type draft struct {
	message     string
	duration    time.Duration
	hasDuration bool
}

// WithMessage attaches a body message below the title.
func WithMessage(message string) AddOption {
	return func(d *draft) { d.message = strings.TrimSpace(message) }
}

// WithDuration overrides the default lifetime. Any duration <= 0 keeps the
// notification until it is dismissed.
func WithDuration(duration time.Duration) AddOption {
	return func(d *draft) {
		d.duration = duration
		d.hasDuration = true
	}
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock replaces the wall clock used for expiry timers.
func WithClock(clock Clock) Option {
	return func(q *Queue) {
		if clock != nil {
			q.clock = clock
		}
	}
}

// WithIDGenerator replaces the id source.
func WithIDGenerator(next func() string) Option {
	return func(q *Queue) {
		if next != nil {
			q.nextID = next
		}
	}
}

// Queue is an insertion-ordered, concurrency-safe notification list.
type Queue struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]Timer
	clock  Clock
	nextID func() string
	closed bool
}

// NewQueue builds an empty queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		timers: make(map[string]Timer),
		clock:  systemClock{},
		nextID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add appends a notification and returns its id. An empty kind defaults to
// info; the duration defaults per kind unless overridden.
func (q *Queue) Add(kind Type, title string, opts ...AddOption) string {
	if q == nil {
		return ""
	}
	kind = normalizeType(kind)
	d := draft{}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	duration := defaultDuration(kind)
	if d.hasDuration {
		duration = d.duration
	}
	if duration <= 0 {
		duration = Persistent
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	id := q.uniqueIDLocked()
	q.items = append(q.items, Notification{
		ID:        id,
		Type:      kind,
		Title:     strings.TrimSpace(title),
		Message:   d.message,
		Duration:  duration,
		CreatedAt: q.clock.Now(),
	})
	if duration > 0 && !q.closed {
		q.timers[id] = q.clock.AfterFunc(duration, func() { q.Remove(id) })
	}
	return id
}

// Success enqueues a success notification.
func (q *Queue) Success(title string, opts ...AddOption) string {
	return q.Add(TypeSuccess, title, opts...)
}

// Error enqueues an error notification.
func (q *Queue) Error(title string, opts ...AddOption) string {
	return q.Add(TypeError, title, opts...)
}

// Info enqueues an informational notification.
func (q *Queue) Info(title string, opts ...AddOption) string {
	return q.Add(TypeInfo, title, opts...)
}

// Remove drops the notification with id. Unknown ids are ignored.
func (q *Queue) Remove(id string) {
	if q == nil {
		return
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}
	for idx, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:idx:idx], q.items[idx+1:]...)
			return
		}
	}
}

// ClearAll empties the queue and cancels pending expiry timers.
func (q *Queue) ClearAll() {
	if q == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopTimersLocked()
	q.items = nil
}

// List returns the visible notifications in insertion order.
func (q *Queue) List() []Notification {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Len returns the number of visible notifications.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close cancels timers and stops scheduling new ones. Entries stay readable.
func (q *Queue) Close() {
	if q == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.stopTimersLocked()
	q.closed = true
}

func (q *Queue) stopTimersLocked() {
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
}

func (q *Queue) uniqueIDLocked() string {
	for {
		id := strings.TrimSpace(q.nextID())
		if id == "" {
			continue
		}
		if !q.hasIDLocked(id) {
			return id
		}
	}
}

func (q *Queue) hasIDLocked(id string) bool {
	for _, item := range q.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func normalizeType(kind Type) Type {
	switch Type(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case TypeSuccess:
		return TypeSuccess
	case TypeError:
		return TypeError
	default:
		return TypeInfo
	}
}

func defaultDuration(kind Type) time.Duration {
	switch kind {
	case TypeSuccess:
		return DefaultSuccessDuration
	case TypeError:
		return DefaultErrorDuration
	default:
		return DefaultInfoDuration
	}
}
