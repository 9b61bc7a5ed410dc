package notify

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

type fakeTimer struct {
	clock    *fakeClock
	at       time.Time
	fn       func()
	stopped  bool
	fired    bool
	duration time.Duration
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &fakeTimer{clock: c, at: c.now.Add(d), fn: f, duration: d}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves time forward and fires due timers outside the clock lock.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired && !timer.at.After(c.now) {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()
	for _, timer := range due {
		timer.fn()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return fmt.Sprintf("n-%d", next)
	}
}

func TestAddAppendsInInsertionOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue(WithClock(newFakeClock()), WithIDGenerator(sequentialIDs()))
	first := q.Success("Saved")
	second := q.Error("Failed", WithMessage(" try again "))
	third := q.Info("Heads up")

	items := q.List()
	if len(items) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(items))
	}
	gotIDs := []string{items[0].ID, items[1].ID, items[2].ID}
	wantIDs := []string{first, second, third}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("List() ids = %v, want %v", gotIDs, wantIDs)
		}
	}
	if items[1].Message != "try again" {
		t.Fatalf("Message = %q, want %q", items[1].Message, "try again")
	}
	if items[1].Type != TypeError {
		t.Fatalf("Type = %q, want %q", items[1].Type, TypeError)
	}
}

func TestAddUsesDefaultDurationsPerType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Type
		want time.Duration
	}{
		{kind: TypeSuccess, want: DefaultSuccessDuration},
		{kind: TypeError, want: DefaultErrorDuration},
		{kind: TypeInfo, want: DefaultInfoDuration},
		{kind: Type(""), want: DefaultInfoDuration},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()
			q := NewQueue(WithClock(newFakeClock()))
			q.Add(tc.kind, "title")
			items := q.List()
			if len(items) != 1 {
				t.Fatalf("len(List()) = %d, want 1", len(items))
			}
			if items[0].Duration != tc.want {
				t.Fatalf("Duration = %v, want %v", items[0].Duration, tc.want)
			}
		})
	}
}

func TestNotificationExpiresAfterDuration(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(WithClock(clock), WithIDGenerator(sequentialIDs()))
	q.Success("Saved")
	q.Error("Failed")

	clock.Advance(2999 * time.Millisecond)
	if got := q.Len(); got != 2 {
		t.Fatalf("Len() before expiry = %d, want 2", got)
	}
	clock.Advance(time.Millisecond)
	items := q.List()
	if len(items) != 1 || items[0].Type != TypeError {
		t.Fatalf("List() after success expiry = %+v, want only error", items)
	}
	clock.Advance(4 * time.Second)
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() after error expiry = %d, want 0", got)
	}
}

func TestZeroOrNegativeDurationPersists(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(WithClock(clock))
	q.Info("zero", WithDuration(0))
	q.Info("negative", WithDuration(-5*time.Second))

	if got := clock.pending(); got != 0 {
		t.Fatalf("pending timers = %d, want 0", got)
	}
	clock.Advance(time.Hour)
	items := q.List()
	if len(items) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(items))
	}
	for _, item := range items {
		if !item.Persistent() {
			t.Fatalf("item %q Persistent() = false, want true", item.Title)
		}
	}
}

func TestRemoveCancelsTimerAndIgnoresUnknownIDs(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(WithClock(clock), WithIDGenerator(sequentialIDs()))
	id := q.Success("Saved")
	keep := q.Info("Still here")

	q.Remove("missing")
	if got := q.Len(); got != 2 {
		t.Fatalf("Len() after unknown remove = %d, want 2", got)
	}

	q.Remove(id)
	if got := clock.pending(); got != 1 {
		t.Fatalf("pending timers = %d, want 1", got)
	}
	items := q.List()
	if len(items) != 1 || items[0].ID != keep {
		t.Fatalf("List() = %+v, want only %q", items, keep)
	}

	q.Remove(id)
	if got := q.Len(); got != 1 {
		t.Fatalf("Len() after double remove = %d, want 1", got)
	}
}

func TestClearAllStopsEveryTimer(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(WithClock(clock))
	q.Success("one")
	q.Error("two")
	q.Info("three", WithDuration(Persistent))

	q.ClearAll()
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	if got := clock.pending(); got != 0 {
		t.Fatalf("pending timers = %d, want 0", got)
	}

	q.Success("after clear")
	if got := q.Len(); got != 1 {
		t.Fatalf("Len() after re-add = %d, want 1", got)
	}
}

func TestIDsStayUniqueWhenGeneratorRepeats(t *testing.T) {
	t.Parallel()

	calls := 0
	ids := []string{"dup", "dup", "", "other"}
	q := NewQueue(WithClock(newFakeClock()), WithIDGenerator(func() string {
		id := ids[calls%len(ids)]
		calls++
		return id
	}))
	first := q.Info("a")
	second := q.Info("b")
	if first == second {
		t.Fatalf("ids collided: %q", first)
	}
	if second != "other" {
		t.Fatalf("second id = %q, want other", second)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	t.Parallel()

	q := NewQueue(WithClock(newFakeClock()))
	q.Info("a")
	items := q.List()
	items[0].Title = "mutated"
	if got := q.List()[0].Title; got != "a" {
		t.Fatalf("Title = %q, want a", got)
	}
	if NewQueue().List() != nil {
		t.Fatalf("empty List() = non-nil, want nil")
	}
}

func TestCloseStopsTimersAndSchedulesNoMore(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(WithClock(clock))
	q.Success("before")
	q.Close()
	q.Success("after")

	if got := clock.pending(); got != 0 {
		t.Fatalf("pending timers = %d, want 0", got)
	}
	if got := q.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestNilQueueIsSafe(t *testing.T) {
	t.Parallel()

	var q *Queue
	if id := q.Success("x"); id != "" {
		t.Fatalf("nil Add id = %q, want empty", id)
	}
	q.Remove("x")
	q.ClearAll()
	q.Close()
	if q.List() != nil || q.Len() != 0 {
		t.Fatalf("nil queue should be empty")
	}
}

func TestConcurrentAddAndRemove(t *testing.T) {
	t.Parallel()

	q := NewQueue(WithClock(newFakeClock()))
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := q.Info("concurrent")
			q.Remove(id)
		}()
	}
	wg.Wait()
	if got := q.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}
