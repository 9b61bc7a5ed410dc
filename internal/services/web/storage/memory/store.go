// Package memory provides an in-process session record store.
//
// Records do not survive a restart; it is the default for single-instance
// deployments and tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	webstorage "github.com/louisbranch/studyabroad/internal/services/web/storage"
)

// Store keeps session records in a mutex-guarded map.
type Store struct {
	mu      sync.Mutex
	records map[string]webstorage.SessionRecord
	now     func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		records: make(map[string]webstorage.SessionRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Close drops every record.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]webstorage.SessionRecord)
	return nil
}

// GetSession returns an unexpired record by id.
func (s *Store) GetSession(_ context.Context, id string) (webstorage.SessionRecord, bool, error) {
	if s == nil {
		return webstorage.SessionRecord{}, false, nil
	}
	id = strings.TrimSpace(id)
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		return webstorage.SessionRecord{}, false, nil
	}
	if record.Expired(s.now()) {
		delete(s.records, id)
		return webstorage.SessionRecord{}, false, nil
	}
	return record, true, nil
}

// PutSession upserts a record, keeping the original creation time.
func (s *Store) PutSession(_ context.Context, record webstorage.SessionRecord) error {
	record, err := record.Normalize()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.records[record.ID]; ok {
		record.CreatedAt = existing.CreatedAt
	}
	s.records[record.ID] = record
	return nil
}

// DeleteSession removes a record by id.
func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, strings.TrimSpace(id))
	return nil
}

// DeleteExpiredSessions prunes records expired at now.
func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	if now.IsZero() {
		now = s.now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, record := range s.records {
		if record.Expired(now) {
			delete(s.records, id)
			removed++
		}
	}
	return removed, nil
}

var _ webstorage.SessionStore = (*Store)(nil)
