package store

import (
	"errors"
	"sync"
)

var ErrDuplicateID = errors.New("record with this id already exists")

// Record is anything the store can key by id. Clone must return a copy that
// shares no mutable state with the receiver, deep-copying slice and pointer
// fields; the store clones at every boundary so callers and the store never
// alias the same data.
type Record[T any] interface {
	RecordID() string
	Clone() T
}

// Store is a generic in-memory keyed collection. Each Store instance is its
// own mutual-exclusion domain: mutations are serialized, reads return
// point-in-time snapshots that are safe to use without further locking.
type Store[T Record[T]] struct {
	mu      sync.RWMutex
	records []T
	byID    map[string]int
}

func New[T Record[T]]() *Store[T] {
	return &Store[T]{
		byID: map[string]int{},
	}
}

// Create appends the record. Returns ErrDuplicateID when a record with the
// same id is already present; the store is left unchanged in that case.
func (s *Store[T]) Create(record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.RecordID()
	if _, exists := s.byID[id]; exists {
		return ErrDuplicateID
	}
	s.byID[id] = len(s.records)
	s.records = append(s.records, record.Clone())
	return nil
}

// FindByID returns a copy of the record with the given id.
func (s *Store[T]) FindByID(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.records[idx].Clone(), true
}

// FindAll returns a snapshot of all records in insertion order.
func (s *Store[T]) FindAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]T, len(s.records))
	for i, record := range s.records {
		snapshot[i] = record.Clone()
	}
	return snapshot
}

// Filter returns a snapshot of all records matching the predicate,
// in insertion order.
func (s *Store[T]) Filter(predicate func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0, len(s.records))
	for _, record := range s.records {
		if predicate(record) {
			matched = append(matched, record.Clone())
		}
	}
	return matched
}

// Update replaces the record with the matching id, keeping its position.
// Updating a missing id is a silent no-op, not an error: callers treat
// Update as idempotent and must not rely on an error signal here.
func (s *Store[T]) Update(record T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.byID[record.RecordID()]; ok {
		s.records[idx] = record.Clone()
	}
}

// Remove deletes the record with the given id and reports whether a record
// was actually removed. Insertion order of the remaining records is kept.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[id]
	if !ok {
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	delete(s.byID, id)
	for i := idx; i < len(s.records); i++ {
		s.byID[s.records[i].RecordID()] = i
	}
	return true
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
