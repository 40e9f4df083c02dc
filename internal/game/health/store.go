package health

import (
	"context"
	"fmt"
	"sync"
)

// Store holds health records keyed by lower-cased character name.
//
// Implementations MUST be safe for concurrent use. A Store performs no business
// logic; read-modify-write sequences are serialized per name by the Engine.
type Store interface {
	// GetByName returns the record for name (case-insensitive) or ErrRecordNotFound.
	GetByName(ctx context.Context, name string) (Record, error)
	// Save upserts rec under rec.Key(). A record without a name is rejected with
	// ErrValidation and the stored state is left untouched.
	Save(ctx context.Context, rec Record) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// GetByName returns the stored record for name.
func (s *MemoryStore) GetByName(_ context.Context, name string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[Key(name)]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, name)
	}
	return rec, nil
}

// Save stores rec, replacing any record with the same key.
func (s *MemoryStore) Save(_ context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Key()] = rec
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
