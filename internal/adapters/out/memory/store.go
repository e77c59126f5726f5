// Package memory keeps the contract aggregate in process memory. Writes are
// serialized through a unit of work holding the store's write lock; reads see
// the last committed snapshot and may run concurrently with each other.
package memory

import (
	"context"
	"sync"

	"custody/internal/core/domain/model/contract"
)

// Store holds the committed contract snapshot. The pointer is swapped on
// commit, never mutated in place, so readers can hand it out safely under the
// read lock.
type Store struct {
	mu      sync.RWMutex
	current *contract.Contract
}

// NewStore creates a store seeded with the initial committed aggregate.
func NewStore(initial *contract.Contract) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	return &Store{current: initial}, nil
}

// Contract returns the last committed snapshot. The caller must treat it as
// read-only. Implements queries.ContractReader.
func (s *Store) Contract(_ context.Context) (*contract.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, nil
}
