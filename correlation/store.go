// SPDX-License-Identifier: MIT

// Package correlation - persistent, identity-keyed coefficient store.
//
// Keys are canonicalized unordered id pairs (smaller id first), so
// Get(a,b) == Get(b,a) and Add(a,b) / Add(b,a) collide on the same
// entry. All accessors take the store's lock, making a single Store —
// including the process-wide one returned by Global — safe to share
// across goroutines.

package correlation

import (
	"fmt"
	"sync"

	"github.com/calder-lab/uncert/core"
)

// pairKey is a canonicalized unordered identity pair: lo <= hi.
type pairKey struct {
	lo, hi uint64
}

// makeKey canonicalizes (id1, id2) into a pairKey.
func makeKey(id1, id2 uint64) pairKey {
	if id1 > id2 {
		id1, id2 = id2, id1
	}

	return pairKey{lo: id1, hi: id2}
}

// Store maps unordered identity pairs to correlation coefficients,
// persisting inter-variable correlation across propagation calls.
//
// The zero value is ready to use. A Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	coeffs map[pairKey]float64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{coeffs: make(map[pairKey]float64)}
}

// AddIDs inserts the coefficient for the unordered pair (id1, id2).
// It fails with ErrDuplicateEntry if the pair already has an entry,
// guarding against silently clobbering a previously recorded
// correlation; use SetIDs to overwrite intentionally.
func (s *Store) AddIDs(id1, id2 uint64, coeff float64) error {
	key := makeKey(id1, id2)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coeffs[key]; ok {
		return fmt.Errorf("Store.Add(%d,%d): %w (use Set to overwrite)", id1, id2, ErrDuplicateEntry)
	}
	if s.coeffs == nil {
		s.coeffs = make(map[pairKey]float64)
	}
	s.coeffs[key] = coeff

	return nil
}

// SetIDs inserts or overwrites the coefficient for the unordered pair
// (id1, id2). It never fails.
func (s *Store) SetIDs(id1, id2 uint64, coeff float64) {
	key := makeKey(id1, id2)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coeffs == nil {
		s.coeffs = make(map[pairKey]float64)
	}
	s.coeffs[key] = coeff
}

// GetIDs returns the coefficient for the unordered pair (id1, id2), or 0
// when no entry exists. Absence means "no known correlation", so lookup
// never fails.
func (s *Store) GetIDs(id1, id2 uint64) float64 {
	key := makeKey(id1, id2)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.coeffs[key]
}

// Add records the coefficient between two tracked values, failing with
// ErrDuplicateEntry when the pair is already present. Identities are
// resolved through core.IDOf, so any Value works; untracked values
// resolve to id 0.
func (s *Store) Add(v1, v2 core.Value, coeff float64) error {
	return s.AddIDs(core.IDOf(v1), core.IDOf(v2), coeff)
}

// Set records or overwrites the coefficient between two tracked values.
func (s *Store) Set(v1, v2 core.Value, coeff float64) {
	s.SetIDs(core.IDOf(v1), core.IDOf(v2), coeff)
}

// Get returns the recorded coefficient between two tracked values, or 0
// when none is known.
func (s *Store) Get(v1, v2 core.Value) float64 {
	return s.GetIDs(core.IDOf(v1), core.IDOf(v2))
}

// Len reports the number of recorded pairs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.coeffs)
}

var (
	globalStore *Store
	globalOnce  sync.Once
)

// Global returns the process-wide shared Store, creating it on first
// access. Every call returns the same instance for the life of the
// process. Callers opting into automatic cross-call correlation tracking
// must use this instance consistently.
func Global() *Store {
	globalOnce.Do(func() {
		globalStore = NewStore()
	})

	return globalStore
}
