// Package set provides CompactorSet, a name-keyed collection of Compactors
// sharing a common retention policy.
package set

import (
	"fmt"
	"sort"
	"sync"

	"github.com/asayers/compactor"
	"github.com/asayers/compactor/aggregate"
	"github.com/asayers/compactor/internal/hash"
)

// CompactorSet holds many named Compactors, all built from the same
// Policy. Lookups go through byName; byID records hash.ID(name) for every
// registered name and is only consulted by GetOrCreate, to detect two
// different names sharing a hash.
type CompactorSet[T aggregate.Aggregate[T]] struct {
	policy compactor.Policy

	mu     sync.RWMutex
	byID   map[uint64]*compactor.Compactor[T]
	byName map[string]*compactor.Compactor[T]
}

// NewCompactorSet creates an empty CompactorSet. Every Compactor it creates
// via GetOrCreate is built from policy.
func NewCompactorSet[T aggregate.Aggregate[T]](policy compactor.Policy) *CompactorSet[T] {
	return &CompactorSet[T]{
		policy: policy,
		byID:   make(map[uint64]*compactor.Compactor[T]),
		byName: make(map[string]*compactor.Compactor[T]),
	}
}

// GetOrCreate returns the named Compactor, creating it from the set's
// policy the first time name is seen. Panics if name hashes to the same
// ID as a different, previously registered name — an xxHash64 collision,
// astronomically unlikely but fatal, since the set can no longer tell the
// two names apart.
func (s *CompactorSet[T]) GetOrCreate(name string) *compactor.Compactor[T] {
	s.mu.RLock()
	c, ok := s.byName[name]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.byName[name]; ok {
		return c
	}

	id := hash.ID(name)
	if _, ok := s.byID[id]; ok {
		panic(fmt.Sprintf("set: name %q collides with an existing entry under hash %d", name, id))
	}

	c = compactor.FromPolicy[T](s.policy)
	s.byID[id] = c
	s.byName[name] = c

	return c
}

// Get returns the named Compactor and true, or (nil, false) if name hasn't
// been registered.
func (s *CompactorSet[T]) Get(name string) (*compactor.Compactor[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byName[name]

	return c, ok
}

// Delete removes name's Compactor from the set entirely. It is a no-op if
// name hasn't been registered.
func (s *CompactorSet[T]) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; !ok {
		return
	}

	delete(s.byName, name)
	delete(s.byID, hash.ID(name))
}

// Len returns the number of registered names.
func (s *CompactorSet[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byName)
}

// Names returns every registered name, sorted for deterministic iteration.
func (s *CompactorSet[T]) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
