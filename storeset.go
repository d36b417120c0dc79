/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sysprops

import (
	"context"
	"sync"

	"github.com/allauncher/sysprops/datastore"
	"github.com/allauncher/sysprops/errors"
)

// StoreSet is a thread-safe collection of named property writers. It is
// itself a PropertyWriter: each write goes to every member in registration
// order, stopping at the first error.
type StoreSet struct {
	mu     sync.RWMutex
	names  []string
	stores map[string]datastore.PropertyWriter
}

// NewStoreSet creates an empty StoreSet.
func NewStoreSet() *StoreSet {
	return &StoreSet{
		stores: make(map[string]datastore.PropertyWriter),
	}
}

// Register adds a store under the given name.
func (s *StoreSet) Register(name string, store datastore.PropertyWriter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[name]; exists {
		return errors.NewAlreadyExistsError("store", name)
	}

	s.stores[name] = store
	s.names = append(s.names, name)
	return nil
}

// Get retrieves a store by name.
func (s *StoreSet) Get(name string) (datastore.PropertyWriter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	store, exists := s.stores[name]
	if !exists {
		return nil, errors.NewNotFoundError("store", name)
	}
	return store, nil
}

// Remove deletes a store by name.
func (s *StoreSet) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.stores[name]; !exists {
		return errors.NewNotFoundError("store", name)
	}

	delete(s.stores, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the registered names in registration order.
func (s *StoreSet) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// SetProperty writes key to every registered store.
func (s *StoreSet) SetProperty(ctx context.Context, key, value string) error {
	s.mu.RLock()
	members := make([]datastore.PropertyWriter, 0, len(s.names))
	for _, n := range s.names {
		members = append(members, s.stores[n])
	}
	s.mu.RUnlock()

	for _, store := range members {
		if err := store.SetProperty(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
