/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package process

import (
	"context"
	"sort"
	"sync"

	"github.com/allauncher/sysprops/errors"
)

// WritePolicy decides whether a write may proceed. A non-nil error rejects it.
type WritePolicy func(key, value string) error

// Store is a thread-safe in-memory property store.
type Store struct {
	mu     sync.RWMutex
	props  map[string]string
	policy WritePolicy
}

// Option configures a Store.
type Option func(*Store)

// WithWritePolicy installs a policy consulted before every SetProperty and ClearProperty.
func WithWritePolicy(p WritePolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{props: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var std = New()

// Default returns the process-wide store.
func Default() *Store {
	return std
}

// ReadOnly rejects writes to the listed keys.
func ReadOnly(keys ...string) WritePolicy {
	locked := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		locked[k] = struct{}{}
	}
	return func(key, _ string) error {
		if _, ok := locked[key]; ok {
			return errors.NewWriteRejectedError(key, "property is read-only")
		}
		return nil
	}
}

func (s *Store) check(key, value string) error {
	if key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}
	if s.policy != nil {
		return s.policy(key, value)
	}
	return nil
}

// SetProperty stores value under key, replacing any previous value.
func (s *Store) SetProperty(_ context.Context, key, value string) error {
	if err := s.check(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.props[key] = value
	return nil
}

// GetProperty returns the value stored under key.
func (s *Store) GetProperty(_ context.Context, key string) (string, error) {
	if v, ok := s.Lookup(key); ok {
		return v, nil
	}
	return "", errors.NewNotFoundError("property", key)
}

// Lookup reports the value stored under key and whether it was set.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.props[key]
	return v, ok
}

// GetString returns the value under key, or def when it is not set.
func (s *Store) GetString(key, def string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return def
}

// ClearProperty removes key. Clearing an unset key is not an error.
func (s *Store) ClearProperty(_ context.Context, key string) error {
	if err := s.check(key, ""); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.props, key)
	return nil
}

// Properties returns a snapshot of the store.
func (s *Store) Properties(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.props))
	for k, v := range s.props {
		out[k] = v
	}
	return out, nil
}

// Keys returns the set keys, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.props))
	for k := range s.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetProperty writes to the process-wide store.
func SetProperty(key, value string) error {
	return std.SetProperty(context.Background(), key, value)
}

// GetProperty reads from the process-wide store.
func GetProperty(key string) (string, bool) {
	return std.Lookup(key)
}
