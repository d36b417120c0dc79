/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a recording implementation of datastore.PropertyStore for testing
package mock

import (
	"context"
	"sync"

	"github.com/allauncher/sysprops/errors"
	"github.com/allauncher/sysprops/storagemodels"
)

// Store is a mock property store that records every write
type Store struct {
	mu         sync.RWMutex
	data       map[string]string
	writes     []storagemodels.Write
	setError   error
	keyErrors  map[string]error
	clearError error
}

// New creates a new mock Store
func New() *Store {
	return &Store{
		data:      make(map[string]string),
		keyErrors: make(map[string]error),
	}
}

// WithSetError makes every SetProperty call return err
func (m *Store) WithSetError(err error) *Store {
	m.setError = err
	return m
}

// WithKeyError makes SetProperty return err for one key only
func (m *Store) WithKeyError(key string, err error) *Store {
	m.keyErrors[key] = err
	return m
}

// WithClearError makes ClearProperty return err
func (m *Store) WithClearError(err error) *Store {
	m.clearError = err
	return m
}

// SetProperty records the write and stores the value
func (m *Store) SetProperty(ctx context.Context, key, value string) error {
	if m.setError != nil {
		return m.setError
	}
	if err, ok := m.keyErrors[key]; ok {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes = append(m.writes, storagemodels.Write{Key: key, Value: value})
	m.data[key] = value
	return nil
}

// GetProperty returns a stored value
func (m *Store) GetProperty(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, exists := m.data[key]; exists {
		return v, nil
	}
	return "", errors.NewNotFoundError("property", key)
}

// ClearProperty removes a value
func (m *Store) ClearProperty(ctx context.Context, key string) error {
	if m.clearError != nil {
		return m.clearError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists {
		return errors.NewNotFoundError("property", key)
	}
	delete(m.data, key)
	return nil
}

// Properties returns a copy of the stored values
func (m *Store) Properties(ctx context.Context) (map[string]string, error) {
	return m.GetData(), nil
}

// Helper methods for testing

// SetData replaces the stored values without recording writes
func (m *Store) SetData(data map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]string, len(data))
	for k, v := range data {
		m.data[k] = v
	}
}

// GetData returns a copy of the stored values
func (m *Store) GetData() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]string, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Writes returns the recorded writes in call order
func (m *Store) Writes() []storagemodels.Write {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]storagemodels.Write, len(m.writes))
	copy(out, m.writes)
	return out
}

// Count returns the number of stored properties
func (m *Store) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Reset drops stored values and the write log
func (m *Store) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]string)
	m.writes = nil
}
