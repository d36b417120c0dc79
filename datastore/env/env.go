/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package env

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/allauncher/sysprops/errors"
)

// Resolver abstracts access to the environment.
type Resolver interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OSResolver reads and writes the real process environment.
type OSResolver struct{}

func (OSResolver) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (OSResolver) Set(key, value string) error      { return os.Setenv(key, value) }
func (OSResolver) Unset(key string) error           { return os.Unsetenv(key) }

// Store mirrors properties into environment variables so that child
// processes started after projection can see them.
type Store struct {
	mu       sync.RWMutex
	resolver Resolver
	prefix   string
	written  map[string]string // property key -> variable name
}

type Option func(*Store)

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithResolver replaces the OS environment, mostly for tests.
func WithResolver(r Resolver) Option {
	return func(s *Store) {
		s.resolver = r
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		resolver: OSResolver{},
		written:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VarName converts a property key to an environment variable name:
// org.allauncher.window.title becomes ORG_ALLAUNCHER_WINDOW_TITLE.
func VarName(prefix, key string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return prefix + mapped
}

func (s *Store) SetProperty(_ context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}
	name := VarName(s.prefix, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resolver.Set(name, value); err != nil {
		return errors.NewWriteRejectedError(key, err.Error())
	}
	s.written[key] = name
	return nil
}

func (s *Store) GetProperty(_ context.Context, key string) (string, error) {
	if v, ok := s.resolver.Lookup(VarName(s.prefix, key)); ok {
		return v, nil
	}
	return "", errors.NewNotFoundError("property", key)
}

func (s *Store) ClearProperty(_ context.Context, key string) error {
	name := VarName(s.prefix, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.resolver.Unset(name); err != nil {
		return errors.NewWriteRejectedError(key, err.Error())
	}
	delete(s.written, key)
	return nil
}

// Properties returns the properties this store has written that are still
// present in the environment.
func (s *Store) Properties(_ context.Context) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.written))
	for key, name := range s.written {
		if v, ok := s.resolver.Lookup(name); ok {
			out[key] = v
		}
	}
	return out, nil
}

// Environ renders the written properties as NAME=value pairs.
func (s *Store) Environ() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.written))
	for _, name := range s.written {
		if v, ok := s.resolver.Lookup(name); ok {
			out = append(out, name+"="+v)
		}
	}
	return out
}
