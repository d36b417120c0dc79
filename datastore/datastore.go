/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"
)

// PropertyWriter is the only capability the projector needs.
type PropertyWriter interface {
	SetProperty(ctx context.Context, key, value string) error
}

type PropertyStore interface {
	PropertyWriter

	// GetProperty returns errors.ErrNotFound when key was never set.
	GetProperty(ctx context.Context, key string) (string, error)

	ClearProperty(ctx context.Context, key string) error

	// Properties returns a snapshot of every property in the store.
	Properties(ctx context.Context) (map[string]string, error)
}
