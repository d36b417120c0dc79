/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sysprops

import (
	"context"

	"github.com/allauncher/sysprops/datastore"
	"github.com/allauncher/sysprops/params"
	"github.com/allauncher/sysprops/registry"
)

// Apply copies the recognized launch parameters into store under their
// fixed property keys, including the legacy multimc.* aliases.
//
// A parameter that is absent causes no write, so whatever store already
// holds for its keys is left alone. The first error returned by store is
// returned as is and the remaining writes are skipped.
//
// Apply is meant to run once at startup, before anything reads the store.
func Apply(ctx context.Context, p params.Parameters, store datastore.PropertyWriter) error {
	return ApplyTable(ctx, registry.Launcher(), p, store)
}

// ApplyTable is Apply with an explicit mapping table.
func ApplyTable(ctx context.Context, table registry.Table, p params.Parameters, store datastore.PropertyWriter) error {
	for _, m := range table {
		value, ok := p.Lookup(m.Param)
		if !ok {
			continue
		}
		for _, key := range m.Keys() {
			if err := store.SetProperty(ctx, key, value); err != nil {
				return err
			}
		}
	}
	return nil
}
