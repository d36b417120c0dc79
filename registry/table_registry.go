/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/allauncher/sysprops/errors"
)

// LauncherTableName is the name the built-in table is registered under.
const LauncherTableName = "allauncher"

var (
	tableRegistry = make(map[string]Table)
	mu            sync.RWMutex
)

func init() {
	RegisterTable(LauncherTableName, launcherTable)
}

// RegisterTable makes a projection table available by name.
// It panics if the name is already taken, to prevent accidental overrides.
func RegisterTable(name string, t Table) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := tableRegistry[name]; exists {
		panic(fmt.Sprintf("table registry: table %q already registered", name))
	}
	tableRegistry[name] = t.Clone()
}

// GetTable returns a copy of the table registered under name.
func GetTable(name string) (Table, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := tableRegistry[name]
	if !ok {
		return nil, errors.NewNotFoundError("table", name)
	}
	return t.Clone(), nil
}

// Tables returns the registered table names, sorted.
func Tables() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(tableRegistry))
	for name := range tableRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
