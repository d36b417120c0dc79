/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package sysprops

import (
	"fmt"
	"io"
	"sort"

	"github.com/magiconair/properties"
)

func sortedKeys(props map[string]string) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JVMFlags renders properties as -Dkey=value arguments, sorted by key.
func JVMFlags(props map[string]string) []string {
	out := make([]string, 0, len(props))
	for _, k := range sortedKeys(props) {
		out = append(out, "-D"+k+"="+props[k])
	}
	return out
}

// WriteProperties writes props as a .properties document, sorted by key.
func WriteProperties(w io.Writer, props map[string]string) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, k := range sortedKeys(props) {
		if _, _, err := p.Set(k, props[k]); err != nil {
			return fmt.Errorf("set %q: %w", k, err)
		}
	}
	if _, err := p.Write(w, properties.UTF8); err != nil {
		return fmt.Errorf("write properties: %w", err)
	}
	return nil
}
