/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package params

import (
	"sort"
)

// Parameters is a read-only source of named launch values.
type Parameters interface {
	// Lookup returns the value for key and whether it is present at all.
	// A present empty string is distinct from absence.
	Lookup(key string) (string, bool)
}

// GetString returns the value for key, or def when it is absent.
func GetString(p Parameters, key, def string) string {
	if v, ok := p.Lookup(key); ok {
		return v
	}
	return def
}

// Params is a multi-valued parameter set. Lookup returns the first value
// added for a key.
type Params struct {
	values map[string][]string
}

func New() *Params {
	return &Params{values: make(map[string][]string)}
}

// FromMap builds a Params with one value per key.
func FromMap(m map[string]string) *Params {
	p := New()
	for k, v := range m {
		p.Set(k, v)
	}
	return p
}

// Add appends a value for key.
func (p *Params) Add(key, value string) {
	p.values[key] = append(p.values[key], value)
}

// Set replaces all values for key.
func (p *Params) Set(key, value string) {
	p.values[key] = []string{value}
}

func (p *Params) Lookup(key string) (string, bool) {
	vs := p.values[key]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// All returns every value added for key.
func (p *Params) All(key string) []string {
	out := make([]string, len(p.values[key]))
	copy(out, p.values[key])
	return out
}

// Keys returns the present keys, sorted.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k, vs := range p.values {
		if len(vs) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (p *Params) Len() int {
	return len(p.Keys())
}

// Merge combines sources into one Params. A key present in a later source
// replaces the values from earlier ones.
func Merge(sources ...*Params) *Params {
	out := New()
	for _, src := range sources {
		if src == nil {
			continue
		}
		for k, vs := range src.values {
			if len(vs) == 0 {
				continue
			}
			out.values[k] = append([]string(nil), vs...)
		}
	}
	return out
}
