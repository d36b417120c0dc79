/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package params

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// LoadDotenv reads KEY=value files. Later files override earlier ones.
func LoadDotenv(filenames ...string) (*Params, error) {
	m, err := godotenv.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("failed to read dotenv params: %w", err)
	}
	return FromMap(m), nil
}

// ParseDotenv parses KEY=value content.
func ParseDotenv(r io.Reader) (*Params, error) {
	m, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dotenv params: %w", err)
	}
	return FromMap(m), nil
}

// LoadYAML loads a flat YAML mapping of parameter names to values.
func LoadYAML(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read params file %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML parses a flat YAML mapping. Null values are treated as absent.
func ParseYAML(data []byte) (*Params, error) {
	var raw map[string]*string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse params YAML: %w", err)
	}

	p := New()
	for k, v := range raw {
		if v != nil {
			p.Set(k, *v)
		}
	}
	return p, nil
}

// propertiesLoader reads values verbatim, without ${...} expansion.
var propertiesLoader = properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

// LoadProperties loads a Java-style .properties file.
func LoadProperties(path string) (*Params, error) {
	props, err := propertiesLoader.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties %s: %w", path, err)
	}
	return fromProperties(props), nil
}

// ParseProperties parses .properties content.
func ParseProperties(data []byte) (*Params, error) {
	props, err := propertiesLoader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse properties: %w", err)
	}
	return fromProperties(props), nil
}

func fromProperties(props *properties.Properties) *Params {
	p := New()
	for _, k := range props.Keys() {
		v, _ := props.Get(k)
		p.Set(k, v)
	}
	return p
}
