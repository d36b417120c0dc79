/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the settings of the sysprops command itself. Launch
// parameters are read separately, see package params.
type Config struct {
	AWSAccessKey string `env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `env:"AWS_SECRET_KEY"`
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`

	// DDBTable enables the DynamoDB mirror when set.
	DDBTable  string `env:"AWS_DDB_TABLE"`
	Namespace string `env:"SYSPROPS_NAMESPACE" envDefault:"default"`

	EnvPrefix string `env:"SYSPROPS_ENV_PREFIX"`
	LogLevel  string `env:"SYSPROPS_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given dotenv files into the process environment, skipping
// ones that do not exist, and then parses Config from the environment.
// Variables already set take precedence over dotenv values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return Parse(env.Options{})
}

// Parse reads Config using opts, which tests use to supply an environment.
func Parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a production zap logger at the given level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
