/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package params

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/allauncher/sysprops/registry"
)

// DefaultEnvPrefix is prepended to the variable names in launchEnv.
const DefaultEnvPrefix = "ALLAUNCHER_"

// launchEnv lists the launch parameters that may be passed through the
// environment. Pointer fields stay nil when the variable is unset.
type launchEnv struct {
	LauncherBrand    *string `env:"LAUNCHER_BRAND"`
	LauncherVersion  *string `env:"LAUNCHER_VERSION"`
	InstanceName     *string `env:"INSTANCE_NAME"`
	InstanceIconKey  *string `env:"INSTANCE_ICON_KEY"`
	InstanceIconPath *string `env:"INSTANCE_ICON_PATH"`
	WindowTitle      *string `env:"WINDOW_TITLE"`
	WindowParams     *string `env:"WINDOW_PARAMS"`
}

// FromEnv reads launch parameters from environment variables. An empty
// opts.Prefix selects DefaultEnvPrefix; opts.Environment may replace the
// real environment.
func FromEnv(opts env.Options) (*Params, error) {
	if opts.Prefix == "" {
		opts.Prefix = DefaultEnvPrefix
	}

	var e launchEnv
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return nil, fmt.Errorf("parse env params: %w", err)
	}

	p := New()
	for name, v := range map[string]*string{
		registry.ParamLauncherBrand:    e.LauncherBrand,
		registry.ParamLauncherVersion:  e.LauncherVersion,
		registry.ParamInstanceName:     e.InstanceName,
		registry.ParamInstanceIconKey:  e.InstanceIconKey,
		registry.ParamInstanceIconPath: e.InstanceIconPath,
		registry.ParamWindowTitle:      e.WindowTitle,
		registry.ParamWindowParams:     e.WindowParams,
	} {
		if v != nil {
			p.Set(name, *v)
		}
	}
	return p, nil
}
