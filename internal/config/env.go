// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment using caarlos0/env.
// Fields are mapped via the `env` and `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvWithOptions(cfg, env.Options{})
}

// parseEnvWithOptions is parseEnv with explicit caarlos0/env options, which
// lets callers supply an environment map instead of the process one.
func parseEnvWithOptions(cfg *StructuredConfig, opts env.Options) error {
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
