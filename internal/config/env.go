// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the env layer of the configuration. Variable names come
// from the `env` and `envPrefix` tags, e.g. WORKERS_MAX_ATTEMPTS. Unset
// variables leave zero values for the lower-priority layers to fill.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
