// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package persistence

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"stylepins/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed returns the built-in default catalog. Each call decodes a fresh
// copy, so callers may keep the result.
func Seed() (*models.CatalogState, error) {
	var state models.CatalogState
	if err := yaml.Unmarshal(seedYAML, &state); err != nil {
		return nil, fmt.Errorf("seed decode: %w", err)
	}
	state.Normalize()
	return &state, nil
}
