// Package config loads validation tolerances from YAML files. Thresholds
// that are not contractually pinned (the quantity-mismatch tolerance and
// the auto-balance suggestion window) are kept configurable here.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ecotrace/composition/pkg/domain/services/composition"
)

// Tolerances mirrors the YAML tolerance file. Omitted fields fall back to
// the engine defaults.
type Tolerances struct {
	PercentEpsilon    string `yaml:"percent_epsilon"`
	QuantityTolerance string `yaml:"quantity_tolerance"`
	NearMissWindow    string `yaml:"near_miss_window"`
}

// LoadTolerances reads a YAML tolerance file into a validator config
func LoadTolerances(path string) (composition.Config, error) {
	cfg := composition.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read tolerances file %s: %w", path, err)
	}

	var tolerances Tolerances
	if err := yaml.Unmarshal(data, &tolerances); err != nil {
		return cfg, fmt.Errorf("failed to parse tolerances file %s: %w", path, err)
	}

	if err := override(&cfg.PercentEpsilon, tolerances.PercentEpsilon, "percent_epsilon"); err != nil {
		return cfg, err
	}
	if err := override(&cfg.QuantityTolerance, tolerances.QuantityTolerance, "quantity_tolerance"); err != nil {
		return cfg, err
	}
	if err := override(&cfg.NearMissWindow, tolerances.NearMissWindow, "near_miss_window"); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func override(target *decimal.Decimal, value, field string) error {
	if value == "" {
		return nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %s", field, value)
	}
	if parsed.IsNegative() {
		return fmt.Errorf("%s cannot be negative, got %s", field, value)
	}
	*target = parsed
	return nil
}
