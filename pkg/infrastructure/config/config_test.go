package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func writeTolerances(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tolerances.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write tolerances file: %v", err)
	}
	return path
}

func TestLoadTolerances(t *testing.T) {
	path := writeTolerances(t, "quantity_tolerance: \"0.05\"\nnear_miss_window: \"10\"\n")

	cfg, err := LoadTolerances(path)
	if err != nil {
		t.Fatalf("LoadTolerances failed: %v", err)
	}

	if !cfg.QuantityTolerance.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("Expected quantity tolerance 0.05, got %s", cfg.QuantityTolerance)
	}
	if !cfg.NearMissWindow.Equal(decimal.NewFromInt(10)) {
		t.Errorf("Expected near-miss window 10, got %s", cfg.NearMissWindow)
	}
	// Omitted fields keep the engine default.
	if !cfg.PercentEpsilon.Equal(decimal.RequireFromString("0.01")) {
		t.Errorf("Expected default percent epsilon 0.01, got %s", cfg.PercentEpsilon)
	}
}

func TestLoadTolerances_Invalid(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectError string
	}{
		{"not a number", "quantity_tolerance: \"lots\"\n", "invalid quantity_tolerance"},
		{"negative", "percent_epsilon: \"-0.01\"\n", "cannot be negative"},
		{"bad yaml", "quantity_tolerance: [\n", "failed to parse"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTolerances(t, tc.content)
			_, err := LoadTolerances(path)
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.expectError)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}
