// Package composition implements the composition validation and balancing
// engine: pure functions that check declared input materials against a
// confirmed output quantity and keep the absolute-quantity and
// relative-percentage views of a composition mutually consistent.
package composition

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/domain/entities"
)

var (
	hundred = decimal.NewFromInt(100)

	// defaultPercentEpsilon is the absolute margin within which a
	// percentage sum is treated as exactly 100 despite rounding.
	defaultPercentEpsilon = decimal.RequireFromString("0.01")

	// defaultQuantityTolerance is the relative tolerance between summed
	// quantities and the target quantity before a mismatch warning.
	defaultQuantityTolerance = decimal.RequireFromString("0.01")

	// defaultNearMissWindow is the absolute percentage-point distance from
	// 100 within which auto-balance is suggested.
	defaultNearMissWindow = decimal.NewFromInt(5)
)

// Config holds tolerance thresholds for composition validation
type Config struct {
	// PercentEpsilon is the absolute tolerance on the percentage sum
	PercentEpsilon decimal.Decimal
	// QuantityTolerance is the relative tolerance on total quantity
	// versus the target quantity
	QuantityTolerance decimal.Decimal
	// NearMissWindow is the percentage-point window around 100 within
	// which an auto-balance suggestion is emitted
	NearMissWindow decimal.Decimal
}

// DefaultConfig returns the standard validation tolerances
func DefaultConfig() Config {
	return Config{
		PercentEpsilon:    defaultPercentEpsilon,
		QuantityTolerance: defaultQuantityTolerance,
		NearMissWindow:    defaultNearMissWindow,
	}
}

// Validator checks a full material list against a target quantity
type Validator struct {
	config Config
}

// NewValidator creates a validator with default tolerances
func NewValidator() *Validator {
	return NewValidatorWithConfig(DefaultConfig())
}

// NewValidatorWithConfig creates a validator with custom tolerances
func NewValidatorWithConfig(config Config) *Validator {
	return &Validator{config: config}
}

var defaultValidator = NewValidator()

// ValidateMaterial checks one material in isolation: required fields and
// numeric ranges. The index is zero-based and is used only to make error
// messages positional. Missing fields are validation failures, never
// errors in the Go sense.
func ValidateMaterial(m entities.InputMaterial, index int) entities.MaterialValidation {
	var errs []string
	row := index + 1

	if strings.TrimSpace(m.SourceOrderID) == "" {
		errs = append(errs, fmt.Sprintf("Material %d: source order ID is required", row))
	}
	if strings.TrimSpace(m.ProductName) == "" {
		errs = append(errs, fmt.Sprintf("Material %d: product name is required", row))
	}
	if strings.TrimSpace(m.SupplierName) == "" {
		errs = append(errs, fmt.Sprintf("Material %d: supplier name is required", row))
	}
	if m.QuantityUsed.IsNegative() {
		errs = append(errs, fmt.Sprintf("Material %d: quantity used cannot be negative", row))
	}
	if m.PercentageContribution.IsNegative() || m.PercentageContribution.GreaterThan(hundred) {
		errs = append(errs, fmt.Sprintf("Material %d: percentage contribution must be between 0 and 100", row))
	}

	return entities.MaterialValidation{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ValidateComposition validates materials against targetQuantity using
// the default tolerances.
func ValidateComposition(materials []entities.InputMaterial, targetQuantity decimal.Decimal) entities.CompositionValidation {
	return defaultValidator.ValidateComposition(materials, targetQuantity)
}

// ValidateComposition aggregates per-material checks with the 100%-sum
// invariant and the quantity/percentage cross-checks. Errors block
// submission; warnings and suggestions are advisory only.
//
// The result is recomputed from scratch on every call and is fully
// determined by the input, so repeated calls on unchanged input yield
// deep-equal results.
func (v *Validator) ValidateComposition(materials []entities.InputMaterial, targetQuantity decimal.Decimal) entities.CompositionValidation {
	var errs, warnings, suggestions []string

	totalPercentage := decimal.Zero
	totalQuantity := decimal.Zero
	for _, m := range materials {
		totalPercentage = totalPercentage.Add(m.PercentageContribution)
		totalQuantity = totalQuantity.Add(m.QuantityUsed)
	}

	for i, m := range materials {
		if mv := ValidateMaterial(m, i); !mv.IsValid {
			errs = append(errs, mv.Errors...)
		}
	}

	drift := totalPercentage.Sub(hundred).Abs()
	if len(materials) > 0 && drift.GreaterThan(v.config.PercentEpsilon) {
		errs = append(errs, fmt.Sprintf("Total percentage must equal 100%%, got %s%%", totalPercentage))
	}

	// A quantity recorded without its percentage is a partial record:
	// flagged, but not submission-blocking until the sum check catches it.
	for i, m := range materials {
		if m.HasQuantity() && !m.HasPercentage() {
			warnings = append(warnings, fmt.Sprintf("Material %d: quantity recorded but percentage contribution is still 0", i+1))
		}
	}

	if targetQuantity.IsPositive() {
		diff := totalQuantity.Sub(targetQuantity).Abs()
		if diff.GreaterThan(targetQuantity.Mul(v.config.QuantityTolerance)) {
			warnings = append(warnings, fmt.Sprintf(
				"Total quantity used (%s) does not match the target quantity (%s); quantities and percentages may be out of sync",
				totalQuantity, targetQuantity))
		}
	}

	seen := make(map[string]bool, len(materials))
	flagged := make(map[string]bool)
	for _, m := range materials {
		id := m.SourceOrderID
		if id == "" {
			continue
		}
		if seen[id] && !flagged[id] {
			warnings = append(warnings, fmt.Sprintf(
				"Source order %s is declared by more than one material; check for double-counting", id))
			flagged[id] = true
		}
		seen[id] = true
	}

	if len(materials) > 0 && drift.GreaterThan(v.config.PercentEpsilon) && drift.LessThan(v.config.NearMissWindow) {
		suggestions = append(suggestions, "Consider using Auto Balance to reach 100%")
	}

	allPercentagesSet := len(materials) > 0
	allQuantitiesZero := true
	for _, m := range materials {
		if !m.HasPercentage() {
			allPercentagesSet = false
		}
		if !m.QuantityUsed.IsZero() {
			allQuantitiesZero = false
		}
	}
	if allPercentagesSet && allQuantitiesZero {
		suggestions = append(suggestions, "Use Calculate Quantities to fill in amounts")
	}

	return entities.CompositionValidation{
		IsValid:         len(errs) == 0,
		TotalPercentage: totalPercentage,
		Errors:          errs,
		Warnings:        warnings,
		Suggestions:     suggestions,
	}
}
