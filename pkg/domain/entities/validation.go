package entities

import "github.com/shopspring/decimal"

// MaterialValidation contains the result of validating a single material
// in isolation. IsValid is true exactly when Errors is empty.
type MaterialValidation struct {
	IsValid bool
	Errors  []string
}

// CompositionValidation contains the aggregate result of validating a full
// material list against a target quantity. Errors block submission;
// warnings and suggestions never affect IsValid.
//
// Values are recomputed from scratch on every validation pass and are never
// mutated in place, so callers may compare successive results for equality
// to skip redundant state updates.
type CompositionValidation struct {
	IsValid         bool            `json:"is_valid"`
	TotalPercentage decimal.Decimal `json:"total_percentage"`
	Errors          []string        `json:"errors"`
	Warnings        []string        `json:"warnings"`
	Suggestions     []string        `json:"suggestions"`
}

// CompositionSummary holds read-only aggregate statistics for display.
// It is purely descriptive and is never the authority on whether a
// composition may be submitted; that is CompositionValidation's job.
type CompositionSummary struct {
	TotalMaterials  int             `json:"total_materials"`
	TotalPercentage decimal.Decimal `json:"total_percentage"`
	TotalQuantity   decimal.Decimal `json:"total_quantity"`
	UniqueSuppliers int             `json:"unique_suppliers"`
	IsComplete      bool            `json:"is_complete"`
}
