package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/domain/entities"
)

// ConfirmationResult contains the complete output of a confirmation run:
// the (possibly rebalanced) material list with its validation state and
// display summary.
type ConfirmationResult struct {
	OutputOrderID  string                         `json:"output_order_id"`
	TargetQuantity decimal.Decimal                `json:"target_quantity"`
	Unit           string                         `json:"unit"`
	Materials      []entities.InputMaterial       `json:"materials"`
	Validation     entities.CompositionValidation `json:"validation"`
	Summary        entities.CompositionSummary    `json:"summary"`
}
