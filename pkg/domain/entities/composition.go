package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CompositionID uniquely identifies a confirmed composition
type CompositionID string

// Composition records which input materials were combined, in what
// quantities and shares, to produce a confirmed output quantity
type Composition struct {
	ID             CompositionID
	OutputOrderID  string
	TargetQuantity decimal.Decimal
	Unit           string
	Materials      []InputMaterial
	ConfirmedAt    time.Time
}

// NewComposition creates a validated Composition
func NewComposition(
	id CompositionID,
	outputOrderID string,
	targetQuantity decimal.Decimal,
	unit string,
	materials []InputMaterial,
	confirmedAt time.Time,
) (*Composition, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("composition ID cannot be empty")
	}
	if outputOrderID == "" {
		return nil, fmt.Errorf("output order ID cannot be empty")
	}
	if targetQuantity.IsNegative() {
		return nil, fmt.Errorf("target quantity cannot be negative, got %s", targetQuantity)
	}
	if unit == "" {
		return nil, fmt.Errorf("unit of measure cannot be empty")
	}

	return &Composition{
		ID:             id,
		OutputOrderID:  outputOrderID,
		TargetQuantity: targetQuantity,
		Unit:           unit,
		Materials:      materials,
		ConfirmedAt:    confirmedAt,
	}, nil
}
