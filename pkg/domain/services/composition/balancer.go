package composition

import (
	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/domain/entities"
)

// AutoBalanceComposition redistributes percentage contributions so they sum
// to exactly 100 while preserving relative proportions. If the current total
// is zero, the share is distributed evenly. Scaled values are rounded to two
// decimal places and any post-rounding remainder lands on the last material,
// so the result sums to exactly 100.00. Quantities are left untouched.
//
// The input list is never mutated; a new list is returned. An empty list is
// returned unchanged.
func AutoBalanceComposition(materials []entities.InputMaterial) []entities.InputMaterial {
	if len(materials) == 0 {
		return materials
	}

	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.PercentageContribution)
	}

	balanced := make([]entities.InputMaterial, len(materials))
	copy(balanced, materials)

	if total.IsZero() {
		share := hundred.Div(decimal.NewFromInt(int64(len(materials)))).Round(2)
		for i := range balanced {
			balanced[i].PercentageContribution = share
		}
	} else {
		scale := hundred.Div(total)
		for i := range balanced {
			balanced[i].PercentageContribution = materials[i].PercentageContribution.Mul(scale).Round(2)
		}
	}

	applyLeftover(balanced)
	return balanced
}

// CalculateSuggestedQuantities derives each material's quantity from its
// percentage contribution against the target quantity, rounded to three
// decimal places. A non-positive target is a documented no-op: the input
// list is returned unchanged.
func CalculateSuggestedQuantities(materials []entities.InputMaterial, targetQuantity decimal.Decimal) []entities.InputMaterial {
	if !targetQuantity.IsPositive() || len(materials) == 0 {
		return materials
	}

	derived := make([]entities.InputMaterial, len(materials))
	copy(derived, materials)
	for i := range derived {
		derived[i].QuantityUsed = derived[i].PercentageContribution.Mul(targetQuantity).Div(hundred).Round(3)
	}
	return derived
}

// CalculateSuggestedPercentages derives each material's percentage
// contribution from its share of the summed quantities, rounded to two
// decimal places with the same last-element leftover correction as
// auto-balance. A non-positive quantity total is a documented no-op.
func CalculateSuggestedPercentages(materials []entities.InputMaterial) []entities.InputMaterial {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(m.QuantityUsed)
	}
	if !total.IsPositive() {
		return materials
	}

	derived := make([]entities.InputMaterial, len(materials))
	copy(derived, materials)
	for i := range derived {
		derived[i].PercentageContribution = derived[i].QuantityUsed.Mul(hundred).Div(total).Round(2)
	}

	applyLeftover(derived)
	return derived
}

// applyLeftover pushes any post-rounding remainder onto the last material so
// the percentage sum lands on exactly 100. The tie-break is deterministic
// and order-dependent: always the last element, never distributed by size.
func applyLeftover(materials []entities.InputMaterial) {
	sum := decimal.Zero
	for _, m := range materials {
		sum = sum.Add(m.PercentageContribution)
	}

	leftover := hundred.Sub(sum)
	if !leftover.IsZero() {
		last := len(materials) - 1
		materials[last].PercentageContribution = materials[last].PercentageContribution.Add(leftover)
	}
}
