package composition

import (
	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/domain/entities"
)

// GetCompositionSummary derives display statistics for a material list.
// Supplier uniqueness is exact-string and case-sensitive. IsComplete only
// reflects the percentage sum; it is not a submission check.
func GetCompositionSummary(materials []entities.InputMaterial) entities.CompositionSummary {
	totalPercentage := decimal.Zero
	totalQuantity := decimal.Zero
	suppliers := make(map[string]struct{}, len(materials))

	for _, m := range materials {
		totalPercentage = totalPercentage.Add(m.PercentageContribution)
		totalQuantity = totalQuantity.Add(m.QuantityUsed)
		suppliers[m.SupplierName] = struct{}{}
	}

	return entities.CompositionSummary{
		TotalMaterials:  len(materials),
		TotalPercentage: totalPercentage,
		TotalQuantity:   totalQuantity,
		UniqueSuppliers: len(suppliers),
		IsComplete:      totalPercentage.Sub(hundred).Abs().LessThanOrEqual(defaultPercentEpsilon),
	}
}
