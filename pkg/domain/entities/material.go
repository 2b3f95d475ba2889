package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialID uniquely identifies a declared input material within a
// composition. IDs are opaque and never reused after a material is removed.
type MaterialID string

// InputMaterial is one declared contribution to a composed output: a
// quantity drawn from a prior purchase order together with its relative
// share of the confirmed output quantity.
//
// QuantityUsed and PercentageContribution are two views of the same fact.
// Whichever side was edited last is authoritative for that material until a
// balancer operation recomputes the other side for all materials uniformly.
type InputMaterial struct {
	ID                     MaterialID      `json:"id"`
	SourceOrderID          string          `json:"source_order_id"`
	ProductName            string          `json:"product_name"`
	SupplierName           string          `json:"supplier_name"`
	QuantityUsed           decimal.Decimal `json:"quantity_used"`
	Unit                   string          `json:"unit"`
	PercentageContribution decimal.Decimal `json:"percentage_contribution"`
	ReceivedDate           time.Time       `json:"received_date"`
	LotNumber              string          `json:"lot_number"`
}

// HasQuantity reports whether a positive quantity has been recorded.
func (m InputMaterial) HasQuantity() bool {
	return m.QuantityUsed.IsPositive()
}

// HasPercentage reports whether a positive percentage has been recorded.
func (m InputMaterial) HasPercentage() bool {
	return m.PercentageContribution.IsPositive()
}
