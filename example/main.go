package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/application/services"
	"github.com/ecotrace/composition/pkg/domain/entities"
	"github.com/ecotrace/composition/pkg/domain/services/composition"
	"github.com/ecotrace/composition/pkg/infrastructure/events"
	"github.com/ecotrace/composition/pkg/infrastructure/repositories/memory"
)

func main() {
	// A chocolate producer confirming a 1000 kg output order.
	repo := memory.NewCompositionRepository()
	store := events.NewInMemoryEventStore()
	service := services.NewConfirmationService(
		"PO-4711",
		decimal.NewFromInt(1000),
		"kg",
		composition.NewValidator(),
		repo,
		store,
	)

	service.ImportMaterials([]*entities.InputMaterial{
		{
			SourceOrderID:          "PO-001",
			ProductName:            "Cocoa Mass",
			SupplierName:           "Tropic Trading",
			QuantityUsed:           decimal.NewFromInt(600),
			PercentageContribution: decimal.NewFromInt(60),
			Unit:                   "kg",
			LotNumber:              "LOT-A1",
		},
		{
			SourceOrderID:          "PO-002",
			ProductName:            "Cane Sugar",
			SupplierName:           "Sweetline",
			QuantityUsed:           decimal.NewFromInt(300),
			PercentageContribution: decimal.NewFromInt(30),
			Unit:                   "kg",
			LotNumber:              "LOT-B7",
		},
	})

	fmt.Println("🍫 Confirming composition for PO-4711...")
	printValidation(service.Validation())

	// 90% does not account for the whole output; rebalance and retry.
	fmt.Println("⚖️  Auto-balancing...")
	service.AutoBalance()
	for _, m := range service.Materials() {
		fmt.Printf("  %s: %s%%\n", m.ProductName, m.PercentageContribution)
	}

	// Recompute quantities from the balanced percentages.
	service.CalculateQuantities()
	for _, m := range service.Materials() {
		fmt.Printf("  %s: %s kg\n", m.ProductName, m.QuantityUsed)
	}

	printValidation(service.Validation())

	summary := service.Summary()
	fmt.Printf("📊 Summary: %d materials, %s%% total, %s kg, %d suppliers, complete=%v\n",
		summary.TotalMaterials,
		summary.TotalPercentage,
		summary.TotalQuantity,
		summary.UniqueSuppliers,
		summary.IsComplete)

	confirmed, err := service.Confirm()
	if err != nil {
		fmt.Printf("❌ Confirmation failed: %v\n", err)
		return
	}
	fmt.Printf("✅ Composition confirmed: %s (%d events recorded)\n",
		confirmed.ID, len(store.Read("PO-4711")))
}

func printValidation(validation entities.CompositionValidation) {
	fmt.Printf("  Valid: %v (total %s%%)\n", validation.IsValid, validation.TotalPercentage)
	for _, e := range validation.Errors {
		fmt.Printf("  ❌ %s\n", e)
	}
	for _, w := range validation.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
	for _, s := range validation.Suggestions {
		fmt.Printf("  💡 %s\n", s)
	}
}
