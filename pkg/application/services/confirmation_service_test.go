package services

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/domain/entities"
	"github.com/ecotrace/composition/pkg/domain/services/composition"
	"github.com/ecotrace/composition/pkg/infrastructure/events"
	"github.com/ecotrace/composition/pkg/infrastructure/repositories/memory"
)

func newTestService(t *testing.T) (*ConfirmationService, *memory.CompositionRepository, *events.InMemoryEventStore) {
	t.Helper()
	repo := memory.NewCompositionRepository()
	store := events.NewInMemoryEventStore()
	svc := NewConfirmationService(
		"PO-4711",
		decimal.NewFromInt(1000),
		"kg",
		composition.NewValidator(),
		repo,
		store,
	)
	return svc, repo, store
}

func filledMaterial(sourceOrder, product, supplier, quantity, percentage string) entities.InputMaterial {
	return entities.InputMaterial{
		SourceOrderID:          sourceOrder,
		ProductName:            product,
		SupplierName:           supplier,
		QuantityUsed:           decimal.RequireFromString(quantity),
		PercentageContribution: decimal.RequireFromString(percentage),
		Unit:                   "kg",
	}
}

func TestConfirmationService_AddUpdateRemove(t *testing.T) {
	svc, _, _ := newTestService(t)

	id := svc.AddMaterial()
	if id == "" {
		t.Fatal("Expected a minted material ID")
	}
	if len(svc.Materials()) != 1 {
		t.Fatalf("Expected 1 material, got %d", len(svc.Materials()))
	}

	// A fresh draft material fails field validation until filled in.
	if svc.Validation().IsValid {
		t.Error("Expected empty draft material to make the composition invalid")
	}

	if err := svc.UpdateMaterial(id, filledMaterial("PO-001", "Cocoa Mass", "Tropic Trading", "1000", "100")); err != nil {
		t.Fatalf("UpdateMaterial failed: %v", err)
	}
	if !svc.Validation().IsValid {
		t.Errorf("Expected filled composition to validate, got %v", svc.Validation().Errors)
	}

	got := svc.Materials()[0]
	if got.ID != id {
		t.Errorf("Expected update to preserve material ID %s, got %s", id, got.ID)
	}

	if err := svc.RemoveMaterial(id); err != nil {
		t.Fatalf("RemoveMaterial failed: %v", err)
	}
	if len(svc.Materials()) != 0 {
		t.Errorf("Expected empty draft after removal, got %d", len(svc.Materials()))
	}

	if err := svc.UpdateMaterial(id, entities.InputMaterial{}); err == nil {
		t.Error("Expected update of removed material to fail")
	}
}

func TestConfirmationService_MaterialIDsAreUnique(t *testing.T) {
	svc, _, _ := newTestService(t)

	seen := make(map[entities.MaterialID]bool)
	for i := 0; i < 10; i++ {
		id := svc.AddMaterial()
		if seen[id] {
			t.Fatalf("Duplicate material ID minted: %s", id)
		}
		seen[id] = true
	}
}

func TestConfirmationService_BalanceOperations(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.ImportMaterials([]*entities.InputMaterial{
		{SourceOrderID: "PO-001", ProductName: "Cocoa Mass", SupplierName: "Tropic Trading",
			QuantityUsed: decimal.Zero, PercentageContribution: decimal.NewFromInt(60), Unit: "kg"},
		{SourceOrderID: "PO-002", ProductName: "Cane Sugar", SupplierName: "Sweetline",
			QuantityUsed: decimal.Zero, PercentageContribution: decimal.NewFromInt(30), Unit: "kg"},
	})

	if svc.Validation().IsValid {
		t.Error("Expected 90% draft to be invalid before balancing")
	}

	svc.AutoBalance()

	validation := svc.Validation()
	if !validation.IsValid {
		t.Errorf("Expected balanced draft to validate, got %v", validation.Errors)
	}
	if !validation.TotalPercentage.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected total percentage 100 after balancing, got %s", validation.TotalPercentage)
	}

	svc.CalculateQuantities()

	materials := svc.Materials()
	if !materials[0].QuantityUsed.Equal(decimal.RequireFromString("666.7")) {
		t.Errorf("Expected 666.7 for 66.67%% of 1000, got %s", materials[0].QuantityUsed)
	}

	summary := svc.Summary()
	if !summary.IsComplete {
		t.Error("Expected summary to report completeness after balancing")
	}
	if summary.UniqueSuppliers != 2 {
		t.Errorf("Expected 2 unique suppliers, got %d", summary.UniqueSuppliers)
	}
}

func TestConfirmationService_Confirm(t *testing.T) {
	svc, repo, store := newTestService(t)

	// Empty drafts cannot be confirmed.
	if _, err := svc.Confirm(); err == nil || !strings.Contains(err.Error(), "no materials") {
		t.Errorf("Expected empty-draft confirmation to fail, got %v", err)
	}

	svc.ImportMaterials([]*entities.InputMaterial{
		{SourceOrderID: "PO-001", ProductName: "Cocoa Mass", SupplierName: "Tropic Trading",
			QuantityUsed: decimal.NewFromInt(600), PercentageContribution: decimal.NewFromInt(60), Unit: "kg"},
		{SourceOrderID: "PO-002", ProductName: "Cane Sugar", SupplierName: "Sweetline",
			QuantityUsed: decimal.NewFromInt(400), PercentageContribution: decimal.NewFromInt(30), Unit: "kg"},
	})

	// 90% total blocks confirmation.
	if _, err := svc.Confirm(); err == nil || !strings.Contains(err.Error(), "not valid") {
		t.Errorf("Expected invalid draft confirmation to fail, got %v", err)
	}

	svc.AutoBalance()

	confirmed, err := svc.Confirm()
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if confirmed.OutputOrderID != "PO-4711" {
		t.Errorf("Expected output order PO-4711, got %s", confirmed.OutputOrderID)
	}
	if len(confirmed.Materials) != 2 {
		t.Errorf("Expected 2 confirmed materials, got %d", len(confirmed.Materials))
	}

	stored, err := repo.GetByID(confirmed.ID)
	if err != nil {
		t.Fatalf("Expected confirmed composition in repository: %v", err)
	}
	if stored.OutputOrderID != "PO-4711" {
		t.Errorf("Expected stored output order PO-4711, got %s", stored.OutputOrderID)
	}

	recorded := store.Read("PO-4711")
	last := recorded[len(recorded)-1]
	if last.Type != events.CompositionConfirmedEvent {
		t.Errorf("Expected final event %s, got %s", events.CompositionConfirmedEvent, last.Type)
	}
}

func TestConfirmationService_RecordsEvents(t *testing.T) {
	svc, _, store := newTestService(t)

	id := svc.AddMaterial()
	_ = svc.UpdateMaterial(id, filledMaterial("PO-001", "Cocoa Mass", "Tropic Trading", "1000", "100"))
	_ = svc.RemoveMaterial(id)

	types := make([]string, 0, 3)
	for _, e := range store.Read("PO-4711") {
		types = append(types, e.Type)
	}

	expected := []string{events.MaterialAddedEvent, events.MaterialUpdatedEvent, events.MaterialRemovedEvent}
	if len(types) != len(expected) {
		t.Fatalf("Expected %d events, got %d: %v", len(expected), len(types), types)
	}
	for i, want := range expected {
		if types[i] != want {
			t.Errorf("Event %d: expected %s, got %s", i, want, types[i])
		}
	}
}

func TestConfirmationService_NoOpBalanceRecordsNothing(t *testing.T) {
	repo := memory.NewCompositionRepository()
	store := events.NewInMemoryEventStore()
	svc := NewConfirmationService("PO-4711", decimal.Zero, "kg", composition.NewValidator(), repo, store)

	svc.ImportMaterials([]*entities.InputMaterial{
		{SourceOrderID: "PO-001", ProductName: "Cocoa Mass", SupplierName: "Tropic Trading",
			QuantityUsed: decimal.Zero, PercentageContribution: decimal.NewFromInt(100), Unit: "kg"},
	})
	before := len(store.Read("PO-4711"))

	// Zero target makes quantity derivation a documented no-op.
	svc.CalculateQuantities()

	if got := len(store.Read("PO-4711")); got != before {
		t.Errorf("Expected no rebalance event for a no-op, got %d new events", got-before)
	}
}
