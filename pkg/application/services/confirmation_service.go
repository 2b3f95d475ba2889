package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ecotrace/composition/pkg/application/dto"
	"github.com/ecotrace/composition/pkg/domain/entities"
	"github.com/ecotrace/composition/pkg/domain/repositories"
	"github.com/ecotrace/composition/pkg/domain/services/composition"
	"github.com/ecotrace/composition/pkg/infrastructure/events"
)

// ConfirmationService owns the draft material list during an order
// confirmation session. Every mutation round-trips through composition
// validation; balancer operations run only on explicit request. The engine
// itself stays pure — all state lives here.
type ConfirmationService struct {
	validator *composition.Validator
	repo      repositories.CompositionRepository
	store     *events.InMemoryEventStore

	outputOrderID  string
	targetQuantity decimal.Decimal
	unit           string
	materials      []entities.InputMaterial
	validation     entities.CompositionValidation
}

// NewConfirmationService starts a confirmation session for an output order
func NewConfirmationService(
	outputOrderID string,
	targetQuantity decimal.Decimal,
	unit string,
	validator *composition.Validator,
	repo repositories.CompositionRepository,
	store *events.InMemoryEventStore,
) *ConfirmationService {
	s := &ConfirmationService{
		validator:      validator,
		repo:           repo,
		store:          store,
		outputOrderID:  outputOrderID,
		targetQuantity: targetQuantity,
		unit:           unit,
	}
	s.revalidate()
	return s
}

// AddMaterial appends an empty draft material and returns its ID. IDs are
// minted once and never reused, even after removal.
func (s *ConfirmationService) AddMaterial() entities.MaterialID {
	material := entities.InputMaterial{
		ID:                     entities.MaterialID(uuid.NewString()),
		Unit:                   s.unit,
		QuantityUsed:           decimal.Zero,
		PercentageContribution: decimal.Zero,
	}
	s.materials = append(s.materials, material)
	s.record(events.MaterialAddedEvent, events.MaterialAdded{Material: material})
	s.revalidate()
	return material.ID
}

// ImportMaterials appends pre-filled declarations (for example from a CSV
// file), assigning a fresh ID to each.
func (s *ConfirmationService) ImportMaterials(materials []*entities.InputMaterial) {
	for _, m := range materials {
		material := *m
		material.ID = entities.MaterialID(uuid.NewString())
		s.materials = append(s.materials, material)
		s.record(events.MaterialAddedEvent, events.MaterialAdded{Material: material})
	}
	s.revalidate()
}

// UpdateMaterial replaces the fields of an existing material. The stored ID
// is preserved regardless of what the update carries.
func (s *ConfirmationService) UpdateMaterial(id entities.MaterialID, updated entities.InputMaterial) error {
	for i := range s.materials {
		if s.materials[i].ID != id {
			continue
		}
		old := s.materials[i]
		updated.ID = id
		s.materials[i] = updated
		s.record(events.MaterialUpdatedEvent, events.MaterialUpdated{OldMaterial: old, NewMaterial: updated})
		s.revalidate()
		return nil
	}
	return fmt.Errorf("material not found: %s", id)
}

// RemoveMaterial deletes a material from the draft by ID
func (s *ConfirmationService) RemoveMaterial(id entities.MaterialID) error {
	for i := range s.materials {
		if s.materials[i].ID != id {
			continue
		}
		removed := s.materials[i]
		s.materials = append(s.materials[:i], s.materials[i+1:]...)
		s.record(events.MaterialRemovedEvent, events.MaterialRemoved{Material: removed})
		s.revalidate()
		return nil
	}
	return fmt.Errorf("material not found: %s", id)
}

// AutoBalance rescales all percentage contributions to sum to exactly 100
func (s *ConfirmationService) AutoBalance() {
	s.applyBalance("auto_balance", composition.AutoBalanceComposition(s.materials))
}

// CalculateQuantities derives quantities from percentages against the
// target quantity. A non-positive target leaves the draft untouched.
func (s *ConfirmationService) CalculateQuantities() {
	s.applyBalance("calculate_quantities", composition.CalculateSuggestedQuantities(s.materials, s.targetQuantity))
}

// CalculatePercentages derives percentages from recorded quantities. An
// all-zero quantity list leaves the draft untouched.
func (s *ConfirmationService) CalculatePercentages() {
	s.applyBalance("calculate_percentages", composition.CalculateSuggestedPercentages(s.materials))
}

func (s *ConfirmationService) applyBalance(operation string, balanced []entities.InputMaterial) {
	// The balancers return their input unchanged on degenerate drafts;
	// nothing happened, so nothing is recorded.
	if len(balanced) == 0 || &balanced[0] == &s.materials[0] {
		return
	}
	s.materials = balanced
	s.record(events.CompositionRebalancedEvent, events.CompositionRebalanced{
		Operation: operation,
		Materials: s.Materials(),
	})
	s.revalidate()
}

// Materials returns a copy of the current draft list
func (s *ConfirmationService) Materials() []entities.InputMaterial {
	materials := make([]entities.InputMaterial, len(s.materials))
	copy(materials, s.materials)
	return materials
}

// Validation returns the validation state of the current draft
func (s *ConfirmationService) Validation() entities.CompositionValidation {
	return s.validation
}

// Summary returns display statistics for the current draft
func (s *ConfirmationService) Summary() entities.CompositionSummary {
	return composition.GetCompositionSummary(s.materials)
}

// Result packages the current draft for output generation
func (s *ConfirmationService) Result() *dto.ConfirmationResult {
	return &dto.ConfirmationResult{
		OutputOrderID:  s.outputOrderID,
		TargetQuantity: s.targetQuantity,
		Unit:           s.unit,
		Materials:      s.Materials(),
		Validation:     s.validation,
		Summary:        s.Summary(),
	}
}

// Confirm validates the draft a final time and persists it as a confirmed
// composition. An empty draft cannot be confirmed: emptiness is a
// submission-level rule, not an engine error.
func (s *ConfirmationService) Confirm() (*entities.Composition, error) {
	if len(s.materials) == 0 {
		return nil, fmt.Errorf("cannot confirm a composition with no materials")
	}
	if !s.validation.IsValid {
		return nil, fmt.Errorf("composition is not valid: %s", strings.Join(s.validation.Errors, "; "))
	}

	confirmed, err := entities.NewComposition(
		entities.CompositionID(uuid.NewString()),
		s.outputOrderID,
		s.targetQuantity,
		s.unit,
		s.Materials(),
		time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build composition: %w", err)
	}

	if err := s.repo.Save(confirmed); err != nil {
		return nil, fmt.Errorf("failed to save composition: %w", err)
	}

	s.record(events.CompositionConfirmedEvent, events.CompositionConfirmed{Composition: *confirmed})
	return confirmed, nil
}

func (s *ConfirmationService) revalidate() {
	s.validation = s.validator.ValidateComposition(s.materials, s.targetQuantity)
}

func (s *ConfirmationService) record(eventType string, data any) {
	if s.store == nil {
		return
	}
	s.store.Append(s.outputOrderID, eventType, data)
}
