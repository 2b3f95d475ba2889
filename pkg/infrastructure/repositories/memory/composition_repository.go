package memory

import (
	"fmt"

	"github.com/ecotrace/composition/pkg/domain/entities"
	"github.com/ecotrace/composition/pkg/domain/repositories"
)

// CompositionRepository provides in-memory storage for confirmed compositions
type CompositionRepository struct {
	byID  map[entities.CompositionID]*entities.Composition
	order []entities.CompositionID
}

// NewCompositionRepository creates a new in-memory composition repository
func NewCompositionRepository() *CompositionRepository {
	return &CompositionRepository{
		byID: make(map[entities.CompositionID]*entities.Composition),
	}
}

// Verify interface compliance
var _ repositories.CompositionRepository = (*CompositionRepository)(nil)

// Save stores a confirmed composition
func (r *CompositionRepository) Save(composition *entities.Composition) error {
	if composition == nil {
		return fmt.Errorf("composition cannot be nil")
	}
	if _, exists := r.byID[composition.ID]; !exists {
		r.order = append(r.order, composition.ID)
	}
	r.byID[composition.ID] = composition
	return nil
}

// GetByID returns the composition with the given ID
func (r *CompositionRepository) GetByID(id entities.CompositionID) (*entities.Composition, error) {
	composition, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("composition not found: %s", id)
	}
	return composition, nil
}

// GetByOutputOrder returns all compositions confirmed against an output order
func (r *CompositionRepository) GetByOutputOrder(outputOrderID string) ([]*entities.Composition, error) {
	var compositions []*entities.Composition
	for _, id := range r.order {
		if c := r.byID[id]; c.OutputOrderID == outputOrderID {
			compositions = append(compositions, c)
		}
	}
	return compositions, nil
}

// GetAll returns all stored compositions in confirmation order
func (r *CompositionRepository) GetAll() ([]*entities.Composition, error) {
	compositions := make([]*entities.Composition, 0, len(r.order))
	for _, id := range r.order {
		compositions = append(compositions, r.byID[id])
	}
	return compositions, nil
}
