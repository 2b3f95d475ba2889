package repositories

import "github.com/ecotrace/composition/pkg/domain/entities"

// CompositionRepository provides access to confirmed compositions
type CompositionRepository interface {
	Save(composition *entities.Composition) error
	GetByID(id entities.CompositionID) (*entities.Composition, error)

	// GetByOutputOrder returns all compositions confirmed against the
	// given output purchase order, in confirmation order.
	GetByOutputOrder(outputOrderID string) ([]*entities.Composition, error)

	GetAll() ([]*entities.Composition, error)
}
