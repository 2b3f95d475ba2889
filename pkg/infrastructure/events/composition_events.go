package events

import (
	"github.com/ecotrace/composition/pkg/domain/entities"
)

const (
	MaterialAddedEvent   = "material.added"
	MaterialUpdatedEvent = "material.updated"
	MaterialRemovedEvent = "material.removed"

	CompositionRebalancedEvent = "composition.rebalanced"
	CompositionConfirmedEvent  = "composition.confirmed"
)

type MaterialAdded struct {
	Material entities.InputMaterial `json:"material"`
}

type MaterialUpdated struct {
	OldMaterial entities.InputMaterial `json:"old_material"`
	NewMaterial entities.InputMaterial `json:"new_material"`
}

type MaterialRemoved struct {
	Material entities.InputMaterial `json:"material"`
}

// CompositionRebalanced records a balancer pass over the whole material
// list. Operation is one of "auto_balance", "calculate_quantities" or
// "calculate_percentages".
type CompositionRebalanced struct {
	Operation string                   `json:"operation"`
	Materials []entities.InputMaterial `json:"materials"`
}

type CompositionConfirmed struct {
	Composition entities.Composition `json:"composition"`
}
