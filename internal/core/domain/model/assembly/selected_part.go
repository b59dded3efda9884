package assembly

import (
	"errors"

	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/guard"
)

// ErrSelectedPartIsNotConstructed is returned for a SelectedPart that did not come from an Assembly.
var ErrSelectedPartIsNotConstructed = errors.New("SelectedPart must be created via Assembly.AddPart")

// SelectedPart is a catalog part placed into an assembly. Two placements of the
// same catalog part are different SelectedParts with different instance ids.
type SelectedPart struct {
	instanceID kernel.UUID
	part       *catalog.Part

	guard guard.ConstructorGuard
}

func newSelectedPart(instanceID kernel.UUID, part *catalog.Part) SelectedPart {
	return SelectedPart{
		instanceID: instanceID,
		part:       part,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the value was produced by Assembly.AddPart.
func (s SelectedPart) Validate() error {
	return s.guard.Validate(ErrSelectedPartIsNotConstructed)
}

// InstanceID identifies this placement for removal and reordering.
func (s SelectedPart) InstanceID() kernel.UUID {
	return s.instanceID
}

// Part returns the shared, immutable catalog part.
func (s SelectedPart) Part() *catalog.Part {
	return s.part
}

// CatalogID is shorthand for Part().ID().
func (s SelectedPart) CatalogID() string {
	return s.part.ID()
}

// Price is shorthand for Part().Price().
func (s SelectedPart) Price() kernel.Money {
	return s.part.Price()
}
