package assembly

import (
	"errors"
	"slices"

	"burger/internal/core/domain/model/catalog"
	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

var (
	// ErrAssemblyIsNotConstructed is returned for an Assembly that bypassed NewAssembly.
	ErrAssemblyIsNotConstructed = errors.New("Assembly must be created via NewAssembly constructor")
	// ErrBaseIsRequired is returned when an order request is built without a base.
	ErrBaseIsRequired = errs.NewValueIsRequiredError("base")
)

// baseUnits is how many times the base is charged and counted: top and bottom.
const baseUnits = 2

// Option customizes an Assembly at construction.
type Option func(*Assembly)

// WithInstanceIDs replaces the instance id generator. Ids that were already
// issued by this assembly, or are invalid, are discarded and drawn again.
func WithInstanceIDs(next func() kernel.UUID) Option {
	return func(a *Assembly) {
		a.nextID = next
	}
}

// Assembly is the aggregate holding the current selection.
//
// Price, counters and the order request are computed from the current
// selection on every call and never cached, so a reader cannot observe a
// selection and a total that disagree.
type Assembly struct {
	base     *SelectedPart
	fillings []SelectedPart
	nextID   func() kernel.UUID
	// issued remembers every instance id handed out, including removed ones
	issued map[kernel.UUID]struct{}

	guard guard.ConstructorGuard
}

// NewAssembly returns an empty assembly: no base, no fillings.
func NewAssembly(opts ...Option) *Assembly {
	a := &Assembly{
		fillings: make([]SelectedPart, 0),
		nextID:   kernel.NewUUID,
		issued:   make(map[kernel.UUID]struct{}),
		guard:    guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Validate ensures the assembly was built by NewAssembly.
func (a *Assembly) Validate() error {
	if a == nil {
		return ErrAssemblyIsNotConstructed
	}
	return a.guard.Validate(ErrAssemblyIsNotConstructed)
}

// AddPart places a part and returns the new placement.
//
// A Base part replaces the current base without confirmation; any other part
// is appended to the end of the fillings. Each call mints a fresh instance id.
//
// Example:
//
//	bun, _ := a.AddPart(craterBun)
//	cutlet, _ := a.AddPart(cutletPart)
//	_ = a.RemovePart(cutlet.InstanceID())
func (a *Assembly) AddPart(part *catalog.Part) (SelectedPart, error) {
	if err := errors.Join(a.Validate(), part.Validate()); err != nil {
		return SelectedPart{}, err
	}

	selected := newSelectedPart(a.uniqueInstanceID(), part)
	if part.IsBase() {
		a.base = &selected
	} else {
		a.fillings = append(a.fillings, selected)
	}
	return selected, nil
}

// RemovePart removes the first filling with the given instance id and reports
// whether one was found. The base is never removed here.
func (a *Assembly) RemovePart(instanceID kernel.UUID) bool {
	idx := a.fillingIndex(instanceID)
	if idx < 0 {
		return false
	}
	a.fillings = slices.Delete(a.fillings, idx, idx+1)
	return true
}

// MoveFilling takes the filling at from out of the list and reinserts it at to.
// Equal indices leave the assembly untouched.
//
// Precondition: 0 <= from, to < FillingCount(). Callers must check the bounds;
// out-of-range indices panic like any slice access.
func (a *Assembly) MoveFilling(from, to int) {
	if from == to {
		return
	}

	moved := a.fillings[from]
	a.fillings = slices.Delete(a.fillings, from, from+1)
	a.fillings = slices.Insert(a.fillings, to, moved)
}

// Clear empties the assembly.
func (a *Assembly) Clear() {
	a.base = nil
	a.fillings = make([]SelectedPart, 0)
}

// Base returns the current base, if any.
func (a *Assembly) Base() (SelectedPart, bool) {
	if a.base == nil {
		return SelectedPart{}, false
	}
	return *a.base, true
}

// Fillings returns a copy of the fillings in order.
func (a *Assembly) Fillings() []SelectedPart {
	fillings := make([]SelectedPart, len(a.fillings))
	copy(fillings, a.fillings)
	return fillings
}

// FillingCount is the number of fillings, the exclusive upper bound for MoveFilling.
func (a *Assembly) FillingCount() int {
	return len(a.fillings)
}

// IsEmpty reports whether there is neither a base nor a filling.
func (a *Assembly) IsEmpty() bool {
	return a.base == nil && len(a.fillings) == 0
}

// Price returns 2 × base price + the sum of filling prices.
func (a *Assembly) Price() kernel.Money {
	total := kernel.Zero()
	if a.base != nil {
		total = total.Add(a.base.Price().Times(baseUnits))
	}
	for _, f := range a.fillings {
		total = total.Add(f.Price())
	}
	return total
}

// Counters returns how many units of each catalog id are placed. Every filling
// counts once per occurrence; the base counts twice.
func (a *Assembly) Counters() map[string]int {
	counters := make(map[string]int, len(a.fillings)+1)
	for _, f := range a.fillings {
		counters[f.CatalogID()]++
	}
	if a.base != nil {
		counters[a.base.CatalogID()] = baseUnits
	}
	return counters
}

// OrderRequest builds [base, fillings..., base]. It fails with ErrBaseIsRequired
// when no base is selected.
func (a *Assembly) OrderRequest() (OrderRequest, error) {
	if a.base == nil {
		return OrderRequest{}, ErrBaseIsRequired
	}

	ids := make([]string, 0, len(a.fillings)+baseUnits)
	ids = append(ids, a.base.CatalogID())
	for _, f := range a.fillings {
		ids = append(ids, f.CatalogID())
	}
	ids = append(ids, a.base.CatalogID())

	return OrderRequest{ingredientIDs: ids}, nil
}

func (a *Assembly) fillingIndex(instanceID kernel.UUID) int {
	for i, f := range a.fillings {
		if f.instanceID.IsEqual(instanceID) {
			return i
		}
	}
	return -1
}

func (a *Assembly) uniqueInstanceID() kernel.UUID {
	for {
		id := a.nextID()
		if id.Validate() != nil {
			continue
		}
		if _, seen := a.issued[id]; seen {
			continue
		}
		a.issued[id] = struct{}{}
		return id
	}
}
