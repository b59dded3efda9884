package catalog

import (
	"errors"
	"fmt"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

var (
	// ErrPartIsNotConstructed is returned for a Part that bypassed NewPart.
	ErrPartIsNotConstructed = errors.New("Part must be created via NewPart constructor")
	// ErrCatalogIDIsRequired is returned for an empty catalog identifier.
	ErrCatalogIDIsRequired = errs.NewValueIsRequiredError("catalog id")
	// ErrNameIsRequired is returned for an empty part name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Nutrition is the per-part nutrition facts shown next to an ingredient.
type Nutrition struct {
	Calories      float64
	Proteins      float64
	Fat           float64
	Carbohydrates float64
}

// Validate rejects negative values.
func (n Nutrition) Validate() error {
	for name, v := range map[string]float64{
		"calories":      n.Calories,
		"proteins":      n.Proteins,
		"fat":           n.Fat,
		"carbohydrates": n.Carbohydrates,
	} {
		if v < 0 {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is less than 0", v))
		}
	}
	return nil
}

// Images holds optional presentation URLs; any of them may be empty.
type Images struct {
	Regular string
	Mobile  string
	Large   string
}

// Part is one catalog ingredient. It is immutable once constructed.
//
// Invariants:
//   - catalog id and name are not empty
//   - category is one of Base, FillingSolid, FillingLiquid
//   - price and nutrition values are not negative (Money guarantees the price)
type Part struct {
	id        string
	name      string
	category  Category
	price     kernel.Money
	nutrition Nutrition
	images    Images

	guard guard.ConstructorGuard
}

// NewPart validates every attribute and returns all violations joined.
//
// Example:
//
//	price, _ := kernel.MoneyFromInt(1255)
//	bun, err := catalog.NewPart("643d69a5c3f7b9001cfa093c", "Краторная булка N-200i",
//	    catalog.Base, price, catalog.Nutrition{Calories: 420}, catalog.Images{})
func NewPart(
	id string,
	name string,
	category Category,
	price kernel.Money,
	nutrition Nutrition,
	images Images,
) (*Part, error) {
	part := &Part{
		price:  price,
		images: images,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		part.setID(id),
		part.setName(name),
		part.setCategory(category),
		part.setNutrition(nutrition),
	); err != nil {
		return nil, err
	}

	return part, nil
}

// Validate ensures the part was built by NewPart. A nil part is invalid.
func (p *Part) Validate() error {
	if p == nil {
		return ErrPartIsNotConstructed
	}
	return p.guard.Validate(ErrPartIsNotConstructed)
}

// ID returns the catalog identifier sent in order requests.
func (p *Part) ID() string {
	return p.id
}

func (p *Part) Name() string {
	return p.name
}

func (p *Part) Category() Category {
	return p.category
}

// Price returns the unit price; a base is charged twice by the assembly.
func (p *Part) Price() kernel.Money {
	return p.price
}

func (p *Part) Nutrition() Nutrition {
	return p.nutrition
}

func (p *Part) Images() Images {
	return p.images
}

// IsBase reports whether the part goes into the base slot.
func (p *Part) IsBase() bool {
	return p.category.IsBase()
}

func (p *Part) setID(id string) error {
	if id == "" {
		return ErrCatalogIDIsRequired
	}
	p.id = id
	return nil
}

func (p *Part) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Part) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Part) setNutrition(nutrition Nutrition) error {
	if err := nutrition.Validate(); err != nil {
		return err
	}
	p.nutrition = nutrition
	return nil
}

// Filter returns the parts of one category in their original order.
// The presentation uses it to list buns, mains and sauces separately.
func Filter(parts []*Part, category Category) []*Part {
	filtered := make([]*Part, 0, len(parts))
	for _, p := range parts {
		if p != nil && p.category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
