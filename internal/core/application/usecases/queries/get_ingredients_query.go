// Package queries contains read operations. Handlers read straight from the
// database and return flat read models.
package queries

import (
	"errors"

	"burger/internal/core/domain/model/catalog"
	"burger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetIngredientsQueryIsNotConstructed = errors.New(
	"GetIngredientsQuery must be created via NewGetIngredientsQuery constructor",
)

// GetIngredientsQuery lists the cached catalog, optionally for one category.
//
// Example:
//
//	query, err := NewGetIngredientsQuery(catalog.Base)
//	if err != nil {
//	    return err
//	}
//	buns, err := handler.Handle(ctx, query)
type GetIngredientsQuery struct {
	category catalog.Category

	guard guard.ConstructorGuard
}

// NewGetIngredientsQuery builds the query. catalog.Unknown selects every category.
func NewGetIngredientsQuery(category catalog.Category) (GetIngredientsQuery, error) {
	if category != catalog.Unknown {
		if err := category.Validate(); err != nil {
			return GetIngredientsQuery{}, err
		}
	}
	return GetIngredientsQuery{category: category, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetIngredientsQuery) Validate() error {
	return q.guard.Validate(ErrGetIngredientsQueryIsNotConstructed)
}

// Category returns the requested category, catalog.Unknown for all.
func (q GetIngredientsQuery) Category() catalog.Category {
	return q.category
}

// GetIngredientsQueryResponse is one ingredient in the read model. Type holds
// the wire name: "bun", "main" or "sauce".
type GetIngredientsQueryResponse struct {
	ID            string
	Name          string
	Type          string
	Price         decimal.Decimal
	Calories      float64
	Proteins      float64
	Fat           float64
	Carbohydrates float64
	Image         string
	ImageMobile   string
	ImageLarge    string
}
