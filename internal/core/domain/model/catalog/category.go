package catalog

import (
	"fmt"

	"burger/internal/pkg/errs"
)

// Category classifies a part. Only Base parts occupy the assembly's base slot;
// every other category is a filling.
type Category int

const (
	// Unknown is the zero value and never valid.
	Unknown Category = iota

	// Base is the bun, charged twice (top and bottom halves).
	Base

	// FillingSolid is a main filling such as a cutlet.
	FillingSolid

	// FillingLiquid is a sauce.
	FillingLiquid
)

var categoryNames = map[Category]string{
	Base:          "Base",
	FillingSolid:  "FillingSolid",
	FillingLiquid: "FillingLiquid",
}

// wire names used by the catalog service
var categoryWireNames = map[Category]string{
	Base:          "bun",
	FillingSolid:  "main",
	FillingLiquid: "sauce",
}

// ParseCategory maps a catalog wire name ("bun", "main", "sauce") to a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryWireNames {
		if name == s {
			return c, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a known ingredient type", s),
	)
}

// Validate rejects Unknown and out-of-range values.
func (c Category) Validate() error {
	if _, ok := categoryNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// IsBase reports whether parts of this category replace the assembly base.
func (c Category) IsBase() bool {
	return c == Base
}

// WireName returns the catalog service name, or "" for invalid values.
func (c Category) WireName() string {
	return categoryWireNames[c]
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}
