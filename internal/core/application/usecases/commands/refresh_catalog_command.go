package commands

import (
	"errors"

	"burger/internal/pkg/guard"
)

var ErrRefreshCatalogCommandIsNotConstructed = errors.New(
	"RefreshCatalogCommand must be created via NewRefreshCatalogCommand constructor",
)

// RefreshCatalogCommand asks for the cached catalog to be replaced with a
// fresh copy from the catalog service.
type RefreshCatalogCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshCatalogCommand() RefreshCatalogCommand {
	return RefreshCatalogCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c RefreshCatalogCommand) Validate() error {
	return c.guard.Validate(ErrRefreshCatalogCommandIsNotConstructed)
}
