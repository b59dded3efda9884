package commands

import (
	"context"

	"burger/internal/core/ports"
)

// RefreshCatalogCommandHandler fetches the catalog and stores it.
//
// Example:
//
//	handler := NewRefreshCatalogCommandHandler(uowFactory, burgerAPI)
//	count, err := handler.Handle(ctx, NewRefreshCatalogCommand())
//	if err != nil {
//	    return fmt.Errorf("catalog refresh failed: %w", err)
//	}
type RefreshCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
	service    ports.CatalogService
}

func NewRefreshCatalogCommandHandler(
	uowFactory CatalogUoWFactory,
	service ports.CatalogService,
) RefreshCatalogCommandHandler {
	return RefreshCatalogCommandHandler{
		uowFactory: uowFactory,
		service:    service,
	}
}

// Handle returns the number of parts stored. A failed fetch returns the
// service error and leaves the stored catalog as it was.
func (h *RefreshCatalogCommandHandler) Handle(ctx context.Context, cmd RefreshCatalogCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	parts, err := h.service.FetchParts(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartRepository().ReplaceAll(ctx, parts); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(parts), nil
}
