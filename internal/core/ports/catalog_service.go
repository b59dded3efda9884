package ports

import (
	"context"
	"errors"
	"fmt"

	"burger/internal/core/domain/model/catalog"
)

// ErrCatalogFetch matches every CatalogFetchError via errors.Is.
var ErrCatalogFetch = errors.New("catalog fetch failed")

// CatalogService reads the ingredient catalog from the remote backend.
type CatalogService interface {
	// FetchParts returns the full catalog. Failures are *CatalogFetchError.
	FetchParts(ctx context.Context) ([]*catalog.Part, error)
}

// CatalogFetchError reports a network or server failure while fetching the catalog.
type CatalogFetchError struct {
	Cause error
}

func NewCatalogFetchError(cause error) *CatalogFetchError {
	return &CatalogFetchError{Cause: cause}
}

func (e *CatalogFetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", ErrCatalogFetch, e.Cause)
	}
	return ErrCatalogFetch.Error()
}

func (e *CatalogFetchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCatalogFetch}
	}
	return []error{ErrCatalogFetch, e.Cause}
}
