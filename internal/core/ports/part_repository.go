// Package ports defines the contracts between the burger constructor core and
// its infrastructure: catalog persistence, the remote burger API and the
// session/auth gate.
package ports

import (
	"context"

	"burger/internal/core/domain/model/catalog"
)

// PartRepository is the persistence contract for the cached ingredient catalog.
type PartRepository interface {
	// ReplaceAll swaps the stored catalog for parts. Parts absent from the new
	// set are removed.
	ReplaceAll(ctx context.Context, parts []*catalog.Part) error

	// Get returns a part by catalog id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*catalog.Part, error)

	// List returns the stored parts ordered by catalog id. catalog.Unknown
	// means no category filter.
	List(ctx context.Context, category catalog.Category) ([]*catalog.Part, error)
}
