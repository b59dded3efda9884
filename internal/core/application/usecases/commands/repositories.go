// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work and commits only
// when all steps succeed.
package commands

import (
	"context"

	"burger/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PartRepoFactory provides access to the part repository within a transaction.
	PartRepoFactory interface {
		PartRepository() ports.PartRepository
	}

	// CatalogUoW manages transactions for catalog operations.
	CatalogUoW interface {
		TxManager
		PartRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
