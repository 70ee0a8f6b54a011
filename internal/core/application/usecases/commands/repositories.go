// Package commands contains business operations that change pipeline state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every command is validated locally before the order service is called, and
// a rejected command never reaches it.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Only the local document archive is transactional; order service calls are not.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DocumentRepoFactory provides access to the document archive within a transaction.
	DocumentRepoFactory interface {
		DocumentRepository() ports.DocumentRepository
	}

	// DocumentUoW manages transactions for archive writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.DocumentRepository().Add(ctx, record)
	//
	//   err = uow.Commit(ctx)
	DocumentUoW interface {
		TxManager
		DocumentRepoFactory
	}

	// DocumentUoWFactory creates new document unit of work instances.
	DocumentUoWFactory interface {
		Create() DocumentUoW
	}
)
