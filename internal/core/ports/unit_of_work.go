package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one serialized write transaction across all repositories.
// Begin blocks until no other unit of work holds the store for writing.
type UnitOfWork interface {
	// Begin waits for the writer slot, then starts a transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and releases the writer slot.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and releases the writer slot.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	MenuRepository() MenuRepository
	OrderRepository() OrderRepository
	ConversationRepository() ConversationRepository
}
