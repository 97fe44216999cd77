// Package commands contains the operations that modify the menu, orders and
// conversations. Every handler validates its command, opens one unit of work,
// and commits or rolls back as a whole.
package commands

import (
	"context"

	"buttery/internal/core/ports"
)

// Unit of Work interfaces give command handlers a serialized transaction
// over exactly the repositories they need.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ConversationRepoFactory interface {
		ConversationRepository() ports.ConversationRepository
	}

	// MenuUoW is used by stock administration and catalog seeding.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// OrderUoW is used by the admin status workflow.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans menu, orders and conversations. The ordering flow needs all
	// three: a reservation, the order line it pays for and the next step of
	// the conversation commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   item, err := uow.MenuRepository().Get(ctx, itemID)
	//   err = item.Reserve(qty)
	//   // ... write the line, move the conversation
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MenuRepoFactory
		OrderRepoFactory
		ConversationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
