// Package ports defines the contracts between the order core and its adapters.
package ports

import (
	"context"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	// Add inserts a new item and assigns the generated ID to it.
	Add(ctx context.Context, item *menu.Item) error

	// Update stores name, stock and price of an existing item.
	Update(ctx context.Context, item *menu.Item) error

	// Get returns the item or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*menu.Item, error)

	// GetByName returns the item or an errs.ObjectNotFoundError.
	GetByName(ctx context.Context, name string) (*menu.Item, error)

	// GetAll returns the whole menu in id order.
	GetAll(ctx context.Context) ([]*menu.Item, error)
}
