package ports

import (
	"context"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// lines included.
type OrderRepository interface {
	// Add inserts a new order with its lines and assigns the generated ID to it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the status and replaces the stored lines with the aggregate's lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Delete removes the order; its lines go with it.
	Delete(ctx context.Context, id kernel.ID) error

	// GetAllByCustomer returns every order of a customer in id order.
	GetAllByCustomer(ctx context.Context, customerName string) ([]*order.Order, error)

	// GetAllInStatus returns every order in the given status in id order.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
