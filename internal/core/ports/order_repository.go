package ports

import (
	"context"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/core/domain/model/order"
)

// OrderRepository defines the store contract for order aggregates.
// It mirrors DishRepository and additionally supports removal, since orders
// are the only deletable resource.
type OrderRepository interface {
	// Add appends a new order to the store.
	// The order must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order that shares the aggregate's identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by exact identifier equality.
	// Returns ObjectNotFoundError naming the missing id when absent.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns the full collection in insertion order.
	List(ctx context.Context) ([]*order.Order, error)

	// Remove deletes the order with the given identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Remove(ctx context.Context, id kernel.ID) error
}
