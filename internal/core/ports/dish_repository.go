// Package ports defines the storage contracts the application core depends
// on. Adapters supply concrete stores; the in-memory implementation lives in
// internal/adapters/out/memstore.
package ports

import (
	"context"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/domain/model/kernel"
)

// DishRepository defines the store contract for dish aggregates.
// The store is an ordered collection, unique by identifier, and exclusively
// owns the entities it holds.
type DishRepository interface {
	// Add appends a new dish to the store.
	// The dish must be valid and its identifier must not already exist.
	Add(ctx context.Context, aggregate *dish.Dish) error

	// Update replaces the stored dish that shares the aggregate's identifier.
	// Returns ObjectNotFoundError if no such dish exists.
	Update(ctx context.Context, aggregate *dish.Dish) error

	// Get retrieves a dish by exact identifier equality.
	// Returns ObjectNotFoundError naming the missing id when absent.
	Get(ctx context.Context, id kernel.ID) (*dish.Dish, error)

	// List returns the full collection in insertion order.
	List(ctx context.Context) ([]*dish.Dish, error)
}
