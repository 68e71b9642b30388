package queries

import (
	"context"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/ports"
)

// ListDishesQueryHandler retrieves the full dish collection from the store.
type ListDishesQueryHandler struct {
	dishes ports.DishRepository
}

// NewListDishesQueryHandler creates a handler for menu listing queries.
func NewListDishesQueryHandler(dishes ports.DishRepository) ListDishesQueryHandler {
	return ListDishesQueryHandler{dishes: dishes}
}

// Handle executes the query and returns every dish in insertion order.
func (h ListDishesQueryHandler) Handle(ctx context.Context, query ListDishesQuery) ([]*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.dishes.List(ctx)
}
