package queries

import (
	"context"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/ports"
)

// GetDishQueryHandler retrieves a single dish from the store.
// A missing identifier surfaces as an ObjectNotFoundError naming the id.
type GetDishQueryHandler struct {
	dishes ports.DishRepository
}

// NewGetDishQueryHandler creates a handler for dish lookup queries.
func NewGetDishQueryHandler(dishes ports.DishRepository) GetDishQueryHandler {
	return GetDishQueryHandler{dishes: dishes}
}

// Handle executes the lookup and returns the located dish.
func (h GetDishQueryHandler) Handle(ctx context.Context, query GetDishQuery) (*dish.Dish, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.dishes.Get(ctx, query.DishID())
}
