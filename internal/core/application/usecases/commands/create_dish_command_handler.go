package commands

import (
	"context"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/domain/model/kernel"
)

// CreateDishCommandHandler handles the business logic for adding a dish.
// Generates a fresh identifier and appends the dish to the store.
type CreateDishCommandHandler struct {
	dishes DishStore
}

// NewCreateDishCommandHandler creates a handler for dish creation.
func NewCreateDishCommandHandler(dishes DishStore) CreateDishCommandHandler {
	return CreateDishCommandHandler{dishes: dishes}
}

// Handle processes the dish creation command and returns the stored dish
// with its server-assigned identifier.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := dish.New(kernel.NewID(), cmd.Payload())
	if err != nil {
		return nil, err
	}

	if err = h.dishes.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
