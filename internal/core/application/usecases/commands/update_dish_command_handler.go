package commands

import (
	"context"
	"fmt"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/pkg/errs"
)

// UpdateDishCommandHandler handles the business logic for updating a dish.
//
// The pipeline stages run in this fixed order: existence lookup, field
// validation, body-id/route-id match, then the overwrite. The first failing
// stage short-circuits and determines the reported error.
type UpdateDishCommandHandler struct {
	dishes DishStore
}

// NewUpdateDishCommandHandler creates a handler for dish updates.
func NewUpdateDishCommandHandler(dishes DishStore) UpdateDishCommandHandler {
	return UpdateDishCommandHandler{dishes: dishes}
}

// Handle processes the dish update command and returns the updated dish.
func (h UpdateDishCommandHandler) Handle(ctx context.Context, cmd UpdateDishCommand) (*dish.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.dishes.Get(ctx, cmd.DishID())
	if err != nil {
		return nil, err
	}

	if err = cmd.Payload().Validate(); err != nil {
		return nil, err
	}

	if bodyID := cmd.PayloadID(); bodyID != "" && bodyID != cmd.DishID().String() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("dish id %s does not match route id %s", bodyID, cmd.DishID()),
		)
	}

	// Change a copy: the stored aggregate may be read by concurrent
	// requests, so it is only ever replaced atomically through Update.
	updated := *existing
	if err = updated.Change(cmd.Payload()); err != nil {
		return nil, err
	}

	if err = h.dishes.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
