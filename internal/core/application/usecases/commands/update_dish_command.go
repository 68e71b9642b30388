package commands

import (
	"errors"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/guard"
)

var ErrUpdateDishCommandIsNotConstructed = errors.New(
	"UpdateDishCommand must be created via NewUpdateDishCommand constructor",
)

// UpdateDishCommand represents a request to overwrite an existing dish's
// fields. The payload is carried unvalidated: the handler runs the pipeline
// stages in their required order, existence lookup first, so a missing dish
// reports not-found even when the payload is also invalid.
type UpdateDishCommand struct {
	dishID    kernel.ID
	payloadID string
	payload   dish.Payload

	guard guard.ConstructorGuard
}

// NewUpdateDishCommand creates a command to update the dish at dishID.
// payloadID is the optional id carried in the request body; when present it
// must match the route id, which the handler enforces after field validation.
func NewUpdateDishCommand(dishID kernel.ID, payloadID string, payload dish.Payload) (UpdateDishCommand, error) {
	if err := dishID.Validate(); err != nil {
		return UpdateDishCommand{}, err
	}

	return UpdateDishCommand{
		dishID:    dishID,
		payloadID: payloadID,
		payload:   payload,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDishCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDishCommandIsNotConstructed)
}

// DishID returns the route identifier of the dish to update.
func (c UpdateDishCommand) DishID() kernel.ID {
	return c.dishID
}

// PayloadID returns the id carried in the request body, or "" when absent.
func (c UpdateDishCommand) PayloadID() string {
	return c.payloadID
}

// Payload returns the candidate dish fields.
func (c UpdateDishCommand) Payload() dish.Payload {
	return c.payload
}
