package commands

import (
	"errors"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand represents a request to add a new dish to the menu.
// Construction runs the full dish validation pipeline, so a constructed
// command always carries a well-formed payload.
//
// Example:
//
//	price := 8.0
//	cmd, err := NewCreateDishCommand(dish.Payload{
//	    Name:        "Taco",
//	    Description: "Spicy",
//	    Price:       &price,
//	    ImageURL:    "http://x",
//	})
//	if err != nil {
//	    return err // names the first invalid field
//	}
type CreateDishCommand struct {
	payload dish.Payload

	guard guard.ConstructorGuard
}

// NewCreateDishCommand creates a command to add a dish. The payload checks
// run in their fixed order (name, description, price, image_url) and the
// first failure is returned.
func NewCreateDishCommand(payload dish.Payload) (CreateDishCommand, error) {
	if err := payload.Validate(); err != nil {
		return CreateDishCommand{}, err
	}

	return CreateDishCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

// Payload returns the validated dish fields.
func (c CreateDishCommand) Payload() dish.Payload {
	return c.payload
}
