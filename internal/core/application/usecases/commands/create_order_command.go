package commands

import (
	"errors"

	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Construction runs the base order validation pipeline and resolves the
// status: absent defaults to pending, anything else must parse as one of
// the four enumerated values so no order ever enters the store in an
// invalid state.
//
// Example:
//
//	q := 2.0
//	cmd, err := NewCreateOrderCommand(order.Payload{
//	    DeliverTo:    "1 Main St",
//	    MobileNumber: "555-0100",
//	    Dishes:       []order.LineItemPayload{{DishID: dishID, Quantity: &q}},
//	})
//	if err != nil {
//	    return err // names the first invalid field or line item index
//	}
type CreateOrderCommand struct {
	payload order.Payload
	status  order.Status

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The payload
// checks run in their fixed order (deliverTo, mobileNumber, dishes presence,
// dishes non-emptiness, quantities) and the first failure is returned.
func NewCreateOrderCommand(payload order.Payload) (CreateOrderCommand, error) {
	if err := payload.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	status := order.Pending
	if payload.Status != "" {
		parsed, err := order.ParseStatus(payload.Status)
		if err != nil {
			return CreateOrderCommand{}, err
		}
		status = parsed
	}

	return CreateOrderCommand{
		payload: payload,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Payload returns the validated order fields.
func (c CreateOrderCommand) Payload() order.Payload {
	return c.payload
}

// Status returns the resolved initial status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}
