package commands

import (
	"errors"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to overwrite an existing order's
// fields. The payload is carried unvalidated: the handler runs the pipeline
// stages in their required order, existence lookup first, so a missing order
// reports not-found even when the payload is also invalid.
type UpdateOrderCommand struct {
	orderID   kernel.ID
	payloadID string
	payload   order.Payload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update the order at orderID.
// payloadID is the optional id carried in the request body; when present it
// must match the route id, which the handler enforces after base validation.
func NewUpdateOrderCommand(orderID kernel.ID, payloadID string, payload order.Payload) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID:   orderID,
		payloadID: payloadID,
		payload:   payload,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the route identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// PayloadID returns the id carried in the request body, or "" when absent.
func (c UpdateOrderCommand) PayloadID() string {
	return c.payloadID
}

// Payload returns the candidate order fields.
func (c UpdateOrderCommand) Payload() order.Payload {
	return c.payload
}
