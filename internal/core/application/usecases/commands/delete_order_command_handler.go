package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles the business logic for deleting an order.
// The existence lookup runs first, then the pending-only status gate, then
// the store removal.
type DeleteOrderCommandHandler struct {
	orders OrderStore
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(orders OrderStore) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle processes the order deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.Status().ValidateDelete(); err != nil {
		return err
	}

	return h.orders.Remove(ctx, cmd.OrderID())
}
