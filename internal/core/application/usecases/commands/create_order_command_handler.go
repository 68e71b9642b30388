package commands

import (
	"context"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Generates a fresh identifier and appends the order to the store.
type CreateOrderCommandHandler struct {
	orders OrderStore
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(orders OrderStore) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{orders: orders}
}

// Handle processes the order creation command and returns the stored order
// with its server-assigned identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.New(kernel.NewID(), cmd.Payload(), cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
