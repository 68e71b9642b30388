package commands

import (
	"context"
	"fmt"

	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for updating an order.
//
// The pipeline stages run in this fixed order: existence lookup, base field
// validation, body-id/route-id match, status resolution, then the delivered
// guard and the overwrite. The first failing stage short-circuits and
// determines the reported error.
type UpdateOrderCommandHandler struct {
	orders OrderStore
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(orders OrderStore) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{orders: orders}
}

// Handle processes the order update command and returns the updated order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	payload := cmd.Payload()
	if err = payload.Validate(); err != nil {
		return nil, err
	}

	if bodyID := cmd.PayloadID(); bodyID != "" && bodyID != cmd.OrderID().String() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("order id %s does not match route id %s", bodyID, cmd.OrderID()),
		)
	}

	// Unlike create, an update must carry an explicit status.
	if payload.Status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	status, err := order.ParseStatus(payload.Status)
	if err != nil {
		return nil, err
	}

	// Change a copy: the stored aggregate may be read by concurrent
	// requests, so it is only ever replaced atomically through Update.
	updated := *existing
	if err = updated.Change(payload, status); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
