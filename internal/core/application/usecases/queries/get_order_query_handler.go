package queries

import (
	"context"

	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/core/ports"
)

// GetOrderQueryHandler retrieves a single order from the store.
// A missing identifier surfaces as an ObjectNotFoundError naming the id.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order lookup queries.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup and returns the located order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, query.OrderID())
}
