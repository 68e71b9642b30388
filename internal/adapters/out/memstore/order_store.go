package memstore

import (
	"context"
	"sync"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/pkg/errs"
)

// OrderStore is the in-memory order repository. Orders keep their insertion
// order; removal splices the backing slice so the remaining order holds.
type OrderStore struct {
	mu     sync.RWMutex
	orders []*order.Order
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Add appends a new order to the store.
func (s *OrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", errIDAlreadyExists)
	}
	s.orders = append(s.orders, aggregate)
	return nil
}

// Update replaces the stored order that shares the aggregate's identifier.
func (s *OrderStore) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}
	s.orders[i] = aggregate
	return nil
}

// Get retrieves an order by exact identifier equality.
func (s *OrderStore) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return s.orders[i], nil
}

// List returns the full collection in insertion order.
func (s *OrderStore) List(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]*order.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}

// Remove deletes the order with the given identifier.
func (s *OrderStore) Remove(_ context.Context, id kernel.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	return nil
}

// indexOf returns the position of the order with the given id, or -1.
// Callers must hold the lock.
func (s *OrderStore) indexOf(id kernel.ID) int {
	for i, o := range s.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
