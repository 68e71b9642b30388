// Package memstore provides in-memory implementations of the store ports.
// Each store is an ordered, id-unique collection guarded by a mutex so the
// HTTP adapter's concurrent handlers never corrupt the backing slice.
package memstore

import (
	"context"
	"errors"
	"sync"

	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/errs"
)

var errIDAlreadyExists = errors.New("an entity with this id already exists")

// DishStore is the in-memory dish repository. Dishes keep their insertion
// order; List returns them exactly as they were appended.
type DishStore struct {
	mu     sync.RWMutex
	dishes []*dish.Dish
}

// NewDishStore creates an empty dish store.
func NewDishStore() *DishStore {
	return &DishStore{}
}

// Add appends a new dish to the store.
func (s *DishStore) Add(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dishId", errIDAlreadyExists)
	}
	s.dishes = append(s.dishes, aggregate)
	return nil
}

// Update replaces the stored dish that shares the aggregate's identifier.
func (s *DishStore) Update(_ context.Context, aggregate *dish.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("dishId", aggregate.ID().String())
	}
	s.dishes[i] = aggregate
	return nil
}

// Get retrieves a dish by exact identifier equality.
func (s *DishStore) Get(_ context.Context, id kernel.ID) (*dish.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("dishId", id.String())
	}
	return s.dishes[i], nil
}

// List returns the full collection in insertion order.
func (s *DishStore) List(_ context.Context) ([]*dish.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dishes := make([]*dish.Dish, len(s.dishes))
	copy(dishes, s.dishes)
	return dishes, nil
}

// indexOf returns the position of the dish with the given id, or -1.
// Callers must hold the lock.
func (s *DishStore) indexOf(id kernel.ID) int {
	for i, d := range s.dishes {
		if d.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
