package queries

import (
	"errors"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/guard"
)

var ErrGetDishQueryIsNotConstructed = errors.New(
	"GetDishQuery must be created via NewGetDishQuery constructor",
)

// GetDishQuery retrieves a single dish by identifier.
type GetDishQuery struct {
	dishID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetDishQuery creates a query for the dish with the given identifier.
func NewGetDishQuery(dishID kernel.ID) (GetDishQuery, error) {
	if err := dishID.Validate(); err != nil {
		return GetDishQuery{}, err
	}

	return GetDishQuery{
		dishID: dishID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDishQuery) Validate() error {
	return q.guard.Validate(ErrGetDishQueryIsNotConstructed)
}

// DishID returns the identifier being looked up.
func (q GetDishQuery) DishID() kernel.ID {
	return q.dishID
}
