// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// store access, and mutation.
//
// There is no unit-of-work layer: every operation is a single atomic
// in-memory mutation (append, field overwrite, or splice) with no
// partial-failure window.
package commands

import "backhouse/internal/core/ports"

// Store interfaces consumed by command handlers.
type (
	// DishStore provides access to the dish collection.
	DishStore interface {
		ports.DishRepository
	}

	// OrderStore provides access to the order collection.
	OrderStore interface {
		ports.OrderRepository
	}
)
