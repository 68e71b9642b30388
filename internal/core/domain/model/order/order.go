package order

import (
	"errors"
	"fmt"
	"math"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the New factory method. This ensures all orders are properly
// validated before entering the store.
var ErrOrderIsNotConstructed = errors.New("Order must be created via New constructor")

var errQuantityNotPositiveInteger = errors.New("must have a quantity that is an integer greater than 0")

// LineItemPayload is one candidate dish reference. Quantity is a pointer
// because JSON numbers arrive as float64 and an absent quantity must be
// distinguishable from zero.
type LineItemPayload struct {
	DishID   string
	Quantity *float64
}

// Payload is the candidate field set for creating or updating an order.
// Status carries the raw wire value; it is not part of the base validation
// and is resolved separately (defaulted on create, required on update).
//
// A nil Dishes slice means the field was absent from the request, which is
// reported differently from an explicitly empty list.
type Payload struct {
	DeliverTo    string
	MobileNumber string
	Status       string
	Dishes       []LineItemPayload
}

// Validate runs the base order checks in their fixed order: deliverTo,
// mobileNumber, dishes presence, dishes non-emptiness, then each line item's
// quantity. The first failing check determines the reported error, and the
// quantity check names the offending index.
//
// A quantity is valid only when present, integral, strictly positive, and
// within int range, so the int conversion in newLineItems cannot overflow.
func (p Payload) Validate() error {
	if p.DeliverTo == "" {
		return errs.NewValueIsRequiredError("deliverTo")
	}
	if p.MobileNumber == "" {
		return errs.NewValueIsRequiredError("mobileNumber")
	}
	if p.Dishes == nil {
		return errs.NewValueIsRequiredError("dishes")
	}
	if len(p.Dishes) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("dishes", errors.New("must include at least one dish"))
	}
	for i, item := range p.Dishes {
		q := item.Quantity
		if q == nil || *q <= 0 || *q >= math.MaxInt64 || *q != math.Trunc(*q) {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("dishes[%d].quantity", i),
				errQuantityNotPositiveInteger,
			)
		}
	}
	return nil
}

// Order is a customer order. It is the aggregate root for the order
// lifecycle and maintains these invariants:
//   - the identifier is valid and immutable after construction
//   - deliverTo and mobileNumber are never empty
//   - the line item list is never empty and every quantity is positive
//   - status is always one of the four enumerated values
//   - once delivered, the order accepts no further changes
//
// Instances can only be created through New, so an order in the store is
// always well-formed.
type Order struct {
	id           kernel.ID
	deliverTo    string
	mobileNumber string
	status       Status
	lineItems    []LineItem

	isConstructed bool
}

// New creates an Order from a validated payload and a resolved status.
// The payload checks run in their fixed order and the first failure is
// returned unchanged.
func New(id kernel.ID, payload Payload, status Status) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		deliverTo:     payload.DeliverTo,
		mobileNumber:  payload.MobileNumber,
		status:        status,
		lineItems:     newLineItems(payload.Dishes),
		isConstructed: true,
	}, nil
}

// newLineItems converts validated line item payloads to value objects.
// Callers must have run Payload.Validate first.
func newLineItems(items []LineItemPayload) []LineItem {
	lineItems := make([]LineItem, len(items))
	for i, item := range items {
		lineItems[i] = LineItem{
			dishID:   item.DishID,
			quantity: int(*item.Quantity),
		}
	}
	return lineItems
}

// Validate ensures the Order instance was properly constructed through New.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// DeliverTo returns the delivery address.
func (o *Order) DeliverTo() string {
	return o.deliverTo
}

// MobileNumber returns the customer's contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns the ordered dishes.
func (o *Order) LineItems() []LineItem {
	return o.lineItems
}

// Change overwrites the mutable fields from a validated payload and moves the
// order to status, leaving the identifier untouched.
//
// The delivered guard runs before any mutation: a delivered order rejects the
// change and keeps its stored state. The transition itself is otherwise
// unrestricted, matching the permissive lifecycle.
func (o *Order) Change(payload Payload, status Status) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateChange(); err != nil {
		return err
	}

	o.deliverTo = payload.DeliverTo
	o.mobileNumber = payload.MobileNumber
	o.status = status
	o.lineItems = newLineItems(payload.Dishes)
	return nil
}
