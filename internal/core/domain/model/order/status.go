package order

import (
	"errors"
	"fmt"

	"backhouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   ▲            │               │
//	   └────────────┴───────────────┘
//	  (any non-delivered order may move to any state)
//
// Delivered is absorbing: once reached, the order can no longer be changed.
// Deletion is additionally permitted only from Pending. No forward-only
// ordering is enforced among the non-terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to newly created orders.
	// Only pending orders may be deleted.
	Pending

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// OutForDelivery indicates the order has left the restaurant.
	OutForDelivery

	// Delivered indicates the order reached the customer. This is a
	// terminal state: the order becomes immutable and non-deletable.
	Delivered
)

// statusStrings maps every Status value, including Unknown, to its wire
// representation.
var statusStrings = map[Status]string{
	Unknown:        "unknown",
	Pending:        "pending",
	Preparing:      "preparing",
	OutForDelivery: "out-for-delivery",
	Delivered:      "delivered",
}

// validStatusStrings excludes Unknown; it backs validation and parsing.
var validStatusStrings = map[Status]string{
	Pending:        "pending",
	Preparing:      "preparing",
	OutForDelivery: "out-for-delivery",
	Delivered:      "delivered",
}

// ParseStatus converts a wire value into a Status.
// Returns an error naming the status field when the text is not one of
// pending, preparing, out-for-delivery, delivered.
func ParseStatus(s string) (Status, error) {
	for status, str := range validStatusStrings {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of pending, preparing, out-for-delivery, delivered", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Preparing, OutForDelivery, and Delivered;
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := validStatusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. It implements fmt.Stringer and is safe to call on any
// Status value.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransition reports whether an order in this status may be set to
// target. Every transition is allowed except out of Delivered; the target
// itself must still be a valid status.
func (s Status) CanTransition(target Status) bool {
	if target.Validate() != nil {
		return false
	}
	return s != Delivered
}

// ValidateChange checks that an order in this status may still be updated.
// Returns an error once the order has been delivered.
func (s Status) ValidateChange() error {
	if s == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("a delivered order cannot be changed"),
		)
	}
	return nil
}

// ValidateDelete checks that an order in this status may be deleted.
// Only pending orders are deletable.
func (s Status) ValidateDelete() error {
	if s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			errors.New("an order cannot be deleted unless it is pending"),
		)
	}
	return nil
}
