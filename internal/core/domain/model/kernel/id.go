package kernel

import (
	"github.com/google/uuid"

	"backhouse/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through one
// of the constructor functions. It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is a value object that identifies an entity in a store. The server
// generates fresh identifiers as UUID strings, but lookups treat identifiers
// as opaque text: a route parameter that is not a UUID is still a well-formed
// ID that simply will not match anything.
//
// The zero value of ID is invalid and must be constructed using NewID or
// IDFromString. ID is immutable and safe for concurrent use.
type ID struct {
	value string
}

// NewID generates a fresh unique identifier. Uniqueness within a process
// lifetime is guaranteed by the underlying UUID (version 4) generator.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString creates an ID from its textual representation, typically a
// route parameter. The text is treated as opaque; only emptiness is rejected.
func IDFromString(s string) (ID, error) {
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the textual representation of the ID.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks that the ID was properly constructed.
// Returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
