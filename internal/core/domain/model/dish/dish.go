package dish

import (
	"errors"
	"math"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the New factory method. This ensures all dishes are properly
// validated before entering the store.
var ErrDishIsNotConstructed = errors.New("Dish must be created via New constructor")

// errPriceNotPositiveInteger explains every way a price can be wrong:
// absent checks are reported separately, this covers fractional,
// non-positive, and unrepresentably large values.
var errPriceNotPositiveInteger = errors.New("must be an integer greater than 0")

// Payload is the candidate field set for creating or updating a dish.
// Price is a pointer because JSON numbers arrive as float64 and an absent
// price must be distinguishable from zero.
type Payload struct {
	Name        string
	Description string
	Price       *float64
	ImageURL    string
}

// Validate runs the dish field checks in their fixed order:
// name, description, price, image_url. The first failing check determines
// the reported error; later violations are not collected.
//
// A price is valid only when present, integral, strictly positive, and
// within int range. The range check keeps the int conversion in New and
// Change from overflowing into a negative stored price.
func (p Payload) Validate() error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.Description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if p.Price == nil {
		return errs.NewValueIsRequiredError("price")
	}
	if *p.Price <= 0 || *p.Price >= math.MaxInt64 || *p.Price != math.Trunc(*p.Price) {
		return errs.NewValueIsInvalidErrorWithCause("price", errPriceNotPositiveInteger)
	}
	if p.ImageURL == "" {
		return errs.NewValueIsRequiredError("image_url")
	}
	return nil
}

// Dish is a menu item. It maintains these invariants:
//   - the identifier is valid and immutable after construction
//   - name, description, and image URL are never empty
//   - price is a positive integer in currency minor units
//
// Instances can only be created through New, so a dish in the store is
// always well-formed.
type Dish struct {
	id          kernel.ID
	name        string
	description string
	price       int
	imageURL    string

	isConstructed bool
}

// New creates a Dish from a validated payload. The payload checks run in
// their fixed order and the first failure is returned unchanged, so callers
// surface exactly one field error.
func New(id kernel.ID, payload Payload) (*Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	return &Dish{
		id:            id,
		name:          payload.Name,
		description:   payload.Description,
		price:         int(*payload.Price),
		imageURL:      payload.ImageURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the Dish instance was properly constructed through New.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// IsEqual compares two dishes by their unique identifiers.
func (d *Dish) IsEqual(other *Dish) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.ID {
	return d.id
}

// Name returns the dish name.
func (d *Dish) Name() string {
	return d.name
}

// Description returns the dish description.
func (d *Dish) Description() string {
	return d.description
}

// Price returns the dish price in currency minor units.
func (d *Dish) Price() int {
	return d.price
}

// ImageURL returns the dish image URL.
func (d *Dish) ImageURL() string {
	return d.imageURL
}

// Change overwrites the mutable fields from a validated payload, leaving the
// identifier untouched. Nothing is mutated when validation fails.
func (d *Dish) Change(payload Payload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	d.name = payload.Name
	d.description = payload.Description
	d.price = int(*payload.Price)
	d.imageURL = payload.ImageURL
	return nil
}
