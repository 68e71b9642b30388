package order

// LineItem is one dish reference on an order: a dish identifier and a
// positive quantity. The dish identifier is treated as opaque text and is
// not checked against the dish catalog.
type LineItem struct {
	dishID   string
	quantity int
}

// DishID returns the referenced dish identifier.
func (li LineItem) DishID() string {
	return li.dishID
}

// Quantity returns how many units of the dish were ordered.
func (li LineItem) Quantity() int {
	return li.quantity
}
