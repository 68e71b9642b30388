// Package order contains the Order aggregate, its field validation rules,
// and the Status value object implementing the order lifecycle state
// machine. Orders reference dishes by identifier only; referential
// integrity against the dish catalog is intentionally not enforced.
package order
