// Package kernel holds shared value objects used across the domain model.
// It currently provides the ID value object that identifies dishes and
// orders in their stores.
package kernel
