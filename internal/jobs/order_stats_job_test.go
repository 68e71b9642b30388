package jobs_test

import (
	"testing"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	q := float64(1)
	o, err := order.New(kernel.NewID(), order.Payload{
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Dishes:       []order.LineItemPayload{{DishID: "d-1", Quantity: &q}},
	}, status)
	require.NoError(t, err)
	return o
}

func TestCountByStatus(t *testing.T) {
	orders := []*order.Order{
		newOrder(t, order.Pending),
		newOrder(t, order.Pending),
		newOrder(t, order.Preparing),
		newOrder(t, order.Delivered),
	}

	counts := jobs.CountByStatus(orders)

	assert.Equal(t, 2, counts[order.Pending])
	assert.Equal(t, 1, counts[order.Preparing])
	assert.Equal(t, 0, counts[order.OutForDelivery])
	assert.Equal(t, 1, counts[order.Delivered])
}

func TestCountByStatus_Empty(t *testing.T) {
	counts := jobs.CountByStatus(nil)

	assert.Empty(t, counts)
}
