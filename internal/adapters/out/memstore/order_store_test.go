package memstore_test

import (
	"context"
	"testing"

	"backhouse/internal/adapters/out/memstore"
	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/core/domain/model/order"
	"backhouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	q := float64(2)
	o, err := order.New(kernel.NewID(), order.Payload{
		DeliverTo:    "1 Main St",
		MobileNumber: "555-0100",
		Dishes:       []order.LineItemPayload{{DishID: "d-1", Quantity: &q}},
	}, status)
	require.NoError(t, err)
	return o
}

func TestOrderStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewOrderStore()

	first := newOrder(t, order.Pending)
	second := newOrder(t, order.Preparing)

	require.NoError(t, store.Add(ctx, first))
	require.NoError(t, store.Add(ctx, second))

	orders, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.True(t, orders[0].IsEqual(first))
	assert.True(t, orders[1].IsEqual(second))
}

func TestOrderStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("finds by exact id", func(t *testing.T) {
		store := memstore.NewOrderStore()
		o := newOrder(t, order.Pending)
		require.NoError(t, store.Add(ctx, o))

		found, err := store.Get(ctx, o.ID())

		require.NoError(t, err)
		assert.True(t, found.IsEqual(o))
	})

	t.Run("missing id yields not found naming the id", func(t *testing.T) {
		store := memstore.NewOrderStore()
		id, err := kernel.IDFromString("missing-order")
		require.NoError(t, err)

		_, err = store.Get(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "missing-order")
	})
}

func TestOrderStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the stored order", func(t *testing.T) {
		store := memstore.NewOrderStore()
		o := newOrder(t, order.Pending)
		require.NoError(t, store.Add(ctx, o))

		q := float64(4)
		require.NoError(t, o.Change(order.Payload{
			DeliverTo:    "2 Oak Ave",
			MobileNumber: "555-0100",
			Dishes:       []order.LineItemPayload{{DishID: "d-2", Quantity: &q}},
		}, order.Preparing))
		require.NoError(t, store.Update(ctx, o))

		found, err := store.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "2 Oak Ave", found.DeliverTo())
		assert.Equal(t, order.Preparing, found.Status())
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		store := memstore.NewOrderStore()

		err := store.Update(ctx, newOrder(t, order.Pending))

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderStore_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("splices the collection and keeps order", func(t *testing.T) {
		store := memstore.NewOrderStore()
		first := newOrder(t, order.Pending)
		second := newOrder(t, order.Pending)
		third := newOrder(t, order.Pending)
		for _, o := range []*order.Order{first, second, third} {
			require.NoError(t, store.Add(ctx, o))
		}

		require.NoError(t, store.Remove(ctx, second.ID()))

		orders, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.True(t, orders[0].IsEqual(first))
		assert.True(t, orders[1].IsEqual(third))

		_, err = store.Get(ctx, second.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing id yields not found", func(t *testing.T) {
		store := memstore.NewOrderStore()
		id, err := kernel.IDFromString("missing-order")
		require.NoError(t, err)

		require.ErrorIs(t, store.Remove(ctx, id), errs.ErrObjectNotFound)
	})
}
