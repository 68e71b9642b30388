package commands_test

import (
	"context"
	"testing"

	"backhouse/internal/adapters/out/memstore"
	"backhouse/internal/core/application/usecases/commands"
	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDish(t *testing.T, store *memstore.DishStore) *dish.Dish {
	t.Helper()
	h := commands.NewCreateDishCommandHandler(store)
	cmd, err := commands.NewCreateDishCommand(validDishPayload())
	require.NoError(t, err)
	created, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	return created
}

func TestUpdateDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewDishStore()
	existing := seedDish(t, store)
	h := commands.NewUpdateDishCommandHandler(store)

	p := dish.Payload{
		Name:        "Burrito",
		Description: "Mild",
		Price:       price(12),
		ImageURL:    "http://y",
	}
	cmd, err := commands.NewUpdateDishCommand(existing.ID(), "", p)
	require.NoError(t, err)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, updated.ID().IsEqual(existing.ID()))
	assert.Equal(t, "Burrito", updated.Name())

	stored, err := store.Get(ctx, existing.ID())
	require.NoError(t, err)
	assert.Equal(t, "Burrito", stored.Name())
	assert.Equal(t, 12, stored.Price())
}

func TestUpdateDishCommandHandler_Handle_DoesNotMutateFetchedAggregate(t *testing.T) {
	// Updates publish a fresh aggregate through the store; a previously
	// fetched instance never changes under the reader's feet.
	ctx := t.Context()
	store := memstore.NewDishStore()
	existing := seedDish(t, store)
	h := commands.NewUpdateDishCommandHandler(store)

	snapshot, err := store.Get(ctx, existing.ID())
	require.NoError(t, err)

	p := dish.Payload{
		Name:        "Burrito",
		Description: "Mild",
		Price:       price(12),
		ImageURL:    "http://y",
	}
	cmd, err := commands.NewUpdateDishCommand(existing.ID(), "", p)
	require.NoError(t, err)

	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Taco", snapshot.Name())
	assert.Equal(t, 8, snapshot.Price())
	assert.Equal(t, "Burrito", updated.Name())

	stored, err := store.Get(ctx, existing.ID())
	require.NoError(t, err)
	assert.Equal(t, "Burrito", stored.Name())
}

func TestUpdateDishCommandHandler_Handle_MatchingBodyID(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewDishStore()
	existing := seedDish(t, store)
	h := commands.NewUpdateDishCommandHandler(store)

	cmd, err := commands.NewUpdateDishCommand(existing.ID(), existing.ID().String(), validDishPayload())
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
}

func TestUpdateDishCommandHandler_Handle_MissingDish(t *testing.T) {
	store := memstore.NewDishStore()
	h := commands.NewUpdateDishCommandHandler(store)

	routeID, err := kernel.IDFromString("no-such-dish")
	require.NoError(t, err)

	// The payload is also invalid; the lookup failure must win.
	cmd, err := commands.NewUpdateDishCommand(routeID, "", dish.Payload{})
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "no-such-dish")
}

func TestUpdateDishCommandHandler_Handle_InvalidPayload(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewDishStore()
	existing := seedDish(t, store)
	h := commands.NewUpdateDishCommandHandler(store)

	p := validDishPayload()
	p.ImageURL = ""
	cmd, err := commands.NewUpdateDishCommand(existing.ID(), "", p)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "image_url")

	stored, getErr := store.Get(ctx, existing.ID())
	require.NoError(t, getErr)
	assert.Equal(t, "Taco", stored.Name())
}

func TestUpdateDishCommandHandler_Handle_BodyIDMismatch(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewDishStore()
	existing := seedDish(t, store)
	h := commands.NewUpdateDishCommandHandler(store)

	cmd, err := commands.NewUpdateDishCommand(existing.ID(), "some-other-id", validDishPayload())
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "some-other-id")
	assert.Contains(t, err.Error(), existing.ID().String())
}
