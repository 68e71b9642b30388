package commands_test

import (
	"testing"

	"backhouse/internal/core/application/usecases/commands"
	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

func validDishPayload() dish.Payload {
	return dish.Payload{
		Name:        "Taco",
		Description: "Spicy",
		Price:       price(8),
		ImageURL:    "http://x",
	}
}

func TestNewCreateDishCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateDishCommand(validDishPayload())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Taco", cmd.Payload().Name)
}

func TestNewCreateDishCommand_FirstFailureWins(t *testing.T) {
	// name and price are both invalid; the name error must surface.
	p := validDishPayload()
	p.Name = ""
	p.Price = price(-1)

	_, err := commands.NewCreateDishCommand(p)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")
}

func TestNewCreateDishCommand_InvalidPrice(t *testing.T) {
	p := validDishPayload()
	p.Price = price(0)

	_, err := commands.NewCreateDishCommand(p)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "price")
}

func TestCreateDishCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateDishCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDishCommandIsNotConstructed)
}
